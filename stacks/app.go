package stacks

import (
	"path/filepath"

	"bebco_infra/components/config"
	"bebco_infra/components/domains"
	"bebco_infra/components/function"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/sirupsen/logrus"
)

const (
	APISourceGenerated = "generated"
	APISourceOpenAPI   = "openapi"
)

type Options struct {
	Config   *config.EnvironmentConfig
	Manifest function.Manifest
	// BaseDir holds exports/api-configs and dist/go-lambdas.
	BaseDir string
	// GoLambdaDir overrides {BaseDir}/dist/go-lambdas.
	GoLambdaDir string
	// APISource selects how the borrower and admin secondary REST APIs are
	// deployed. Empty means generated.
	APISource string
	Logger    logrus.FieldLogger
}

func (o Options) goLambdaDir() string {
	if o.GoLambdaDir != "" {
		return o.GoLambdaDir
	}
	return filepath.Join(o.BaseDir, "dist", "go-lambdas")
}

func (o Options) exportDir(kind string) string {
	return filepath.Join(o.BaseDir, "exports", "api-configs", kind)
}

type Bebco struct {
	Auth      *AuthStack
	Storage   *StorageStack
	Data      *DataStack
	Shared    *SharedServicesStack
	Domains   []*DomainStack
	Functions *domains.Registry
	APIs      []awscdk.Stack
	Queues    *QueuesStack
	Monitor   *MonitoringStack
}

// New declares every stack in dependency order.
func New(scope constructs.Construct, opts Options) *Bebco {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	props := Props{Config: cfg}
	id := func(name string) string { return cfg.StackID("Bebco" + name + "Stack") }

	b := &Bebco{Functions: domains.NewRegistry()}

	// 基盤スタック
	b.Auth = NewAuthStack(scope, id("Auth"), props)
	b.Storage = NewStorageStack(scope, id("Storage"), props)
	b.Data = NewDataStack(scope, id("Data"), props)
	b.Shared = NewSharedServicesStack(scope, id("SharedServices"), props, b.Storage)

	// ドメインスタック
	owners := map[domains.Key]awscdk.Stack{}
	for _, entry := range domains.Definitions {
		stack := NewDomainStack(scope, id(entry.Name), DomainStackProps{
			Props:    props,
			Entry:    entry,
			Manifest: opts.Manifest,
			Foundations: Foundations{
				Auth:    b.Auth,
				Storage: b.Storage,
				Data:    b.Data,
				Shared:  b.Shared,
			},
		})
		for _, key := range stack.Registry.Keys() {
			owners[key] = stack.Stack
		}
		b.Functions.Merge(stack.Registry)
		b.Domains = append(b.Domains, stack)
		logger.WithFields(logrus.Fields{
			"stack":     *stack.StackName(),
			"functions": stack.Registry.Len(),
		}).Debug("domain stack declared")
	}

	// APIスタック
	for _, api := range RestAPIs {
		if opts.APISource == APISourceOpenAPI && api.Export != "" {
			s := NewSpecAPIStack(scope, id(api.Name), SpecAPIStackProps{
				Props:     props,
				API:       api,
				Auth:      b.Auth,
				ExportDir: opts.exportDir("swagger"),
				Owners:    owners,
				Logger:    logger,
			})
			b.APIs = append(b.APIs, s.Stack)
			continue
		}
		s := NewRestAPIStack(scope, id(api.Name), RestAPIStackProps{
			Props:     props,
			API:       api,
			Auth:      b.Auth,
			Functions: b.Functions,
			Owners:    owners,
			Logger:    logger,
		})
		b.APIs = append(b.APIs, s.Stack)
	}

	borrowers := NewBorrowersGraphQLStack(scope, id("BorrowersGraphQL"), BorrowersGraphQLStackProps{
		Props:       props,
		SchemaDir:   opts.exportDir("graphql"),
		GoLambdaDir: opts.goLambdaDir(),
		Data:        b.Data,
		Functions:   b.Functions,
		Owners:      owners,
		Logger:      logger,
	})
	statements := NewStatementsGraphQLStack(scope, id("BorrowerStatementsGraphQL"), StatementsGraphQLStackProps{
		Props:     props,
		SchemaDir: opts.exportDir("graphql"),
		Auth:      b.Auth,
		Data:      b.Data,
	})
	b.APIs = append(b.APIs, borrowers.Stack, statements)

	// キューと監視
	ops := OperationsProps{Props: props, Functions: b.Functions, Owners: owners}
	b.Queues = NewQueuesStack(scope, id("Queues"), ops, b.Shared)
	b.Monitor = NewMonitoringStack(scope, id("Monitoring"), ops)

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"region":      cfg.Region,
		"account":     cfg.Account,
		"functions":   b.Functions.Len(),
		"apiSource":   opts.apiSource(),
	}).Info("bebco infrastructure declared")

	return b
}

func (o Options) apiSource() string {
	if o.APISource == "" {
		return APISourceGenerated
	}
	return o.APISource
}
