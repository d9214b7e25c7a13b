package domains

import (
	"fmt"

	"bebco_infra/components/auth"
	"bebco_infra/components/config"
	"bebco_infra/components/data"
	"bebco_infra/components/function"
	"bebco_infra/components/permissions"
	"bebco_infra/components/shared"
	"bebco_infra/components/storage"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssecretsmanager"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Deps are the foundation resources a domain stack builds against. Auth,
// Storage and Textract may be nil when no domain in the stack uses them.
type Deps struct {
	Config   *config.EnvironmentConfig
	Manifest function.Manifest
	Tables   *data.Tables
	Storage  *storage.Storage
	Textract *shared.Textract
	Auth     *auth.Auth
}

func (d Deps) table(key data.TableKey) awsdynamodb.Table {
	if d.Tables == nil {
		panic(fmt.Sprintf("table %s requested without a data stack", key))
	}
	table, ok := d.Tables.Get(key)
	if !ok {
		panic(fmt.Sprintf("unknown table %s", key))
	}
	return table
}

func (d Deps) bucket(b Bucket) awss3.Bucket {
	if d.Storage == nil {
		panic(fmt.Sprintf("bucket %s requested without a storage stack", b))
	}
	switch b {
	case DocumentsBucket:
		return d.Storage.Documents
	case StatementsBucket:
		return d.Storage.Statements
	case ChangeTrackingBucket:
		return d.Storage.ChangeTracking
	case LambdaDeploymentsBucket:
		return d.Storage.LambdaDeployments
	}
	panic(fmt.Sprintf("unknown bucket %s", b))
}

// NewContext resolves names against the stack that will own the functions.
func NewContext(scope constructs.Construct, deps Deps) *Context {
	stack := awscdk.Stack_Of(scope)
	ctx := &Context{
		Config:  deps.Config,
		Region:  *stack.Region(),
		Account: *stack.Account(),
		TableName: func(key data.TableKey) string {
			return *deps.table(key).TableName()
		},
		TableArn: func(key data.TableKey) string {
			return *deps.table(key).TableArn()
		},
		BucketName: func(b Bucket) string {
			return *deps.bucket(b).BucketName()
		},
	}

	if deps.Auth != nil {
		ctx.Auth = AuthIDs{
			UserPoolID:       *deps.Auth.UserPool.UserPoolId(),
			UserPoolArn:      *deps.Auth.UserPool.UserPoolArn(),
			UserPoolClientID: *deps.Auth.UserPoolClient.UserPoolClientId(),
			IdentityPoolID:   *deps.Auth.IdentityPool.Ref(),
		}
	}

	if deps.Textract != nil {
		ctx.TextractRoleArn = *deps.Textract.Role.RoleArn()
		ctx.TextractTopicArn = *deps.Textract.ResultsTopic.TopicArn()
		ctx.TextractTopic = deps.Textract.ResultsTopic
	}
	return ctx
}

// Validate reports duplicate keys or construct ids and outputs pointing at
// functions the domain does not define.
func Validate(d Domain) error {
	keys := map[Key]bool{}
	ids := map[string]bool{}
	for _, spec := range d.Functions {
		if spec.Key == "" || spec.ID == "" || spec.Source == "" {
			return fmt.Errorf("%s: incomplete function spec %q", d.Name, spec.ID)
		}
		if keys[spec.Key] {
			return fmt.Errorf("%s: duplicate function key %s", d.Name, spec.Key)
		}
		if ids[spec.ID] {
			return fmt.Errorf("%s: duplicate construct id %s", d.Name, spec.ID)
		}
		keys[spec.Key] = true
		ids[spec.ID] = true
	}
	for _, out := range d.Outputs {
		if !keys[out.Key] {
			return fmt.Errorf("%s: output %s refers to unknown function %s", d.Name, out.ID, out.Key)
		}
	}
	return nil
}

// Build creates every function of the domain in scope and applies its
// grants. Invalid domains abort synth.
func Build(scope constructs.Construct, d Domain, deps Deps) *Registry {
	if err := Validate(d); err != nil {
		panic(err.Error())
	}

	names := deps.Config.ResourceNames()
	registry := NewRegistry()
	secrets := map[string]awssecretsmanager.ISecret{}

	for _, spec := range d.Functions {
		var imported []awssecretsmanager.ISecret
		for _, ref := range spec.Secrets {
			if ref.Name == "" {
				continue
			}
			secret, ok := secrets[ref.ID]
			if !ok {
				secret = awssecretsmanager.Secret_FromSecretNameV2(scope, jsii.String(ref.ID), jsii.String(ref.Name))
				secrets[ref.ID] = secret
			}
			imported = append(imported, secret)
		}

		fn := function.New(scope, spec.ID, function.Props{
			SourceFunctionName: spec.Source,
			Names:              names,
			Config:             deps.Config,
			Environment:        spec.Env,
			Secrets:            imported,
			TopicsToPublish:    spec.Topics,
			AdditionalPolicies: spec.Policies,
		}, deps.Manifest)

		for _, grant := range spec.Tables {
			table := deps.table(grant.Table)
			switch grant.Access {
			case ReadData:
				table.GrantReadData(fn.Function)
			case ReadWriteData:
				table.GrantReadWriteData(fn.Function)
			case StreamRead:
				table.GrantStreamRead(fn.Function)
			}
			if grant.WithQuery {
				permissions.AddQueryScan(fn.Function, table)
			}
		}

		for _, grant := range spec.Buckets {
			bucket := deps.bucket(grant.Bucket)
			switch grant.Access {
			case BucketRead:
				bucket.GrantRead(fn.Function, nil)
			case BucketReadWrite:
				bucket.GrantReadWrite(fn.Function, nil)
			case BucketWrite:
				bucket.GrantWrite(fn.Function, nil, nil)
			}
		}

		registry.Add(spec.Key, fn.Function, fn.Blueprint.FunctionName)
	}

	for _, out := range d.Outputs {
		fn, _ := registry.Get(out.Key)
		props := &awscdk.CfnOutputProps{Value: fn.FunctionArn()}
		if out.Description != "" {
			props.Description = jsii.String(out.Description)
		}
		awscdk.NewCfnOutput(scope, jsii.String(out.ID), props)
	}

	return registry
}
