package stacks

import (
	"fmt"
	"path/filepath"

	"bebco_infra/components/data"
	"bebco_infra/components/domains"
	"bebco_infra/components/graphql"
	"bebco_infra/components/restapi"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/sirupsen/logrus"
)

// RestAPI describes one REST API deployed from a route table, or from an
// exported OpenAPI document when Export is set and the openapi source is
// selected.
type RestAPI struct {
	Name        string
	Domain      string
	Description string
	Tag         string
	Routes      restapi.RouteTable
	Export      string
	Title       string
	ExportName  string
}

var RestAPIs = []RestAPI{
	{
		Name: "BorrowerApi", Domain: "borrowerapi", Description: "Borrower Portal REST API", Tag: "borrower-portal",
		Routes: restapi.BorrowerRoutes,
		Export: "bebco-borrower-staging-api.json", Title: "bebco-borrower-dev-api", ExportName: "BorrowerApiEndpoint",
	},
	{
		Name: "AdminApi", Domain: "adminapi", Description: "Admin Portal REST API", Tag: "admin-portal",
		Routes: restapi.AdminRoutes,
	},
	{
		Name: "AdminSecondaryApi", Domain: "adminsecondaryapi", Description: "Admin Portal Secondary REST API", Tag: "admin-portal",
		Routes: restapi.AdminSecondaryRoutes,
		Export: "bebco-admin-api.json", Title: "bebco-admin-secondary-dev-api",
	},
}

func (r RestAPI) stackDescription() string {
	return fmt.Sprintf("%s (%d endpoints)", r.Description, len(r.Routes))
}

// specDomain is the naming domain of the OpenAPI deployment, e.g. "borrower-api".
func (r RestAPI) specDomain() string {
	switch r.Domain {
	case "borrowerapi":
		return "borrower-api"
	case "adminsecondaryapi":
		return "admin-secondary-api"
	}
	return r.Domain
}

type RestAPIStackProps struct {
	Props
	API       RestAPI
	Auth      *AuthStack
	Functions *domains.Registry
	// Owners maps each function key to the stack that deploys it.
	Owners map[domains.Key]awscdk.Stack
	Logger logrus.FieldLogger
}

type RestAPIStack struct {
	awscdk.Stack
	Result restapi.Result
}

// NewRestAPIStack imports functions by name, so dependencies on the owning
// domain stacks are added explicitly.
func NewRestAPIStack(scope constructs.Construct, id string, props RestAPIStackProps) *RestAPIStack {
	stack := newStack(scope, id, props.Props, props.API.stackDescription())
	awscdk.Tags_Of(stack).Add(jsii.String("API"), jsii.String(props.API.Tag), nil)

	result := restapi.NewRestAPI(stack, restapi.Props{
		Names:    props.Config.ResourceNames(),
		Domain:   props.API.Domain,
		UserPool: props.Auth.Auth.UserPool,
		Routes:   props.API.Routes,
		Registry: props.Functions,
	})

	stack.AddDependency(props.Auth.Stack, nil)
	addOwnerDependencies(stack, props.Owners, keysOf(result.Integrated))

	for _, route := range result.Skipped {
		props.Logger.WithFields(logrus.Fields{
			"api":      props.API.Name,
			"method":   route.Method,
			"path":     route.Path,
			"function": route.Function,
		}).Warn("route skipped, function not deployed")
	}
	return &RestAPIStack{Stack: stack, Result: result}
}

type SpecAPIStackProps struct {
	Props
	API       RestAPI
	Auth      *AuthStack
	ExportDir string
	Owners    map[domains.Key]awscdk.Stack
	Logger    logrus.FieldLogger
}

type SpecAPIStack struct {
	awscdk.Stack
	Result restapi.SpecResult
}

// NewSpecAPIStack deploys the exported OpenAPI document of an API. Invoke
// grants that fail are logged and do not stop synth.
func NewSpecAPIStack(scope constructs.Construct, id string, props SpecAPIStackProps) *SpecAPIStack {
	cfg := props.Config
	doc, err := restapi.LoadOpenAPI(filepath.Join(props.ExportDir, props.API.Export))
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}

	stack := newStack(scope, id, props.Props, props.API.Description+" (OpenAPI)")
	awscdk.Tags_Of(stack).Add(jsii.String("API"), jsii.String(props.API.Tag), nil)

	doc, err = restapi.PatchDocument(doc, restapi.PatchTarget{
		Title:       props.API.Title,
		Version:     "1.0-dev",
		Region:      cfg.Region,
		Account:     cfg.Account,
		Suffix:      cfg.Suffix(),
		UserPoolArn: *props.Auth.Auth.UserPool.UserPoolArn(),
	})
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}

	result := restapi.NewSpecRestAPI(stack, props.API.Name, restapi.SpecProps{
		Names:       cfg.ResourceNames(),
		Domain:      props.API.specDomain(),
		Document:    doc,
		ExportName:  props.API.ExportName,
		Description: props.API.Description,
	})

	stack.AddDependency(props.Auth.Stack, nil)
	addOwnerDependencies(stack, props.Owners, props.API.Routes.Functions())

	for name, reason := range result.Grants.Failed {
		props.Logger.WithFields(logrus.Fields{
			"api":      props.API.Name,
			"function": name,
		}).Warnf("could not grant invoke permission: %s", reason)
	}
	return &SpecAPIStack{Stack: stack, Result: result}
}

type BorrowersGraphQLStackProps struct {
	Props
	SchemaDir   string
	GoLambdaDir string
	Data        *DataStack
	Functions   *domains.Registry
	Owners      map[domains.Key]awscdk.Stack
	Logger      logrus.FieldLogger
}

type BorrowersGraphQLStack struct {
	awscdk.Stack
	API *graphql.BorrowersAPI
}

func NewBorrowersGraphQLStack(scope constructs.Construct, id string, props BorrowersGraphQLStackProps) *BorrowersGraphQLStack {
	stack := newStack(scope, id, props.Props, "Borrowers GraphQL API")

	api := graphql.NewBorrowersAPI(stack, graphql.BorrowersProps{
		Names:          props.Config.ResourceNames(),
		SchemaPath:     filepath.Join(props.SchemaDir, "bebco-borrowers-api.graphql"),
		GoLambdaDir:    props.GoLambdaDir,
		MonthlyReports: props.Data.Tables.MonthlyReportings,
		Companies:      props.Data.Tables.Companies,
		Registry:       props.Functions,
	})

	stack.AddDependency(props.Data.Stack, nil)
	var keys []domains.Key
	for _, r := range graphql.BorrowerResolvers {
		keys = append(keys, r.Function)
	}
	addOwnerDependencies(stack, props.Owners, keys)

	for _, r := range api.Skipped {
		props.Logger.WithFields(logrus.Fields{
			"field":    r.Field,
			"function": r.Function,
		}).Warn("resolver skipped, function not deployed")
	}
	return &BorrowersGraphQLStack{Stack: stack, API: api}
}

type StatementsGraphQLStackProps struct {
	Props
	SchemaDir string
	Auth      *AuthStack
	Data      *DataStack
}

func NewStatementsGraphQLStack(scope constructs.Construct, id string, props StatementsGraphQLStackProps) awscdk.Stack {
	stack := newStack(scope, id, props.Props, "Borrower Statements GraphQL API")

	statements, _ := props.Data.Tables.Get(data.Statements)
	graphql.NewStatementsAPI(stack, graphql.StatementsProps{
		Names:      props.Config.ResourceNames(),
		SchemaPath: filepath.Join(props.SchemaDir, "beco-borrower-statements.graphql"),
		UserPool:   props.Auth.Auth.UserPool,
		Statements: statements,
	})

	stack.AddDependency(props.Auth.Stack, nil)
	stack.AddDependency(props.Data.Stack, nil)
	return stack
}

func keysOf(routes []restapi.Route) []domains.Key {
	keys := make([]domains.Key, 0, len(routes))
	for _, r := range routes {
		keys = append(keys, r.Function)
	}
	return keys
}

func addOwnerDependencies(stack awscdk.Stack, owners map[domains.Key]awscdk.Stack, keys []domains.Key) {
	seen := map[string]bool{}
	for _, key := range keys {
		owner, ok := owners[key]
		if !ok {
			continue
		}
		name := *owner.Node().Path()
		if seen[name] {
			continue
		}
		seen[name] = true
		stack.AddDependency(owner, nil)
	}
}
