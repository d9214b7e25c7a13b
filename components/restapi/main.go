package restapi

import (
	"fmt"
	"strings"

	"bebco_infra/components/domains"
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Route struct {
	Path     string
	Method   string
	Function domains.Key
}

type RouteTable []Route

// Validate checks that every path is absolute and no path/method pair
// appears twice.
func (t RouteTable) Validate() error {
	seen := map[string]bool{}
	for _, r := range t {
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("route %s %s: path must start with /", r.Method, r.Path)
		}
		id := r.Method + " " + r.Path
		if seen[id] {
			return fmt.Errorf("route %s registered twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Functions lists the distinct function keys in first-use order.
func (t RouteTable) Functions() []domains.Key {
	seen := map[domains.Key]bool{}
	var keys []domains.Key
	for _, r := range t {
		if !seen[r.Function] {
			seen[r.Function] = true
			keys = append(keys, r.Function)
		}
	}
	return keys
}

// FunctionNames resolves physical function names. Implemented by
// *domains.Registry.
type FunctionNames interface {
	FunctionName(key domains.Key) (string, bool)
}

type Result struct {
	API        awsapigateway.IRestApi
	Integrated []Route
	// Skipped holds routes whose function is not deployed in this app.
	Skipped []Route
}

// Build adds the route table to api. Functions are imported by name so the
// API stack never references the domain stacks' constructs.
func Build(scope constructs.Construct, api awsapigateway.IRestApi, routes RouteTable, registry FunctionNames, authorizer awsapigateway.IAuthorizer) Result {
	if err := routes.Validate(); err != nil {
		panic(err.Error())
	}

	result := Result{API: api}
	resources := map[string]awsapigateway.IResource{"": api.Root()}
	functions := map[domains.Key]awslambda.IFunction{}

	var resource func(path string) awsapigateway.IResource
	resource = func(path string) awsapigateway.IResource {
		if r, ok := resources[path]; ok {
			return r
		}
		i := strings.LastIndex(path, "/")
		parent := resource(path[:i])
		r := parent.AddResource(jsii.String(path[i+1:]), nil)
		resources[path] = r
		return r
	}

	for _, route := range routes {
		fn, ok := functions[route.Function]
		if !ok {
			name, found := registry.FunctionName(route.Function)
			if !found {
				result.Skipped = append(result.Skipped, route)
				continue
			}
			fn = awslambda.Function_FromFunctionName(scope, jsii.String(fmt.Sprintf("Fn%d", len(functions))), jsii.String(name))
			functions[route.Function] = fn
		}

		resource(strings.TrimSuffix(route.Path, "/")).AddMethod(
			jsii.String(route.Method),
			awsapigateway.NewLambdaIntegration(fn, nil),
			&awsapigateway.MethodOptions{
				Authorizer:        authorizer,
				AuthorizationType: awsapigateway.AuthorizationType_COGNITO,
			},
		)
		result.Integrated = append(result.Integrated, route)
	}

	return result
}

type Props struct {
	Names *naming.ResourceNames
	// Domain is the naming domain, e.g. "borrowerapi".
	Domain   string
	UserPool awscognito.IUserPool
	Routes   RouteTable
	Registry FunctionNames
}

// NewRestAPI creates a Cognito protected REST API for a route table.
func NewRestAPI(stack constructs.Construct, props Props) Result {
	// REST APIの作成
	api := awsapigateway.NewRestApi(stack, jsii.String("Api"), &awsapigateway.RestApiProps{
		RestApiName: jsii.String(props.Names.APIGateway(props.Domain)),
		DefaultCorsPreflightOptions: &awsapigateway.CorsOptions{
			AllowOrigins: awsapigateway.Cors_ALL_ORIGINS(),
			AllowMethods: awsapigateway.Cors_ALL_METHODS(),
			AllowHeaders: jsii.Strings("Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key"),
		},
		DeployOptions:  stageOptions(props.Names),
		CloudWatchRole: jsii.Bool(true),
	})

	authorizer := awsapigateway.NewCognitoUserPoolsAuthorizer(stack, jsii.String("Authorizer"), &awsapigateway.CognitoUserPoolsAuthorizerProps{
		CognitoUserPools: &[]awscognito.IUserPool{props.UserPool},
		IdentitySource:   jsii.String("method.request.header.Authorization"),
	})

	result := Build(stack, api, props.Routes, props.Registry, authorizer)

	awscdk.NewCfnOutput(stack, jsii.String("ApiEndpoint"), &awscdk.CfnOutputProps{
		Value:       api.Url(),
		Description: jsii.String("API endpoint URL"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("ApiId"), &awscdk.CfnOutputProps{
		Value:       api.RestApiId(),
		Description: jsii.String("API Gateway ID"),
	})

	return result
}

func stageOptions(names *naming.ResourceNames) *awsapigateway.StageOptions {
	stage := names.EnvSuffix()
	if stage == "" {
		stage = "dev"
	}
	return &awsapigateway.StageOptions{
		StageName:        jsii.String(stage),
		LoggingLevel:     awsapigateway.MethodLoggingLevel_INFO,
		DataTraceEnabled: jsii.Bool(true),
		MetricsEnabled:   jsii.Bool(true),
		TracingEnabled:   jsii.Bool(true),
	}
}
