package graphql

import (
	"path/filepath"

	"bebco_infra/components/domains"
	"bebco_infra/components/function"
	"bebco_infra/components/naming"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsappsync"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

const (
	StatusIndexName     = "StatusIndex"
	StatusIndexHashKey  = "status"
	StatusIndexRangeKey = "month"

	StatementsIndexName = "company_id-created_at-index"
)

// LambdaResolver binds a Query field to a packaged function.
type LambdaResolver struct {
	ID       string
	Field    string
	Function domains.Key
}

var BorrowerResolvers = []LambdaResolver{
	{ID: "ListBorrowers", Field: "listBorrowers", Function: domains.BorrowersAPIList},
	{ID: "GetFinancialOverview", Field: "getFinancialOverview", Function: domains.BorrowersAPIFinancialOverview},
	{ID: "BatchGetFinancialOverviews", Field: "batchGetFinancialOverviews", Function: domains.BorrowersAPIBatchFinancialOverviews},
	{ID: "ListAnnualReports", Field: "listAnnualReports", Function: domains.AppsyncListAnnualReports},
	{ID: "AnnualReportingDashboard", Field: "getAnnualReportingDashboard", Function: domains.AppsyncAnnualReportingDashboard},
}

type FunctionNames interface {
	FunctionName(key domains.Key) (string, bool)
}

// GoLambdaCode points at a binary built by `make go-lambdas`.
func GoLambdaCode(distDir, name string) awslambda.Code {
	return awslambda.Code_FromAsset(jsii.String(filepath.Join(distDir, name)), nil)
}

func apiKeyMode() *awsappsync.AuthorizationMode {
	return &awsappsync.AuthorizationMode{
		AuthorizationType: awsappsync.AuthorizationType_API_KEY,
		ApiKeyConfig: &awsappsync.ApiKeyConfig{
			Expires: awscdk.Expiration_After(awscdk.Duration_Days(jsii.Number(365))),
		},
	}
}

func outputs(stack constructs.Construct, api awsappsync.GraphqlApi, label, exportName string) {
	endpoint := &awscdk.CfnOutputProps{
		Value:       api.GraphqlUrl(),
		Description: jsii.String(label + " GraphQL API endpoint"),
	}
	if exportName != "" {
		endpoint.ExportName = jsii.String(exportName)
	}
	awscdk.NewCfnOutput(stack, jsii.String("GraphQLApiEndpoint"), endpoint)

	key := api.ApiKey()
	if key == nil {
		key = jsii.String("N/A")
	}
	awscdk.NewCfnOutput(stack, jsii.String("GraphQLApiKey"), &awscdk.CfnOutputProps{
		Value:       key,
		Description: jsii.String(label + " GraphQL API Key"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("GraphQLApiId"), &awscdk.CfnOutputProps{
		Value:       api.ApiId(),
		Description: jsii.String(label + " GraphQL API ID"),
	})
}

type BorrowersProps struct {
	Names      *naming.ResourceNames
	SchemaPath string
	// GoLambdaDir holds one directory per Go Lambda with its bootstrap.
	GoLambdaDir    string
	MonthlyReports awsdynamodb.ITable
	Companies      awsdynamodb.ITable
	Registry       FunctionNames
}

type BorrowersAPI struct {
	API                    awsappsync.GraphqlApi
	MonthlyReportsByStatus awslambda.Function
	StatusIndexHandler     awslambda.Function
	EnsureStatusIndex      awscdk.CustomResource
	// Skipped holds resolvers whose function is not deployed.
	Skipped []LambdaResolver
}

func NewBorrowersAPI(stack constructs.Construct, props BorrowersProps) *BorrowersAPI {
	api := awsappsync.NewGraphqlApi(stack, jsii.String("BorrowersApi"), &awsappsync.GraphqlApiProps{
		Name:       jsii.String(props.Names.AppSyncAPI("borrowers-api")),
		Definition: awsappsync.Definition_FromFile(jsii.String(props.SchemaPath)),
		AuthorizationConfig: &awsappsync.AuthorizationConfig{
			DefaultAuthorization: apiKeyMode(),
		},
		XrayEnabled: jsii.Bool(true),
		LogConfig: &awsappsync.LogConfig{
			FieldLogLevel:         awsappsync.FieldLogLevel_ALL,
			ExcludeVerboseContent: jsii.Bool(false),
		},
	})
	out := &BorrowersAPI{API: api}

	// パッケージ済みLambdaのデータソース
	for _, r := range BorrowerResolvers {
		name, ok := props.Registry.FunctionName(r.Function)
		if !ok {
			out.Skipped = append(out.Skipped, r)
			continue
		}
		fn := awslambda.Function_FromFunctionName(stack, jsii.String(r.ID+"Fn"), jsii.String(name))
		ds := api.AddLambdaDataSource(jsii.String(r.ID+"DataSource"), fn, &awsappsync.DataSourceOptions{
			Name:        jsii.String(r.ID + "DataSource"),
			Description: jsii.String("Lambda data source for " + r.Field + " query"),
		})
		ds.CreateResolver(jsii.String(r.ID+"Resolver"), &awsappsync.BaseResolverProps{
			TypeName:  jsii.String("Query"),
			FieldName: jsii.String(r.Field),
		})
	}

	out.MonthlyReportsByStatus = awslambda.NewFunction(stack, jsii.String("MonthlyReportsByStatusFn"), &awslambda.FunctionProps{
		FunctionName: jsii.String(props.Names.Lambda("borrowers-api", "monthly-reports-by-status")),
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Architecture: awslambda.Architecture_ARM_64(),
		Handler:      jsii.String("bootstrap"),
		Code:         GoLambdaCode(props.GoLambdaDir, "monthly-reports-by-status"),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(60)),
		MemorySize:   jsii.Number(512),
		Description:  jsii.String("GraphQL resolver for monthlyReportsByStatus"),
		Environment: function.StringMap(map[string]string{
			"MONTHLY_REPORTS_TABLE":         *props.MonthlyReports.TableName(),
			"MONTHLY_REPORTS_STATUS_INDEX":  StatusIndexName,
			"MONTHLY_REPORTS_DEFAULT_LIMIT": "1000",
			"MONTHLY_REPORTS_MAX_LIMIT":     "5000",
			"COMPANIES_TABLE":               *props.Companies.TableName(),
			"LOG_LEVEL":                     "INFO",
		}),
	})
	props.MonthlyReports.GrantReadData(out.MonthlyReportsByStatus)
	props.Companies.GrantReadData(out.MonthlyReportsByStatus)
	out.MonthlyReportsByStatus.AddToRolePolicy(permissions.Statement(
		[]string{"dynamodb:Query"},
		props.MonthlyReports.TableArn(),
		jsii.String(*props.MonthlyReports.TableArn()+"/index/"+StatusIndexName),
	))

	// StatusIndexを保証するカスタムリソース
	out.StatusIndexHandler = awslambda.NewFunction(stack, jsii.String("MonthlyReportsStatusIndexHandler"), &awslambda.FunctionProps{
		FunctionName: jsii.String(props.Names.Lambda("infra", "monthly-reports-status-index")),
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Architecture: awslambda.Architecture_ARM_64(),
		Handler:      jsii.String("bootstrap"),
		Code:         GoLambdaCode(props.GoLambdaDir, "ensure-status-index"),
		Timeout:      awscdk.Duration_Minutes(jsii.Number(15)),
		MemorySize:   jsii.Number(256),
		Description:  jsii.String("Ensures the StatusIndex GSI exists on the monthly-reportings table"),
		Environment: function.StringMap(map[string]string{
			"TABLE_NAME": *props.MonthlyReports.TableName(),
			"INDEX_NAME": StatusIndexName,
			"HASH_KEY":   StatusIndexHashKey,
			"RANGE_KEY":  StatusIndexRangeKey,
			"LOG_LEVEL":  "INFO",
		}),
	})
	out.StatusIndexHandler.AddToRolePolicy(permissions.Statement(
		[]string{"dynamodb:DescribeTable", "dynamodb:UpdateTable"},
		props.MonthlyReports.TableArn(),
	))

	provider := customresources.NewProvider(stack, jsii.String("MonthlyReportsStatusIndexProvider"), &customresources.ProviderProps{
		OnEventHandler: out.StatusIndexHandler,
	})
	out.EnsureStatusIndex = awscdk.NewCustomResource(stack, jsii.String("EnsureMonthlyReportsStatusIndex"), &awscdk.CustomResourceProps{
		ServiceToken: provider.ServiceToken(),
		Properties: &map[string]interface{}{
			"TableName": props.MonthlyReports.TableName(),
			"IndexName": StatusIndexName,
		},
	})
	out.MonthlyReportsByStatus.Node().AddDependency(out.EnsureStatusIndex)

	ds := api.AddLambdaDataSource(jsii.String("MonthlyReportsByStatusDataSource"), out.MonthlyReportsByStatus, &awsappsync.DataSourceOptions{
		Name:        jsii.String("MonthlyReportsByStatusDataSource"),
		Description: jsii.String("Lambda data source for monthlyReportsByStatus query"),
	})
	ds.CreateResolver(jsii.String("MonthlyReportsByStatusResolver"), &awsappsync.BaseResolverProps{
		TypeName:  jsii.String("Query"),
		FieldName: jsii.String("monthlyReportsByStatus"),
	})

	outputs(stack, api, "Borrowers", "")
	return out
}

type StatementsProps struct {
	Names      *naming.ResourceNames
	SchemaPath string
	UserPool   awscognito.IUserPool
	Statements awsdynamodb.ITable
}

func NewStatementsAPI(stack constructs.Construct, props StatementsProps) awsappsync.GraphqlApi {
	api := awsappsync.NewGraphqlApi(stack, jsii.String("BorrowerStatementsApi"), &awsappsync.GraphqlApiProps{
		Name:       jsii.String(props.Names.AppSyncAPI("borrower-statements-api")),
		Definition: awsappsync.Definition_FromFile(jsii.String(props.SchemaPath)),
		AuthorizationConfig: &awsappsync.AuthorizationConfig{
			DefaultAuthorization: &awsappsync.AuthorizationMode{
				AuthorizationType: awsappsync.AuthorizationType_USER_POOL,
				UserPoolConfig:    &awsappsync.UserPoolConfig{UserPool: props.UserPool},
			},
			AdditionalAuthorizationModes: &[]*awsappsync.AuthorizationMode{apiKeyMode()},
		},
		XrayEnabled: jsii.Bool(false),
		LogConfig: &awsappsync.LogConfig{
			FieldLogLevel:         awsappsync.FieldLogLevel_ALL,
			ExcludeVerboseContent: jsii.Bool(false),
		},
	})

	ds := api.AddDynamoDbDataSource(jsii.String("StatementsTableDataSource"), props.Statements, &awsappsync.DataSourceOptions{
		Name:        jsii.String("StatementsTable"),
		Description: jsii.String("DynamoDB data source for statements table"),
	})
	ds.CreateResolver(jsii.String("ListStatementsResolver"), &awsappsync.BaseResolverProps{
		TypeName:  jsii.String("Query"),
		FieldName: jsii.String("listStatements"),
		RequestMappingTemplate: awsappsync.MappingTemplate_DynamoDbQuery(
			awsappsync.KeyCondition_Eq(jsii.String("company_id"), jsii.String("companyId")),
			jsii.String(StatementsIndexName),
			nil,
		),
		ResponseMappingTemplate: awsappsync.MappingTemplate_DynamoDbResultList(),
	})

	outputs(stack, api, "Borrower Statements", "BorrowerStatementsGraphQLApiEndpoint")
	return api
}
