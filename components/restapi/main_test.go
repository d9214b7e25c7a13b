package restapi

import (
	"os"
	"testing"

	"bebco_infra/components/domains"
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	jsii.Close()
	os.Exit(code)
}

type fakeNames map[domains.Key]string

func (f fakeNames) FunctionName(key domains.Key) (string, bool) {
	name, ok := f[key]
	return name, ok
}

func TestRouteTables(t *testing.T) {
	tests := []struct {
		name   string
		routes RouteTable
		want   int
	}{
		{"borrower", BorrowerRoutes, 72},
		{"admin", AdminRoutes, 68},
		{"admin secondary", AdminSecondaryRoutes, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.routes, tt.want)
			assert.NoError(t, tt.routes.Validate())
		})
	}
}

func TestRouteTableValidate(t *testing.T) {
	assert.Error(t, RouteTable{{Path: "banks", Method: "GET", Function: domains.BanksList}}.Validate())
	assert.Error(t, RouteTable{
		{Path: "/banks", Method: "GET", Function: domains.BanksList},
		{Path: "/banks", Method: "GET", Function: domains.BanksCreate},
	}.Validate())
}

func TestFunctions(t *testing.T) {
	keys := AdminSecondaryRoutes.Functions()
	assert.Equal(t, []domains.Key{
		domains.AccountsList,
		domains.BanksList,
		domains.BanksCreate,
		domains.MonthlyReportsList,
		domains.BanksUpdate,
		domains.DrawsList,
	}, keys)
}

func TestNewRestAPISkipsMissingFunctions(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
	pool := awscognito.NewUserPool(stack, jsii.String("Pool"), nil)

	names := fakeNames{
		domains.BanksList:   "bebco-dev-banks-list",
		domains.BanksCreate: "bebco-dev-banks-create",
		domains.BanksUpdate: "bebco-dev-banks-update",
	}
	result := NewRestAPI(stack, Props{
		Names:    naming.New("bebco", "dev", "us-east-2", "123456789012"),
		Domain:   "adminsecondaryapi",
		UserPool: pool,
		Routes:   AdminSecondaryRoutes,
		Registry: names,
	})

	assert.Len(t, result.Integrated, 3)
	require.Len(t, result.Skipped, 3)
	assert.Equal(t, domains.AccountsList, result.Skipped[0].Function)

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::ApiGateway::RestApi"), map[string]interface{}{
		"Name": "bebco-adminsecondaryapi-dev-api",
	})
	template.ResourcePropertiesCountIs(jsii.String("AWS::ApiGateway::Method"), map[string]interface{}{
		"AuthorizationType": "COGNITO_USER_POOLS",
	}, jsii.Number(3))
	template.HasResourceProperties(jsii.String("AWS::ApiGateway::Stage"), map[string]interface{}{
		"StageName":      "dev",
		"TracingEnabled": true,
	})
	template.HasOutput(jsii.String("ApiEndpoint"), map[string]interface{}{})
}
