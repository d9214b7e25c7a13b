package restapi

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminExport = "../../exports/api-configs/swagger/bebco-admin-api.json"

func patchTarget(suffix string) PatchTarget {
	return PatchTarget{
		Title:       "bebco-admin-secondary-dev-api",
		Version:     "1.0-dev",
		Region:      "us-east-2",
		Account:     "123456789012",
		Suffix:      suffix,
		UserPoolArn: "arn:aws:cognito-idp:us-east-2:123456789012:userpool/us-east-2_abc",
	}
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(adminExport)
	require.NoError(t, err)
	assert.Len(t, doc["paths"], 5)

	_, err = LoadOpenAPI(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadOpenAPIYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`openapi: 3.0.1
info:
  title: bebco-borrower-staging-api
paths:
  /banks:
    get:
      x-amazon-apigateway-integration:
        uri: arn:aws:apigateway:us-east-1:lambda:path/2015-03-31/functions/arn:aws:lambda:us-east-1:303555290462:function:bebco-staging-banks-list/invocations
`), 0o644))

	doc, err := LoadOpenAPI(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bebco-staging-banks-list"}, ReferencedFunctions(doc))

	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.1\n"), 0o644))
	_, err = LoadOpenAPI(path)
	assert.ErrorContains(t, err, "no paths")
}

func TestPatchDocumentDev(t *testing.T) {
	doc, err := LoadOpenAPI(adminExport)
	require.NoError(t, err)

	patched, err := PatchDocument(doc, patchTarget("dev"))
	require.NoError(t, err)

	info := patched["info"].(map[string]interface{})
	assert.Equal(t, "bebco-admin-secondary-dev-api", info["title"])
	assert.Equal(t, "1.0-dev", info["version"])

	schemes := patched["components"].(map[string]interface{})["securitySchemes"].(map[string]interface{})
	scheme := schemes[SecuritySchemeName].(map[string]interface{})
	authorizer := scheme["x-amazon-apigateway-authorizer"].(map[string]interface{})
	assert.Equal(t, []interface{}{patchTarget("dev").UserPoolArn}, authorizer["providerARNs"])

	assert.Equal(t, []string{
		"bebco-dev-accounts-list",
		"bebco-dev-banks-create",
		"bebco-dev-banks-list",
		"bebco-dev-banks-update",
		"bebco-dev-draws-list",
		"bebco-dev-monthly-reports-list",
	}, ReferencedFunctions(patched))

	// original is untouched
	assert.Contains(t, ReferencedFunctions(doc), "bebco-staging-banks-list")
}

func TestPatchDocumentSandbox(t *testing.T) {
	doc, err := LoadOpenAPI(adminExport)
	require.NoError(t, err)

	patched, err := PatchDocument(doc, patchTarget("jaspal"))
	require.NoError(t, err)
	for _, name := range ReferencedFunctions(patched) {
		assert.True(t, strings.HasSuffix(name, "-jaspal"), name)
		assert.Equal(t, 1, strings.Count(name, "jaspal"), name)
	}

	again, err := PatchDocument(patched, patchTarget("jaspal"))
	require.NoError(t, err)
	assert.Equal(t, ReferencedFunctions(patched), ReferencedFunctions(again))
}

func TestReferencedFunctionsSkipsParameters(t *testing.T) {
	doc := Document{"paths": map[string]interface{}{
		"/banks/{id}": map[string]interface{}{
			"parameters": []interface{}{map[string]interface{}{"name": "id"}},
			"put": map[string]interface{}{
				"x-amazon-apigateway-integration": map[string]interface{}{
					"uri": "arn:aws:apigateway:us-east-2:lambda:path/2015-03-31/functions/arn:aws:lambda:us-east-2:123456789012:function:bebco-dev-banks-update/invocations",
				},
			},
			"options": map[string]interface{}{
				"x-amazon-apigateway-integration": map[string]interface{}{"type": "mock"},
			},
		},
	}}
	assert.Equal(t, []string{"bebco-dev-banks-update"}, ReferencedFunctions(doc))
}

func TestNewSpecRestAPI(t *testing.T) {
	doc, err := LoadOpenAPI(adminExport)
	require.NoError(t, err)
	patched, err := PatchDocument(doc, patchTarget("dev"))
	require.NoError(t, err)

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{Account: jsii.String("123456789012"), Region: jsii.String("us-east-2")},
	})
	result := NewSpecRestAPI(stack, "AdminSecondaryApi", SpecProps{
		Names:       naming.New("bebco", "dev", "us-east-2", "123456789012"),
		Domain:      "admin-secondary-api",
		Document:    patched,
		Description: "Admin Portal Secondary API",
	})
	assert.Len(t, result.Grants.Granted, 6)
	assert.Empty(t, result.Grants.Failed)

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::ApiGateway::RestApi"), map[string]interface{}{
		"Name": "bebco-admin-secondary-api-dev-api",
	})
	template.ResourceCountIs(jsii.String("AWS::Lambda::Permission"), jsii.Number(6))
}

func TestGrantInvokesReportsFailures(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	report := GrantInvokes(stack, []string{"bebco-dev-banks-list", "bebco-dev-banks-list", "bebco-dev-banks-create"})
	assert.Equal(t, []string{"bebco-dev-banks-list", "bebco-dev-banks-create"}, report.Granted)
	assert.Contains(t, report.Failed, "bebco-dev-banks-list")
}
