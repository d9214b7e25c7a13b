package function

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bebco_infra/components/packages"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceName = "bebco-staging-plaid-link-token-create"

func TestMain(m *testing.M) {
	code := m.Run()
	jsii.Close()
	os.Exit(code)
}

func fixtureManifest(t *testing.T, withZip bool) *packages.Repository {
	t.Helper()
	dir := t.TempDir()
	if withZip {
		pkgDir := filepath.Join(dir, "dist", "lambda-packages")
		require.NoError(t, os.MkdirAll(pkgDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(pkgDir, sourceName+".zip"), []byte("PK"), 0o644))
	}
	return packages.NewRepositoryFromConfigs([]packages.LambdaConfig{
		{
			Name:       sourceName,
			Runtime:    "python3.11",
			Handler:    "lambda_function.lambda_handler",
			Timeout:    30,
			MemorySize: 256,
			Environment: map[string]string{
				"USERS_TABLE":       "bebco-borrower-users-staging",
				"PLAID_ITEMS_TABLE": "bebco-borrower-plaid-items-staging",
				"PLAID_ENV":         "sandbox",
			},
		},
		{Name: "bebco-staging-legacy-ruby", Runtime: "ruby2.7", Handler: "h"},
	}, dir)
}

func TestPlanMissingManifestEntry(t *testing.T) {
	_, err := Plan(Props{SourceFunctionName: "does-not-exist", Names: testTarget("dev").Names}, fixtureManifest(t, true))
	require.Error(t, err)
	assert.ErrorIs(t, err, packages.ErrConfigNotFound)
}

func TestPlanMissingZip(t *testing.T) {
	_, err := Plan(Props{SourceFunctionName: sourceName, Names: testTarget("dev").Names}, fixtureManifest(t, false))
	require.Error(t, err)
	assert.ErrorIs(t, err, packages.ErrPackageMissing)
	assert.Contains(t, err.Error(), "packages download")
}

func TestPlanRequiresNames(t *testing.T) {
	bp, err := Plan(Props{SourceFunctionName: sourceName}, fixtureManifest(t, true))
	assert.Nil(t, bp)
	assert.ErrorIs(t, err, ErrNamesRequired)
	assert.Contains(t, err.Error(), sourceName)
}

func TestPlanUnsupportedRuntime(t *testing.T) {
	repo := fixtureManifest(t, true)
	pkgDir := filepath.Dir(repo.PackagePath(sourceName))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "bebco-staging-legacy-ruby.zip"), []byte("PK"), 0o644))

	_, err := Plan(Props{SourceFunctionName: "bebco-staging-legacy-ruby", Names: testTarget("dev").Names}, repo)
	assert.ErrorIs(t, err, ErrUnsupportedRuntime)
}

func TestPlanSandbox(t *testing.T) {
	target := testTarget("jaspal")
	bp, err := Plan(Props{
		SourceFunctionName: sourceName,
		Names:              target.Names,
		Config:             target.Config,
		Environment:        map[string]string{"PLAID_ENV": "production", "EXTRA": "1"},
	}, fixtureManifest(t, true))
	require.NoError(t, err)

	assert.Equal(t, "bebco-dev-plaid-link-token-create-jaspal", bp.FunctionName)
	assert.Equal(t, "bebco-borrower-users-jaspal", bp.Environment["USERS_TABLE"])
	assert.Equal(t, "bebco-borrower-plaid-items-jaspal", bp.Environment["PLAID_ITEMS_TABLE"])
	assert.Equal(t, "production", bp.Environment["PLAID_ENV"])
	assert.Equal(t, "1", bp.Environment["EXTRA"])
	assert.Equal(t, 30, bp.Timeout)

	for _, v := range bp.Environment {
		assert.NotContains(t, v, "staging")
	}
	assert.Equal(t, 1, strings.Count(bp.FunctionName, "-jaspal"))
}

func TestPlanExplicitName(t *testing.T) {
	bp, err := Plan(Props{
		SourceFunctionName: sourceName,
		FunctionName:       "custom-name",
		Names:              testTarget("dev").Names,
	}, fixtureManifest(t, true))
	require.NoError(t, err)
	assert.Equal(t, "custom-name", bp.FunctionName)
}

func TestNewSynthesizesFunction(t *testing.T) {
	target := testTarget("dev")
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{Account: jsii.String("123456789012"), Region: jsii.String("us-east-2")},
	})

	fn := New(stack, "PlaidLinkTokenCreate", Props{
		SourceFunctionName: sourceName,
		Names:              target.Names,
		Config:             target.Config,
	}, fixtureManifest(t, true))
	require.NotNil(t, fn.Function)

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"FunctionName":  "bebco-dev-plaid-link-token-create",
		"Handler":       "lambda_function.lambda_handler",
		"Runtime":       "python3.11",
		"TracingConfig": map[string]interface{}{"Mode": "Active"},
		"Environment": map[string]interface{}{
			"Variables": assertions.Match_ObjectLike(&map[string]interface{}{
				"USERS_TABLE": "bebco-borrower-users-dev",
			}),
		},
	})
}

func TestNewPanicsOnMissingZip(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	assert.Panics(t, func() {
		New(stack, "Missing", Props{SourceFunctionName: sourceName, Names: testTarget("dev").Names}, fixtureManifest(t, false))
	})
}
