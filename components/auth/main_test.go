package auth

import (
	"os"
	"testing"

	"bebco_infra/components/config"
	"bebco_infra/internal/logging"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	jsii.Close()
	os.Exit(code)
}

func TestNewAuth(t *testing.T) {
	cfg, err := config.NewLoader("../..", logging.Discard()).Load("dev", "us-east-2")
	require.NoError(t, err)

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
	auth, err := NewAuth(stack, cfg)
	require.NoError(t, err)
	assert.NotNil(t, auth.UserPoolClient)

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::Cognito::UserPool"), map[string]interface{}{
		"UserPoolName": "bebco-borrower-portal-dev",
		"Policies": map[string]interface{}{
			"PasswordPolicy": map[string]interface{}{
				"MinimumLength":    8,
				"RequireUppercase": true,
				"RequireSymbols":   false,
			},
		},
		"MfaConfiguration": "OPTIONAL",
	})
	template.HasResource(jsii.String("AWS::Cognito::UserPool"), map[string]interface{}{
		"DeletionPolicy": "Retain",
	})
	template.HasResourceProperties(jsii.String("AWS::Cognito::UserPoolClient"), map[string]interface{}{
		"ClientName":     "bebco-borrower-portal-dev-client",
		"GenerateSecret": false,
	})
	template.HasResourceProperties(jsii.String("AWS::Cognito::IdentityPool"), map[string]interface{}{
		"IdentityPoolName":               "bebco-borrower-identity-dev",
		"AllowUnauthenticatedIdentities": false,
	})
	template.HasOutput(jsii.String("UserPoolId"), map[string]interface{}{})
	template.HasOutput(jsii.String("UserPoolClientId"), map[string]interface{}{})
	template.HasOutput(jsii.String("IdentityPoolId"), map[string]interface{}{})
}

func TestIdentityPoolName(t *testing.T) {
	assert.Equal(t, "bebco-borrower-identity-dev", IdentityPoolName("bebco-borrower-portal-dev"))
	assert.Equal(t, "bebco-borrower-identity-jaspal", IdentityPoolName("bebco-borrower-portal-jaspal"))
	assert.Equal(t, "custom-pool", IdentityPoolName("custom-pool"))
}

func TestNewAuthRejectsPasswordPolicy(t *testing.T) {
	cfg, err := config.NewLoader("../..", logging.Discard()).Load("dev", "us-east-2")
	require.NoError(t, err)

	for _, minLength := range []int{0, 5, 100} {
		cfg.Cognito.PasswordPolicy.MinLength = minLength

		app := awscdk.NewApp(nil)
		stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
		auth, err := NewAuth(stack, cfg)
		assert.ErrorIs(t, err, ErrPasswordPolicy, "minLength %d", minLength)
		assert.Nil(t, auth)

		assertions.Template_FromStack(stack, nil).ResourceCountIs(jsii.String("AWS::Cognito::UserPool"), jsii.Number(0))
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	assert.NoError(t, ValidatePasswordPolicy(config.PasswordPolicy{MinLength: 6}))
	assert.NoError(t, ValidatePasswordPolicy(config.PasswordPolicy{MinLength: 99}))
	assert.ErrorContains(t, ValidatePasswordPolicy(config.PasswordPolicy{}), "got 0")
}
