package auth

import (
	"errors"
	"fmt"
	"strings"

	"bebco_infra/components/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

var ErrPasswordPolicy = errors.New("invalid cognito password policy")

type Auth struct {
	UserPool       awscognito.UserPool
	UserPoolClient awscognito.UserPoolClient
	IdentityPool   awscognito.CfnIdentityPool
}

// NewAuth returns ErrPasswordPolicy before creating anything when the
// password policy is outside what Cognito accepts.
func NewAuth(stack constructs.Construct, cfg *config.EnvironmentConfig) (*Auth, error) {
	policy := cfg.Cognito.PasswordPolicy
	if err := ValidatePasswordPolicy(policy); err != nil {
		return nil, err
	}
	names := cfg.ResourceNames()

	// ユーザープールの作成
	userPool := awscognito.NewUserPool(stack, jsii.String("UserPool"), &awscognito.UserPoolProps{
		UserPoolName:      jsii.String(names.UserPool()),
		SelfSignUpEnabled: jsii.Bool(false),
		SignInAliases: &awscognito.SignInAliases{
			Email:    jsii.Bool(true),
			Username: jsii.Bool(true),
		},
		AutoVerify: &awscognito.AutoVerifiedAttrs{
			Email: jsii.Bool(true),
		},
		StandardAttributes: &awscognito.StandardAttributes{
			Email:      &awscognito.StandardAttribute{Required: jsii.Bool(true), Mutable: jsii.Bool(true)},
			GivenName:  &awscognito.StandardAttribute{Required: jsii.Bool(false), Mutable: jsii.Bool(true)},
			FamilyName: &awscognito.StandardAttribute{Required: jsii.Bool(false), Mutable: jsii.Bool(true)},
		},
		PasswordPolicy: &awscognito.PasswordPolicy{
			MinLength:        jsii.Number(float64(policy.MinLength)),
			RequireLowercase: jsii.Bool(policy.RequireLowercase),
			RequireUppercase: jsii.Bool(policy.RequireUppercase),
			RequireDigits:    jsii.Bool(policy.RequireNumbers),
			RequireSymbols:   jsii.Bool(policy.RequireSymbols),
		},
		AccountRecovery: awscognito.AccountRecovery_EMAIL_ONLY,
		Mfa:             awscognito.Mfa_OPTIONAL,
		MfaSecondFactor: &awscognito.MfaSecondFactor{
			Sms: jsii.Bool(true),
			Otp: jsii.Bool(true),
		},
		RemovalPolicy: awscdk.RemovalPolicy_RETAIN,
	})

	client := userPool.AddClient(jsii.String("UserPoolClient"), &awscognito.UserPoolClientOptions{
		UserPoolClientName: jsii.String(names.UserPool() + "-client"),
		AuthFlows: &awscognito.AuthFlow{
			UserPassword:      jsii.Bool(true),
			UserSrp:           jsii.Bool(true),
			AdminUserPassword: jsii.Bool(true),
		},
		GenerateSecret:       jsii.Bool(false),
		RefreshTokenValidity: awscdk.Duration_Days(jsii.Number(30)),
		AccessTokenValidity:  awscdk.Duration_Hours(jsii.Number(1)),
		IdTokenValidity:      awscdk.Duration_Hours(jsii.Number(1)),
	})

	// IDプールの作成
	identityPool := awscognito.NewCfnIdentityPool(stack, jsii.String("IdentityPool"), &awscognito.CfnIdentityPoolProps{
		IdentityPoolName:               jsii.String(IdentityPoolName(names.UserPool())),
		AllowUnauthenticatedIdentities: jsii.Bool(false),
		CognitoIdentityProviders: &[]interface{}{
			&awscognito.CfnIdentityPool_CognitoIdentityProviderProperty{
				ClientId:     client.UserPoolClientId(),
				ProviderName: userPool.UserPoolProviderName(),
			},
		},
	})

	awscdk.NewCfnOutput(stack, jsii.String("UserPoolId"), &awscdk.CfnOutputProps{
		Value:       userPool.UserPoolId(),
		Description: jsii.String("Cognito User Pool ID"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("UserPoolClientId"), &awscdk.CfnOutputProps{
		Value:       client.UserPoolClientId(),
		Description: jsii.String("Cognito User Pool Client ID"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("IdentityPoolId"), &awscdk.CfnOutputProps{
		Value:       identityPool.Ref(),
		Description: jsii.String("Cognito Identity Pool ID"),
	})

	return &Auth{
		UserPool:       userPool,
		UserPoolClient: client,
		IdentityPool:   identityPool,
	}, nil
}

// ValidatePasswordPolicy checks the minimum length Cognito allows (6 to 99).
func ValidatePasswordPolicy(p config.PasswordPolicy) error {
	if p.MinLength < 6 || p.MinLength > 99 {
		return fmt.Errorf("%w: minLength must be between 6 and 99, got %d", ErrPasswordPolicy, p.MinLength)
	}
	return nil
}

// IdentityPoolName: bebco-borrower-portal-dev -> bebco-borrower-identity-dev
func IdentityPoolName(userPoolName string) string {
	return strings.Replace(userPoolName, "portal", "identity", 1)
}
