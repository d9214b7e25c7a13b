package domains

func AuthLambdas(ctx *Context) Domain {
	common := map[string]string{
		"REGION":              ctx.Region,
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
		"IDENTITY_POOL_ID":    ctx.Auth.IdentityPoolID,
	}
	return Domain{
		Name: "AuthLambdas",
		Functions: []FunctionSpec{
			// 借り手ポータル
			{Key: AuthCompleteSetup, ID: "AuthCompleteSetup", Source: "bebco-staging-auth-complete-setup", Env: common},
			{Key: AuthRefreshToken, ID: "AuthRefreshToken", Source: "bebco-staging-auth-refresh-token", Env: common},
			{Key: AuthValidatePassword, ID: "AuthValidatePassword", Source: "bebco-staging-auth-validate-password", Env: common},
			// 管理ポータル
			{Key: AdminAuthCompleteSetup, ID: "AdminAuthCompleteSetup", Source: "bebco-admin-auth-complete-setup", Env: common},
			{Key: AdminAuthRefreshToken, ID: "AdminAuthRefreshToken", Source: "bebco-admin-auth-refresh-token", Env: common},
			{Key: AdminAuthValidatePassword, ID: "AdminAuthValidatePassword", Source: "bebco-admin-auth-validate-password", Env: common},
		},
		Outputs: []Output{
			{ID: "AuthCompleteSetupArn", Key: AuthCompleteSetup},
		},
	}
}
