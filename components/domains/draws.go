package domains

// Draws functions carry no table grants; the packaged code reaches its
// tables through the loans API.
func Draws(ctx *Context) Domain {
	common := map[string]string{
		"REGION":              ctx.Region,
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
		"IDENTITY_POOL_ID":    ctx.Auth.IdentityPoolID,
	}
	return Domain{
		Name: "Draws",
		Functions: []FunctionSpec{
			{Key: DrawsCreate, ID: "DrawsCreate", Source: "bebco-staging-draws-create", Env: common},
			{Key: DrawsGet, ID: "DrawsGet", Source: "bebco-staging-draws-get", Env: common},
			{Key: DrawsList, ID: "DrawsList", Source: "bebco-staging-draws-list", Env: common},
			{Key: DrawsApprove, ID: "DrawsApprove", Source: "bebco-staging-draws-approve", Env: common},
			{Key: DrawsReject, ID: "DrawsReject", Source: "bebco-staging-draws-reject", Env: common},
			{Key: DrawsSubmit, ID: "DrawsSubmit", Source: "bebco-staging-draws-submit", Env: common},
			{Key: DrawsFund, ID: "DrawsFund", Source: "bebco-staging-draws-fund", Env: common},
		},
		Outputs: []Output{
			{ID: "DrawsCreateArn", Key: DrawsCreate, Description: "ARN of the Draws Create function"},
		},
	}
}
