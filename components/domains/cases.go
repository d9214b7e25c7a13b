package domains

func Cases(ctx *Context) Domain {
	common := map[string]string{"REGION": ctx.Region}
	return Domain{
		Name: "Cases",
		Functions: []FunctionSpec{
			{Key: CasesCreate, ID: "CasesCreate", Source: "bebco-staging-cases-create", Env: common},
			{Key: CasesGet, ID: "CasesGet", Source: "bebco-staging-cases-get", Env: common},
			{Key: CasesList, ID: "CasesList", Source: "bebco-staging-cases-list", Env: common},
			{Key: CasesUpdate, ID: "CasesUpdate", Source: "bebco-staging-cases-update", Env: common},
			{Key: CasesClose, ID: "CasesClose", Source: "bebco-staging-cases-close", Env: common},
			{Key: CasesDocketVerification, ID: "CasesDocketVerification", Source: "bebco-staging-cases-docket-verification", Env: common},
		},
		Outputs: []Output{
			{ID: "CasesCreateArn", Key: CasesCreate},
		},
	}
}
