package domains

import "bebco_infra/components/data"

func Banks(ctx *Context) Domain {
	common := map[string]string{
		"REGION":      ctx.Region,
		"BANKS_TABLE": ctx.TableName(data.Banks),
	}
	return Domain{
		Name: "Banks",
		Functions: []FunctionSpec{
			{Key: BanksCreate, ID: "BanksCreate", Source: "bebco-staging-banks-create", Env: common, Tables: writes(data.Banks)},
			{Key: BanksList, ID: "BanksList", Source: "bebco-staging-banks-list", Env: common, Tables: reads(data.Banks)},
			{Key: BanksUpdate, ID: "BanksUpdate", Source: "bebco-staging-banks-update", Env: common, Tables: writes(data.Banks)},
		},
	}
}
