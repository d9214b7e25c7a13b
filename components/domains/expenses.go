package domains

import "bebco_infra/components/data"

func Expenses(ctx *Context) Domain {
	common := map[string]string{
		"REGION":          ctx.Region,
		"EXPENSES_TABLE":  ctx.TableName(data.Expenses),
		"COMPANIES_TABLE": ctx.TableName(data.Companies),
	}
	return Domain{
		Name: "Expenses",
		Functions: []FunctionSpec{
			{Key: ExpensesCreateBulk, ID: "ExpensesCreateBulk", Source: "bebco-staging-expenses-create-bulk", Env: common, Tables: writes(data.Expenses)},
			{Key: ExpensesGet, ID: "ExpensesGet", Source: "bebco-staging-expenses-get", Env: common, Tables: reads(data.Expenses)},
			{Key: ExpensesList, ID: "ExpensesList", Source: "bebco-staging-expenses-list", Env: common, Tables: reads(data.Expenses)},
			{Key: ExpensesUpdate, ID: "ExpensesUpdate", Source: "bebco-staging-expenses-update", Env: common, Tables: writes(data.Expenses)},
		},
	}
}
