package domains

import "bebco_infra/components/data"

func Loans(ctx *Context) Domain {
	common := map[string]string{"REGION": ctx.Region}
	return Domain{
		Name: "Loans",
		Functions: []FunctionSpec{
			{
				Key: GenerateLoanStatements, ID: "GenerateLoanStatements", Source: "bebco-staging-generate-loan-statements",
				Env:     common,
				Tables:  readsQuery(data.Loans, data.Companies, data.Statements),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{
				Key: AdminBorrowersLoanSummary, ID: "AdminBorrowersLoanSummary", Source: "bebco-staging-admin-borrowers-loan-summary-function",
				Env:    common,
				Tables: join(writesQuery(data.Loans), readsQuery(data.Banks, data.Companies)),
			},
			{
				Key: UpdateLoan, ID: "UpdateLoan", Source: "bebcoborroweradmin-update-loan-staging",
				Env:    env(common, map[string]string{"TABLE_NAME": ctx.TableName(data.Loans)}),
				Tables: writesQuery(data.Loans),
			},
		},
		Outputs: []Output{
			{ID: "GenerateLoanStatementsArn", Key: GenerateLoanStatements},
		},
	}
}
