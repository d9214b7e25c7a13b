package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
)

// Borrowers covers the admin borrower screens and the borrowers API used
// by the GraphQL resolvers.
func Borrowers(ctx *Context) Domain {
	common := map[string]string{
		"REGION":              ctx.Region,
		"TABLE_NAME":          ctx.TableName(data.Loans),
		"COMPANIES_TABLE":     ctx.TableName(data.Companies),
		"USERS_TABLE":         ctx.TableName(data.Users),
		"ACCOUNTS_TABLE":      ctx.TableName(data.Accounts),
		"LOANS_TABLE":         ctx.TableName(data.Loans),
		"TRANSACTIONS_TABLE":  ctx.TableName(data.Transactions),
		"DOCUMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket),
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
	}

	return Domain{
		Name: "Borrowers",
		Functions: []FunctionSpec{
			// 管理画面
			{
				Key: AdminBorrowersCreate, ID: "AdminBorrowersCreate", Source: "bebco-staging-admin-borrowers-create-borrower-function",
				Env:    common,
				Tables: writesQuery(data.Companies, data.Users),
			},
			{
				Key: AdminBorrowersGet, ID: "AdminBorrowersGet", Source: "bebco-staging-admin-borrowers-get-borrower-function",
				Env:    common,
				Tables: readsQuery(data.Companies, data.Users, data.Accounts, data.Loans),
			},
			{
				Key: AdminBorrowersList, ID: "AdminBorrowersList", Source: "bebco-staging-admin-borrowers-list-borrowers-function",
				Env:    common,
				Tables: readsQuery(data.Companies, data.Users),
			},
			{
				Key: AdminBorrowersUpdate, ID: "AdminBorrowersUpdate", Source: "bebco-staging-admin-borrowers-update-borrower-function",
				Env:    common,
				Tables: writesQuery(data.Companies, data.Users),
			},
			{
				Key: AdminBorrowersSummary, ID: "AdminBorrowersSummary", Source: "bebco-staging-admin-borrowers-get-borrower-summary-function",
				Env:    common,
				Tables: readsQuery(data.Companies, data.Loans, data.Accounts),
			},
			{
				Key: AdminBorrowersTransactions, ID: "AdminBorrowersTransactions", Source: "bebco-staging-admin-borrowers-get-borrower-transactions-function",
				Env:    env(common, map[string]string{"FORCE_UPDATE": "gsi-refresh-loannumber-v2"}),
				Tables: readsQuery(data.Transactions, data.Accounts, data.Companies, data.Loans),
			},
			{
				Key: AdminBorrowerSettings, ID: "AdminBorrowerSettings", Source: "bebco-staging-admin-borrower-settings",
				Env:    common,
				Tables: writesQuery(data.Companies),
			},

			// borrowers API
			{
				Key: BorrowersAPIList, ID: "BorrowersApiListBorrowers", Source: "bebco-borrowers-api-listBorrowers",
				Env:    env(common, map[string]string{"DESCRIPTION": "List borrowers for the borrowers GraphQL API"}),
				Tables: readsQuery(data.Companies, data.Loans),
			},
			{
				Key: BorrowersAPIFinancialOverview, ID: "BorrowersApiGetFinancialOverview", Source: "bebco-borrowers-api-getFinancialOverview",
				Env:    common,
				Tables: readsQuery(data.Companies, data.Accounts, data.Transactions, data.Loans),
			},
			{
				Key: BorrowersAPIBatchFinancialOverviews, ID: "BorrowersApiBatchGetFinancialOverviews", Source: "bebco-borrowers-api-batchGetFinancialOverviews",
				Env:    env(common, map[string]string{"FORCE_UPDATE": "iam-refresh-20251028"}),
				Tables: readsQuery(data.Companies, data.Accounts, data.Transactions, data.Loans),
				Policies: []awsiam.PolicyStatement{
					permissions.Statement(
						[]string{"dynamodb:Scan", "dynamodb:Query", "dynamodb:GetItem", "dynamodb:BatchGetItem", "dynamodb:DescribeTable"},
						permissions.TableArns(ctx.Region, ctx.Account, "bebco-borrower-staging-loans")...,
					),
				},
			},
		},
	}
}
