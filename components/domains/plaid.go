package domains

import "bebco_infra/components/data"

func Plaid(ctx *Context) Domain {
	common := map[string]string{
		"REGION":             ctx.Region,
		"PLAID_CLIENT_ID":    ctx.Config.Integrations.PlaidClientID,
		"PLAID_ENVIRONMENT":  ctx.Config.Integrations.PlaidEnvironment,
		"ACCOUNTS_TABLE":     ctx.TableName(data.Accounts),
		"COMPANIES_TABLE":    ctx.TableName(data.Companies),
		"TRANSACTIONS_TABLE": ctx.TableName(data.Transactions),
		"PLAID_ITEMS_TABLE":  ctx.TableName(data.PlaidItems),
	}

	return Domain{
		Name: "Plaid",
		Functions: []FunctionSpec{
			{
				Key: PlaidLinkTokenCreate, ID: "PlaidLinkTokenCreate", Source: "bebco-staging-plaid-link-token-create",
				Env:    common,
				Tables: join(writesQuery(data.Accounts), readsQuery(data.Companies)),
			},
			{
				Key: PlaidTokenExchange, ID: "PlaidTokenExchange", Source: "bebco-staging-plaid-token-exchange",
				Env:    common,
				Tables: writesQuery(data.Accounts, data.PlaidItems),
			},
			{
				Key: PlaidAccountsPreview, ID: "PlaidAccountsPreview", Source: "bebco-staging-plaid-accounts-preview",
				Env:    common,
				Tables: readsQuery(data.Accounts, data.PlaidItems),
			},
			{
				Key: CreateAccountFromPlaid, ID: "CreateAccountFromPlaid", Source: "bebco-staging-create-account-from-plaid",
				Env:    common,
				Tables: join(writesQuery(data.Accounts, data.PlaidItems), readsQuery(data.Companies)),
			},
			{
				Key: PlaidTransactionsSync, ID: "PlaidTransactionsSync", Source: "bebco-staging-plaid-transactions-sync",
				Env:    common,
				Tables: join(writesQuery(data.Transactions), readsQuery(data.Accounts), writesQuery(data.PlaidItems)),
			},
			{
				Key: PlaidSyncManual, ID: "PlaidSyncManual", Source: "bebco-staging-plaid-sync-manual",
				Env:    common,
				Tables: join(writesQuery(data.Transactions), readsQuery(data.Accounts), writesQuery(data.PlaidItems)),
			},
			{
				Key: PlaidWebhookHandler, ID: "PlaidWebhookHandler", Source: "bebco-staging-plaid-webhook-handler",
				Env:    common,
				Tables: writesQuery(data.Accounts, data.PlaidItems, data.Transactions),
			},
			{
				Key: PlaidAccountTransactions, ID: "PlaidAccountTransactions", Source: "bebco-staging-plaid-account-transactions",
				Env:    common,
				Tables: readsQuery(data.Transactions, data.Accounts),
			},
			{
				Key: PlaidItemWebhookBulkUpdate, ID: "PlaidItemWebhookBulkUpdate", Source: "bebco-staging-plaid-item-webhook-bulk-update",
				Env:    common,
				Tables: writesQuery(data.PlaidItems),
			},
			{
				Key: PlaidDailySync, ID: "PlaidDailySync", Source: "bebcostaging-plaid-daily-sync",
				Env:    common,
				Tables: readsQuery(data.PlaidItems, data.Accounts),
			},
			{
				Key: GeneratePlaidMonthlyStatement, ID: "GeneratePlaidMonthlyStatement", Source: "bebcostaging-generate-plaid-monthly-account-statement",
				Env:     env(common, map[string]string{"STATEMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket)}),
				Tables:  readsQuery(data.Accounts, data.Transactions, data.PlaidItems),
				Buckets: readWriteBucket(DocumentsBucket),
			},
		},
		Outputs: []Output{
			{ID: "PlaidLinkTokenCreateArn", Key: PlaidLinkTokenCreate, Description: "Plaid Link Token Create Lambda ARN"},
			{ID: "PlaidWebhookHandlerArn", Key: PlaidWebhookHandler, Description: "Plaid Webhook Handler Lambda ARN"},
		},
	}
}
