package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
)

func Payments(ctx *Context) Domain {
	loans := ctx.TableName(data.Loans)
	common := map[string]string{
		"REGION":          ctx.Region,
		"MAX_PAGE_SIZE":   "1000",
		"PAYMENTS_TABLE":  ctx.TableName(data.Payments),
		"COMPANIES_TABLE": ctx.TableName(data.Companies),
		// packaged code still reads the loans table through these
		"DYNAMODB_TABLE":      loans,
		"DYNAMODB_TABLE_NAME": loans,
		"TABLE_NAME":          loans,
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
	}

	return Domain{
		Name: "Payments",
		Functions: []FunctionSpec{
			{Key: PaymentsCreate, ID: "PaymentsCreate", Source: "bebco-staging-payments-create", Env: common},
			{Key: PaymentsGet, ID: "PaymentsGet", Source: "bebco-staging-payments-get", Env: common},
			{
				Key: PaymentsList, ID: "PaymentsList", Source: "bebco-staging-payments-list",
				Env:    common,
				Tables: readsQuery(data.Payments, data.Companies),
				// TODO: drop once the payments-list package reads the suffixed tables
				Policies: []awsiam.PolicyStatement{
					permissions.Statement([]string{"dynamodb:Scan", "dynamodb:Query", "dynamodb:GetItem"},
						permissions.TableArn(ctx.Region, ctx.Account, "bebco-borrower-staging-loan-loc"),
						permissions.TableArn(ctx.Region, ctx.Account, "bebco-borrower-staging-payments"),
						permissions.TableArn(ctx.Region, ctx.Account, "bebco-borrower-staging-companies"),
					),
				},
			},
			{Key: PaymentsUpdate, ID: "PaymentsUpdate", Source: "bebco-borrower-staging-payments-update", Env: common},

			// ACH
			{Key: PaymentsAchBatches, ID: "PaymentsAchBatches", Source: "bebco-staging-payments-ach-batches", Env: common},
			{Key: PaymentsAchConsentCreate, ID: "PaymentsAchConsentCreate", Source: "bebco-staging-payments-ach-consent-create", Env: common},

			{Key: AdminPaymentsWaive, ID: "AdminPaymentsWaive", Source: "bebco-staging-admin-payments-waive", Env: common},
		},
		Outputs: []Output{
			{ID: "PaymentsCreateArn", Key: PaymentsCreate},
		},
	}
}
