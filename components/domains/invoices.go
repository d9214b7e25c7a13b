package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
)

func Invoices(ctx *Context) Domain {
	loans := ctx.TableName(data.Loans)
	common := map[string]string{
		"REGION":              ctx.Region,
		"INVOICES_TABLE":      ctx.TableName(data.Invoices),
		"COMPANIES_TABLE":     ctx.TableName(data.Companies),
		"DOCUMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket),
		"DYNAMODB_TABLE":      loans,
		"DYNAMODB_TABLE_NAME": loans,
		"TABLE_NAME":          loans,
	}

	return Domain{
		Name: "Invoices",
		Functions: []FunctionSpec{
			{Key: InvoicesCreate, ID: "InvoicesCreate", Source: "bebco-staging-invoices-create", Env: common, Tables: writesQuery(data.Invoices)},
			{Key: InvoicesGet, ID: "InvoicesGet", Source: "bebco-staging-invoices-get", Env: common, Tables: readsQuery(data.Invoices)},
			{
				Key: InvoicesList, ID: "InvoicesList", Source: "bebco-staging-invoices-list",
				Env:    common,
				Tables: readsQuery(data.Invoices, data.Companies),
				Policies: []awsiam.PolicyStatement{
					permissions.Statement([]string{"dynamodb:Scan", "dynamodb:GetItem", "dynamodb:Query"},
						permissions.TableArn(ctx.Region, ctx.Account, "bebco-borrower-staging-companies"),
						permissions.TableArn(ctx.Region, ctx.Account, "bebco-borrower-staging-loan-loc"),
					),
				},
			},
			{Key: InvoicesUpdate, ID: "InvoicesUpdate", Source: "bebco-staging-invoices-update", Env: common, Tables: writesQuery(data.Invoices)},
			{
				Key: InvoicesGenerateMonthly, ID: "InvoicesGenerateMonthly", Source: "bebco-staging-invoices-generate-monthly",
				Env:     common,
				Tables:  join(writesQuery(data.Invoices), readsQuery(data.Companies)),
				Buckets: readWriteBucket(DocumentsBucket),
			},
		},
	}
}
