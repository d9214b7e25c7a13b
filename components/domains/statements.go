package domains

import "bebco_infra/components/data"

func Statements(ctx *Context) Domain {
	common := map[string]string{
		"REGION":                ctx.Region,
		"MONTHLY_REPORTS_TABLE": ctx.TableName(data.MonthlyReportings),
		"ACCOUNTS_TABLE":        ctx.TableName(data.Accounts),
		"DOCUMENTS_S3_BUCKET":   ctx.BucketName(DocumentsBucket),
		"STATEMENTS_S3_BUCKET":  ctx.BucketName(StatementsBucket),
	}
	return Domain{
		Name: "Statements",
		Functions: []FunctionSpec{
			{
				Key: AdminListStatements, ID: "AdminListStatements", Source: "bebco-staging-admin-list-statements",
				Env:     common,
				Tables:  reads(data.MonthlyReportings),
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: AdminUploadStatements, ID: "AdminUploadStatements", Source: "bebco-staging-admin-upload-statements",
				Env:     common,
				Tables:  writes(data.MonthlyReportings),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{
				Key: StatementsFinancials, ID: "StatementsFinancials", Source: "bebco-staging-statements-financials",
				Env:    common,
				Tables: reads(data.MonthlyReportings, data.Accounts),
			},
			{
				Key: StatementsGetURL, ID: "StatementsGetUrl", Source: "bebco-staging-statements-get-url",
				Env:     common,
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: StatementsStreamPublisher, ID: "StatementsStreamPublisher", Source: "bebco-statements-stream-publisher",
				Env:    common,
				Tables: streams(data.MonthlyReportings),
			},
		},
	}
}
