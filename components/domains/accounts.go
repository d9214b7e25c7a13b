package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/jsii-runtime-go"
)

var textractActions = []string{
	"textract:StartDocumentAnalysis",
	"textract:StartDocumentTextDetection",
	"textract:GetDocumentAnalysis",
	"textract:GetDocumentTextDetection",
}

func Accounts(ctx *Context) Domain {
	common := map[string]string{
		"REGION":              ctx.Region,
		"ACCOUNTS_TABLE":      ctx.TableName(data.Accounts),
		"FILES_TABLE":         ctx.TableName(data.Files),
		"DOCUMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket),
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
		"IDENTITY_POOL_ID":    ctx.Auth.IdentityPoolID,
	}

	ocrEnv := map[string]string{
		"REGION":              ctx.Region,
		"DOCUMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket),
		"FILES_TABLE":         ctx.TableName(data.Files),
	}
	processOcr := FunctionSpec{
		Key: AccountsProcessOcr, ID: "AccountsProcessOcr", Source: "bebco-staging-accounts-process-ocr",
		Env:     env(ocrEnv),
		Tables:  writesQuery(data.Files),
		Buckets: readWriteBucket(DocumentsBucket),
		Policies: []awsiam.PolicyStatement{
			permissions.Statement(textractActions, jsii.String("*")),
		},
	}
	// the resolvers fill these from config when no textract stack is wired
	if ctx.TextractRoleArn != "" {
		processOcr.Env["TEXTRACT_ROLE_ARN"] = ctx.TextractRoleArn
		processOcr.Policies = append(processOcr.Policies, permissions.Statement([]string{"iam:PassRole"}, jsii.String(ctx.TextractRoleArn)))
	}
	if ctx.TextractTopicArn != "" {
		processOcr.Env["OCR_RESULTS_TOPIC_ARN"] = ctx.TextractTopicArn
	}
	if ctx.TextractTopic != nil {
		processOcr.Topics = []awssns.ITopic{ctx.TextractTopic}
	}

	return Domain{
		Name: "Accounts",
		Functions: []FunctionSpec{
			{
				Key: AccountTransactionCounts, ID: "AccountTransactionCounts", Source: "bebco-staging-account-transaction-counts",
				Env: map[string]string{
					"REGION":             ctx.Region,
					"TRANSACTIONS_TABLE": ctx.TableName(data.Transactions),
				},
				Tables: readsQuery(data.Transactions),
			},
			{
				Key: AccountsUploadStatement, ID: "AccountsUploadStatement", Source: "bebco-staging-accounts-upload-statement",
				Env:     env(common, map[string]string{"MONTHLY_REPORTS_TABLE": ctx.TableName(data.MonthlyReportings)}),
				Tables:  join(writesQuery(data.Accounts, data.Files), readsQuery(data.MonthlyReportings)),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{
				Key: AccountsGet, ID: "AccountsGet", Source: "bebco-staging-accounts-get",
				Env:     common,
				Tables:  readsQuery(data.Accounts, data.Files),
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: AccountsOcrResults, ID: "AccountsOcrResults", Source: "bebco-staging-accounts-ocr-results",
				Env:     ocrEnv,
				Tables:  writesQuery(data.Files),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{
				Key: AdminAccountStatementsDownload, ID: "AdminAccountStatementsDownload", Source: "bebco-borrower-staging-admin-account-statements-download",
				Env: map[string]string{
					"REGION":           ctx.Region,
					"DOCUMENTS_BUCKET": ctx.BucketName(DocumentsBucket),
				},
				Buckets: readBucket(DocumentsBucket),
			},
			processOcr,
			{
				Key: AccountsCreate, ID: "AccountsCreate", Source: "bebco-staging-accounts-create",
				Env:     common,
				Tables:  writesQuery(data.Accounts, data.Files),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{
				Key: KnownAccounts, ID: "KnownAccounts", Source: "bebcoborroweradmin-known-accounts-staging",
				Env: map[string]string{
					"REGION":     ctx.Region,
					"TABLE_NAME": ctx.TableName(data.Accounts),
				},
				Tables: readsQuery(data.Accounts),
			},
			{
				Key: AccountsList, ID: "AccountsList", Source: "bebco-staging-accounts-list",
				Env:     env(common, map[string]string{"DYNAMODB_TABLE": ctx.TableName(data.LoanLoc)}),
				Tables:  readsQuery(data.Accounts, data.Files, data.LoanLoc),
				Buckets: readBucket(DocumentsBucket),
			},
		},
		Outputs: []Output{
			{ID: "AccountsCreateArn", Key: AccountsCreate, Description: "ARN of the Accounts Create function"},
			{ID: "AccountsGetArn", Key: AccountsGet, Description: "ARN of the Accounts Get function"},
		},
	}
}
