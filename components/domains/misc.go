package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/jsii-runtime-go"
)

func Misc(ctx *Context) Domain {
	return Domain{
		Name: "Misc",
		Functions: []FunctionSpec{
			{
				Key: ChangeTracker, ID: "ChangeTracker", Source: "bebco-change-tracker",
				Env: map[string]string{
					"REGION":                 ctx.Region,
					"CHANGE_TRACKING_BUCKET": ctx.BucketName(ChangeTrackingBucket),
				},
				Tables:  streams(data.Keys()...),
				Buckets: readWriteBucket(ChangeTrackingBucket),
			},
			{
				Key: LambdaBackup, ID: "LambdaBackup", Source: "bebco-lambda-backup-function",
				Env: map[string]string{
					"REGION":        ctx.Region,
					"BACKUP_BUCKET": ctx.BucketName(LambdaDeploymentsBucket),
				},
				Buckets: []BucketGrant{{Bucket: LambdaDeploymentsBucket, Access: BucketWrite}},
				// バックアップ対象のコード取得
				Policies: []awsiam.PolicyStatement{
					permissions.Statement([]string{"lambda:ListFunctions", "lambda:GetFunction"}, jsii.String("*")),
				},
			},
			{
				Key: AdminNachaDownload, ID: "AdminNachaDownload", Source: "bebco-borrower-staging-admin-nacha-download",
				Env: map[string]string{
					"REGION":            ctx.Region,
					"PAYMENTS_TABLE":    ctx.TableName(data.Payments),
					"ACH_BATCHES_TABLE": ctx.TableName(data.AchBatches),
				},
				Tables: reads(data.Payments, data.AchBatches),
			},
		},
	}
}
