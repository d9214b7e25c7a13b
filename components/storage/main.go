package storage

import (
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Storage struct {
	Documents         awss3.Bucket
	Statements        awss3.Bucket
	ChangeTracking    awss3.Bucket
	LambdaDeployments awss3.Bucket
}

func NewStorage(stack constructs.Construct, names *naming.ResourceNames) *Storage {
	documents := awss3.NewBucket(stack, jsii.String("DocumentsBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(names.Bucket("borrower-documents")),
		Versioned:         jsii.Bool(true),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
		LifecycleRules: &[]*awss3.LifecycleRule{
			{NoncurrentVersionExpiration: awscdk.Duration_Days(jsii.Number(90))},
		},
		Cors: &[]*awss3.CorsRule{
			{
				AllowedMethods: &[]awss3.HttpMethods{
					awss3.HttpMethods_GET,
					awss3.HttpMethods_PUT,
					awss3.HttpMethods_POST,
					awss3.HttpMethods_DELETE,
				},
				AllowedOrigins: jsii.Strings("*"),
				AllowedHeaders: jsii.Strings("*"),
				MaxAge:         jsii.Number(3000),
			},
		},
	})

	// 明細書は7年保管
	statements := awss3.NewBucket(stack, jsii.String("StatementsBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(names.Bucket("borrower-statements")),
		Versioned:         jsii.Bool(false),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
		LifecycleRules: &[]*awss3.LifecycleRule{
			{Expiration: awscdk.Duration_Days(jsii.Number(2555))},
		},
	})

	changeTracking := awss3.NewBucket(stack, jsii.String("ChangeTrackingBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(names.Bucket("change-tracking")),
		Versioned:         jsii.Bool(false),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
	})

	// bebcoctl packages download reads from here
	lambdaDeployments := awss3.NewBucket(stack, jsii.String("LambdaDeploymentsBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(names.Bucket("lambda-deployments")),
		Versioned:         jsii.Bool(true),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
		LifecycleRules: &[]*awss3.LifecycleRule{
			{NoncurrentVersionExpiration: awscdk.Duration_Days(jsii.Number(30))},
		},
	})

	awscdk.NewCfnOutput(stack, jsii.String("DocumentsBucketName"), &awscdk.CfnOutputProps{
		Value:       documents.BucketName(),
		Description: jsii.String("Documents S3 Bucket Name"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("StatementsBucketName"), &awscdk.CfnOutputProps{
		Value:       statements.BucketName(),
		Description: jsii.String("Statements S3 Bucket Name"),
	})

	return &Storage{
		Documents:         documents,
		Statements:        statements,
		ChangeTracking:    changeTracking,
		LambdaDeployments: lambdaDeployments,
	}
}
