package shared

import (
	"errors"

	"bebco_infra/components/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

var (
	ErrTextractConfig  = errors.New("textract configuration is required to provision shared services")
	ErrDocumentsBucket = errors.New("documents bucket is required to configure Textract integrations")
)

type Textract struct {
	Role         awsiam.IRole
	ResultsTopic awssns.ITopic
}

// NewTextract imports the role and topic when ARNs are configured and creates
// them otherwise.
func NewTextract(stack constructs.Construct, cfg *config.EnvironmentConfig, documents awss3.IBucket) (*Textract, error) {
	if cfg.Textract.RoleName == "" && cfg.Textract.RoleArn == "" {
		return nil, ErrTextractConfig
	}
	if documents == nil {
		return nil, ErrDocumentsBucket
	}
	names := cfg.ResourceNames()

	// SNSトピック
	var topic awssns.ITopic
	if cfg.Textract.SNSTopicArn != "" {
		topic = awssns.Topic_FromTopicArn(stack, jsii.String("TextractResultsTopic"), jsii.String(cfg.Textract.SNSTopicArn))
	} else {
		topic = awssns.NewTopic(stack, jsii.String("TextractResultsTopic"), &awssns.TopicProps{
			TopicName:   jsii.String(names.Topic(cfg.Textract.SNSTopicName)),
			DisplayName: jsii.String("BEBCO Textract Results"),
		})
	}

	// Textract用IAMロール
	var role awsiam.IRole
	if cfg.Textract.RoleArn != "" {
		role = awsiam.Role_FromRoleArn(stack, jsii.String("TextractRole"), jsii.String(cfg.Textract.RoleArn), &awsiam.FromRoleArnOptions{
			Mutable: jsii.Bool(true),
		})
	} else {
		role = awsiam.NewRole(stack, jsii.String("TextractRole"), &awsiam.RoleProps{
			RoleName:    jsii.String(names.IAMRole(cfg.Textract.RoleName)),
			AssumedBy:   awsiam.NewServicePrincipal(jsii.String("textract.amazonaws.com"), nil),
			Description: jsii.String("Role assumed by Textract to process borrower documents and publish SNS notifications."),
		})
	}

	documents.GrantReadWrite(role, nil)
	role.AddToPrincipalPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("s3:ListBucket"),
		Resources: &[]*string{documents.BucketArn()},
	}))
	topic.GrantPublish(role)

	awscdk.NewCfnOutput(stack, jsii.String("TextractResultsTopicArn"), &awscdk.CfnOutputProps{
		Value:       topic.TopicArn(),
		Description: jsii.String("SNS topic ARN for Textract job completion notifications."),
	})
	awscdk.NewCfnOutput(stack, jsii.String("TextractRoleArn"), &awscdk.CfnOutputProps{
		Value:       role.RoleArn(),
		Description: jsii.String("IAM role used by Textract asynchronous jobs."),
	})

	return &Textract{Role: role, ResultsTopic: topic}, nil
}
