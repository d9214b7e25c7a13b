package stacks

import (
	"bebco_infra/components/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Props struct {
	awscdk.StackProps
	Config *config.EnvironmentConfig
}

// Env pins stacks to the configured account and region.
func Env(cfg *config.EnvironmentConfig) *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(cfg.Account),
		Region:  jsii.String(cfg.Region),
	}
}

func newStack(scope constructs.Construct, id string, props Props, description string) awscdk.Stack {
	sprops := props.StackProps
	if sprops.Env == nil {
		sprops.Env = Env(props.Config)
	}
	if sprops.Description == nil && description != "" {
		sprops.Description = jsii.String(description)
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	tags := awscdk.Tags_Of(stack)
	tags.Add(jsii.String("Project"), jsii.String("bebco"), nil)
	tags.Add(jsii.String("Environment"), jsii.String(props.Config.Environment), nil)
	tags.Add(jsii.String("ManagedBy"), jsii.String("CDK-v2"), nil)
	return stack
}
