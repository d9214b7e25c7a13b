package stacks

import (
	"bebco_infra/components/domains"
	"bebco_infra/components/monitoring"
	"bebco_infra/components/queues"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

type OperationsProps struct {
	Props
	Functions *domains.Registry
	Owners    map[domains.Key]awscdk.Stack
}

type QueuesStack struct {
	awscdk.Stack
	Queues *queues.Queues
}

func NewQueuesStack(scope constructs.Construct, id string, props OperationsProps, shared *SharedServicesStack) *QueuesStack {
	stack := newStack(scope, id, props.Props, "SQS queues, SNS topics and EventBridge schedules")

	q := queues.NewQueues(stack, queues.Props{
		Names:           props.Config.ResourceNames(),
		Functions:       props.Functions,
		TextractResults: shared.Textract.ResultsTopic,
	})

	stack.AddDependency(shared.Stack, nil)
	var keys []domains.Key
	for _, s := range queues.Schedules {
		keys = append(keys, s.Function)
	}
	addOwnerDependencies(stack, props.Owners, keys)

	return &QueuesStack{Stack: stack, Queues: q}
}

type MonitoringStack struct {
	awscdk.Stack
	Monitoring *monitoring.Monitoring
}

func NewMonitoringStack(scope constructs.Construct, id string, props OperationsProps) *MonitoringStack {
	stack := newStack(scope, id, props.Props, "CloudWatch log groups, alarms and dashboard")

	m := monitoring.NewMonitoring(stack, monitoring.Props{
		Names:     props.Config.ResourceNames(),
		Functions: props.Functions,
	})

	keys := append([]domains.Key(nil), monitoring.CriticalFunctions...)
	for _, group := range monitoring.DashboardGroups {
		keys = append(keys, group.Functions...)
	}
	addOwnerDependencies(stack, props.Owners, keys)

	return &MonitoringStack{Stack: stack, Monitoring: m}
}
