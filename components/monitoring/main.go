package monitoring

import (
	"fmt"

	"bebco_infra/components/domains"
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Functions interface {
	Get(key domains.Key) (awslambda.IFunction, bool)
}

// CriticalFunctions get a log group with one month retention.
var CriticalFunctions = []domains.Key{
	domains.LambdaBackup,
	domains.PlaidDailySync,
	domains.MonthlyReportsScheduler,
	domains.PaymentsAchBatches,
}

type DashboardGroup struct {
	Name      string
	Functions []domains.Key
}

var DashboardGroups = []DashboardGroup{
	{Name: "Plaid", Functions: []domains.Key{domains.PlaidLinkTokenCreate, domains.PlaidWebhookHandler, domains.PlaidDailySync}},
	{Name: "Payments", Functions: []domains.Key{domains.PaymentsCreate, domains.PaymentsAchBatches}},
	{Name: "Users", Functions: []domains.Key{domains.UsersCreate, domains.UsersList, domains.UsersUpdate}},
}

type Props struct {
	Names     *naming.ResourceNames
	Functions Functions
}

type Monitoring struct {
	LogGroups map[domains.Key]awslogs.LogGroup
	Alarms    []awscloudwatch.Alarm
	Dashboard awscloudwatch.Dashboard
}

func NewMonitoring(stack constructs.Construct, props Props) *Monitoring {
	m := &Monitoring{LogGroups: map[domains.Key]awslogs.LogGroup{}}
	dashboardName := props.Names.Dashboard("overview")

	// ロググループ
	for _, key := range CriticalFunctions {
		fn, ok := props.Functions.Get(key)
		if !ok {
			continue
		}
		m.LogGroups[key] = awslogs.NewLogGroup(stack, jsii.String(string(key)+"LogGroup"), &awslogs.LogGroupProps{
			LogGroupName:  jsii.String(fmt.Sprintf("/aws/lambda/%s", *fn.FunctionName())),
			Retention:     awslogs.RetentionDays_ONE_MONTH,
			RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
		})
	}

	// バックアップ関数のアラーム
	if backup, ok := props.Functions.Get(domains.LambdaBackup); ok {
		m.Alarms = append(m.Alarms,
			awscloudwatch.NewAlarm(stack, jsii.String("LambdaBackupDurationAlarm"), &awscloudwatch.AlarmProps{
				AlarmName:          jsii.String(props.Names.Alarm("lambda-backup-function-duration")),
				AlarmDescription:   jsii.String("Alert when Lambda backup function duration exceeds threshold"),
				Metric:             backup.MetricDuration(&awscloudwatch.MetricOptions{Statistic: jsii.String("Average")}),
				Threshold:          jsii.Number(300000),
				EvaluationPeriods:  jsii.Number(1),
				ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_THRESHOLD,
				TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
			}),
			awscloudwatch.NewAlarm(stack, jsii.String("LambdaBackupErrorsAlarm"), &awscloudwatch.AlarmProps{
				AlarmName:          jsii.String(props.Names.Alarm("lambda-backup-function-errors")),
				AlarmDescription:   jsii.String("Alert when Lambda backup function has errors"),
				Metric:             backup.MetricErrors(&awscloudwatch.MetricOptions{Statistic: jsii.String("Sum")}),
				Threshold:          jsii.Number(1),
				EvaluationPeriods:  jsii.Number(1),
				ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_OR_EQUAL_TO_THRESHOLD,
				TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
			}),
		)
	}

	// ダッシュボード
	m.Dashboard = awscloudwatch.NewDashboard(stack, jsii.String("BebcoDashboard"), &awscloudwatch.DashboardProps{
		DashboardName: jsii.String(dashboardName),
	})
	var widgets []awscloudwatch.IWidget
	for _, group := range DashboardGroups {
		var metrics []awscloudwatch.IMetric
		for _, key := range group.Functions {
			fn, ok := props.Functions.Get(key)
			if !ok {
				continue
			}
			metrics = append(metrics, fn.MetricInvocations(&awscloudwatch.MetricOptions{
				Label:     jsii.String(string(key)),
				Statistic: jsii.String("Sum"),
			}))
		}
		if len(metrics) == 0 {
			continue
		}
		widgets = append(widgets, awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title:  jsii.String(group.Name + " - Lambda Invocations"),
			Left:   &metrics,
			Width:  jsii.Number(12),
			Height: jsii.Number(6),
		}))
	}
	if len(widgets) > 0 {
		m.Dashboard.AddWidgets(widgets...)
	}

	awscdk.NewCfnOutput(stack, jsii.String("DashboardUrl"), &awscdk.CfnOutputProps{
		Value: jsii.String(fmt.Sprintf("https://console.aws.amazon.com/cloudwatch/home?region=%s#dashboards:name=%s",
			props.Names.Region(), dashboardName)),
		Description: jsii.String("CloudWatch Dashboard URL"),
	})

	return m
}
