package queues

import (
	"bebco_infra/components/domains"
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Functions interface {
	Get(key domains.Key) (awslambda.IFunction, bool)
}

// Schedule is a cron rule that fires a single function.
type Schedule struct {
	ID          string
	Name        string
	Description string
	Function    domains.Key
	Cron        awsevents.CronOptions
}

// Schedules are in UTC.
var Schedules = []Schedule{
	{
		ID: "LambdaBackupSchedule", Name: "lambda-backup-schedule",
		Description: "Trigger Lambda backup function twice daily",
		Function:    domains.LambdaBackup,
		Cron:        awsevents.CronOptions{Minute: jsii.String("0"), Hour: jsii.String("6,18")},
	},
	{
		ID: "PortfolioParseDailyRule", Name: "portfolio-parse-daily",
		Description: "Trigger portfolio parse function daily at 9am UTC",
		Function:    domains.ExcelParser,
		Cron:        awsevents.CronOptions{Minute: jsii.String("0"), Hour: jsii.String("9")},
	},
	{
		ID: "PortfolioSyncDailyRule", Name: "portfolio-sync-daily",
		Description: "Trigger portfolio sync function daily at 8am UTC",
		Function:    domains.SharepointSyncPortfolio,
		Cron:        awsevents.CronOptions{Minute: jsii.String("0"), Hour: jsii.String("8")},
	},
	{
		ID: "NachaDailyRule", Name: "nacha-daily-4pm-est",
		Description: "Trigger NACHA ACH service daily at 4pm EST (8pm UTC)",
		Function:    domains.PaymentsAchBatches,
		Cron:        awsevents.CronOptions{Minute: jsii.String("0"), Hour: jsii.String("20")},
	},
	{
		ID: "GenerateMonthlyStatementsRule", Name: "generate-monthly-statements",
		Description: "Generate monthly statements on 1st of each month",
		Function:    domains.GeneratePlaidMonthlyStatement,
		Cron:        awsevents.CronOptions{Minute: jsii.String("15"), Hour: jsii.String("10"), Day: jsii.String("1")},
	},
	{
		ID: "MonthlyReportsSchedulerRule", Name: "monthly-reports-scheduler",
		Description: "Trigger monthly reports scheduler on 1st of each month",
		Function:    domains.MonthlyReportsScheduler,
		Cron:        awsevents.CronOptions{Minute: jsii.String("5"), Hour: jsii.String("10"), Day: jsii.String("1")},
	},
	{
		ID: "PlaidDailySyncRule", Name: "plaid-daily-sync",
		Description: "Trigger Plaid daily sync function at 10am UTC",
		Function:    domains.PlaidDailySync,
		Cron:        awsevents.CronOptions{Minute: jsii.String("0"), Hour: jsii.String("10")},
	},
}

type Props struct {
	Names           *naming.ResourceNames
	Functions       Functions
	TextractResults awssns.ITopic
}

type Queues struct {
	DocumentOcrDlq     awssqs.Queue
	DocumentOcr        awssqs.Queue
	PlaidSyncDlqFifo   awssqs.Queue
	PlaidSyncFifo      awssqs.Queue
	PlaidSync          awssqs.Queue
	BackupNotification awssns.Topic
	TextractResults    awssns.ITopic
	// Rules holds the schedules whose function is deployed, keyed by Schedule.ID.
	Rules map[string]awsevents.Rule
}

func NewQueues(stack constructs.Construct, props Props) *Queues {
	names := props.Names
	q := &Queues{TextractResults: props.TextractResults, Rules: map[string]awsevents.Rule{}}

	// OCRキュー
	q.DocumentOcrDlq = awssqs.NewQueue(stack, jsii.String("DocumentOcrDlq"), &awssqs.QueueProps{
		QueueName:         jsii.String(names.Queue("document", "ocr-dlq")),
		RetentionPeriod:   awscdk.Duration_Days(jsii.Number(14)),
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(300)),
	})
	q.DocumentOcr = awssqs.NewQueue(stack, jsii.String("DocumentOcrQueue"), &awssqs.QueueProps{
		QueueName:         jsii.String(names.Queue("document", "ocr-queue")),
		RetentionPeriod:   awscdk.Duration_Days(jsii.Number(14)),
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(300)),
		DeadLetterQueue: &awssqs.DeadLetterQueue{
			Queue:           q.DocumentOcrDlq,
			MaxReceiveCount: jsii.Number(3),
		},
	})

	// Plaid同期キュー
	q.PlaidSyncDlqFifo = awssqs.NewQueue(stack, jsii.String("PlaidSyncDlqFifo"), &awssqs.QueueProps{
		QueueName:                 jsii.String(names.QueueFifo("plaid", "transactions-sync-dlq")),
		Fifo:                      jsii.Bool(true),
		ContentBasedDeduplication: jsii.Bool(true),
		RetentionPeriod:           awscdk.Duration_Days(jsii.Number(14)),
		VisibilityTimeout:         awscdk.Duration_Seconds(jsii.Number(300)),
	})
	q.PlaidSyncFifo = awssqs.NewQueue(stack, jsii.String("PlaidSyncFifoQueue"), &awssqs.QueueProps{
		QueueName:                 jsii.String(names.QueueFifo("plaid", "transactions-sync-fifo")),
		Fifo:                      jsii.Bool(true),
		ContentBasedDeduplication: jsii.Bool(true),
		RetentionPeriod:           awscdk.Duration_Days(jsii.Number(4)),
		VisibilityTimeout:         awscdk.Duration_Seconds(jsii.Number(300)),
		DeadLetterQueue: &awssqs.DeadLetterQueue{
			Queue:           q.PlaidSyncDlqFifo,
			MaxReceiveCount: jsii.Number(3),
		},
	})
	q.PlaidSync = awssqs.NewQueue(stack, jsii.String("PlaidSyncQueue"), &awssqs.QueueProps{
		QueueName:         jsii.String(names.Queue("plaid", "transactions-sync")),
		RetentionPeriod:   awscdk.Duration_Days(jsii.Number(4)),
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(300)),
	})

	q.BackupNotification = awssns.NewTopic(stack, jsii.String("BackupNotificationsTopic"), &awssns.TopicProps{
		TopicName:   jsii.String(names.Topic("backup-notifications")),
		DisplayName: jsii.String("BEBCO Backup Notifications"),
	})

	// EventBridgeスケジュール
	for _, s := range Schedules {
		fn, ok := props.Functions.Get(s.Function)
		if !ok {
			continue
		}
		cron := s.Cron
		q.Rules[s.ID] = awsevents.NewRule(stack, jsii.String(s.ID), &awsevents.RuleProps{
			RuleName:    jsii.String(names.EventRule(s.Name)),
			Description: jsii.String(s.Description),
			Schedule:    awsevents.Schedule_Cron(&cron),
			Targets:     &[]awsevents.IRuleTarget{awseventstargets.NewLambdaFunction(fn, nil)},
		})
	}

	awscdk.NewCfnOutput(stack, jsii.String("DocumentOcrQueueUrl"), &awscdk.CfnOutputProps{
		Value:       q.DocumentOcr.QueueUrl(),
		Description: jsii.String("Document OCR Queue URL"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("PlaidSyncFifoQueueUrl"), &awscdk.CfnOutputProps{
		Value:       q.PlaidSyncFifo.QueueUrl(),
		Description: jsii.String("Plaid Transactions Sync FIFO Queue URL"),
	})

	return q
}
