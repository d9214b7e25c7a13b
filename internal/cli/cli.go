// Package cli implements bebcoctl, the operator CLI for the bebco
// infrastructure repository.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"bebco_infra/components/config"
	"bebco_infra/components/packages"
	"bebco_infra/internal/logging"

	"github.com/alecthomas/kong"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoDBAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type SecretsAPI interface {
	DescribeSecret(ctx context.Context, params *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error)
}

type Clients struct {
	S3       S3API
	DynamoDB DynamoDBAPI
	Secrets  SecretsAPI
}

// Dependencies are injected so commands can run against fakes.
type Dependencies struct {
	Out        io.Writer
	Logger     logrus.FieldLogger
	NewClients func(ctx context.Context, region string) (*Clients, error)
}

type CLI struct {
	Environment string `short:"e" env:"BEBCO_ENVIRONMENT" default:"dev" help:"Environment name"`
	Region      string `short:"r" env:"BEBCO_REGION" default:"us-east-2" help:"AWS region"`
	BaseDir     string `name:"base-dir" default:"." help:"Repository root"`
	EnvFile     string `name:"env-file" help:"Path to .env file"`
	Output      string `short:"o" enum:"table,json,yaml" default:"table" help:"Output format (table, json, yaml)"`

	Names    NamesCmd    `cmd:"" help:"Print physical resource names"`
	Packages PackagesCmd `cmd:"" help:"Inspect and fetch Lambda packages"`
	Tables   TablesCmd   `cmd:"" help:"Inspect DynamoDB tables"`
	Secrets  SecretsCmd  `cmd:"" help:"Check integration secrets"`
	Config   ConfigCmd   `cmd:"" help:"Show environment configuration"`
}

// Env is what every command runs against.
type Env struct {
	CLI      *CLI
	Config   *config.EnvironmentConfig
	Packages *packages.Repository
	Out      io.Writer
	Logger   logrus.FieldLogger
	deps     Dependencies
}

func (e *Env) Clients(ctx context.Context) (*Clients, error) {
	if e.deps.NewClients == nil {
		return nil, fmt.Errorf("no AWS clients configured")
	}
	return e.deps.NewClients(ctx, e.Config.Region)
}

// Run parses args and executes the selected command. Returns the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.New()
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("bebcoctl"),
		kong.Description("Operator tooling for the bebco infrastructure."),
		kong.Writers(out, out),
	)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	// AWS_PROFILE などSDK向けの環境変数読み込み
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			logger.WithError(err).Warnf("failed to load env file %s", cli.EnvFile)
		}
	}

	cfg, err := config.NewLoader(cli.BaseDir, logger).Load(cli.Environment, cli.Region)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	env := &Env{
		CLI:      &cli,
		Config:   cfg,
		Packages: packages.NewRepository(cli.BaseDir),
		Out:      out,
		Logger:   logger,
		deps:     deps,
	}
	if err := ctx.Run(env); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	return 0
}
