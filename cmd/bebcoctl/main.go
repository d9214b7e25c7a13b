package main

import (
	"context"
	"os"

	"bebco_infra/internal/cli"
	"bebco_infra/internal/logging"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func main() {
	deps := cli.Dependencies{
		Out:    os.Stdout,
		Logger: logging.New(),
		NewClients: func(ctx context.Context, region string) (*cli.Clients, error) {
			cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
			if err != nil {
				return nil, err
			}
			return &cli.Clients{
				S3:       s3.NewFromConfig(cfg),
				DynamoDB: dynamodb.NewFromConfig(cfg),
				Secrets:  secretsmanager.NewFromConfig(cfg),
			}, nil
		},
	}
	os.Exit(cli.Run(os.Args[1:], deps))
}
