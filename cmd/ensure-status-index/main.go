package main

import (
	"context"

	"bebco_infra/internal/logging"
	"bebco_infra/internal/statusindex"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func main() {
	logger := logging.New()

	cfg, err := statusindex.Load()
	if err != nil {
		logger.WithError(err).Fatal("load configuration")
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("load AWS config")
	}

	handler := statusindex.NewHandler(dynamodb.NewFromConfig(awsCfg), *cfg, logger)
	lambda.Start(handler.Handle)
}
