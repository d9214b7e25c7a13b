package main

import (
	"bebco_infra/components/config"
	"bebco_infra/components/packages"
	"bebco_infra/internal/logging"
	"bebco_infra/stacks"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

/*
起動コマンド

cdk deploy --all \
  --context environment=${environment:-dev} \
  --context region=${region:-us-east-2} \
  --context apiSource=${api_source:-generated}
*/

func main() {
	defer jsii.Close()

	// 環境変数読み込み
	godotenv.Load()

	logger := logging.New()
	app := awscdk.NewApp(nil)

	cfg, err := config.NewLoader(".", logger).LoadFromContext(app.Node())
	if err != nil {
		logger.WithError(err).Fatal("load environment configuration")
	}

	repo := packages.NewRepository(".")
	missing, err := repo.Missing()
	if err != nil {
		logger.WithError(err).Fatal("read lambda package manifest")
	}
	if len(missing) > 0 {
		logger.WithField("missing", len(missing)).Warn("lambda packages missing, run `bebcoctl packages download`")
	}

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"region":      cfg.Region,
		"account":     cfg.Account,
	}).Info("Deploying Bebco Infrastructure")

	apiSource, _ := app.Node().TryGetContext(jsii.String("apiSource")).(string)
	stacks.New(app, stacks.Options{
		Config:    cfg,
		Manifest:  repo,
		BaseDir:   ".",
		APISource: apiSource,
		Logger:    logger,
	})

	app.Synth(nil)
}
