package main

import (
	"bebco_infra/components/config"
	"bebco_infra/internal/logging"
	"bebco_infra/stacks"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/joho/godotenv"
)

// cdk deploy --app "go run ./cmd/data_only" --context environment=jaspal
func main() {
	defer jsii.Close()

	godotenv.Load()

	logger := logging.New()
	app := awscdk.NewApp(nil)

	cfg, err := config.NewLoader(".", logger).LoadFromContext(app.Node())
	if err != nil {
		logger.WithError(err).Fatal("load environment configuration")
	}

	stacks.NewDataStack(app, "BebcoDataStack-"+cfg.Suffix(), stacks.Props{Config: cfg})

	app.Synth(nil)
}
