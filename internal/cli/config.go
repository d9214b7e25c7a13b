package cli

import (
	"strconv"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Print the loaded environment configuration"`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(env *Env) error {
	cfg := env.Config
	t := Table{Headers: []string{"KEY", "VALUE"}, Data: cfg}
	t.Rows = [][]string{
		{"environment", cfg.Environment},
		{"region", cfg.Region},
		{"account", cfg.Account},
		{"suffix", cfg.Suffix()},
		{"stackPrefix", cfg.StackPrefix},
		{"userPool", cfg.Cognito.UserPoolName},
		{"plaidEnvironment", cfg.Integrations.PlaidEnvironment},
		{"lambdaRuntime", cfg.LambdaDefaults.Runtime},
		{"lambdaTimeout", strconv.Itoa(cfg.LambdaDefaults.Timeout)},
		{"lambdaMemorySize", strconv.Itoa(cfg.LambdaDefaults.MemorySize)},
	}
	return env.Print(t)
}
