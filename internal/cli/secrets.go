package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

var ErrSecretsMissing = errors.New("integration secrets missing")

type SecretsCmd struct {
	Verify SecretsVerifyCmd `cmd:"" help:"Check the integration secrets exist"`
}

type SecretStatus struct {
	Integration string `json:"integration" yaml:"integration"`
	Name        string `json:"name" yaml:"name"`
	Found       bool   `json:"found" yaml:"found"`
	ARN         string `json:"arn,omitempty" yaml:"arn,omitempty"`
}

type SecretsVerifyCmd struct{}

func (c *SecretsVerifyCmd) Run(env *Env) error {
	ctx := context.Background()
	clients, err := env.Clients(ctx)
	if err != nil {
		return err
	}

	var statuses []SecretStatus
	missing := 0
	for _, s := range integrationSecrets(env) {
		out, err := clients.Secrets.DescribeSecret(ctx, &secretsmanager.DescribeSecretInput{SecretId: aws.String(s.Name)})
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if !errors.As(err, &notFound) {
				return fmt.Errorf("describe secret %s: %w", s.Name, err)
			}
			missing++
		} else {
			s.Found = true
			s.ARN = aws.ToString(out.ARN)
		}
		statuses = append(statuses, s)
	}

	t := Table{Headers: []string{"INTEGRATION", "SECRET", "FOUND"}, Data: statuses}
	for _, s := range statuses {
		t.Rows = append(t.Rows, []string{s.Integration, s.Name, fmt.Sprint(s.Found)})
	}
	if err := env.Print(t); err != nil {
		return err
	}
	if missing > 0 {
		return fmt.Errorf("%w: %d", ErrSecretsMissing, missing)
	}
	return nil
}

func integrationSecrets(env *Env) []SecretStatus {
	i := env.Config.Integrations
	var out []SecretStatus
	for _, s := range []SecretStatus{
		{Integration: "docusign", Name: i.DocusignSecretName},
		{Integration: "docusign-legacy", Name: i.DocusignLegacySecretName},
		{Integration: "sharepoint", Name: i.SharepointSecretName},
		{Integration: "sendgrid", Name: i.SendgridSecretName},
	} {
		if s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}
