package cli

import (
	"fmt"
	"strings"
	"text/template"

	"bebco_infra/components/config"
	"bebco_infra/components/data"
	"bebco_infra/components/naming"

	"github.com/Masterminds/sprig/v3"
)

type NamesCmd struct {
	Template string `short:"t" help:"Go template rendered with .Names and .Config (sprig functions available)"`
}

type namesData struct {
	Names  *naming.ResourceNames
	Config *config.EnvironmentConfig
}

type resourceName struct {
	Kind string `json:"kind" yaml:"kind"`
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

func (c *NamesCmd) Run(env *Env) error {
	names := env.Config.ResourceNames()
	if c.Template != "" {
		out, err := renderNames(c.Template, namesData{Names: names, Config: env.Config})
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, out)
		return nil
	}

	list := ResourceNames(env.Config)
	t := Table{Headers: []string{"KIND", "KEY", "NAME"}, Data: list}
	for _, n := range list {
		t.Rows = append(t.Rows, []string{n.Kind, n.Key, n.Name})
	}
	return env.Print(t)
}

func renderNames(text string, d namesData) (string, error) {
	tmpl, err := template.New("names").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return b.String(), nil
}

// ResourceNames lists the physical names of the shared resources.
func ResourceNames(cfg *config.EnvironmentConfig) []resourceName {
	n := cfg.ResourceNames()
	out := []resourceName{
		{"cognito", "userPool", n.UserPool()},
		{"iam", "textractRole", n.IAMRole(cfg.Textract.RoleName)},
		{"sns", "textractResults", n.Topic(cfg.Textract.SNSTopicName)},
	}
	for _, purpose := range []string{"borrower-documents", "borrower-statements", "change-tracking", "lambda-deployments"} {
		out = append(out, resourceName{"s3", purpose, n.Bucket(purpose)})
	}
	for _, spec := range data.Catalogue(cfg.Integrations.DocusignRequestsTableName) {
		out = append(out, resourceName{"dynamodb", string(spec.Key), n.Table(spec.Domain, spec.Name)})
	}
	return out
}
