package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bebco_infra/components/naming"

	"github.com/aws/jsii-runtime-go"
	"github.com/sirupsen/logrus"
)

const (
	DefaultEnvironment = "dev"
	DefaultRegion      = "us-east-2"
)

var ErrNotFound = errors.New("configuration file not found")

type EnvironmentConfig struct {
	Environment    string         `json:"environment"`
	Region         string         `json:"region"`
	Account        string         `json:"account"`
	StackPrefix    string         `json:"stackPrefix,omitempty"`
	Naming         Naming         `json:"naming"`
	Cognito        Cognito        `json:"cognito"`
	Domains        Domains        `json:"domains"`
	Integrations   Integrations   `json:"integrations"`
	Textract       Textract       `json:"textract"`
	LambdaDefaults LambdaDefaults `json:"lambdaDefaults"`
}

type Naming struct {
	Prefix            string `json:"prefix"`
	EnvironmentSuffix string `json:"environmentSuffix"`
}

type Cognito struct {
	UserPoolName   string         `json:"userPoolName"`
	PasswordPolicy PasswordPolicy `json:"passwordPolicy"`
}

type PasswordPolicy struct {
	MinLength        int  `json:"minLength"`
	RequireUppercase bool `json:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers"`
	RequireSymbols   bool `json:"requireSymbols"`
}

type Domains struct {
	API     string `json:"api"`
	GraphQL string `json:"graphql"`
}

// Integrations holds third-party settings. Empty strings mean "not set".
type Integrations struct {
	PlaidClientID             string `json:"plaidClientId"`
	PlaidEnvironment          string `json:"plaidEnvironment"`
	PlaidWebhookBaseURL       string `json:"plaidWebhookBaseUrl,omitempty"`
	PlaidSyncQueueName        string `json:"plaidSyncQueueName,omitempty"`
	PlaidSyncQueueFifoName    string `json:"plaidSyncQueueFifoName,omitempty"`
	PlaidSyncQueueDlqName     string `json:"plaidSyncQueueDlqName,omitempty"`
	PlaidSyncQueueDlqFifoName string `json:"plaidSyncQueueDlqFifoName,omitempty"`

	DocusignSecretName        string `json:"docusignSecretName"`
	DocusignLegacySecretName  string `json:"docusignLegacySecretName,omitempty"`
	DocusignHost              string `json:"docusignHost,omitempty"`
	DocusignRequestsTableName string `json:"docusignRequestsTableName,omitempty"`

	SharepointSecretName        string `json:"sharepointSecretName"`
	SharepointHost              string `json:"sharepointHost,omitempty"`
	SharepointSitePath          string `json:"sharepointSitePath,omitempty"`
	SharepointDriveName         string `json:"sharepointDriveName,omitempty"`
	SharepointTenantID          string `json:"sharepointTenantId,omitempty"`
	SharepointClientID          string `json:"sharepointClientId,omitempty"`
	SharepointPortReconFilePath string `json:"sharepointPortReconFilePath,omitempty"`
	SharepointS3Prefix          string `json:"sharepointS3Prefix,omitempty"`
	SharepointBankID            string `json:"sharepointBankId,omitempty"`

	SendgridSecretName  string `json:"sendgridSecretName"`
	SendgridFromAddress string `json:"sendgridFromAddress,omitempty"`
	SendgridAPIKeyID    string `json:"sendgridApiKeyId,omitempty"`
}

type Textract struct {
	RoleName     string `json:"roleName"`
	SNSTopicName string `json:"snsTopicName"`
	RoleArn      string `json:"roleArn,omitempty"`
	SNSTopicArn  string `json:"snsTopicArn,omitempty"`
}

type LambdaDefaults struct {
	Runtime    string `json:"runtime"`
	Timeout    int    `json:"timeout"`
	MemorySize int    `json:"memorySize"`
}

// Suffix is the environment suffix used in every physical name.
func (c *EnvironmentConfig) Suffix() string {
	if c.Naming.EnvironmentSuffix != "" {
		return c.Naming.EnvironmentSuffix
	}
	return c.Environment
}

func (c *EnvironmentConfig) ResourceNames() *naming.ResourceNames {
	return naming.New(c.Naming.Prefix, c.Suffix(), c.Region, c.Account)
}

// StackID qualifies a logical stack id with the configured stack prefix.
func (c *EnvironmentConfig) StackID(id string) string {
	if c.StackPrefix == "" {
		return id
	}
	return c.StackPrefix + "-" + id
}

// ContextReader is satisfied by constructs.Node.
type ContextReader interface {
	TryGetContext(key *string) interface{}
}

type Loader struct {
	// BaseDir is the repository root holding config/environments.
	BaseDir string
	Logger  logrus.FieldLogger
}

func NewLoader(baseDir string, logger logrus.FieldLogger) *Loader {
	return &Loader{BaseDir: baseDir, Logger: logger}
}

func (l *Loader) Path(environment, region string) string {
	return filepath.Join(l.BaseDir, "config", "environments", environment+"-"+region+".json")
}

// LoadFromContext resolves environment and region from CDK context, then
// BEBCO_ENVIRONMENT / BEBCO_REGION, then the defaults.
func (l *Loader) LoadFromContext(ctx ContextReader) (*EnvironmentConfig, error) {
	environment := contextString(ctx, "environment", "BEBCO_ENVIRONMENT", DefaultEnvironment)
	region := contextString(ctx, "region", "BEBCO_REGION", DefaultRegion)

	cfg, err := l.Load(environment, region)
	if err != nil {
		return nil, err
	}
	l.logger().Infof("Loaded configuration: %s @ %s", environment, region)
	return cfg, nil
}

func (l *Loader) Load(environment, region string) (*EnvironmentConfig, error) {
	path := l.Path(environment, region)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets ACCOUNT_ID and REGION (usually from .env) pin the deploy target.
func (l *Loader) applyEnv(cfg *EnvironmentConfig) {
	if v := os.Getenv("ACCOUNT_ID"); v != "" && v != cfg.Account {
		l.logger().WithField("account", v).Info("account overridden by ACCOUNT_ID")
		cfg.Account = v
	}
	if v := os.Getenv("REGION"); v != "" && v != cfg.Region {
		l.logger().WithField("region", v).Info("region overridden by REGION")
		cfg.Region = v
	}
}

// Parse validates a raw environment document against the schema and decodes it.
func Parse(data []byte) (*EnvironmentConfig, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var cfg EnvironmentConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode environment config: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}
	return l.Logger
}

func contextString(ctx ContextReader, key, envKey, fallback string) string {
	if ctx != nil {
		if v, ok := ctx.TryGetContext(jsii.String(key)).(string); ok && v != "" {
			return v
		}
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
