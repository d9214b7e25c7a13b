package function

import (
	"strings"
	"testing"

	"bebco_infra/components/config"
	"bebco_infra/components/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(suffix string) *config.EnvironmentConfig {
	return &config.EnvironmentConfig{
		Environment: suffix,
		Region:      "us-east-2",
		Account:     "123456789012",
		Naming:      config.Naming{Prefix: "bebco", EnvironmentSuffix: suffix},
		Domains:     config.Domains{API: "api-" + suffix + ".bebco.example.com"},
		Textract:    config.Textract{RoleName: "textract-sns-role", SNSTopicName: "textract-results"},
	}
}

func testTarget(suffix string) Target {
	cfg := testConfig(suffix)
	return Target{Names: cfg.ResourceNames(), Config: cfg}
}

var packagedEnv = map[string]string{
	"USERS_TABLE":                      "bebco-borrower-users-staging",
	"LOANS_TABLE_NAME":                 "bebco-borrower-loans-staging",
	"DOCUMENTS_BUCKET":                 "bebco-borrower-staging-documents",
	"TABLE_NAME":                       "bebco-borrower-ach-batches-staging",
	"DYNAMODB_TABLE":                   "some-other-table",
	"DYNAMODB_DOCUSIGN_REQUESTS_TABLE": "bebco-docusign-requests-staging",
	"OCR_RESULTS_TOPIC_ARN":            "arn:aws:sns:us-east-1:303555290462:bebco-staging-textract-results",
	"TEXTRACT_ROLE_ARN":                "arn:aws:iam::303555290462:role/textract-role",
	"TRANSACTIONS_SYNC_QUEUE_URL":      "https://sqs.us-east-1.amazonaws.com/303555290462/bebco-staging-plaid-sync",
	"WEBHOOK_BASE_URL":                 "https://staging.example.com/plaid/webhook",
	"STAGE":                            "staging",
	"SEND2FA_FUNCTION":                 "bebco-staging-users-send2fa",
	"SYNC_WORKER_FUNCTION_NAME":        "worker",
	"COMPANY_INDEX":                    "CompanyIndex",
	"LEGACY_ARN":                       "arn:aws:dynamodb:us-east-1:303555290462:table/bebco-borrower-files-staging",
}

func TestDefaultRewriterDev(t *testing.T) {
	got := DefaultRewriter().Rewrite(testTarget("dev"), packagedEnv)

	assert.Equal(t, "bebco-borrower-users-dev", got["USERS_TABLE"])
	assert.Equal(t, "bebco-borrower-loans-dev", got["LOANS_TABLE_NAME"])
	assert.Equal(t, "bebco-borrower-documents-dev-us-east-2-123456789012", got["DOCUMENTS_BUCKET"])
	assert.Equal(t, "bebco-borrower-ach-batches-dev", got["TABLE_NAME"])
	assert.Equal(t, "some-other-table", got["DYNAMODB_TABLE"])
	assert.Equal(t, "bebco-integrations-docusign-requests-dev", got["DYNAMODB_DOCUSIGN_REQUESTS_TABLE"])
	assert.Equal(t, "arn:aws:sns:us-east-2:123456789012:bebco-dev-textract-results", got["OCR_RESULTS_TOPIC_ARN"])
	assert.Equal(t, "arn:aws:iam::123456789012:role/bebco-dev-textract-sns-role", got["TEXTRACT_ROLE_ARN"])
	assert.Equal(t, "https://sqs.us-east-2.amazonaws.com/123456789012/bebco-dev-plaid-transactions-sync", got["TRANSACTIONS_SYNC_QUEUE_URL"])
	assert.Equal(t, "https://api-dev.bebco.example.com/plaid/webhook", got["WEBHOOK_BASE_URL"])
	assert.Equal(t, "dev", got["STAGE"])
	assert.Equal(t, "bebco-dev-users-send2fa", got["SEND2FA_FUNCTION"])
	assert.Equal(t, "worker", got["SYNC_WORKER_FUNCTION_NAME"])
	assert.Equal(t, "CompanyIndex", got["COMPANY_INDEX"])
	assert.Equal(t, "arn:aws:dynamodb:us-east-2:123456789012:table/bebco-borrower-files-dev", got["LEGACY_ARN"])
}

func TestDefaultRewriterSandboxSuffix(t *testing.T) {
	got := DefaultRewriter().Rewrite(testTarget("jaspal"), packagedEnv)

	assert.Equal(t, "bebco-borrower-users-jaspal", got["USERS_TABLE"])
	assert.Equal(t, "bebco-borrower-ach-batches-jaspal", got["TABLE_NAME"])
	assert.Equal(t, "bebco-dev-users-send2fa-jaspal", got["SEND2FA_FUNCTION"])
	assert.Equal(t, "jaspal", got["STAGE"])
	assert.Equal(t, "arn:aws:dynamodb:us-east-2:123456789012:table/bebco-borrower-files-jaspal", got["LEGACY_ARN"])

	for key, value := range got {
		assert.NotContains(t, value, "staging", key)
		assert.NotContains(t, value, SourceAccount, key)
		assert.LessOrEqual(t, strings.Count(value, "-jaspal"), 1, key)
	}
}

func TestRewritePreservesKeys(t *testing.T) {
	for _, suffix := range []string{"dev", "jaspal"} {
		got := DefaultRewriter().Rewrite(testTarget(suffix), packagedEnv)
		require.Len(t, got, len(packagedEnv))
		for key := range packagedEnv {
			assert.Contains(t, got, key)
		}
	}
}

func TestUnmatchedKeysPassThrough(t *testing.T) {
	env := map[string]string{"LOG_LEVEL": "INFO", "PAGE_SIZE": "50"}
	got := DefaultRewriter().Rewrite(testTarget("jaspal"), env)
	assert.Equal(t, env, got)

	again := DefaultRewriter().Rewrite(testTarget("jaspal"), got)
	assert.Equal(t, got, again)
}

func TestCustomResolver(t *testing.T) {
	r := NewRewriter(nil).With("API_URL", func(t Target, _ string) string {
		return "https://" + t.Names.APIGateway("borrowerapi")
	})

	got := r.Rewrite(testTarget("dev"), map[string]string{"API_URL": "x", "OTHER": "staging"})
	assert.Equal(t, "https://bebco-borrowerapi-dev-api", got["API_URL"])
	assert.Equal(t, "staging", got["OTHER"])
	assert.Equal(t, []string{"API_URL"}, r.Keys())
}

func TestWithDoesNotMutate(t *testing.T) {
	base := NewRewriter(nil)
	_ = base.With("A", LegacyValue)
	assert.Empty(t, base.Keys())
}

func TestWebhookPrefersConfiguredURL(t *testing.T) {
	target := testTarget("dev")
	target.Config.Integrations.PlaidWebhookBaseURL = "https://hooks.example.com"
	assert.Equal(t, "https://hooks.example.com", WebhookBaseURL(target, "ignored"))
}

func TestQueueName(t *testing.T) {
	names := naming.New("bebco", "dev", "us-east-2", "123456789012")

	assert.Equal(t, "bebco-dev-plaid-transactions-sync", QueueName(names, "plaid-transactions-sync", false))
	assert.Equal(t, "bebco-dev-plaid-transactions-sync.fifo", QueueName(names, "plaid-transactions-sync-fifo", true))
	assert.Equal(t, "single", QueueName(names, "single", false))
	assert.Equal(t, "", QueueName(names, "", false))
}
