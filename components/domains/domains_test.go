package domains

import (
	"os"
	"testing"

	"bebco_infra/components/config"
	"bebco_infra/components/data"
	"bebco_infra/components/packages"

	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	jsii.Close()
	os.Exit(code)
}

func testConfig(suffix string) *config.EnvironmentConfig {
	return &config.EnvironmentConfig{
		Environment: suffix,
		Region:      "us-east-2",
		Account:     "123456789012",
		Naming:      config.Naming{Prefix: "bebco", EnvironmentSuffix: suffix},
		Cognito: config.Cognito{
			UserPoolName: "bebco-borrower-portal-" + suffix,
			PasswordPolicy: config.PasswordPolicy{
				MinLength:        8,
				RequireUppercase: true,
				RequireLowercase: true,
				RequireNumbers:   true,
			},
		},
		Integrations: config.Integrations{
			PlaidClientID:        "plaid-client",
			PlaidEnvironment:     "sandbox",
			DocusignSecretName:   "bebco/dev/docusign",
			SharepointSecretName: "bebco/dev/sharepoint",
			SendgridSecretName:   "bebco/dev/sendgrid",
		},
		Textract: config.Textract{RoleName: "textract-sns-role", SNSTopicName: "textract-results"},
	}
}

func fakeContext(cfg *config.EnvironmentConfig) *Context {
	return &Context{
		Config:  cfg,
		Region:  "us-east-2",
		Account: "123456789012",
		Auth: AuthIDs{
			UserPoolID:       "us-east-2_pool",
			UserPoolArn:      "arn:aws:cognito-idp:us-east-2:123456789012:userpool/us-east-2_pool",
			UserPoolClientID: "client",
			IdentityPoolID:   "us-east-2:identity",
		},
		TableName:  func(k data.TableKey) string { return "tbl-" + string(k) },
		TableArn:   func(k data.TableKey) string { return "arn:tbl-" + string(k) },
		BucketName: func(b Bucket) string { return "bkt-" + string(b) },
	}
}

func allDomains(t *testing.T, ctx *Context) []Domain {
	t.Helper()
	out := make([]Domain, 0, len(Definitions))
	for _, e := range Definitions {
		d := e.Definition(ctx)
		require.Equal(t, e.Name, d.Name)
		out = append(out, d)
	}
	return out
}

func TestDefinitionsAreValid(t *testing.T) {
	for _, d := range allDomains(t, fakeContext(testConfig("dev"))) {
		assert.NoError(t, Validate(d), d.Name)
	}
}

func TestKeysAreGloballyUnique(t *testing.T) {
	seen := map[Key]string{}
	sources := map[string]Key{}
	for _, d := range allDomains(t, fakeContext(testConfig("dev"))) {
		for _, spec := range d.Functions {
			if other, ok := seen[spec.Key]; ok {
				t.Errorf("key %s defined by %s and %s", spec.Key, other, d.Name)
			}
			seen[spec.Key] = d.Name
			if other, ok := sources[spec.Source]; ok {
				t.Errorf("source %s used by %s and %s", spec.Source, other, spec.Key)
			}
			sources[spec.Source] = spec.Key
		}
	}
	assert.Len(t, seen, 130)
}

func TestSourcesExistInManifest(t *testing.T) {
	repo := packages.NewRepository("../..")
	for _, d := range allDomains(t, fakeContext(testConfig("dev"))) {
		for _, spec := range d.Functions {
			_, err := repo.Lookup(spec.Source)
			assert.NoError(t, err, "%s/%s", d.Name, spec.Key)
		}
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	d := Domain{Name: "X", Functions: []FunctionSpec{
		{Key: BanksList, ID: "A", Source: "s"},
		{Key: BanksList, ID: "B", Source: "s"},
	}}
	assert.ErrorContains(t, Validate(d), "duplicate function key")

	d.Functions[1].Key = BanksCreate
	d.Functions[1].ID = "A"
	assert.ErrorContains(t, Validate(d), "duplicate construct id")

	d.Functions[1].ID = "B"
	d.Outputs = []Output{{ID: "O", Key: BanksUpdate}}
	assert.ErrorContains(t, Validate(d), "unknown function")
}

func specFor(t *testing.T, d Domain, key Key) FunctionSpec {
	t.Helper()
	for _, spec := range d.Functions {
		if spec.Key == key {
			return spec
		}
	}
	t.Fatalf("%s has no function %s", d.Name, key)
	return FunctionSpec{}
}

func TestDocuSignOptionalEnv(t *testing.T) {
	cfg := testConfig("dev")
	d := DocuSign(fakeContext(cfg))
	spec := specFor(t, d, DocusignSendEnvelope)
	assert.NotContains(t, spec.Env, "DOCUSIGN_HOST")
	assert.Len(t, spec.Secrets, 2)
	assert.Equal(t, writes(data.DocusignRequests), spec.Tables)

	cfg.Integrations.DocusignHost = "account-d.docusign.com"
	spec = specFor(t, DocuSign(fakeContext(cfg)), DocusignSendEnvelope)
	assert.Equal(t, "account-d.docusign.com", spec.Env["DOCUSIGN_HOST"])
}

func TestTextractWiring(t *testing.T) {
	ctx := fakeContext(testConfig("dev"))
	ocr := specFor(t, Accounts(ctx), AccountsProcessOcr)
	assert.NotContains(t, ocr.Env, "TEXTRACT_ROLE_ARN")
	assert.Len(t, ocr.Policies, 1)

	ctx.TextractRoleArn = "arn:aws:iam::123456789012:role/bebco-dev-textract-sns-role"
	ctx.TextractTopicArn = "arn:aws:sns:us-east-2:123456789012:bebco-dev-textract-results"
	ocr = specFor(t, Accounts(ctx), AccountsProcessOcr)
	assert.Equal(t, ctx.TextractRoleArn, ocr.Env["TEXTRACT_ROLE_ARN"])
	assert.Equal(t, ctx.TextractTopicArn, ocr.Env["OCR_RESULTS_TOPIC_ARN"])
	assert.Len(t, ocr.Policies, 2)

	analyze := specFor(t, Integrations(ctx), AnalyzeDocuments)
	assert.Equal(t, ctx.TextractRoleArn, analyze.Env["TEXTRACT_ROLE_ARN"])
	// shared common env must not pick up the textract entry
	status := specFor(t, Integrations(ctx), SharepointSyncStatus)
	assert.NotContains(t, status.Env, "TEXTRACT_ROLE_ARN")
}

func TestChangeTrackerStreamsEveryCatalogueTable(t *testing.T) {
	spec := specFor(t, Misc(fakeContext(testConfig("dev"))), ChangeTracker)
	require.Len(t, spec.Tables, len(data.Keys()))
	for _, g := range spec.Tables {
		assert.Equal(t, StreamRead, g.Access)
	}
}

func TestLegacyPolicies(t *testing.T) {
	ctx := fakeContext(testConfig("jaspal"))
	assert.Len(t, specFor(t, Payments(ctx), PaymentsList).Policies, 1)
	assert.Len(t, specFor(t, Invoices(ctx), InvoicesList).Policies, 1)
	assert.Len(t, specFor(t, Borrowers(ctx), BorrowersAPIBatchFinancialOverviews).Policies, 1)
	assert.Empty(t, specFor(t, Payments(ctx), PaymentsCreate).Policies)
}

func TestEntryDescription(t *testing.T) {
	e, ok := Lookup("Banks")
	require.True(t, ok)
	assert.Equal(t, "3 Bank management Lambda functions", e.Description(len(e.Definition(fakeContext(testConfig("dev"))).Functions)))

	_, ok = Lookup("Migration")
	assert.False(t, ok)
}

func TestEntryNeeds(t *testing.T) {
	tests := map[string]Foundation{
		"Plaid":       NeedsStorage | NeedsData,
		"Users":       NeedsAuth | NeedsStorage | NeedsData,
		"Draws":       NeedsAuth | NeedsStorage | NeedsData,
		"Reporting":   NeedsStorage | NeedsData,
		"Cases":       NeedsStorage | NeedsData,
		"AuthLambdas": NeedsAuth | NeedsData,
		"DocuSign":    NeedsStorage | NeedsData,
		"Banks":       NeedsData,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			e, ok := Lookup(name)
			require.True(t, ok)
			assert.Equal(t, want, e.Needs)
		})
	}
}
