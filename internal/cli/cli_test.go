package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bebco_infra/components/data"
	"bebco_infra/internal/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type MockS3 struct {
	Objects map[string]string
	Keys    []string
}

func (m *MockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.Keys = append(m.Keys, key)
	body, ok := m.Objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

type MockDynamoDB struct {
	Counts map[string]int64
	Err    error
}

func (m *MockDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	count, ok := m.Counts[aws.ToString(params.TableName)]
	if !ok {
		return nil, &dbtypes.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &dbtypes.TableDescription{
		TableName:   params.TableName,
		TableStatus: dbtypes.TableStatusActive,
		ItemCount:   aws.Int64(count),
	}}, nil
}

type MockSecrets struct {
	Existing map[string]bool
}

func (m *MockSecrets) DescribeSecret(ctx context.Context, params *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error) {
	id := aws.ToString(params.SecretId)
	if !m.Existing[id] {
		return nil, &smtypes.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &secretsmanager.DescribeSecretOutput{ARN: aws.String("arn:aws:secretsmanager:us-east-2:123456789012:secret:" + id), Name: params.SecretId}, nil
}

// workspace copies the dev configuration next to a two-entry manifest.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	raw, err := os.ReadFile("../../config/environments/dev-us-east-2.json")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "environments"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "environments", "dev-us-east-2.json"), raw, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "lambda-packages.json"), []byte(`[
  {"name": "bebco-staging-banks-list", "runtime": "python3.11", "handler": "lambda_function.lambda_handler", "timeout": 30, "memorySize": 256},
  {"name": "bebco-staging-banks-create", "runtime": "python3.11", "handler": "lambda_function.lambda_handler", "timeout": 30, "memorySize": 256, "layers": ["arn:aws:lambda:us-east-1:303555290462:layer:requests:1"]}
]`), 0o644))
	return dir
}

func run(t *testing.T, clients *Clients, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := Run(args, Dependencies{
		Out:    &out,
		Logger: logging.Discard(),
		NewClients: func(ctx context.Context, region string) (*Clients, error) {
			assert.Equal(t, "us-east-2", region)
			return clients, nil
		},
	})
	return code, out.String()
}

func TestUnknownEnvironment(t *testing.T) {
	code, out := run(t, nil, "--base-dir", workspace(t), "-e", "prod", "config", "show")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "configuration file not found")
}

func TestConfigShow(t *testing.T) {
	code, out := run(t, nil, "--base-dir", workspace(t), "config", "show")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "bebco-borrower-portal-dev")
	assert.Contains(t, out, "python3.11")

	code, out = run(t, nil, "--base-dir", workspace(t), "-o", "json", "config", "show")
	require.Equal(t, 0, code, out)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "123456789012", decoded["account"])
}

func TestNames(t *testing.T) {
	dir := workspace(t)

	code, out := run(t, nil, "--base-dir", dir, "names")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "bebco-lambda-deployments-dev-us-east-2-123456789012")
	assert.Contains(t, out, "bebco-borrower-portal-dev")

	code, out = run(t, nil, "--base-dir", dir, "names", "--template", `{{ .Names.Lambda "banks" "list" | upper }} {{ .Config.Region }}`)
	require.Equal(t, 0, code, out)
	assert.Equal(t, "BEBCO-DEV-BANKS-LIST us-east-2\n", out)

	code, out = run(t, nil, "--base-dir", dir, "names", "--template", `{{ .Names.Lambda "banks" }`)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "parse template")
}

func TestNamesYAML(t *testing.T) {
	code, out := run(t, nil, "--base-dir", workspace(t), "-o", "yaml", "names")
	require.Equal(t, 0, code, out)

	var list []resourceName
	require.NoError(t, yaml.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 7+len(data.Catalogue("docusign-requests")))
	assert.Equal(t, resourceName{Kind: "cognito", Key: "userPool", Name: "bebco-borrower-portal-dev"}, list[0])
}

func TestPackagesListAndVerify(t *testing.T) {
	dir := workspace(t)

	code, out := run(t, nil, "--base-dir", dir, "packages", "list", "--prefix", "bebco-staging-banks-c")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "bebco-staging-banks-create")
	assert.NotContains(t, out, "bebco-staging-banks-list")

	code, out = run(t, nil, "--base-dir", dir, "packages", "verify")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "lambda packages missing: 2")

	zips := filepath.Join(dir, "dist", "lambda-packages")
	require.NoError(t, os.MkdirAll(zips, 0o755))
	for _, name := range []string{"bebco-staging-banks-list", "bebco-staging-banks-create"} {
		require.NoError(t, os.WriteFile(filepath.Join(zips, name+".zip"), []byte("PK"), 0o644))
	}
	code, out = run(t, nil, "--base-dir", dir, "packages", "verify")
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "all lambda packages present")
}

func TestPackagesDownload(t *testing.T) {
	dir := workspace(t)
	bucket := "bebco-lambda-deployments-dev-us-east-2-123456789012"
	mock := &MockS3{Objects: map[string]string{
		bucket + "/lambda-packages/bebco-staging-banks-list.zip":   "PK-list",
		bucket + "/lambda-packages/bebco-staging-banks-create.zip": "PK-create",
	}}

	code, out := run(t, &Clients{S3: mock}, "--base-dir", dir, "packages", "download")
	require.Equal(t, 0, code, out)
	assert.Len(t, mock.Keys, 2)

	got, err := os.ReadFile(filepath.Join(dir, "dist", "lambda-packages", "bebco-staging-banks-create.zip"))
	require.NoError(t, err)
	assert.Equal(t, "PK-create", string(got))

	// nothing left to fetch
	code, out = run(t, &Clients{S3: mock}, "--base-dir", dir, "packages", "download")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "nothing to download")
	assert.Len(t, mock.Keys, 2)
}

func TestPackagesDownloadFailures(t *testing.T) {
	dir := workspace(t)
	mock := &MockS3{Objects: map[string]string{}}

	code, out := run(t, &Clients{S3: mock}, "--base-dir", dir, "packages", "download", "bebco-staging-banks-list")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "download failed for bebco-staging-banks-list")
	assert.NoFileExists(t, filepath.Join(dir, "dist", "lambda-packages", "bebco-staging-banks-list.zip"))

	code, out = run(t, &Clients{S3: mock}, "--base-dir", dir, "packages", "download", "bebco-staging-unknown")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "lambda configuration not found")
	assert.Empty(t, mock.Keys[1:])
}

func TestTablesCounts(t *testing.T) {
	dir := workspace(t)
	mock := &MockDynamoDB{Counts: map[string]int64{
		"bebco-borrower-banks-dev": 3,
		"bebco-borrower-loans-dev": 40,
	}}

	code, out := run(t, &Clients{DynamoDB: mock}, "--base-dir", dir, "-o", "json", "tables", "counts")
	require.Equal(t, 0, code, out)

	var counts []TableCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Len(t, counts, len(data.Catalogue("docusign-requests")))

	var total int64
	missing := 0
	for _, c := range counts {
		total += c.Items
		if c.Status == "MISSING" {
			missing++
		}
	}
	assert.Equal(t, int64(43), total)
	assert.Equal(t, len(counts)-2, missing)

	code, out = run(t, &Clients{DynamoDB: mock}, "--base-dir", dir, "tables", "counts")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "TOTAL")

	code, out = run(t, &Clients{DynamoDB: &MockDynamoDB{Err: errors.New("AccessDenied")}}, "--base-dir", dir, "tables", "counts")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "AccessDenied")
}

func TestSecretsVerify(t *testing.T) {
	dir := workspace(t)
	all := &MockSecrets{Existing: map[string]bool{
		"bebco/dev/docusign":         true,
		"bebco-docusign-credentials": true,
		"bebco/dev/sharepoint":       true,
		"bebco/dev/sendgrid":         true,
	}}

	code, out := run(t, &Clients{Secrets: all}, "--base-dir", dir, "secrets", "verify")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "sendgrid")

	delete(all.Existing, "bebco/dev/sharepoint")
	code, out = run(t, &Clients{Secrets: all}, "--base-dir", dir, "-o", "json", "secrets", "verify")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "integration secrets missing: 1")
	assert.Contains(t, out, `"found": false`)
}
