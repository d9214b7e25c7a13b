package function

import (
	"regexp"
	"sort"
	"strings"

	"bebco_infra/components/config"
	"bebco_infra/components/naming"
)

// Values baked into the packaged artifacts at build time.
const (
	SourceRegion  = "us-east-1"
	SourceAccount = "303555290462"
)

// Target is the deployment the environment values are rewritten for.
type Target struct {
	Names  *naming.ResourceNames
	Config *config.EnvironmentConfig
}

func (t Target) Suffix() string {
	if s := t.Names.EnvSuffix(); s != "" {
		return s
	}
	return DefaultSuffix
}

// Resolver computes the new value of one variable from its packaged value.
type Resolver func(t Target, value string) string

// Rewriter maps environment variable keys to resolvers. Keys without a
// resolver go through the fallback. The key set never changes.
type Rewriter struct {
	resolvers map[string]Resolver
	fallback  Resolver
}

func NewRewriter(fallback Resolver) *Rewriter {
	if fallback == nil {
		fallback = func(_ Target, value string) string { return value }
	}
	return &Rewriter{resolvers: map[string]Resolver{}, fallback: fallback}
}

// With returns a copy of r with key bound to resolver.
func (r *Rewriter) With(key string, resolver Resolver) *Rewriter {
	out := &Rewriter{resolvers: make(map[string]Resolver, len(r.resolvers)+1), fallback: r.fallback}
	for k, v := range r.resolvers {
		out.resolvers[k] = v
	}
	out.resolvers[key] = resolver
	return out
}

func (r *Rewriter) Keys() []string {
	keys := make([]string, 0, len(r.resolvers))
	for k := range r.resolvers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Rewriter) Rewrite(t Target, env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for key, value := range env {
		if resolver, ok := r.resolvers[key]; ok {
			out[key] = resolver(t, value)
			continue
		}
		out[key] = r.fallback(t, value)
	}
	return out
}

var borrowerTables = map[string]string{
	"ANNUAL_REPORTS_TABLE":  "annual-reportings",
	"BANKS_TABLE":           "banks",
	"COMPANIES_TABLE":       "companies",
	"DOCUMENTS_TABLE":       "documents",
	"FILES_TABLE":           "files",
	"INVOICES_TABLE":        "invoices",
	"LEDGER_TABLE":          "ledger-entries",
	"LOANS_TABLE":           "loans",
	"LOANS_TABLE_NAME":      "loans",
	"MONTHLY_REPORTS_TABLE": "monthly-reportings",
	"PAYMENTS_TABLE":        "payments",
	"PLAID_ITEMS_TABLE":     "plaid-items",
	"STATEMENTS_TABLE":      "statements",
	"TRANSACTIONS_TABLE":    "transactions",
	"USERS_TABLE":           "users",
	"OTP_TABLE":             "otp-codes",
}

var bucketKeys = []string{"DOCUMENTS_S3_BUCKET", "DOCUMENTS_BUCKET", "S3_BUCKET", "S3_STAGING_BUCKET", "OUTPUT_BUCKET"}

var genericTableKeys = []string{"DYNAMODB_TABLE", "TABLE_NAME", "DYNAMODB_TABLE_NAME"}

var functionRefKeys = []string{"SEND2FA_FUNCTION", "VERIFY2FA_FUNCTION", "SYNC_WORKER_FUNCTION_NAME"}

// DefaultRewriter carries every known variable of the packaged artifacts.
func DefaultRewriter() *Rewriter {
	r := NewRewriter(LegacyValue)
	for key, table := range borrowerTables {
		r = r.With(key, BorrowerTable(table))
	}
	for _, key := range bucketKeys {
		r = r.With(key, DocumentsBucket)
	}
	for _, key := range genericTableKeys {
		r = r.With(key, GenericTable)
	}
	for _, key := range functionRefKeys {
		r = r.With(key, FunctionReference)
	}
	return r.
		With("DYNAMODB_DOCUSIGN_REQUESTS_TABLE", DocusignRequestsTable).
		With("OCR_RESULTS_TOPIC_ARN", TextractTopicArn).
		With("TEXTRACT_ROLE_ARN", TextractRoleArn).
		With("TRANSACTIONS_SYNC_QUEUE_URL", PlaidSyncQueueURL).
		With("WEBHOOK_BASE_URL", WebhookBaseURL).
		With("STAGE", Stage)
}

var (
	borrowerFullPattern  = regexp.MustCompile(`bebco-borrower-(\w+)-(?:staging|dev)`)
	borrowerPattern      = regexp.MustCompile(`borrower-(\w+)-(?:staging|dev)`)
	borrowerTablePattern = regexp.MustCompile(`^bebco-borrower-([a-z0-9-]+)-(?:staging|dev)$`)
)

// LegacyValue moves a packaged value from the build environment to the target.
func LegacyValue(t Target, value string) string {
	suffix := t.Suffix()
	if suffix != DefaultSuffix {
		value = borrowerFullPattern.ReplaceAllString(value, "bebco-borrower-${1}-"+suffix)
		value = borrowerPattern.ReplaceAllString(value, "borrower-${1}-"+suffix)
	}
	value = strings.ReplaceAll(value, "staging", "dev")
	value = strings.ReplaceAll(value, SourceRegion, t.Names.Region())
	return strings.ReplaceAll(value, SourceAccount, t.Names.Account())
}

func BorrowerTable(name string) Resolver {
	return func(t Target, _ string) string {
		return t.Names.Table("borrower", name)
	}
}

func DocumentsBucket(t Target, _ string) string {
	return t.Names.Bucket("borrower-documents")
}

// GenericTable recognises borrower tables passed under a generic key.
func GenericTable(t Target, value string) string {
	if m := borrowerTablePattern.FindStringSubmatch(value); m != nil {
		return t.Names.Table("borrower", m[1])
	}
	return LegacyValue(t, value)
}

func FunctionReference(t Target, value string) string {
	if strings.HasPrefix(value, "bebco-") {
		return NormalizeFunctionName(value, t.Suffix())
	}
	return LegacyValue(t, value)
}

func DocusignRequestsTable(t Target, _ string) string {
	name := "docusign-requests"
	if t.Config != nil && t.Config.Integrations.DocusignRequestsTableName != "" {
		name = t.Config.Integrations.DocusignRequestsTableName
	}
	return t.Names.Table("integrations", name)
}

func TextractTopicArn(t Target, _ string) string {
	topic := "textract-results"
	if t.Config != nil && t.Config.Textract.SNSTopicName != "" {
		topic = t.Config.Textract.SNSTopicName
	}
	return "arn:aws:sns:" + t.Names.Region() + ":" + t.Names.Account() + ":" + t.Names.Topic(topic)
}

func TextractRoleArn(t Target, _ string) string {
	role := "textract-sns-role"
	if t.Config != nil && t.Config.Textract.RoleName != "" {
		role = t.Config.Textract.RoleName
	}
	return "arn:aws:iam::" + t.Names.Account() + ":role/" + t.Names.IAMRole(role)
}

func PlaidSyncQueueURL(t Target, _ string) string {
	base := "plaid-transactions-sync"
	if t.Config != nil && t.Config.Integrations.PlaidSyncQueueName != "" {
		base = t.Config.Integrations.PlaidSyncQueueName
	}
	return "https://sqs." + t.Names.Region() + ".amazonaws.com/" + t.Names.Account() + "/" + QueueName(t.Names, base, false)
}

func WebhookBaseURL(t Target, value string) string {
	if t.Config == nil {
		return LegacyValue(t, value)
	}
	if t.Config.Integrations.PlaidWebhookBaseURL != "" {
		return t.Config.Integrations.PlaidWebhookBaseURL
	}
	return "https://" + t.Config.Domains.API + "/plaid/webhook"
}

func Stage(t Target, _ string) string {
	if t.Config != nil && t.Config.Environment != "" {
		return t.Config.Environment
	}
	return t.Suffix()
}

// QueueName splits "plaid-transactions-sync" into domain "plaid" and
// purpose "transactions-sync". Single-word names are returned unchanged.
func QueueName(names *naming.ResourceNames, base string, fifo bool) string {
	domain, purpose, ok := strings.Cut(base, "-")
	if !ok || domain == "" || purpose == "" {
		return base
	}
	if fifo {
		purpose = strings.TrimSuffix(purpose, "-fifo")
		if purpose == "fifo" {
			purpose = ""
		}
		return names.QueueFifo(domain, purpose)
	}
	return names.Queue(domain, purpose)
}
