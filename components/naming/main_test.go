package naming

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	n := New("bebco", "dev", "us-east-2", "123456789012")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"table", n.Table("borrower", "loans"), "bebco-borrower-loans-dev"},
		{"lambda", n.Lambda("payments", "create"), "bebco-dev-payments-create"},
		{"bucket", n.Bucket("borrower-documents"), "bebco-borrower-documents-dev-us-east-2-123456789012"},
		{"queue", n.Queue("document", "ocr-queue"), "bebco-dev-document-ocr-queue"},
		{"queue fifo", n.QueueFifo("plaid", "transactions-sync-fifo"), "bebco-dev-plaid-transactions-sync-fifo.fifo"},
		{"topic", n.Topic("textract-results"), "bebco-dev-textract-results"},
		{"iam role", n.IAMRole("textract-sns-role"), "bebco-dev-textract-sns-role"},
		{"api gateway", n.APIGateway("borrowerapi"), "bebco-borrowerapi-dev-api"},
		{"event rule", n.EventRule("plaid-daily-sync"), "bebco-dev-plaid-daily-sync-rule"},
		{"alarm", n.Alarm("lambda-backup-function-errors"), "bebco-dev-lambda-backup-function-errors"},
		{"dashboard", n.Dashboard("overview"), "bebco-dev-overview"},
		{"user pool", n.UserPool(), "bebco-borrower-portal-dev"},
		{"appsync", n.AppSyncAPI("borrowers-api"), "bebco-borrowers-api-dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDeterministic(t *testing.T) {
	a := New("bebco", "jaspal", "us-east-2", "123456789012")
	b := New("bebco", "jaspal", "us-east-2", "123456789012")

	assert.Equal(t, a.Table("borrower", "users"), b.Table("borrower", "users"))
	assert.Equal(t, a.Bucket("change-tracking"), b.Bucket("change-tracking"))
	assert.Equal(t, a.Lambda("plaid", "daily-sync"), b.Lambda("plaid", "daily-sync"))
}

func TestTableNamesDoNotCollide(t *testing.T) {
	n := New("bebco", "jaspal", "us-east-2", "123456789012")
	domains := []string{"borrower", "integrations", "admin"}
	tables := []string{"accounts", "companies", "users", "loans", "transactions", "payments",
		"statements", "cases", "monthlyreportings", "otpcodes", "plaiditems", "files", "banks"}

	seen := map[string]string{}
	for _, d := range domains {
		for _, name := range tables {
			got := n.Table(d, name)
			key := fmt.Sprintf("%s/%s", d, name)
			if prev, ok := seen[got]; ok {
				t.Fatalf("%s and %s both map to %s", prev, key, got)
			}
			seen[got] = key
			assert.Equal(t, 1, strings.Count(got, "-jaspal"))
		}
	}
}

func TestAccessors(t *testing.T) {
	n := New("bebco", "dev", "us-east-2", "123456789012")
	assert.Equal(t, "bebco", n.Prefix())
	assert.Equal(t, "dev", n.EnvSuffix())
	assert.Equal(t, "us-east-2", n.Region())
	assert.Equal(t, "123456789012", n.Account())
}
