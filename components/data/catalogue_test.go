package data

import (
	"strings"
	"testing"

	"bebco_infra/components/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueUnique(t *testing.T) {
	names := naming.New("bebco", "jaspal", "us-east-2", "123456789012")
	catalogue := Catalogue("")

	keys := map[TableKey]bool{}
	ids := map[string]bool{}
	physical := map[string]bool{}
	for _, spec := range catalogue {
		require.False(t, keys[spec.Key], "duplicate key %s", spec.Key)
		require.False(t, ids[spec.ID], "duplicate id %s", spec.ID)
		name := names.Table(spec.Domain, spec.Name)
		require.False(t, physical[name], "duplicate table name %s", name)
		keys[spec.Key], ids[spec.ID], physical[name] = true, true, true

		assert.Equal(t, 1, strings.Count(name, "-jaspal"), name)
		assert.True(t, strings.HasSuffix(spec.ID, "Table"), spec.ID)
	}
	assert.Len(t, catalogue, 34)
}

func TestCatalogueDocusignTableName(t *testing.T) {
	for _, spec := range Catalogue("esign-requests") {
		if spec.Key == DocusignRequests {
			assert.Equal(t, "integrations", spec.Domain)
			assert.Equal(t, "esign-requests", spec.Name)
			return
		}
	}
	t.Fatal("docusign requests table missing")
}

func TestTransactionsIndexes(t *testing.T) {
	for _, spec := range Catalogue("") {
		if spec.Key != Transactions {
			continue
		}
		require.NotNil(t, spec.SortKey)
		assert.Equal(t, "posted_date_tx_id", spec.SortKey.Name)

		var indexNames []string
		for _, idx := range spec.Indexes {
			indexNames = append(indexNames, idx.Name)
		}
		assert.Equal(t, []string{"CompanyIndex", "LoanNumberIndex", "PlaidTxIndex"}, indexNames)
		return
	}
	t.Fatal("transactions table missing")
}
