package domains

import "fmt"

// Foundation is a stack a domain stack has to be deployed after.
type Foundation uint8

const (
	NeedsAuth Foundation = 1 << iota
	NeedsStorage
	NeedsData
	NeedsTextract
)

type Entry struct {
	// Name is the stack name without the Bebco prefix and Stack suffix.
	Name       string
	Label      string
	Definition Definition
	Needs      Foundation
}

// Description is the stack description for a domain with n functions.
func (e Entry) Description(n int) string {
	return fmt.Sprintf("%d %s", n, e.Label)
}

// Definitions lists every domain in deployment order.
var Definitions = []Entry{
	{Name: "Plaid", Label: "Plaid integration Lambda functions", Definition: Plaid, Needs: NeedsStorage | NeedsData},
	{Name: "Accounts", Label: "Account management Lambda functions", Definition: Accounts, Needs: NeedsAuth | NeedsStorage | NeedsData | NeedsTextract},
	{Name: "Users", Label: "User management and authentication Lambda functions", Definition: Users, Needs: NeedsAuth | NeedsStorage | NeedsData},
	{Name: "Draws", Label: "Draw request management Lambda functions", Definition: Draws, Needs: NeedsAuth | NeedsStorage | NeedsData},
	{Name: "Reporting", Label: "Reporting Lambda functions (monthly, annual, AppSync)", Definition: Reporting, Needs: NeedsStorage | NeedsData},
	{Name: "Loans", Label: "Loan management Lambda functions", Definition: Loans, Needs: NeedsStorage | NeedsData},
	{Name: "Payments", Label: "Payment and ACH Lambda functions", Definition: Payments, Needs: NeedsAuth | NeedsStorage | NeedsData},
	{Name: "Cases", Label: "Case management Lambda functions", Definition: Cases, Needs: NeedsStorage | NeedsData},
	{Name: "AuthLambdas", Label: "Auth helper Lambda functions (borrower + admin)", Definition: AuthLambdas, Needs: NeedsAuth | NeedsData},
	{Name: "DocuSign", Label: "DocuSign integration Lambda functions", Definition: DocuSign, Needs: NeedsStorage | NeedsData},
	{Name: "Borrowers", Label: "Borrower management Lambda functions", Definition: Borrowers, Needs: NeedsAuth | NeedsStorage | NeedsData},
	{Name: "Expenses", Label: "Expense management Lambda functions", Definition: Expenses, Needs: NeedsData},
	{Name: "Invoices", Label: "Invoice management Lambda functions", Definition: Invoices, Needs: NeedsStorage | NeedsData},
	{Name: "Banks", Label: "Bank management Lambda functions", Definition: Banks, Needs: NeedsData},
	{Name: "Statements", Label: "Statement management Lambda functions", Definition: Statements, Needs: NeedsStorage | NeedsData},
	{Name: "Integrations", Label: "Integration Lambda functions (SharePoint, OCR, Excel, Agents)", Definition: Integrations, Needs: NeedsStorage | NeedsData | NeedsTextract},
	{Name: "Misc", Label: "Utility Lambda functions (change-tracker, backup, NACHA)", Definition: Misc, Needs: NeedsStorage | NeedsData},
}

// Lookup finds a definition by stack name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Definitions {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
