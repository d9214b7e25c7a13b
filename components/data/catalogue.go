package data

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
)

// TableKey is the logical name of a table owned by the data stack.
type TableKey string

const (
	Accounts                    TableKey = "accounts"
	Companies                   TableKey = "companies"
	Users                       TableKey = "users"
	Loans                       TableKey = "loans"
	Transactions                TableKey = "transactions"
	Payments                    TableKey = "payments"
	Statements                  TableKey = "statements"
	Cases                       TableKey = "cases"
	MonthlyReportings           TableKey = "monthlyReportings"
	AnnualReportings            TableKey = "annualReportings"
	OtpCodes                    TableKey = "otpCodes"
	PlaidItems                  TableKey = "plaidItems"
	Files                       TableKey = "files"
	Banks                       TableKey = "banks"
	AchBatches                  TableKey = "achBatches"
	LedgerEntries               TableKey = "ledgerEntries"
	Approvals                   TableKey = "approvals"
	Notifications               TableKey = "notifications"
	DocusignRequests            TableKey = "docusignRequests"
	Expenses                    TableKey = "expenses"
	Invoices                    TableKey = "invoices"
	LoanLoc                     TableKey = "loanLoc"
	LinesOfCredit               TableKey = "linesOfCredit"
	CaseCounselRelationships    TableKey = "caseCounselRelationships"
	CaseFinancialsCurrent       TableKey = "caseFinancialsCurrent"
	CaseUnderwritings           TableKey = "caseUnderwritings"
	DocketReviewCaseDetails     TableKey = "docketReviewCaseDetails"
	BorrowerValueConfigSettings TableKey = "borrowerValueConfigSettings"
	DiscountRateMatrix          TableKey = "discountRateMatrix"
	MassTortGeneral             TableKey = "massTortGeneral"
	MassTortPlaintiffs          TableKey = "massTortPlaintiffs"
	SettlementSuccessTracking   TableKey = "settlementSuccessTracking"
	ValuationsSummary           TableKey = "valuationsSummary"
	VarianceTracking            TableKey = "varianceTracking"
)

const LegacyStatementsTableName = "bebco-borrower-staging-statements"

type Attribute struct {
	Name string
	Type awsdynamodb.AttributeType
}

type Index struct {
	Name         string
	PartitionKey Attribute
	SortKey      *Attribute
}

type TableSpec struct {
	Key          TableKey
	ID           string
	Domain       string
	Name         string
	PartitionKey Attribute
	SortKey      *Attribute
	Indexes      []Index
}

func str(name string) Attribute { return Attribute{Name: name, Type: awsdynamodb.AttributeType_STRING} }
func num(name string) Attribute { return Attribute{Name: name, Type: awsdynamodb.AttributeType_NUMBER} }

var (
	id           = str("id")
	companyIndex = Index{Name: "CompanyIndex", PartitionKey: str("company_id")}
)

func borrower(key TableKey, logicalID, name string, indexes ...Index) TableSpec {
	return TableSpec{Key: key, ID: logicalID, Domain: "borrower", Name: name, PartitionKey: id, Indexes: indexes}
}

// Catalogue lists every table in creation order.
func Catalogue(docusignRequestsTableName string) []TableSpec {
	if docusignRequestsTableName == "" {
		docusignRequestsTableName = "docusign-requests"
	}

	postedDate := str("posted_date_tx_id")
	postedDateAccount := str("posted_date_account_id")
	date := str("date")

	return []TableSpec{
		borrower(Accounts, "AccountsTable", "accounts",
			Index{Name: "UserIndex", PartitionKey: str("user_id")},
			companyIndex,
		),
		borrower(Companies, "CompaniesTable", "companies"),
		borrower(Users, "UsersTable", "users",
			Index{Name: "EmailIndex", PartitionKey: str("email")},
			companyIndex,
		),
		borrower(Loans, "LoansTable", "loans",
			companyIndex,
			Index{Name: "LoanNumberIndex", PartitionKey: num("loan_no")},
		),
		{
			Key: Transactions, ID: "TransactionsTable", Domain: "borrower", Name: "transactions",
			PartitionKey: str("account_id"),
			SortKey:      &postedDate,
			Indexes: []Index{
				{Name: "CompanyIndex", PartitionKey: str("company_id"), SortKey: &postedDateAccount},
				{Name: "LoanNumberIndex", PartitionKey: num("loan_no"), SortKey: &date},
				{Name: "PlaidTxIndex", PartitionKey: str("plaid_transaction_id")},
			},
		},
		borrower(Payments, "PaymentsTable", "payments", companyIndex),
		borrower(Statements, "StatementsTable", "statements"),
		borrower(Cases, "CasesTable", "cases"),
		borrower(MonthlyReportings, "MonthlyReportingsTable", "monthly-reportings"),
		borrower(AnnualReportings, "AnnualReportingsTable", "annual-reportings"),
		borrower(OtpCodes, "OtpCodesTable", "otp-codes"),
		{Key: PlaidItems, ID: "PlaidItemsTable", Domain: "borrower", Name: "plaid-items", PartitionKey: str("item_id")},
		borrower(Files, "FilesTable", "files"),
		borrower(Banks, "BanksTable", "banks"),
		borrower(AchBatches, "AchBatchesTable", "ach-batches"),
		borrower(LedgerEntries, "LedgerEntriesTable", "ledger-entries"),
		borrower(Approvals, "ApprovalsTable", "approvals"),
		borrower(Notifications, "NotificationsTable", "notifications"),
		{Key: DocusignRequests, ID: "DocusignRequestsTable", Domain: "integrations", Name: docusignRequestsTableName, PartitionKey: id},
		borrower(Expenses, "ExpensesTable", "expenses", companyIndex),
		borrower(Invoices, "InvoicesTable", "invoices", companyIndex),
		borrower(LoanLoc, "LoanLocTable", "loan-loc", companyIndex),
		borrower(LinesOfCredit, "LinesOfCreditTable", "lines-of-credit"),
		borrower(CaseCounselRelationships, "CaseCounselRelationshipsTable", "case-counsel-relationships"),
		borrower(CaseFinancialsCurrent, "CaseFinancialsCurrentTable", "case-financials-current"),
		borrower(CaseUnderwritings, "CaseUnderwritingsTable", "case-underwritings"),
		borrower(DocketReviewCaseDetails, "DocketReviewCaseDetailsTable", "docket-review-case-details"),
		borrower(BorrowerValueConfigSettings, "BorrowerValueConfigSettingsTable", "borrower-value-config-settings"),
		borrower(DiscountRateMatrix, "DiscountRateMatrixTable", "discount-rate-matrix"),
		borrower(MassTortGeneral, "MassTortGeneralTable", "mass-tort-general"),
		borrower(MassTortPlaintiffs, "MassTortPlaintiffsTable", "mass-tort-plaintiffs"),
		borrower(SettlementSuccessTracking, "SettlementSuccessTrackingTable", "settlement-success-tracking"),
		borrower(ValuationsSummary, "ValuationsSummaryTable", "valuations-summary"),
		borrower(VarianceTracking, "VarianceTrackingTable", "variance-tracking"),
	}
}

// Keys lists every catalogue table in creation order.
func Keys() []TableKey {
	specs := Catalogue("")
	keys := make([]TableKey, 0, len(specs))
	for _, spec := range specs {
		keys = append(keys, spec.Key)
	}
	return keys
}
