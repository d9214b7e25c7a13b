package domains

// Key is the logical name of a deployed function. Keys are stable across
// environments; the physical name comes from the packaged artifact.
type Key string

// Plaid
const (
	PlaidLinkTokenCreate          Key = "plaid-link-token-create"
	PlaidTokenExchange            Key = "plaid-token-exchange"
	PlaidAccountsPreview          Key = "plaid-accounts-preview"
	CreateAccountFromPlaid        Key = "create-account-from-plaid"
	PlaidTransactionsSync         Key = "plaid-transactions-sync"
	PlaidSyncManual               Key = "plaid-sync-manual"
	PlaidWebhookHandler           Key = "plaid-webhook-handler"
	PlaidAccountTransactions      Key = "plaid-account-transactions"
	PlaidItemWebhookBulkUpdate    Key = "plaid-item-webhook-bulk-update"
	PlaidDailySync                Key = "plaid-daily-sync"
	GeneratePlaidMonthlyStatement Key = "generate-plaid-monthly-account-statement"
)

// Accounts
const (
	AccountTransactionCounts       Key = "account-transaction-counts"
	AccountsUploadStatement        Key = "accounts-upload-statement"
	AccountsGet                    Key = "accounts-get"
	AccountsOcrResults             Key = "accounts-ocr-results"
	AdminAccountStatementsDownload Key = "admin-account-statements-download"
	AccountsProcessOcr             Key = "accounts-process-ocr"
	AccountsCreate                 Key = "accounts-create"
	KnownAccounts                  Key = "known-accounts"
	AccountsList                   Key = "accounts-list"
)

// Users
const (
	UsersCreate                  Key = "users-create"
	UsersGet                     Key = "users-get"
	UsersList                    Key = "users-list"
	UsersUpdate                  Key = "users-update"
	UsersDelete                  Key = "users-delete"
	UsersProfile                 Key = "users-profile"
	UsersSend2fa                 Key = "users-send2fa"
	UsersVerify2fa               Key = "users-verify2fa"
	UsersPasswordStart           Key = "users-password-start"
	UsersPassword                Key = "users-password"
	UsersPasswordComplete        Key = "users-password-complete"
	AuthCheckUserStatus          Key = "auth-check-user-status"
	AdminUsersSend2fa            Key = "admin-users-send2fa"
	AdminUsersVerify2fa          Key = "admin-users-verify2fa"
	AdminUsersChangePassword     Key = "admin-users-change-password"
	AdminUsersUpdateName         Key = "admin-users-update-name"
	AdminAuthCheckUserStatus     Key = "admin-auth-check-user-status"
	AdminUsersMfaStatus          Key = "admin-users-mfa-status"
	AdminUsersMfaTotpBegin       Key = "admin-users-mfa-totp-begin"
	AdminUsersMfaTotpVerify      Key = "admin-users-mfa-totp-verify"
	AdminUsersMfaTotpVerifyLogin Key = "admin-users-mfa-totp-verify-login"
)

// Draws
const (
	DrawsCreate  Key = "draws-create"
	DrawsGet     Key = "draws-get"
	DrawsList    Key = "draws-list"
	DrawsApprove Key = "draws-approve"
	DrawsReject  Key = "draws-reject"
	DrawsSubmit  Key = "draws-submit"
	DrawsFund    Key = "draws-fund"
)

// Reporting
const (
	MonthlyReportsCreate            Key = "monthly-reports-create"
	MonthlyReportsGet               Key = "monthly-reports-get"
	MonthlyReportsList              Key = "monthly-reports-list"
	MonthlyReportsUpdate            Key = "monthly-reports-update"
	MonthlyReportSharepointUpload   Key = "monthly-report-sharepoint-upload"
	MonthlyReportsScheduler         Key = "monthly-reports-scheduler"
	MonthlyReportsSubmit            Key = "monthly-reports-submit"
	AnnualReportsCreate             Key = "annual-reports-create"
	AnnualReportsGet                Key = "annual-reports-get"
	AnnualReportsList               Key = "annual-reports-list"
	AnnualReportsUpdate             Key = "annual-reports-update"
	AnnualReportsDelete             Key = "annual-reports-delete"
	AppsyncAnnualReportingDashboard Key = "appsync-annual-reporting-dashboard"
	AppsyncListAnnualReports        Key = "appsync-list-annual-reports"
	AppsyncBorrowerAnnualReports    Key = "appsync-borrower-annual-reports"
	AdminNotesMonthlyReports        Key = "admin-notes-monthly-reports"
)

// Loans
const (
	GenerateLoanStatements    Key = "generate-loan-statements"
	AdminBorrowersLoanSummary Key = "admin-borrowers-loan-summary"
	UpdateLoan                Key = "update-loan"
)

// Payments
const (
	PaymentsCreate           Key = "payments-create"
	PaymentsGet              Key = "payments-get"
	PaymentsList             Key = "payments-list"
	PaymentsUpdate           Key = "payments-update"
	PaymentsAchBatches       Key = "payments-ach-batches"
	PaymentsAchConsentCreate Key = "payments-ach-consent-create"
	AdminPaymentsWaive       Key = "admin-payments-waive"
)

// Cases
const (
	CasesCreate             Key = "cases-create"
	CasesGet                Key = "cases-get"
	CasesList               Key = "cases-list"
	CasesUpdate             Key = "cases-update"
	CasesClose              Key = "cases-close"
	CasesDocketVerification Key = "cases-docket-verification"
)

// Auth helpers
const (
	AuthCompleteSetup         Key = "auth-complete-setup"
	AuthRefreshToken          Key = "auth-refresh-token"
	AuthValidatePassword      Key = "auth-validate-password"
	AdminAuthCompleteSetup    Key = "admin-auth-complete-setup"
	AdminAuthRefreshToken     Key = "admin-auth-refresh-token"
	AdminAuthValidatePassword Key = "admin-auth-validate-password"
)

// DocuSign
const (
	DocusignSendEnvelope       Key = "docusign-send-envelope"
	DocusignGetEnvelope        Key = "docusign-get-envelope"
	DocusignResendEnvelope     Key = "docusign-resend-envelope"
	DocusignWebhookComplete    Key = "docusign-webhook-complete"
	DocusignTemplatesSync      Key = "docusign-templates-sync"
	DocusignLegacySendEnvelope Key = "docusign-legacy-send-envelope"
)

// Borrowers
const (
	AdminBorrowersCreate                Key = "admin-borrowers-create"
	AdminBorrowersGet                   Key = "admin-borrowers-get"
	AdminBorrowersList                  Key = "admin-borrowers-list"
	AdminBorrowersUpdate                Key = "admin-borrowers-update"
	AdminBorrowersSummary               Key = "admin-borrowers-summary"
	AdminBorrowersTransactions          Key = "admin-borrowers-transactions"
	AdminBorrowerSettings               Key = "admin-borrower-settings"
	BorrowersAPIList                    Key = "borrowers-api-list"
	BorrowersAPIFinancialOverview       Key = "borrowers-api-financial-overview"
	BorrowersAPIBatchFinancialOverviews Key = "borrowers-api-batch-financial-overviews"
)

// Expenses
const (
	ExpensesCreateBulk Key = "expenses-create-bulk"
	ExpensesGet        Key = "expenses-get"
	ExpensesList       Key = "expenses-list"
	ExpensesUpdate     Key = "expenses-update"
)

// Invoices
const (
	InvoicesCreate          Key = "invoices-create"
	InvoicesGet             Key = "invoices-get"
	InvoicesList            Key = "invoices-list"
	InvoicesUpdate          Key = "invoices-update"
	InvoicesGenerateMonthly Key = "invoices-generate-monthly"
)

// Banks
const (
	BanksCreate Key = "banks-create"
	BanksList   Key = "banks-list"
	BanksUpdate Key = "banks-update"
)

// Statements
const (
	AdminListStatements       Key = "admin-list-statements"
	AdminUploadStatements     Key = "admin-upload-statements"
	StatementsFinancials      Key = "statements-financials"
	StatementsGetURL          Key = "statements-get-url"
	StatementsStreamPublisher Key = "statements-stream-publisher"
)

// Integrations
const (
	SharepointSyncPortfolio Key = "sharepoint-sync-portfolio"
	SharepointManualSync    Key = "sharepoint-manual-sync"
	SharepointSyncStatus    Key = "sharepoint-sync-status"
	AnalyzeDocuments        Key = "analyze-documents"
	ProcessDocumentOcr      Key = "process-document-ocr"
	ExcelParser             Key = "excel-parser"
	AgentResolveCompanyTool Key = "agent-resolve-company-tool"
	AgentRunPartiqlTool     Key = "agent-run-partiql-tool"
)

// Misc
const (
	ChangeTracker      Key = "change-tracker"
	LambdaBackup       Key = "lambda-backup-function"
	AdminNachaDownload Key = "admin-nacha-download"
)
