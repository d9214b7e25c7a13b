package restapi

import "bebco_infra/components/domains"

// BorrowerRoutes backs the borrower portal.
var BorrowerRoutes = RouteTable{
	{Path: "/analyze-documents", Method: "POST", Function: domains.AnalyzeDocuments},
	{Path: "/generate-account-statements", Method: "POST", Function: domains.GeneratePlaidMonthlyStatement},
	{Path: "/auth/check-user-status", Method: "POST", Function: domains.AuthCheckUserStatus},
	{Path: "/auth/complete-setup", Method: "POST", Function: domains.AuthCompleteSetup},
	{Path: "/auth/refresh", Method: "POST", Function: domains.AuthRefreshToken},
	{Path: "/auth/send-2fa", Method: "POST", Function: domains.UsersSend2fa},
	{Path: "/auth/validate-password", Method: "POST", Function: domains.AuthValidatePassword},
	{Path: "/auth/verify-2fa", Method: "POST", Function: domains.UsersVerify2fa},
	{Path: "/plaid/webhook", Method: "POST", Function: domains.PlaidWebhookHandler},
	{Path: "/statements/financials", Method: "GET", Function: domains.StatementsFinancials},
	{Path: "/statements/financials", Method: "POST", Function: domains.StatementsFinancials},
	{Path: "/statements/generate", Method: "POST", Function: domains.GenerateLoanStatements},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/accounts", Method: "GET", Function: domains.AccountsList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/accounts", Method: "POST", Function: domains.AccountsCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/ach-consent", Method: "GET", Function: domains.PaymentsAchConsentCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/ach-consent", Method: "POST", Function: domains.PaymentsAchConsentCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/annual-reports", Method: "GET", Function: domains.AnnualReportsList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/annual-reports", Method: "POST", Function: domains.AnnualReportsCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases", Method: "GET", Function: domains.CasesList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases", Method: "POST", Function: domains.CasesCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/change-password", Method: "POST", Function: domains.UsersPassword},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/draws", Method: "GET", Function: domains.DrawsList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/draws", Method: "POST", Function: domains.DrawsCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/expenses", Method: "GET", Function: domains.ExpensesList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/expenses", Method: "POST", Function: domains.ExpensesCreateBulk},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices", Method: "GET", Function: domains.InvoicesList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices", Method: "POST", Function: domains.InvoicesCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/loan-summary", Method: "GET", Function: domains.AdminBorrowersLoanSummary},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports", Method: "GET", Function: domains.MonthlyReportsList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports", Method: "POST", Function: domains.MonthlyReportsCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/payments", Method: "GET", Function: domains.PaymentsList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/payments", Method: "POST", Function: domains.PaymentsCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/profile", Method: "PUT", Function: domains.UsersProfile},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/send-2fa-code", Method: "POST", Function: domains.UsersSend2fa},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users", Method: "GET", Function: domains.UsersList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users", Method: "POST", Function: domains.UsersCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/verify-2fa-code", Method: "POST", Function: domains.UsersVerify2fa},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/accounts/{accountId}", Method: "GET", Function: domains.AccountsGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/annual-reports/{reportId}", Method: "DELETE", Function: domains.AnnualReportsDelete},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/annual-reports/{reportId}", Method: "GET", Function: domains.AnnualReportsGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/annual-reports/{reportId}", Method: "PUT", Function: domains.AnnualReportsUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}", Method: "GET", Function: domains.CasesGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}", Method: "PUT", Function: domains.CasesUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/docusign/send-envelope", Method: "POST", Function: domains.DocusignSendEnvelope},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/draws/{drawId}", Method: "GET", Function: domains.DrawsGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/expenses/{expenseId}", Method: "GET", Function: domains.ExpensesGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/expenses/{expenseId}", Method: "PUT", Function: domains.ExpensesUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices/generate-monthly", Method: "POST", Function: domains.InvoicesGenerateMonthly},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices/{invoiceId}", Method: "GET", Function: domains.InvoicesGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices/{invoiceId}", Method: "PUT", Function: domains.InvoicesUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports/sharepoint-upload", Method: "POST", Function: domains.MonthlyReportSharepointUpload},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports/{reportId}", Method: "GET", Function: domains.MonthlyReportsGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports/{reportId}", Method: "PUT", Function: domains.MonthlyReportsUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/payments/{paymentId}", Method: "GET", Function: domains.PaymentsGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/plaid/accounts", Method: "GET", Function: domains.PlaidAccountsPreview},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/plaid/accounts", Method: "POST", Function: domains.PlaidAccountsPreview},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/plaid/link-token", Method: "POST", Function: domains.PlaidLinkTokenCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/plaid/token-exchange", Method: "POST", Function: domains.PlaidTokenExchange},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users/{userId}", Method: "DELETE", Function: domains.UsersDelete},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users/{userId}", Method: "GET", Function: domains.UsersGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users/{userId}", Method: "PUT", Function: domains.UsersUpdate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/accounts/{accountId}/statements", Method: "POST", Function: domains.AccountsUploadStatement},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/close", Method: "POST", Function: domains.CasesClose},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/docket-verification", Method: "GET", Function: domains.CasesDocketVerification},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/expenses", Method: "GET", Function: domains.ExpensesList},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/expenses", Method: "POST", Function: domains.ExpensesCreateBulk},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/draws/{drawId}/approve", Method: "PUT", Function: domains.DrawsApprove},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/draws/{drawId}/submit", Method: "PUT", Function: domains.DrawsSubmit},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/monthly-reports/{reportId}/submit", Method: "PUT", Function: domains.MonthlyReportsSubmit},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/statements/{statementId}/url", Method: "GET", Function: domains.StatementsGetURL},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/expenses/{expenseId}", Method: "GET", Function: domains.ExpensesGet},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/cases/{caseId}/expenses/{expenseId}", Method: "PUT", Function: domains.ExpensesUpdate},
}

// AdminRoutes backs the admin portal.
var AdminRoutes = RouteTable{
	{Path: "/admin/analyze-documents", Method: "POST", Function: domains.AnalyzeDocuments},
	{Path: "/admin/annual-reports", Method: "GET", Function: domains.AnnualReportsList},
	{Path: "/admin/annual-reports", Method: "POST", Function: domains.AnnualReportsCreate},
	{Path: "/admin/borrowers", Method: "GET", Function: domains.AdminBorrowersList},
	{Path: "/admin/borrowers", Method: "POST", Function: domains.AdminBorrowersCreate},
	{Path: "/admin/invoices", Method: "GET", Function: domains.InvoicesList},
	{Path: "/admin/payments", Method: "GET", Function: domains.PaymentsUpdate},
	{Path: "/admin/users", Method: "GET", Function: domains.UsersCreate},
	{Path: "/admin/users", Method: "POST", Function: domains.UsersCreate},
	{Path: "/profile/name", Method: "PATCH", Function: domains.AdminUsersUpdateName},
	{Path: "/profile/password", Method: "POST", Function: domains.AdminUsersChangePassword},
	{Path: "/admin/accounts/transaction-counts", Method: "POST", Function: domains.AccountTransactionCounts},
	{Path: "/admin/annual-reports/{reportId}", Method: "DELETE", Function: domains.AnnualReportsDelete},
	{Path: "/admin/annual-reports/{reportId}", Method: "PUT", Function: domains.AnnualReportsUpdate},
	{Path: "/admin/borrowers/summary", Method: "GET", Function: domains.AdminBorrowersSummary},
	{Path: "/admin/borrowers/{borrower_id}", Method: "GET", Function: domains.AdminBorrowersGet},
	{Path: "/admin/borrowers/{borrower_id}", Method: "PUT", Function: domains.AdminBorrowersUpdate},
	{Path: "/admin/payments/process-batch", Method: "POST", Function: domains.PaymentsAchBatches},
	{Path: "/admin/payments/{paymentId}", Method: "PUT", Function: domains.PaymentsAchBatches},
	{Path: "/admin/plaid/sync", Method: "POST", Function: domains.PlaidTransactionsSync},
	{Path: "/admin/statements/download", Method: "POST", Function: domains.AdminAccountStatementsDownload},
	{Path: "/admin/statements/upload", Method: "POST", Function: domains.AdminUploadStatements},
	{Path: "/admin/users/{userId}", Method: "DELETE", Function: domains.UsersCreate},
	{Path: "/auth/password/send-code", Method: "POST", Function: domains.UsersSend2fa},
	{Path: "/auth/password/verify-code", Method: "POST", Function: domains.UsersVerify2fa},
	{Path: "/banks/{bankId}/draws", Method: "GET", Function: domains.DrawsList},
	{Path: "/profile/mfa/status", Method: "GET", Function: domains.AdminUsersMfaStatus},
	{Path: "/admin/accounts/{accountId}/sync", Method: "POST", Function: domains.PlaidTransactionsSync},
	{Path: "/admin/borrowers/{borrower_id}/transactions", Method: "GET", Function: domains.AdminBorrowersTransactions},
	{Path: "/admin/companies/{companyId}/cases", Method: "GET", Function: domains.CasesList},
	{Path: "/admin/companies/{companyId}/cases", Method: "POST", Function: domains.CasesCreate},
	{Path: "/admin/companies/{companyId}/known-accounts", Method: "GET", Function: domains.KnownAccounts},
	{Path: "/admin/companies/{companyId}/known-accounts", Method: "POST", Function: domains.KnownAccounts},
	{Path: "/admin/companies/{companyId}/settings", Method: "GET", Function: domains.AdminBorrowerSettings},
	{Path: "/admin/companies/{companyId}/settings", Method: "PUT", Function: domains.AdminBorrowersUpdate},
	{Path: "/admin/companies/{companyId}/statements", Method: "GET", Function: domains.AdminListStatements},
	{Path: "/admin/companies/{companyId}/users", Method: "GET", Function: domains.UsersList},
	{Path: "/admin/monthly-reports/{reportId}/notes", Method: "DELETE", Function: domains.AdminNotesMonthlyReports},
	{Path: "/admin/monthly-reports/{reportId}/notes", Method: "GET", Function: domains.AdminNotesMonthlyReports},
	{Path: "/admin/monthly-reports/{reportId}/notes", Method: "POST", Function: domains.AdminNotesMonthlyReports},
	{Path: "/admin/monthly-reports/{reportId}/waive", Method: "GET", Function: domains.AdminPaymentsWaive},
	{Path: "/admin/monthly-reports/{reportId}/waive", Method: "POST", Function: domains.AdminPaymentsWaive},
	{Path: "/admin/payments/nacha/latest", Method: "GET", Function: domains.AdminNachaDownload},
	{Path: "/admin/payments/{paymentId}/allocations", Method: "GET", Function: domains.PaymentsUpdate},
	{Path: "/admin/payments/{paymentId}/allocations", Method: "PUT", Function: domains.PaymentsUpdate},
	{Path: "/admin/users/{userId}/approve", Method: "PUT", Function: domains.UsersCreate},
	{Path: "/admin/users/{userId}/deny", Method: "PUT", Function: domains.UsersCreate},
	{Path: "/profile/mfa/totp/begin", Method: "POST", Function: domains.AdminUsersMfaTotpBegin},
	{Path: "/profile/mfa/totp/verify", Method: "POST", Function: domains.AdminUsersMfaTotpVerify},
	{Path: "/profile/mfa/totp/verify-login", Method: "POST", Function: domains.AdminUsersMfaTotpVerifyLogin},
	{Path: "/admin/companies/{companyId}/cases/key", Method: "POST", Function: domains.CasesUpdate},
	{Path: "/admin/companies/{companyId}/known-accounts/{accountId}", Method: "DELETE", Function: domains.KnownAccounts},
	{Path: "/admin/companies/{companyId}/known-accounts/{accountId}", Method: "GET", Function: domains.KnownAccounts},
	{Path: "/admin/companies/{companyId}/known-accounts/{accountId}", Method: "PUT", Function: domains.KnownAccounts},
	{Path: "/admin/companies/{companyId}/loans/{loanNo}", Method: "GET", Function: domains.UpdateLoan},
	{Path: "/admin/companies/{companyId}/loans/{loanNo}", Method: "PUT", Function: domains.UpdateLoan},
	{Path: "/admin/payments/nacha/{batch_id}/download", Method: "GET", Function: domains.AdminNachaDownload},
	{Path: "/admin/users/{userId}/password/complete", Method: "POST", Function: domains.UsersPasswordComplete},
	{Path: "/admin/users/{userId}/password/start", Method: "POST", Function: domains.UsersPasswordStart},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/invoices", Method: "POST", Function: domains.InvoicesCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/users", Method: "POST", Function: domains.UsersCreate},
	{Path: "/banks/{bankId}/draws/{drawId}/approve", Method: "PUT", Function: domains.DrawsList},
	{Path: "/banks/{bankId}/draws/{drawId}/reject", Method: "PUT", Function: domains.DrawsList},
	{Path: "/banks/{bankId}/draws/{drawId}/return-to-pending", Method: "PUT", Function: domains.DrawsList},
	{Path: "/admin/companies/{companyId}/loans/{loanNo}/summary", Method: "GET", Function: domains.AdminBorrowersLoanSummary},
	{Path: "/admin/companies/{companyId}/loans/{loanNo}/summary", Method: "PUT", Function: domains.AdminBorrowersLoanSummary},
	{Path: "/admin/companies/{companyId}/users/{userId}/approve", Method: "PUT", Function: domains.UsersCreate},
	{Path: "/banks/{bankId}/borrowers/{borrowerId}/accounts/{accountId}/transactions", Method: "GET", Function: domains.PlaidAccountTransactions},
}

var AdminSecondaryRoutes = RouteTable{
	{Path: "/admin/accounts", Method: "GET", Function: domains.AccountsList},
	{Path: "/admin/banks", Method: "GET", Function: domains.BanksList},
	{Path: "/admin/banks", Method: "POST", Function: domains.BanksCreate},
	{Path: "/admin/monthly-reports", Method: "GET", Function: domains.MonthlyReportsList},
	{Path: "/admin/banks/{id}", Method: "PUT", Function: domains.BanksUpdate},
	{Path: "/banks/{bankId}/draws", Method: "GET", Function: domains.DrawsList},
}
