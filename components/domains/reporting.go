package domains

import "bebco_infra/components/data"

func Reporting(ctx *Context) Domain {
	common := map[string]string{"REGION": ctx.Region}
	fn := func(key Key, id, source string) FunctionSpec {
		return FunctionSpec{Key: key, ID: id, Source: source, Env: common}
	}

	submit := fn(MonthlyReportsSubmit, "MonthlyReportsSubmit", "bebco-staging-monthly-reports-submit")
	submit.Tables = writes(data.MonthlyReportings)

	return Domain{
		Name: "Reporting",
		Functions: []FunctionSpec{
			// 月次レポート
			fn(MonthlyReportsCreate, "MonthlyReportsCreate", "bebco-staging-monthly-reports-create"),
			fn(MonthlyReportsGet, "MonthlyReportsGet", "bebco-staging-monthly-reports-get"),
			fn(MonthlyReportsList, "MonthlyReportsList", "bebco-staging-monthly-reports-list"),
			fn(MonthlyReportsUpdate, "MonthlyReportsUpdate", "bebco-staging-monthly-reports-update"),
			fn(MonthlyReportSharepointUpload, "MonthlyReportSharepointUpload", "bebco-staging-monthly-report-sharepoint-upload"),
			fn(MonthlyReportsScheduler, "MonthlyReportsScheduler", "bebcostaging-monthly-reports-scheduler"),

			// 年次レポート
			fn(AnnualReportsCreate, "AnnualReportsCreate", "bebco-staging-annual-reports-create-annual-report"),
			fn(AnnualReportsGet, "AnnualReportsGet", "bebco-staging-annual-reports-get-annual-report"),
			fn(AnnualReportsList, "AnnualReportsList", "bebco-staging-annual-reports-list-annual-reports"),
			fn(AnnualReportsUpdate, "AnnualReportsUpdate", "bebco-staging-annual-reports-update-annual-report"),
			fn(AnnualReportsDelete, "AnnualReportsDelete", "bebco-staging-annual-reports-delete-annual-report"),

			// AppSyncリゾルバー
			fn(AppsyncAnnualReportingDashboard, "AppsyncAnnualReportingDashboard", "bebco-appsync-annual-reporting-dashboard"),
			fn(AppsyncListAnnualReports, "AppsyncListAnnualReports", "bebco-appsync-list-annual-reports"),
			fn(AppsyncBorrowerAnnualReports, "AppsyncBorrowerAnnualReports", "bebco-appsync-borrower-annual-reports"),

			fn(AdminNotesMonthlyReports, "AdminNotesMonthlyReports", "bebco-staging-admin-notes-monthly-reports"),
			submit,
		},
		Outputs: []Output{
			{ID: "MonthlyReportsCreateArn", Key: MonthlyReportsCreate},
		},
	}
}
