package data

import (
	"bebco_infra/components/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type Tables struct {
	Accounts                    awsdynamodb.Table
	Companies                   awsdynamodb.Table
	Users                       awsdynamodb.Table
	Loans                       awsdynamodb.Table
	Transactions                awsdynamodb.Table
	Payments                    awsdynamodb.Table
	Statements                  awsdynamodb.Table
	Cases                       awsdynamodb.Table
	MonthlyReportings           awsdynamodb.Table
	AnnualReportings            awsdynamodb.Table
	OtpCodes                    awsdynamodb.Table
	PlaidItems                  awsdynamodb.Table
	Files                       awsdynamodb.Table
	Banks                       awsdynamodb.Table
	AchBatches                  awsdynamodb.Table
	LedgerEntries               awsdynamodb.Table
	Approvals                   awsdynamodb.Table
	Notifications               awsdynamodb.Table
	DocusignRequests            awsdynamodb.Table
	Expenses                    awsdynamodb.Table
	Invoices                    awsdynamodb.Table
	LoanLoc                     awsdynamodb.Table
	LinesOfCredit               awsdynamodb.Table
	CaseCounselRelationships    awsdynamodb.Table
	CaseFinancialsCurrent       awsdynamodb.Table
	CaseUnderwritings           awsdynamodb.Table
	DocketReviewCaseDetails     awsdynamodb.Table
	BorrowerValueConfigSettings awsdynamodb.Table
	DiscountRateMatrix          awsdynamodb.Table
	MassTortGeneral             awsdynamodb.Table
	MassTortPlaintiffs          awsdynamodb.Table
	SettlementSuccessTracking   awsdynamodb.Table
	ValuationsSummary           awsdynamodb.Table
	VarianceTracking            awsdynamodb.Table

	// LegacyStatements is only created for the dev suffix.
	LegacyStatements awsdynamodb.Table

	order []TableKey
	byKey map[TableKey]awsdynamodb.Table
}

func (t *Tables) Get(key TableKey) (awsdynamodb.Table, bool) {
	table, ok := t.byKey[key]
	return table, ok
}

// All returns the catalogue tables in creation order.
func (t *Tables) All() []awsdynamodb.ITable {
	out := make([]awsdynamodb.ITable, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.byKey[key])
	}
	return out
}

func NewTables(stack constructs.Construct, cfg *config.EnvironmentConfig) *Tables {
	names := cfg.ResourceNames()
	t := &Tables{byKey: map[TableKey]awsdynamodb.Table{}}

	for _, spec := range Catalogue(cfg.Integrations.DocusignRequestsTableName) {
		table := awsdynamodb.NewTable(stack, jsii.String(spec.ID), &awsdynamodb.TableProps{
			TableName:           jsii.String(names.Table(spec.Domain, spec.Name)),
			PartitionKey:        attribute(spec.PartitionKey),
			SortKey:             optionalAttribute(spec.SortKey),
			BillingMode:         awsdynamodb.BillingMode_PAY_PER_REQUEST,
			PointInTimeRecovery: jsii.Bool(true),
			RemovalPolicy:       awscdk.RemovalPolicy_RETAIN,
			Stream:              awsdynamodb.StreamViewType_NEW_AND_OLD_IMAGES,
		})
		for _, index := range spec.Indexes {
			table.AddGlobalSecondaryIndex(&awsdynamodb.GlobalSecondaryIndexProps{
				IndexName:      jsii.String(index.Name),
				PartitionKey:   attribute(index.PartitionKey),
				SortKey:        optionalAttribute(index.SortKey),
				ProjectionType: awsdynamodb.ProjectionType_ALL,
			})
		}
		t.order = append(t.order, spec.Key)
		t.byKey[spec.Key] = table
	}
	t.assignFields()

	// packaged code still reads the legacy statements table by name
	if cfg.Suffix() == "dev" {
		t.LegacyStatements = awsdynamodb.NewTable(stack, jsii.String("LegacyStatementsStaging"), &awsdynamodb.TableProps{
			TableName:           jsii.String(LegacyStatementsTableName),
			PartitionKey:        attribute(str("company_id")),
			SortKey:             attribute(str("date")),
			BillingMode:         awsdynamodb.BillingMode_PAY_PER_REQUEST,
			PointInTimeRecovery: jsii.Bool(true),
			RemovalPolicy:       awscdk.RemovalPolicy_DESTROY,
		})
	} else {
		awscdk.Annotations_Of(stack).AddInfo(jsii.String("Skipping legacy staging statements table creation; table is shared across environments."))
	}

	awscdk.NewCfnOutput(stack, jsii.String("AccountsTableName"), &awscdk.CfnOutputProps{
		Value:       t.Accounts.TableName(),
		Description: jsii.String("Accounts DynamoDB Table Name"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("CompaniesTableName"), &awscdk.CfnOutputProps{
		Value:       t.Companies.TableName(),
		Description: jsii.String("Companies DynamoDB Table Name"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("UsersTableName"), &awscdk.CfnOutputProps{
		Value:       t.Users.TableName(),
		Description: jsii.String("Users DynamoDB Table Name"),
	})

	return t
}

func (t *Tables) assignFields() {
	fields := map[TableKey]*awsdynamodb.Table{
		Accounts:                    &t.Accounts,
		Companies:                   &t.Companies,
		Users:                       &t.Users,
		Loans:                       &t.Loans,
		Transactions:                &t.Transactions,
		Payments:                    &t.Payments,
		Statements:                  &t.Statements,
		Cases:                       &t.Cases,
		MonthlyReportings:           &t.MonthlyReportings,
		AnnualReportings:            &t.AnnualReportings,
		OtpCodes:                    &t.OtpCodes,
		PlaidItems:                  &t.PlaidItems,
		Files:                       &t.Files,
		Banks:                       &t.Banks,
		AchBatches:                  &t.AchBatches,
		LedgerEntries:               &t.LedgerEntries,
		Approvals:                   &t.Approvals,
		Notifications:               &t.Notifications,
		DocusignRequests:            &t.DocusignRequests,
		Expenses:                    &t.Expenses,
		Invoices:                    &t.Invoices,
		LoanLoc:                     &t.LoanLoc,
		LinesOfCredit:               &t.LinesOfCredit,
		CaseCounselRelationships:    &t.CaseCounselRelationships,
		CaseFinancialsCurrent:       &t.CaseFinancialsCurrent,
		CaseUnderwritings:           &t.CaseUnderwritings,
		DocketReviewCaseDetails:     &t.DocketReviewCaseDetails,
		BorrowerValueConfigSettings: &t.BorrowerValueConfigSettings,
		DiscountRateMatrix:          &t.DiscountRateMatrix,
		MassTortGeneral:             &t.MassTortGeneral,
		MassTortPlaintiffs:          &t.MassTortPlaintiffs,
		SettlementSuccessTracking:   &t.SettlementSuccessTracking,
		ValuationsSummary:           &t.ValuationsSummary,
		VarianceTracking:            &t.VarianceTracking,
	}
	for key, field := range fields {
		*field = t.byKey[key]
	}
}

func attribute(a Attribute) *awsdynamodb.Attribute {
	return &awsdynamodb.Attribute{Name: jsii.String(a.Name), Type: a.Type}
}

func optionalAttribute(a *Attribute) *awsdynamodb.Attribute {
	if a == nil {
		return nil
	}
	return attribute(*a)
}
