package domains

import "bebco_infra/components/data"

func Integrations(ctx *Context) Domain {
	common := map[string]string{
		"REGION":                 ctx.Region,
		"DOCUMENTS_S3_BUCKET":    ctx.BucketName(DocumentsBucket),
		"FILES_TABLE":            ctx.TableName(data.Files),
		"SHAREPOINT_SECRET_NAME": ctx.Config.Integrations.SharepointSecretName,
	}
	textract := map[string]string{}
	if ctx.TextractRoleArn != "" {
		textract["TEXTRACT_ROLE_ARN"] = ctx.TextractRoleArn
	}

	return Domain{
		Name: "Integrations",
		Functions: []FunctionSpec{
			// SharePoint
			{Key: SharepointSyncPortfolio, ID: "SharepointSyncPortfolio", Source: "bebco-staging-sharepoint-sync-portfolio", Env: common, Buckets: readWriteBucket(DocumentsBucket)},
			{Key: SharepointManualSync, ID: "SharepointManualSync", Source: "bebco-staging-sharepoint-manual-sync", Env: common, Buckets: readWriteBucket(DocumentsBucket)},
			{Key: SharepointSyncStatus, ID: "SharepointSyncStatus", Source: "bebco-staging-sharepoint-sync-status", Env: common},

			// ドキュメント処理
			{
				Key: AnalyzeDocuments, ID: "AnalyzeDocuments", Source: "bebco-staging-analyze-documents",
				Env:     env(common, textract),
				Tables:  writes(data.Files),
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: ProcessDocumentOcr, ID: "ProcessDocumentOcr", Source: "bebco-borrower-staging-process-document-ocr",
				Env:     env(common, textract),
				Tables:  writes(data.Files),
				Buckets: readWriteBucket(DocumentsBucket),
			},
			{Key: ExcelParser, ID: "ExcelParser", Source: "bebco-staging-excel-parser", Env: common, Buckets: readBucket(DocumentsBucket)},

			// エージェント
			{
				Key: AgentResolveCompanyTool, ID: "AgentResolveCompanyTool", Source: "bebco-agent-resolve-company-tool",
				Env: map[string]string{
					"REGION":          ctx.Region,
					"COMPANIES_TABLE": ctx.TableName(data.Companies),
				},
				Tables: reads(data.Companies),
			},
			// TODO: grant the tables the PartiQL tool is allowed to query once the allow-list is agreed
			{Key: AgentRunPartiqlTool, ID: "AgentRunPartiqlTool", Source: "bebco-agent-run-partiql-tool", Env: map[string]string{"REGION": ctx.Region}},
		},
	}
}
