package domains

import "bebco_infra/components/data"

func DocuSign(ctx *Context) Domain {
	in := ctx.Config.Integrations
	secrets := []SecretRef{
		{ID: "DocusignSecret", Name: in.DocusignSecretName},
		{ID: "DocusignSharepointSecret", Name: in.SharepointSecretName},
	}
	common := map[string]string{
		"REGION":                 ctx.Region,
		"DOCUSIGN_SECRET_NAME":   in.DocusignSecretName,
		"SHAREPOINT_SECRET_NAME": in.SharepointSecretName,
	}
	if in.DocusignHost != "" {
		common["DOCUSIGN_HOST"] = in.DocusignHost
	}
	if in.DocusignLegacySecretName != "" {
		common["DOCUSIGN_LEGACY_SECRET_NAME"] = in.DocusignLegacySecretName
	}

	fn := func(key Key, id, source string) FunctionSpec {
		return FunctionSpec{
			Key: key, ID: id, Source: source,
			Env:     common,
			Tables:  writes(data.DocusignRequests),
			Secrets: secrets,
		}
	}

	return Domain{
		Name: "DocuSign",
		Functions: []FunctionSpec{
			fn(DocusignSendEnvelope, "DocuSignSendEnvelope", "bebco-docusign-send_envelope"),
			fn(DocusignGetEnvelope, "DocuSignGetEnvelope", "bebco-docusign-get_envelope"),
			fn(DocusignResendEnvelope, "DocuSignResendEnvelope", "bebco-docusign-resend_envelope"),
			fn(DocusignWebhookComplete, "DocuSignWebhookComplete", "bebco-docusign-webhook_complete"),
			fn(DocusignTemplatesSync, "DocuSignTemplatesSync", "bebco-docusign-templates_sync"),
			fn(DocusignLegacySendEnvelope, "DocuSignLegacySendEnvelope", "bebco-docusignLegacy-send-envelope"),
		},
		Outputs: []Output{
			{ID: "DocuSignSendEnvelopeArn", Key: DocusignSendEnvelope},
		},
	}
}
