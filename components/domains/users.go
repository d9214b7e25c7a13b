package domains

import (
	"bebco_infra/components/data"
	"bebco_infra/components/permissions"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/jsii-runtime-go"
)

func adminAuthPolicies(ctx *Context) []awsiam.PolicyStatement {
	return []awsiam.PolicyStatement{
		permissions.Statement([]string{
			"cognito-idp:AdminGetUser",
			"cognito-idp:AdminCreateUser",
			"cognito-idp:AdminSetUserPassword",
			"cognito-idp:AdminUpdateUserAttributes",
			"cognito-idp:ListUsers",
		}, jsii.String(ctx.Auth.UserPoolArn)),
		permissions.Statement([]string{
			"dynamodb:GetItem",
			"dynamodb:PutItem",
			"dynamodb:UpdateItem",
			"dynamodb:Scan",
			"dynamodb:Query",
		}, jsii.String(ctx.TableArn(data.Users))),
	}
}

func Users(ctx *Context) Domain {
	sendgrid := SecretRef{ID: "SendgridSecret", Name: ctx.Config.Integrations.SendgridSecretName}

	common := map[string]string{
		"REGION":              ctx.Region,
		"USERS_TABLE":         ctx.TableName(data.Users),
		"OTP_TABLE":           ctx.TableName(data.OtpCodes),
		"USER_POOL_ID":        ctx.Auth.UserPoolID,
		"USER_POOL_CLIENT_ID": ctx.Auth.UserPoolClientID,
		"IDENTITY_POOL_ID":    ctx.Auth.IdentityPoolID,
	}
	extended := env(common, map[string]string{
		"ACCOUNTS_TABLE":      ctx.TableName(data.Accounts),
		"FILES_TABLE":         ctx.TableName(data.Files),
		"DOCUMENTS_S3_BUCKET": ctx.BucketName(DocumentsBucket),
		"DYNAMODB_TABLE":      ctx.TableName(data.LoanLoc),
	})
	send2fa := env(common, map[string]string{
		"ENABLE_SES":      "false",
		"SendGrid_Secret": ctx.Config.Integrations.SendgridSecretName,
	})
	usersOnly := map[string]string{
		"REGION":      ctx.Region,
		"USERS_TABLE": ctx.TableName(data.Users),
	}

	return Domain{
		Name: "Users",
		Functions: []FunctionSpec{
			{
				Key: UsersCreate, ID: "UsersCreate", Source: "bebco-staging-users-create",
				Env:     extended,
				Tables:  join(writes(data.Users), reads(data.Accounts, data.Files)),
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: UsersGet, ID: "UsersGet", Source: "bebco-staging-users-get",
				Env:     extended,
				Tables:  reads(data.Users, data.Accounts, data.Files),
				Buckets: readBucket(DocumentsBucket),
			},
			{
				Key: UsersList, ID: "UsersList", Source: "bebco-staging-users-list",
				Env:    extended,
				Tables: reads(data.Users, data.LoanLoc),
			},
			{
				Key: UsersUpdate, ID: "UsersUpdate", Source: "bebco-staging-users-update",
				Env:    extended,
				Tables: join(writes(data.Users), reads(data.Accounts)),
			},
			{
				Key: UsersDelete, ID: "UsersDelete", Source: "bebco-staging-users-delete",
				Env:    common,
				Tables: writes(data.Users, data.OtpCodes),
			},
			{
				Key: UsersProfile, ID: "UsersProfile", Source: "bebco-staging-users-profile",
				Env:    extended,
				Tables: reads(data.Users),
			},
			{
				Key: UsersSend2fa, ID: "UsersSend2fa", Source: "bebco-staging-users-send2fa",
				Env:     send2fa,
				Tables:  join(reads(data.Users), writes(data.OtpCodes)),
				Secrets: []SecretRef{sendgrid},
			},
			{
				Key: UsersVerify2fa, ID: "UsersVerify2fa", Source: "bebco-staging-users-verify2fa",
				Env:    extended,
				Tables: join(reads(data.Users), writes(data.OtpCodes)),
			},
			{
				Key: UsersPasswordStart, ID: "UsersPasswordStart", Source: "bebco-staging-users-password-start",
				Env:    common,
				Tables: reads(data.Users),
			},
			{
				Key: UsersPassword, ID: "UsersPassword", Source: "bebco-staging-users-password",
				Env:    extended,
				Tables: reads(data.Users, data.OtpCodes),
			},
			{
				Key: UsersPasswordComplete, ID: "UsersPasswordComplete", Source: "bebco-staging-users-password-complete",
				Env:    common,
				Tables: reads(data.Users),
			},
			{
				Key: AuthCheckUserStatus, ID: "AuthCheckUserStatus", Source: "bebco-staging-auth-check-user-status",
				Env:    common,
				Tables: reads(data.Users),
			},

			// 管理ポータル
			{
				Key: AdminUsersSend2fa, ID: "AdminUsersSend2fa", Source: "bebco-admin-users-send2fa",
				Env:     send2fa,
				Tables:  join(reads(data.Users), writes(data.OtpCodes)),
				Secrets: []SecretRef{sendgrid},
			},
			{
				Key: AdminUsersVerify2fa, ID: "AdminUsersVerify2fa", Source: "bebco-admin-users-verify2fa",
				Env:    common,
				Tables: join(reads(data.Users), writes(data.OtpCodes)),
			},
			{
				Key: AdminUsersChangePassword, ID: "AdminUsersChangePassword", Source: "bebco-admin-users-change-password",
				Env:    common,
				Tables: reads(data.Users),
			},
			{
				Key: AdminUsersUpdateName, ID: "AdminUsersUpdateName", Source: "bebco-admin-users-update-name",
				Env:    common,
				Tables: writes(data.Users),
			},
			{
				Key: AdminAuthCheckUserStatus, ID: "AdminAuthCheckUserStatus", Source: "bebco-admin-auth-check-user-status",
				Env:      common,
				Tables:   writes(data.Users),
				Policies: adminAuthPolicies(ctx),
			},
			{
				Key: AdminUsersMfaStatus, ID: "AdminUsersMfaStatus", Source: "bebco-admin-users-mfa-status",
				Env:    common,
				Tables: reads(data.Users),
			},
			{
				Key: AdminUsersMfaTotpBegin, ID: "AdminUsersMfaTotpBegin", Source: "bebco-admin-users-mfa-totp-begin",
				Env:    usersOnly,
				Tables: writes(data.Users),
			},
			{
				Key: AdminUsersMfaTotpVerify, ID: "AdminUsersMfaTotpVerify", Source: "bebco-admin-users-mfa-totp-verify",
				Env:    common,
				Tables: reads(data.Users),
			},
			{
				Key: AdminUsersMfaTotpVerifyLogin, ID: "AdminUsersMfaTotpVerifyLogin", Source: "bebco-admin-users-mfa-totp-verify-login",
				Env:    usersOnly,
				Tables: reads(data.Users),
			},
		},
		Outputs: []Output{
			{ID: "UsersCreateArn", Key: UsersCreate, Description: "ARN of the Users Create function"},
			{ID: "UsersGetArn", Key: UsersGet, Description: "ARN of the Users Get function"},
		},
	}
}
