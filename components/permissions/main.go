package permissions

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
)

var queryScanActions = []string{"dynamodb:Query", "dynamodb:Scan"}

func ResourceWithIndexes(table awsdynamodb.ITable) []*string {
	return []*string{table.TableArn(), jsii.String(*table.TableArn() + "/index/*")}
}

func AddQueryScan(fn awslambda.IFunction, table awsdynamodb.ITable) {
	fn.AddToRolePolicy(Statement(queryScanActions, ResourceWithIndexes(table)...))
}

func GrantReadWithQuery(fn awslambda.IFunction, tables ...awsdynamodb.ITable) {
	for _, table := range tables {
		table.GrantReadData(fn)
		AddQueryScan(fn, table)
	}
}

func GrantReadWriteWithQuery(fn awslambda.IFunction, tables ...awsdynamodb.ITable) {
	for _, table := range tables {
		table.GrantReadWriteData(fn)
		AddQueryScan(fn, table)
	}
}

func TableArn(region, account, tableName string) *string {
	return jsii.String(fmt.Sprintf("arn:aws:dynamodb:%s:%s:table/%s", region, account, tableName))
}

// TableArns builds table and index ARNs for tables this app does not own.
func TableArns(region, account string, tableNames ...string) []*string {
	arns := make([]*string, 0, len(tableNames)*2)
	for _, name := range tableNames {
		arn := TableArn(region, account, name)
		arns = append(arns, arn, jsii.String(*arn+"/index/*"))
	}
	return arns
}

// Statement is a small shorthand for allow statements.
func Statement(actions []string, resources ...*string) awsiam.PolicyStatement {
	return awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:    awsiam.Effect_ALLOW,
		Actions:   jsii.Strings(actions...),
		Resources: &resources,
	})
}
