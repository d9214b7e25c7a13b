package stacks

import (
	"fmt"

	"bebco_infra/components/auth"
	"bebco_infra/components/data"
	"bebco_infra/components/shared"
	"bebco_infra/components/storage"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

type AuthStack struct {
	awscdk.Stack
	Auth *auth.Auth
}

// NewAuthStack panics when the password policy is invalid.
func NewAuthStack(scope constructs.Construct, id string, props Props) *AuthStack {
	stack := newStack(scope, id, props, "Cognito User Pool and Identity Pool for Bebco")
	a, err := auth.NewAuth(stack, props.Config)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}
	return &AuthStack{Stack: stack, Auth: a}
}

type StorageStack struct {
	awscdk.Stack
	Storage *storage.Storage
}

func NewStorageStack(scope constructs.Construct, id string, props Props) *StorageStack {
	stack := newStack(scope, id, props, "S3 buckets for documents, statements, and deployments")
	return &StorageStack{Stack: stack, Storage: storage.NewStorage(stack, props.Config.ResourceNames())}
}

type DataStack struct {
	awscdk.Stack
	Tables *data.Tables
}

func NewDataStack(scope constructs.Construct, id string, props Props) *DataStack {
	stack := newStack(scope, id, props, "DynamoDB tables for all bebco data")
	return &DataStack{Stack: stack, Tables: data.NewTables(stack, props.Config)}
}

type SharedServicesStack struct {
	awscdk.Stack
	Textract *shared.Textract
}

// NewSharedServicesStack panics when Textract is not configured.
func NewSharedServicesStack(scope constructs.Construct, id string, props Props, storageStack *StorageStack) *SharedServicesStack {
	stack := newStack(scope, id, props, "Shared services (Textract role and results topic)")
	textract, err := shared.NewTextract(stack, props.Config, storageStack.Storage.Documents)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}
	stack.AddDependency(storageStack.Stack, nil)
	return &SharedServicesStack{Stack: stack, Textract: textract}
}
