package stacks

import (
	"bebco_infra/components/domains"
	"bebco_infra/components/function"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Foundations are the stacks a domain stack may build against. Any of them
// may be nil when no domain needs it.
type Foundations struct {
	Auth    *AuthStack
	Storage *StorageStack
	Data    *DataStack
	Shared  *SharedServicesStack
}

type DomainStackProps struct {
	Props
	Entry       domains.Entry
	Manifest    function.Manifest
	Foundations Foundations
}

type DomainStack struct {
	awscdk.Stack
	Entry    domains.Entry
	Registry *domains.Registry
}

func NewDomainStack(scope constructs.Construct, id string, props DomainStackProps) *DomainStack {
	f := props.Foundations
	deps := domains.Deps{Config: props.Config, Manifest: props.Manifest}
	if f.Data != nil {
		deps.Tables = f.Data.Tables
	}
	if f.Storage != nil {
		deps.Storage = f.Storage.Storage
	}
	if f.Shared != nil {
		deps.Textract = f.Shared.Textract
	}
	if f.Auth != nil {
		deps.Auth = f.Auth.Auth
	}

	// the description counts functions, which needs a context bound to the stack
	stack := newStack(scope, id, props.Props, "")
	d := props.Entry.Definition(domains.NewContext(stack, deps))
	stack.TemplateOptions().SetDescription(jsii.String(props.Entry.Description(len(d.Functions))))

	registry := domains.Build(stack, d, deps)

	needs := props.Entry.Needs
	if needs&domains.NeedsData != 0 && f.Data != nil {
		stack.AddDependency(f.Data.Stack, nil)
	}
	if needs&domains.NeedsStorage != 0 && f.Storage != nil {
		stack.AddDependency(f.Storage.Stack, nil)
	}
	if needs&domains.NeedsAuth != 0 && f.Auth != nil {
		stack.AddDependency(f.Auth.Stack, nil)
	}
	if needs&domains.NeedsTextract != 0 && f.Shared != nil {
		stack.AddDependency(f.Shared.Stack, nil)
	}

	return &DomainStack{Stack: stack, Entry: props.Entry, Registry: registry}
}
