package function

import (
	"fmt"

	"bebco_infra/components/config"
	"bebco_infra/components/naming"
	"bebco_infra/components/packages"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssecretsmanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Manifest is the part of the package repository the wrapper needs.
type Manifest interface {
	Lookup(name string) (packages.LambdaConfig, error)
	PackagePath(name string) string
	PackageExists(name string) bool
}

type Props struct {
	// SourceFunctionName is the artifact name in the package manifest.
	SourceFunctionName string
	// FunctionName overrides the normalized deployed name.
	FunctionName string

	Names  *naming.ResourceNames
	Config *config.EnvironmentConfig
	// Rewriter defaults to DefaultRewriter().
	Rewriter *Rewriter

	// Environment entries win over the rewritten packaged values.
	Environment map[string]string

	Layers             []awslambda.ILayerVersion
	Secrets            []awssecretsmanager.ISecret
	TopicsToPublish    []awssns.ITopic
	QueuesToSend       []awssqs.IQueue
	QueuesToConsume    []awssqs.IQueue
	AdditionalPolicies []awsiam.PolicyStatement
}

// Blueprint is everything decided before touching CDK.
type Blueprint struct {
	SourceFunctionName string
	FunctionName       string
	Runtime            string
	Handler            string
	CodePath           string
	Timeout            int
	MemorySize         int
	Environment        map[string]string
}

func Plan(props Props, manifest Manifest) (*Blueprint, error) {
	if props.Names == nil {
		return nil, fmt.Errorf("%w: %s", ErrNamesRequired, props.SourceFunctionName)
	}

	cfg, err := manifest.Lookup(props.SourceFunctionName)
	if err != nil {
		return nil, err
	}

	codePath := manifest.PackagePath(props.SourceFunctionName)
	if !manifest.PackageExists(props.SourceFunctionName) {
		return nil, fmt.Errorf("%w: %s. Run `bebcoctl packages download` first", packages.ErrPackageMissing, codePath)
	}

	if err := ValidateRuntime(cfg.Runtime); err != nil {
		return nil, err
	}

	target := Target{Names: props.Names, Config: props.Config}

	name := props.FunctionName
	if name == "" {
		name = NormalizeFunctionName(cfg.Name, target.Suffix())
	}

	rewriter := props.Rewriter
	if rewriter == nil {
		rewriter = DefaultRewriter()
	}
	env := rewriter.Rewrite(target, cfg.Environment)
	for k, v := range props.Environment {
		env[k] = v
	}

	return &Blueprint{
		SourceFunctionName: props.SourceFunctionName,
		FunctionName:       name,
		Runtime:            cfg.Runtime,
		Handler:            cfg.Handler,
		CodePath:           codePath,
		Timeout:            cfg.Timeout,
		MemorySize:         cfg.MemorySize,
		Environment:        env,
	}, nil
}

type Function struct {
	Construct constructs.Construct
	Function  awslambda.Function
	Blueprint *Blueprint
}

// New builds the function for a packaged artifact. Planning errors abort
// synth with a panic.
func New(scope constructs.Construct, id string, props Props, manifest Manifest) *Function {
	bp, err := Plan(props, manifest)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}
	runtime, err := RuntimeFor(bp.Runtime)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", id, err))
	}

	construct := constructs.NewConstruct(scope, jsii.String(id))

	var layers *[]awslambda.ILayerVersion
	if len(props.Layers) > 0 {
		layers = &props.Layers
	}

	fn := awslambda.NewFunction(construct, jsii.String("Function"), &awslambda.FunctionProps{
		FunctionName: jsii.String(bp.FunctionName),
		Runtime:      runtime,
		Handler:      jsii.String(bp.Handler),
		Code:         awslambda.Code_FromAsset(jsii.String(bp.CodePath), nil),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(float64(bp.Timeout))),
		MemorySize:   jsii.Number(float64(bp.MemorySize)),
		Environment:  StringMap(bp.Environment),
		Layers:       layers,
		Tracing:      awslambda.Tracing_ACTIVE,
	})

	for _, secret := range props.Secrets {
		secret.GrantRead(fn, nil)
	}
	for _, topic := range props.TopicsToPublish {
		topic.GrantPublish(fn)
	}
	for _, queue := range props.QueuesToSend {
		queue.GrantSendMessages(fn)
	}
	for _, queue := range props.QueuesToConsume {
		queue.GrantConsumeMessages(fn)
	}
	for _, policy := range props.AdditionalPolicies {
		fn.AddToRolePolicy(policy)
	}

	tags := awscdk.Tags_Of(fn)
	tags.Add(jsii.String("ManagedBy"), jsii.String("CDK-v2"), nil)
	tags.Add(jsii.String("Project"), jsii.String("bebco"), nil)
	tags.Add(jsii.String("SourceFunction"), jsii.String(props.SourceFunctionName), nil)

	return &Function{Construct: construct, Function: fn, Blueprint: bp}
}

func StringMap(m map[string]string) *map[string]*string {
	out := make(map[string]*string, len(m))
	for k, v := range m {
		out[k] = jsii.String(v)
	}
	return &out
}
