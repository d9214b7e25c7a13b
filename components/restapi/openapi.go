package restapi

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"bebco_infra/components/function"
	"bebco_infra/components/naming"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"sigs.k8s.io/yaml"
)

// Document is a decoded OpenAPI document.
type Document map[string]interface{}

// LoadOpenAPI reads an exported API definition in JSON or YAML.
func LoadOpenAPI(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode openapi document %s: %w", path, err)
	}
	if _, ok := doc["paths"].(map[string]interface{}); !ok {
		return nil, fmt.Errorf("openapi document %s has no paths", path)
	}
	return doc, nil
}

type PatchTarget struct {
	Title   string
	Version string
	Region  string
	Account string
	// Suffix is appended to bebco function names unless it is "dev".
	Suffix      string
	UserPoolArn string
}

const SecuritySchemeName = "bebcodev-cognito"

var bebcoFunctionPattern = regexp.MustCompile(`function:(bebco[^/"']+)`)

// PatchDocument moves an exported staging definition to the target
// environment. The input is not modified.
func PatchDocument(doc Document, t PatchTarget) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	s := string(raw)
	s = strings.ReplaceAll(s, function.SourceRegion, t.Region)
	s = strings.ReplaceAll(s, "staging", "dev")
	s = strings.ReplaceAll(s, ":"+function.SourceAccount+":", ":"+t.Account+":")
	if t.Suffix != "" && t.Suffix != function.DefaultSuffix {
		s = bebcoFunctionPattern.ReplaceAllStringFunc(s, func(m string) string {
			if strings.HasSuffix(m, "-"+t.Suffix) {
				return m
			}
			return m + "-" + t.Suffix
		})
	}

	var out Document
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode patched openapi document: %w", err)
	}

	info, _ := out["info"].(map[string]interface{})
	if info == nil {
		info = map[string]interface{}{}
		out["info"] = info
	}
	info["title"] = t.Title
	info["version"] = t.Version

	components, _ := out["components"].(map[string]interface{})
	if components == nil {
		components = map[string]interface{}{}
		out["components"] = components
	}
	schemes, _ := components["securitySchemes"].(map[string]interface{})
	if schemes == nil {
		schemes = map[string]interface{}{}
		components["securitySchemes"] = schemes
	}
	// the exported staging scheme has been renamed to this one above
	schemes[SecuritySchemeName] = map[string]interface{}{
		"type":                         "apiKey",
		"name":                         "Authorization",
		"in":                           "header",
		"x-amazon-apigateway-authtype": "cognito_user_pools",
		"x-amazon-apigateway-authorizer": map[string]interface{}{
			"type":         "cognito_user_pools",
			"providerARNs": []interface{}{t.UserPoolArn},
		},
	}
	return out, nil
}

var integrationFunctionPattern = regexp.MustCompile(`function:([^/]+)`)

// ReferencedFunctions returns the sorted function names used by Lambda
// integrations.
func ReferencedFunctions(doc Document) []string {
	paths, _ := doc["paths"].(map[string]interface{})
	set := map[string]bool{}
	for _, item := range paths {
		methods, _ := item.(map[string]interface{})
		for method, op := range methods {
			if method == "parameters" {
				continue
			}
			operation, _ := op.(map[string]interface{})
			integration, _ := operation["x-amazon-apigateway-integration"].(map[string]interface{})
			uri, _ := integration["uri"].(string)
			if m := integrationFunctionPattern.FindStringSubmatch(uri); m != nil {
				set[m[1]] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type GrantReport struct {
	Granted []string
	Failed  map[string]string
}

// GrantInvokes lets API Gateway invoke each named function. A failure on
// one function does not stop the others.
func GrantInvokes(scope constructs.Construct, names []string) GrantReport {
	report := GrantReport{Failed: map[string]string{}}
	principal := awsiam.NewServicePrincipal(jsii.String("apigateway.amazonaws.com"), nil)
	for _, name := range names {
		if err := grantInvoke(scope, name, principal); err != nil {
			report.Failed[name] = err.Error()
			continue
		}
		report.Granted = append(report.Granted, name)
	}
	return report
}

func grantInvoke(scope constructs.Construct, name string, principal awsiam.IPrincipal) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("grant invoke on %s: %v", name, r)
		}
	}()
	fn := awslambda.Function_FromFunctionName(scope, jsii.String("Fn-"+name), jsii.String(name))
	fn.GrantInvoke(principal)
	return nil
}

type SpecProps struct {
	Names    *naming.ResourceNames
	Domain   string
	Document Document
	// ExportName is set on the ApiEndpoint output when not empty.
	ExportName  string
	Description string
}

type SpecResult struct {
	API    awsapigateway.SpecRestApi
	Grants GrantReport
}

// NewSpecRestAPI deploys a patched OpenAPI document as a regional API.
func NewSpecRestAPI(stack constructs.Construct, id string, props SpecProps) SpecResult {
	api := awsapigateway.NewSpecRestApi(stack, jsii.String(id), &awsapigateway.SpecRestApiProps{
		RestApiName:    jsii.String(props.Names.APIGateway(props.Domain)),
		ApiDefinition:  awsapigateway.ApiDefinition_FromInline(map[string]interface{}(props.Document)),
		DeployOptions:  stageOptions(props.Names),
		CloudWatchRole: jsii.Bool(true),
		EndpointTypes:  &[]awsapigateway.EndpointType{awsapigateway.EndpointType_REGIONAL},
	})

	grants := GrantInvokes(stack, ReferencedFunctions(props.Document))

	endpoint := &awscdk.CfnOutputProps{
		Value:       api.Url(),
		Description: jsii.String(props.Description + " endpoint"),
	}
	if props.ExportName != "" {
		endpoint.ExportName = jsii.String(props.ExportName)
	}
	awscdk.NewCfnOutput(stack, jsii.String("ApiEndpoint"), endpoint)
	awscdk.NewCfnOutput(stack, jsii.String("ApiId"), &awscdk.CfnOutputProps{
		Value:       api.RestApiId(),
		Description: jsii.String(props.Description + " ID"),
	})

	return SpecResult{API: api, Grants: grants}
}
