package domains

import (
	"bebco_infra/components/config"
	"bebco_infra/components/data"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
)

type TableAccess uint8

const (
	ReadData TableAccess = iota
	ReadWriteData
	StreamRead
)

type TableGrant struct {
	Table  data.TableKey
	Access TableAccess
	// WithQuery adds Query/Scan on the table and its indexes.
	WithQuery bool
}

type Bucket string

const (
	DocumentsBucket         Bucket = "documents"
	StatementsBucket        Bucket = "statements"
	ChangeTrackingBucket    Bucket = "changeTracking"
	LambdaDeploymentsBucket Bucket = "lambdaDeployments"
)

type BucketAccess uint8

const (
	BucketRead BucketAccess = iota
	BucketReadWrite
	BucketWrite
)

type BucketGrant struct {
	Bucket Bucket
	Access BucketAccess
}

// SecretRef is a secret imported by name. ID is the construct id and is
// shared by every function in the stack that references it.
type SecretRef struct {
	ID   string
	Name string
}

type FunctionSpec struct {
	Key    Key
	ID     string
	Source string

	Env      map[string]string
	Tables   []TableGrant
	Buckets  []BucketGrant
	Secrets  []SecretRef
	Topics   []awssns.ITopic
	Policies []awsiam.PolicyStatement
}

type Output struct {
	ID          string
	Key         Key
	Description string
}

type Domain struct {
	Name      string
	Functions []FunctionSpec
	Outputs   []Output
}

type AuthIDs struct {
	UserPoolID       string
	UserPoolArn      string
	UserPoolClientID string
	IdentityPoolID   string
}

// Context carries the resolved names a domain definition needs. Values are
// usually CDK tokens.
type Context struct {
	Config  *config.EnvironmentConfig
	Region  string
	Account string
	Auth    AuthIDs

	TableName  func(data.TableKey) string
	TableArn   func(data.TableKey) string
	BucketName func(Bucket) string

	TextractRoleArn  string
	TextractTopicArn string
	TextractTopic    awssns.ITopic
}

// Definition describes one domain's functions for a given context.
type Definition func(ctx *Context) Domain

func grants(access TableAccess, query bool, keys ...data.TableKey) []TableGrant {
	out := make([]TableGrant, 0, len(keys))
	for _, key := range keys {
		out = append(out, TableGrant{Table: key, Access: access, WithQuery: query})
	}
	return out
}

func reads(keys ...data.TableKey) []TableGrant      { return grants(ReadData, false, keys...) }
func writes(keys ...data.TableKey) []TableGrant     { return grants(ReadWriteData, false, keys...) }
func readsQuery(keys ...data.TableKey) []TableGrant { return grants(ReadData, true, keys...) }
func writesQuery(keys ...data.TableKey) []TableGrant {
	return grants(ReadWriteData, true, keys...)
}
func streams(keys ...data.TableKey) []TableGrant { return grants(StreamRead, false, keys...) }

func join(groups ...[]TableGrant) []TableGrant {
	var out []TableGrant
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func readBucket(b Bucket) []BucketGrant      { return []BucketGrant{{Bucket: b, Access: BucketRead}} }
func readWriteBucket(b Bucket) []BucketGrant { return []BucketGrant{{Bucket: b, Access: BucketReadWrite}} }

// env merges maps left to right into a new map.
func env(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
