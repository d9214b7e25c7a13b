package cli

import (
	"context"
	"errors"
	"strconv"

	"bebco_infra/components/data"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TablesCmd struct {
	Counts TablesCountsCmd `cmd:"" help:"Approximate item counts of the catalogue tables"`
}

type TableCount struct {
	Key    string `json:"key" yaml:"key"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Items  int64  `json:"items" yaml:"items"`
	Bytes  int64  `json:"bytes" yaml:"bytes"`
}

type TablesCountsCmd struct{}

func (c *TablesCountsCmd) Run(env *Env) error {
	ctx := context.Background()
	clients, err := env.Clients(ctx)
	if err != nil {
		return err
	}
	counts, err := CountTables(ctx, clients.DynamoDB, env)
	if err != nil {
		return err
	}

	var total int64
	t := Table{Headers: []string{"KEY", "TABLE", "STATUS", "ITEMS"}, Data: counts}
	for _, c := range counts {
		total += c.Items
		t.Rows = append(t.Rows, []string{c.Key, c.Name, c.Status, strconv.FormatInt(c.Items, 10)})
	}
	t.Rows = append(t.Rows, []string{"", "TOTAL", "", strconv.FormatInt(total, 10)})
	return env.Print(t)
}

// CountTables describes every catalogue table. Tables that do not exist
// are reported as MISSING; any other error stops the scan.
func CountTables(ctx context.Context, client DynamoDBAPI, env *Env) ([]TableCount, error) {
	names := env.Config.ResourceNames()
	var counts []TableCount
	for _, spec := range data.Catalogue(env.Config.Integrations.DocusignRequestsTableName) {
		name := names.Table(spec.Domain, spec.Name)
		out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if errors.As(err, &notFound) {
				counts = append(counts, TableCount{Key: string(spec.Key), Name: name, Status: "MISSING"})
				continue
			}
			return nil, err
		}
		counts = append(counts, TableCount{
			Key:    string(spec.Key),
			Name:   name,
			Status: string(out.Table.TableStatus),
			Items:  aws.ToInt64(out.Table.ItemCount),
			Bytes:  aws.ToInt64(out.Table.TableSizeBytes),
		})
	}
	return counts, nil
}
