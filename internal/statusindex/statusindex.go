// Package statusindex backs the custom resource that adds the status GSI to
// an existing monthly reportings table.
package statusindex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

var ErrTimeout = errors.New("timed out waiting for index to become ACTIVE")

// DynamoDB is the subset of *dynamodb.Client the handler uses.
type DynamoDB interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error)
}

type Config struct {
	TableName    string
	IndexName    string
	HashKey      string
	RangeKey     string
	PollInterval time.Duration
	Timeout      time.Duration
}

// Load reads TABLE_NAME (required), INDEX_NAME, HASH_KEY and RANGE_KEY.
func Load() (*Config, error) {
	cfg := &Config{
		TableName:    os.Getenv("TABLE_NAME"),
		IndexName:    getenv("INDEX_NAME", "StatusIndex"),
		HashKey:      getenv("HASH_KEY", "status"),
		RangeKey:     getenv("RANGE_KEY", "month"),
		PollInterval: 10 * time.Second,
		Timeout:      15 * time.Minute,
	}
	if cfg.TableName == "" {
		return nil, fmt.Errorf("TABLE_NAME is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Response is returned to the custom resource provider framework.
type Response struct {
	PhysicalResourceID string            `json:"PhysicalResourceId"`
	Data               map[string]string `json:"Data,omitempty"`
}

type Handler struct {
	DynamoDB DynamoDB
	Config   Config
	Logger   logrus.FieldLogger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewHandler(client DynamoDB, cfg Config, logger logrus.FieldLogger) *Handler {
	return &Handler{
		DynamoDB: client,
		Config:   cfg,
		Logger:   logger,
		now:      time.Now,
		sleep:    sleep,
	}
}

func (h *Handler) physicalID() string {
	return h.Config.TableName + "-" + h.Config.IndexName
}

// Handle creates the index on Create and Update and waits until it is
// ACTIVE. Delete leaves the table untouched.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (Response, error) {
	log := h.Logger.WithFields(logrus.Fields{
		"operation":   "ensureStatusIndex",
		"requestType": event.RequestType,
		"table":       h.Config.TableName,
		"index":       h.Config.IndexName,
	})
	log.Info("custom resource event received")

	if event.RequestType == cfn.RequestDelete {
		return Response{PhysicalResourceID: h.physicalID()}, nil
	}

	if err := h.ensureIndex(ctx, log); err != nil {
		return Response{}, err
	}
	if err := h.waitForIndex(ctx, log); err != nil {
		return Response{}, err
	}

	return Response{
		PhysicalResourceID: h.physicalID(),
		Data: map[string]string{
			"IndexName": h.Config.IndexName,
			"TableName": h.Config.TableName,
			"Status":    "ACTIVE",
		},
	}, nil
}

func (h *Handler) indexStatus(ctx context.Context) (types.IndexStatus, bool, error) {
	out, err := h.DynamoDB.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(h.Config.TableName),
	})
	if err != nil {
		return "", false, fmt.Errorf("describe table %s: %w", h.Config.TableName, err)
	}
	if out.Table == nil {
		return "", false, nil
	}
	for _, index := range out.Table.GlobalSecondaryIndexes {
		if aws.ToString(index.IndexName) == h.Config.IndexName {
			return index.IndexStatus, true, nil
		}
	}
	return "", false, nil
}

func (h *Handler) ensureIndex(ctx context.Context, log logrus.FieldLogger) error {
	_, exists, err := h.indexStatus(ctx)
	if err != nil {
		return err
	}
	if exists {
		log.Info("index already exists")
		return nil
	}

	log.Info("creating index")
	_, err = h.DynamoDB.UpdateTable(ctx, &dynamodb.UpdateTableInput{
		TableName: aws.String(h.Config.TableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(h.Config.HashKey), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(h.Config.RangeKey), AttributeType: types.ScalarAttributeTypeS},
		},
		GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{
			{
				Create: &types.CreateGlobalSecondaryIndexAction{
					IndexName: aws.String(h.Config.IndexName),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String(h.Config.HashKey), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String(h.Config.RangeKey), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create index %s: %w", h.Config.IndexName, err)
	}
	return nil
}

func (h *Handler) waitForIndex(ctx context.Context, log logrus.FieldLogger) error {
	deadline := h.now().Add(h.Config.Timeout)
	for h.now().Before(deadline) {
		status, exists, err := h.indexStatus(ctx)
		if err != nil {
			return err
		}
		if !exists {
			status = types.IndexStatusCreating
		}
		log.WithField("status", status).Debug("index status")
		if status == types.IndexStatusActive {
			return nil
		}
		if err := h.sleep(ctx, h.Config.PollInterval); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrTimeout, h.Config.IndexName)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
