package statusindex

import (
	"context"
	"errors"
	"testing"
	"time"

	"bebco_infra/internal/logging"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockDynamoDB reports the scripted statuses in order; an empty status means
// the index does not exist yet.
type MockDynamoDB struct {
	Statuses    []types.IndexStatus
	DescribeErr error
	Updates     []*dynamodb.UpdateTableInput
	describes   int
}

func (m *MockDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.DescribeErr != nil {
		return nil, m.DescribeErr
	}
	i := m.describes
	if i >= len(m.Statuses) {
		i = len(m.Statuses) - 1
	}
	m.describes++

	table := &types.TableDescription{TableName: params.TableName}
	if status := m.Statuses[i]; status != "" {
		table.GlobalSecondaryIndexes = []types.GlobalSecondaryIndexDescription{
			{IndexName: aws.String("OtherIndex"), IndexStatus: types.IndexStatusActive},
			{IndexName: aws.String("StatusIndex"), IndexStatus: status},
		}
	}
	return &dynamodb.DescribeTableOutput{Table: table}, nil
}

func (m *MockDynamoDB) UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error) {
	m.Updates = append(m.Updates, params)
	return &dynamodb.UpdateTableOutput{}, nil
}

func testConfig() Config {
	return Config{
		TableName:    "bebco-borrower-monthly-reportings-dev",
		IndexName:    "StatusIndex",
		HashKey:      "status",
		RangeKey:     "month",
		PollInterval: 10 * time.Second,
		Timeout:      15 * time.Minute,
	}
}

// newHandler uses a fake clock that advances on every sleep.
func newHandler(mock *MockDynamoDB) (*Handler, *int) {
	h := NewHandler(mock, testConfig(), logging.Discard())
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sleeps := 0
	h.now = func() time.Time { return clock }
	h.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		clock = clock.Add(d)
		return nil
	}
	return h, &sleeps
}

func TestHandleDelete(t *testing.T) {
	mock := &MockDynamoDB{DescribeErr: errors.New("must not be called")}
	h, _ := newHandler(mock)

	resp, err := h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestDelete})
	require.NoError(t, err)
	assert.Equal(t, "bebco-borrower-monthly-reportings-dev-StatusIndex", resp.PhysicalResourceID)
	assert.Empty(t, resp.Data)
	assert.Empty(t, mock.Updates)
}

func TestHandleCreatesMissingIndex(t *testing.T) {
	mock := &MockDynamoDB{Statuses: []types.IndexStatus{"", types.IndexStatusCreating, types.IndexStatusActive}}
	h, sleeps := newHandler(mock)

	resp, err := h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestCreate})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"IndexName": "StatusIndex",
		"TableName": "bebco-borrower-monthly-reportings-dev",
		"Status":    "ACTIVE",
	}, resp.Data)
	assert.Equal(t, 1, *sleeps)

	require.Len(t, mock.Updates, 1)
	update := mock.Updates[0]
	require.Len(t, update.GlobalSecondaryIndexUpdates, 1)
	create := update.GlobalSecondaryIndexUpdates[0].Create
	assert.Equal(t, "StatusIndex", aws.ToString(create.IndexName))
	assert.Equal(t, types.KeyTypeHash, create.KeySchema[0].KeyType)
	assert.Equal(t, "month", aws.ToString(create.KeySchema[1].AttributeName))
	assert.Equal(t, types.ProjectionTypeAll, create.Projection.ProjectionType)
	assert.Equal(t, types.ScalarAttributeTypeS, update.AttributeDefinitions[0].AttributeType)
}

func TestHandleExistingIndex(t *testing.T) {
	mock := &MockDynamoDB{Statuses: []types.IndexStatus{types.IndexStatusActive}}
	h, sleeps := newHandler(mock)

	_, err := h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestUpdate})
	require.NoError(t, err)
	assert.Empty(t, mock.Updates)
	assert.Zero(t, *sleeps)
}

func TestHandleTimeout(t *testing.T) {
	mock := &MockDynamoDB{Statuses: []types.IndexStatus{types.IndexStatusCreating}}
	h, sleeps := newHandler(mock)

	_, err := h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestCreate})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 90, *sleeps)
}

func TestHandleDescribeError(t *testing.T) {
	mock := &MockDynamoDB{DescribeErr: errors.New("access denied")}
	h, _ := newHandler(mock)

	_, err := h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestCreate})
	assert.ErrorContains(t, err, "access denied")
}

func TestLoad(t *testing.T) {
	t.Setenv("TABLE_NAME", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TABLE_NAME", "reports")
	t.Setenv("INDEX_NAME", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "StatusIndex", cfg.IndexName)
	assert.Equal(t, "status", cfg.HashKey)
	assert.Equal(t, "month", cfg.RangeKey)
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
}
