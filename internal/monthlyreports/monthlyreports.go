// Package monthlyreports resolves the monthlyReportsByStatus query against
// the status index of the monthly reportings table.
package monthlyreports

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

var ErrStatusRequired = errors.New("status argument is required")

type Querier interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type Config struct {
	TableName    string
	IndexName    string
	DefaultLimit int
	MaxLimit     int
}

// Load reads MONTHLY_REPORTS_TABLE (required), MONTHLY_REPORTS_STATUS_INDEX,
// MONTHLY_REPORTS_DEFAULT_LIMIT and MONTHLY_REPORTS_MAX_LIMIT.
func Load() (*Config, error) {
	cfg := &Config{
		TableName: os.Getenv("MONTHLY_REPORTS_TABLE"),
		IndexName: os.Getenv("MONTHLY_REPORTS_STATUS_INDEX"),
	}
	if cfg.TableName == "" {
		return nil, fmt.Errorf("MONTHLY_REPORTS_TABLE is required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "StatusIndex"
	}

	var err error
	if cfg.DefaultLimit, err = intEnv("MONTHLY_REPORTS_DEFAULT_LIMIT", 1000); err != nil {
		return nil, err
	}
	if cfg.MaxLimit, err = intEnv("MONTHLY_REPORTS_MAX_LIMIT", 5000); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

// Event is the AppSync direct Lambda resolver payload. Only the arguments
// are used.
type Event struct {
	Arguments map[string]interface{} `json:"arguments"`
}

type Result struct {
	Items     []map[string]interface{} `json:"items"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

type Handler struct {
	DynamoDB Querier
	Config   Config
	Logger   logrus.FieldLogger
}

func NewHandler(client Querier, cfg Config, logger logrus.FieldLogger) *Handler {
	return &Handler{DynamoDB: client, Config: cfg, Logger: logger}
}

func (h *Handler) Handle(ctx context.Context, event Event) (*Result, error) {
	args := event.Arguments
	log := h.Logger.WithField("operation", "monthlyReportsByStatus")

	raw, _ := args["status"].(string)
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return nil, ErrStatusRequired
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(h.Config.TableName),
		IndexName:              aws.String(h.Config.IndexName),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		Limit: aws.Int32(int32(h.limit(args["limit"]))),
	}
	addFilters(input, args)

	if token, ok := args["nextToken"].(string); ok && token != "" {
		key, err := DecodeToken(token)
		if err != nil {
			log.WithError(err).Warn("ignoring invalid nextToken")
		} else {
			input.ExclusiveStartKey = key
		}
	}

	out, err := h.DynamoDB.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", h.Config.IndexName, err)
	}

	result := &Result{Items: make([]map[string]interface{}, 0, len(out.Items))}
	for _, item := range out.Items {
		converted, err := convertItem(item)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, converted)
	}
	if len(out.LastEvaluatedKey) > 0 {
		token, err := EncodeToken(out.LastEvaluatedKey)
		if err != nil {
			return nil, err
		}
		result.NextToken = &token
	}

	log.WithFields(logrus.Fields{
		"status":       status,
		"items":        len(result.Items),
		"hasNextToken": result.NextToken != nil,
	}).Info("monthly reports resolved")
	return result, nil
}

// limit honours positive integer requests up to MaxLimit.
func (h *Handler) limit(requested interface{}) int {
	if n, ok := wholeNumber(requested); ok && n > 0 {
		if n > int64(h.Config.MaxLimit) {
			return h.Config.MaxLimit
		}
		return int(n)
	}
	return h.Config.DefaultLimit
}

func addFilters(input *dynamodb.QueryInput, args map[string]interface{}) {
	var filters []string

	if year, ok := wholeNumber(args["year"]); ok {
		filters = append(filters, "#year = :year")
		input.ExpressionAttributeNames["#year"] = "year"
		input.ExpressionAttributeValues[":year"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(year, 10)}
	}

	if bank, ok := args["bank_id"].(string); ok && strings.TrimSpace(bank) != "" {
		filters = append(filters, "#bank_id = :bank_id")
		input.ExpressionAttributeNames["#bank_id"] = "bank_id"
		input.ExpressionAttributeValues[":bank_id"] = &types.AttributeValueMemberS{Value: strings.TrimSpace(bank)}
	}

	if legacy, ok := args["legacy_only"].(bool); ok && legacy {
		filters = append(filters, "#legacy = :legacy")
		input.ExpressionAttributeNames["#legacy"] = "legacy"
		input.ExpressionAttributeValues[":legacy"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	if len(filters) > 0 {
		input.FilterExpression = aws.String(strings.Join(filters, " AND "))
	}
}

// wholeNumber accepts JSON numbers without a fractional part.
func wholeNumber(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return wholeFloat(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	}
	return 0, false
}

// wholeFloat saturates at the int64 range instead of overflowing.
func wholeFloat(f float64) (int64, bool) {
	switch {
	case f != math.Trunc(f):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}

// EncodeToken is base64 of the JSON form of a LastEvaluatedKey.
func EncodeToken(key map[string]types.AttributeValue) (string, error) {
	var plain map[string]interface{}
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("decode last evaluated key: %w", err)
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("encode next token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func DecodeToken(token string) (map[string]types.AttributeValue, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode next token: %w", err)
	}
	var plain map[string]interface{}
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("decode next token: %w", err)
	}
	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("decode next token: %w", err)
	}
	return key, nil
}

func convertItem(item map[string]types.AttributeValue) (map[string]interface{}, error) {
	var out map[string]interface{}
	err := attributevalue.UnmarshalMapWithOptions(item, &out, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return convertNumbers(out).(map[string]interface{}), nil
}

// convertNumbers turns DynamoDB numbers into int64 when whole and float64
// otherwise.
func convertNumbers(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, val := range x {
			x[k] = convertNumbers(val)
		}
		return x
	case []interface{}:
		for i, val := range x {
			x[i] = convertNumbers(val)
		}
		return x
	case []attributevalue.Number:
		set := make([]interface{}, len(x))
		for i, n := range x {
			set[i] = convertNumber(n)
		}
		return set
	case attributevalue.Number:
		return convertNumber(x)
	}
	return v
}

func convertNumber(n attributevalue.Number) interface{} {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(string(n), 64); err == nil {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}
	return string(n)
}
