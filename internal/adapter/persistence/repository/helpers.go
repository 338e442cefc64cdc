package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_insufilm/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// itemTimeLayout is fixed width so that stored timestamps sort and compare
// lexicographically (BETWEEN filters on at/start rely on it).
const itemTimeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(itemTimeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(itemTimeLayout, s)
	if err != nil {
		// Rows written before the fixed layout used RFC3339Nano.
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC()
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// Money is stored as a decimal string to keep exact cents.
func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(s string) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) (*types.ConditionalCheckFailedException, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe, true
	}
	return nil, false
}

// putNew writes item only when no row with the same id exists.
func putNew(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if _, ok := isConditionFailed(err); ok {
		return fmt.Errorf("%s item already exists: %w", table, entities.ErrConflict)
	}
	return err
}

// putExisting overwrites an existing row. found is false when the row is gone.
func putExisting(ctx context.Context, ddb *dynamodb.Client, table string, item any) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if _, ok := isConditionFailed(err); ok {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// putVersioned overwrites the row only while its stored version still equals
// expected. A missing row reports found=false; a different version reports
// entities.ErrVersionConflict.
func putVersioned(ctx context.Context, ddb *dynamodb.Client, table string, item any, expected int64) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expected)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if cfe, ok := isConditionFailed(err); ok {
		if len(cfe.Item) == 0 {
			return false, nil
		}
		return true, entities.ErrVersionConflict
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// getItem loads one row into out. found is false when the id is unknown.
func getItem(ctx context.Context, ddb *dynamodb.Client, table, id string, out any) (found bool, err error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func deleteItem(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	return err
}

// scanAll reads every page of a scan and decodes each row into T.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, input *dynamodb.ScanInput) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, input)
	out := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryIndex reads every page of an equality query on a GSI.
func queryIndex[T any](ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	out := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// scanBetween filters a scan on a fixed-width timestamp attribute.
func scanBetween[T any](ctx context.Context, ddb *dynamodb.Client, table, attr string, start, end time.Time) ([]T, error) {
	return scanAll[T](ctx, ddb, &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("#t BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#t": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatTime(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTime(end)},
		},
	})
}

func mapItems[I, E any](items []I, conv func(I) E) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return out
}
