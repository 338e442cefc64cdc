package repository

import (
	"context"
	"time"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const cashRefOrderIDIndex = "ref_order_id-index"

type cashEntryItem struct {
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"type"`
	Amount     string `dynamodbav:"amount"`
	Method     string `dynamodbav:"method,omitempty"`
	RefOrderID string `dynamodbav:"ref_order_id,omitempty"`
	Notes      string `dynamodbav:"notes,omitempty"`
	At         string `dynamodbav:"at"`
	By         string `dynamodbav:"by"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CashEntryDynamoRepository persists the cash ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ref_order_id-index (PK: ref_order_id)
//
// Period and type listings are filtered scans; at is stored fixed width.

type CashEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICashEntryRepository = (*CashEntryDynamoRepository)(nil)

func NewCashEntryDynamoRepository(ddb *dynamodb.Client, tableName string) *CashEntryDynamoRepository {
	return &CashEntryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CashEntryDynamoRepository) Create(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCashEntryItem(e)); err != nil {
		return entities.CashEntry{}, err
	}
	return e, nil
}

func (r *CashEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.CashEntry, error) {
	var it cashEntryItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.CashEntry{}, err
	}
	return fromCashEntryItem(it), nil
}

func (r *CashEntryDynamoRepository) List(ctx context.Context) ([]entities.CashEntry, error) {
	items, err := scanAll[cashEntryItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromCashEntryItem), nil
}

func (r *CashEntryDynamoRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.CashEntry, error) {
	items, err := scanBetween[cashEntryItem](ctx, r.ddb, r.tableName, "at", start, end)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromCashEntryItem), nil
}

func (r *CashEntryDynamoRepository) ListByType(ctx context.Context, t entities.CashEntryType) ([]entities.CashEntry, error) {
	items, err := scanAll[cashEntryItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromCashEntryItem), nil
}

func (r *CashEntryDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.CashEntry, error) {
	items, err := queryIndex[cashEntryItem](ctx, r.ddb, r.tableName, cashRefOrderIDIndex, "ref_order_id", orderID)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromCashEntryItem), nil
}

func (r *CashEntryDynamoRepository) Update(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toCashEntryItem(e))
	if err != nil || !found {
		return entities.CashEntry{}, err
	}
	return e, nil
}

func (r *CashEntryDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toCashEntryItem(e entities.CashEntry) cashEntryItem {
	return cashEntryItem{
		ID:         e.ID,
		Type:       string(e.Type),
		Amount:     decimalToString(e.Amount),
		Method:     string(e.Method),
		RefOrderID: e.RefOrderID,
		Notes:      e.Notes,
		At:         formatTime(e.At),
		By:         e.By,
		CreatedAt:  formatTime(e.CreatedAt),
	}
}

func fromCashEntryItem(it cashEntryItem) entities.CashEntry {
	return entities.CashEntry{
		ID:         it.ID,
		Type:       entities.CashEntryType(it.Type),
		Amount:     parseDecimal(it.Amount),
		Method:     entities.PaymentMethod(it.Method),
		RefOrderID: it.RefOrderID,
		Notes:      it.Notes,
		At:         parseTime(it.At),
		By:         it.By,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
