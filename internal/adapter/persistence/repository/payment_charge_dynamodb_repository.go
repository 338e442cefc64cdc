package repository

import (
	"context"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const paymentsOrderIDIndex = "order_id-index"

type paymentChargeItem struct {
	ID                 string                 `dynamodbav:"id"`
	OrderID            string                 `dynamodbav:"order_id"`
	Amount             string                 `dynamodbav:"amount"`
	Method             string                 `dynamodbav:"method"`
	Status             string                 `dynamodbav:"status"`
	CashEntryID        string                 `dynamodbav:"cash_entry_id,omitempty"`
	Date               string                 `dynamodbav:"date"`
	By                 string                 `dynamodbav:"by"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentChargeDynamoRepository persists provider charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type PaymentChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentChargeRepository = (*PaymentChargeDynamoRepository)(nil)

func NewPaymentChargeDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentChargeDynamoRepository {
	return &PaymentChargeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentChargeDynamoRepository) Create(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentChargeItem(c)); err != nil {
		return entities.PaymentCharge{}, err
	}
	return c, nil
}

func (r *PaymentChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentCharge, error) {
	var it paymentChargeItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PaymentCharge{}, err
	}
	return fromPaymentChargeItem(it), nil
}

func (r *PaymentChargeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentCharge, error) {
	items, err := queryIndex[paymentChargeItem](ctx, r.ddb, r.tableName, paymentsOrderIDIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromPaymentChargeItem), nil
}

func toPaymentChargeItem(c entities.PaymentCharge) paymentChargeItem {
	return paymentChargeItem{
		ID:                 c.ID,
		OrderID:            c.OrderID,
		Amount:             decimalToString(c.Amount),
		Method:             string(c.Method),
		Status:             string(c.Status),
		CashEntryID:        c.CashEntryID,
		Date:               formatTime(c.Date),
		By:                 c.By,
		ProviderPayload:    c.ProviderPayload,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func fromPaymentChargeItem(it paymentChargeItem) entities.PaymentCharge {
	c := entities.PaymentCharge{
		ID:              it.ID,
		OrderID:         it.OrderID,
		Amount:          parseDecimal(it.Amount),
		Method:          entities.PaymentMethod(it.Method),
		Status:          entities.ChargeStatus(it.Status),
		CashEntryID:     it.CashEntryID,
		Date:            parseTime(it.Date),
		By:              it.By,
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		c.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return c
}
