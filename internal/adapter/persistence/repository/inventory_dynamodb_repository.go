package repository

import (
	"context"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type inventoryItem struct {
	ID                string   `dynamodbav:"id"`
	Brand             string   `dynamodbav:"brand,omitempty"`
	Tone              string   `dynamodbav:"tone"`
	Width             float64  `dynamodbav:"width"`
	TotalLength       float64  `dynamodbav:"total_length"`
	AvailableLength   float64  `dynamodbav:"available_length"`
	Cost              string   `dynamodbav:"cost"`
	Supplier          string   `dynamodbav:"supplier,omitempty"`
	Lot               string   `dynamodbav:"lot,omitempty"`
	LowStockThreshold *float64 `dynamodbav:"low_stock_threshold,omitempty"`
	Version           int64    `dynamodbav:"version"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists material rolls in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update is a conditional put on the version attribute.

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client, tableName string) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, roll entities.InventoryRoll) (entities.InventoryRoll, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toInventoryItem(roll)); err != nil {
		return entities.InventoryRoll{}, err
	}
	return roll, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryRoll, error) {
	var it inventoryItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.InventoryRoll{}, err
	}
	return fromInventoryItem(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryRoll, error) {
	items, err := scanAll[inventoryItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromInventoryItem), nil
}

// Update stores roll with Version+1 while the stored version equals
// roll.Version.
func (r *InventoryDynamoRepository) Update(ctx context.Context, roll entities.InventoryRoll) (entities.InventoryRoll, error) {
	expected := roll.Version
	roll.Version++
	found, err := putVersioned(ctx, r.ddb, r.tableName, toInventoryItem(roll), expected)
	if err != nil || !found {
		return entities.InventoryRoll{}, err
	}
	return roll, nil
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toInventoryItem(roll entities.InventoryRoll) inventoryItem {
	return inventoryItem{
		ID:                roll.ID,
		Brand:             roll.Brand,
		Tone:              roll.Tone,
		Width:             roll.Width,
		TotalLength:       roll.TotalLength,
		AvailableLength:   roll.AvailableLength,
		Cost:              decimalToString(roll.Cost),
		Supplier:          roll.Supplier,
		Lot:               roll.Lot,
		LowStockThreshold: roll.LowStockThreshold,
		Version:           roll.Version,
		CreatedAt:         formatTime(roll.CreatedAt),
		UpdatedAt:         formatTime(roll.UpdatedAt),
	}
}

func fromInventoryItem(it inventoryItem) entities.InventoryRoll {
	return entities.InventoryRoll{
		ID:                it.ID,
		Brand:             it.Brand,
		Tone:              it.Tone,
		Width:             it.Width,
		TotalLength:       it.TotalLength,
		AvailableLength:   it.AvailableLength,
		Cost:              parseDecimal(it.Cost),
		Supplier:          it.Supplier,
		Lot:               it.Lot,
		LowStockThreshold: it.LowStockThreshold,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
