package repository

import (
	"context"
	"time"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const scheduleInstallerIDIndex = "installer_id-index"

type scheduleBlockItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Start       string `dynamodbav:"start"`
	End         string `dynamodbav:"end"`
	InstallerID string `dynamodbav:"installer_id,omitempty"`
	OrderID     string `dynamodbav:"order_id,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

// ScheduleDynamoRepository persists installer schedule blocks in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: installer_id-index (PK: installer_id)

type ScheduleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduleRepository = (*ScheduleDynamoRepository)(nil)

func NewScheduleDynamoRepository(ddb *dynamodb.Client, tableName string) *ScheduleDynamoRepository {
	return &ScheduleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ScheduleDynamoRepository) Create(ctx context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toScheduleBlockItem(b)); err != nil {
		return entities.ScheduleBlock{}, err
	}
	return b, nil
}

func (r *ScheduleDynamoRepository) GetByID(ctx context.Context, id string) (entities.ScheduleBlock, error) {
	var it scheduleBlockItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ScheduleBlock{}, err
	}
	return fromScheduleBlockItem(it), nil
}

func (r *ScheduleDynamoRepository) List(ctx context.Context) ([]entities.ScheduleBlock, error) {
	items, err := scanAll[scheduleBlockItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromScheduleBlockItem), nil
}

func (r *ScheduleDynamoRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.ScheduleBlock, error) {
	items, err := scanBetween[scheduleBlockItem](ctx, r.ddb, r.tableName, "start", start, end)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromScheduleBlockItem), nil
}

func (r *ScheduleDynamoRepository) ListByInstaller(ctx context.Context, installerID string) ([]entities.ScheduleBlock, error) {
	items, err := queryIndex[scheduleBlockItem](ctx, r.ddb, r.tableName, scheduleInstallerIDIndex, "installer_id", installerID)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromScheduleBlockItem), nil
}

func (r *ScheduleDynamoRepository) Update(ctx context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toScheduleBlockItem(b))
	if err != nil || !found {
		return entities.ScheduleBlock{}, err
	}
	return b, nil
}

func (r *ScheduleDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toScheduleBlockItem(b entities.ScheduleBlock) scheduleBlockItem {
	return scheduleBlockItem{
		ID:          b.ID,
		Title:       b.Title,
		Start:       formatTime(b.Start),
		End:         formatTime(b.End),
		InstallerID: b.InstallerID,
		OrderID:     b.OrderID,
		Notes:       b.Notes,
	}
}

func fromScheduleBlockItem(it scheduleBlockItem) entities.ScheduleBlock {
	return entities.ScheduleBlock{
		ID:          it.ID,
		Title:       it.Title,
		Start:       parseTime(it.Start),
		End:         parseTime(it.End),
		InstallerID: it.InstallerID,
		OrderID:     it.OrderID,
		Notes:       it.Notes,
	}
}
