package repository

import (
	"context"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	ordersStatusIndex     = "status-index"
	ordersAssignedToIndex = "assigned_to-index"
)

type lineItemRow struct {
	ServiceID string `dynamodbav:"service_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type orderEventRow struct {
	At     string `dynamodbav:"at"`
	By     string `dynamodbav:"by"`
	Status string `dynamodbav:"status,omitempty"`
	Note   string `dynamodbav:"note,omitempty"`
}

type workOrderItem struct {
	ID                string          `dynamodbav:"id"`
	CustomerID        string          `dynamodbav:"customer_id"`
	VehicleID         string          `dynamodbav:"vehicle_id"`
	Items             []lineItemRow   `dynamodbav:"items"`
	Tone              string          `dynamodbav:"tone,omitempty"`
	RollID            string          `dynamodbav:"roll_id,omitempty"`
	MetersUsed        float64         `dynamodbav:"meters_used"`
	AssignedTo        string          `dynamodbav:"assigned_to,omitempty"`
	Status            string          `dynamodbav:"status"`
	ScheduledAt       string          `dynamodbav:"scheduled_at,omitempty"`
	FinishedAt        string          `dynamodbav:"finished_at,omitempty"`
	Discount          string          `dynamodbav:"discount"`
	Total             string          `dynamodbav:"total"`
	PaymentMethod     string          `dynamodbav:"payment_method,omitempty"`
	PaymentReceived   bool            `dynamodbav:"payment_received"`
	PaymentReceivedAt string          `dynamodbav:"payment_received_at,omitempty"`
	Notes             string          `dynamodbav:"notes,omitempty"`
	History           []orderEventRow `dynamodbav:"history,omitempty"`
	Version           int64           `dynamodbav:"version"`
	CreatedAt         string          `dynamodbav:"created_at"`
	CreatedBy         string          `dynamodbav:"created_by"`
	UpdatedAt         string          `dynamodbav:"updated_at"`
	UpdatedBy         string          `dynamodbav:"updated_by,omitempty"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: assigned_to-index (PK: assigned_to)
//
// Items and history are embedded lists; money is kept as decimal strings.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkOrderItem(o)); err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	items, err := scanAll[workOrderItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromWorkOrderItem), nil
}

func (r *WorkOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.WorkOrder, error) {
	items, err := queryIndex[workOrderItem](ctx, r.ddb, r.tableName, ordersStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromWorkOrderItem), nil
}

func (r *WorkOrderDynamoRepository) ListByAssignedTo(ctx context.Context, userID string) ([]entities.WorkOrder, error) {
	items, err := queryIndex[workOrderItem](ctx, r.ddb, r.tableName, ordersAssignedToIndex, "assigned_to", userID)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromWorkOrderItem), nil
}

// Update stores o with Version+1 while the stored version equals o.Version.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	expected := o.Version
	o.Version++
	found, err := putVersioned(ctx, r.ddb, r.tableName, toWorkOrderItem(o), expected)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	items := make([]lineItemRow, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, lineItemRow{
			ServiceID: li.ServiceID,
			Quantity:  li.Quantity,
			UnitPrice: decimalToString(li.UnitPrice),
		})
	}
	history := make([]orderEventRow, 0, len(o.History))
	for _, ev := range o.History {
		history = append(history, orderEventRow{
			At:     formatTime(ev.At),
			By:     ev.By,
			Status: string(ev.Status),
			Note:   ev.Note,
		})
	}
	return workOrderItem{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		VehicleID:         o.VehicleID,
		Items:             items,
		Tone:              o.Tone,
		RollID:            o.RollID,
		MetersUsed:        o.MetersUsed,
		AssignedTo:        o.AssignedTo,
		Status:            string(o.Status),
		ScheduledAt:       formatTimePtr(o.ScheduledAt),
		FinishedAt:        formatTimePtr(o.FinishedAt),
		Discount:          decimalToString(o.Discount),
		Total:             decimalToString(o.Total),
		PaymentMethod:     string(o.PaymentMethod),
		PaymentReceived:   o.PaymentReceived,
		PaymentReceivedAt: formatTimePtr(o.PaymentReceivedAt),
		Notes:             o.Notes,
		History:           history,
		Version:           o.Version,
		CreatedAt:         formatTime(o.CreatedAt),
		CreatedBy:         o.CreatedBy,
		UpdatedAt:         formatTime(o.UpdatedAt),
		UpdatedBy:         o.UpdatedBy,
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			ServiceID: li.ServiceID,
			Quantity:  li.Quantity,
			UnitPrice: parseDecimal(li.UnitPrice),
		})
	}
	var history []entities.OrderEvent
	for _, ev := range it.History {
		history = append(history, entities.OrderEvent{
			At:     parseTime(ev.At),
			By:     ev.By,
			Status: entities.OrderStatus(ev.Status),
			Note:   ev.Note,
		})
	}
	return entities.WorkOrder{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		VehicleID:         it.VehicleID,
		Items:             items,
		Tone:              it.Tone,
		RollID:            it.RollID,
		MetersUsed:        it.MetersUsed,
		AssignedTo:        it.AssignedTo,
		Status:            entities.OrderStatus(it.Status),
		ScheduledAt:       parseTimePtr(it.ScheduledAt),
		FinishedAt:        parseTimePtr(it.FinishedAt),
		Discount:          parseDecimal(it.Discount),
		Total:             parseDecimal(it.Total),
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		PaymentReceived:   it.PaymentReceived,
		PaymentReceivedAt: parseTimePtr(it.PaymentReceivedAt),
		Notes:             it.Notes,
		History:           history,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		CreatedBy:         it.CreatedBy,
		UpdatedAt:         parseTime(it.UpdatedAt),
		UpdatedBy:         it.UpdatedBy,
	}
}
