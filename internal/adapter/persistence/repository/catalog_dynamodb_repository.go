package repository

import (
	"context"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const vehiclesCustomerIDIndex = "customer_id-index"

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCustomerItem(c)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var it customerItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := scanAll[customerItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromCustomerItem), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toCustomerItem(c))
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type vehicleItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Plate      string `dynamodbav:"plate"`
	Brand      string `dynamodbav:"brand"`
	Model      string `dynamodbav:"model"`
	Year       int    `dynamodbav:"year,omitempty"`
	Color      string `dynamodbav:"color,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toVehicleItem(v)); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	items, err := scanAll[vehicleItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromVehicleItem), nil
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	items, err := queryIndex[vehicleItem](ctx, r.ddb, r.tableName, vehiclesCustomerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromVehicleItem), nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toVehicleItem(v))
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		Color:      v.Color,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Plate:      it.Plate,
		Brand:      it.Brand,
		Model:      it.Model,
		Year:       it.Year,
		Color:      it.Color,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}

type serviceItemRow struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	BasePrice   string `dynamodbav:"base_price"`
	Description string `dynamodbav:"description,omitempty"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ServiceItemDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceItemRepository = (*ServiceItemDynamoRepository)(nil)

func NewServiceItemDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceItemDynamoRepository {
	return &ServiceItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceItemDynamoRepository) Create(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItemRow(s)); err != nil {
		return entities.ServiceItem{}, err
	}
	return s, nil
}

func (r *ServiceItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceItem, error) {
	var it serviceItemRow
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ServiceItem{}, err
	}
	return fromServiceItemRow(it), nil
}

func (r *ServiceItemDynamoRepository) List(ctx context.Context) ([]entities.ServiceItem, error) {
	items, err := scanAll[serviceItemRow](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return mapItems(items, fromServiceItemRow), nil
}

func (r *ServiceItemDynamoRepository) Update(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toServiceItemRow(s))
	if err != nil || !found {
		return entities.ServiceItem{}, err
	}
	return s, nil
}

func (r *ServiceItemDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toServiceItemRow(s entities.ServiceItem) serviceItemRow {
	return serviceItemRow{
		ID:          s.ID,
		Name:        s.Name,
		BasePrice:   decimalToString(s.BasePrice),
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromServiceItemRow(it serviceItemRow) entities.ServiceItem {
	return entities.ServiceItem{
		ID:          it.ID,
		Name:        it.Name,
		BasePrice:   parseDecimal(it.BasePrice),
		Description: it.Description,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
