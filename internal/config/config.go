package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   int    `envconfig:"PORT" default:"8080"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"dynamodb"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	Tables

	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	LowStockThreshold float64 `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
	CASMaxAttempts    int     `envconfig:"CAS_MAX_ATTEMPTS" default:"3"`
	OrderStatusPolicy string  `envconfig:"ORDER_STATUS_POLICY" default:"permissive"`

	MercadoPagoToken           string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// Tables maps each entity kind to its DynamoDB table.
type Tables struct {
	Customers string `envconfig:"CUSTOMERS_TABLE" default:"customers"`
	Vehicles  string `envconfig:"VEHICLES_TABLE" default:"vehicles"`
	Services  string `envconfig:"SERVICES_TABLE" default:"services"`
	Inventory string `envconfig:"INVENTORY_TABLE" default:"inventory"`
	Orders    string `envconfig:"WORK_ORDERS_TABLE" default:"work_orders"`
	Cash      string `envconfig:"CASH_ENTRIES_TABLE" default:"cash_entries"`
	Schedule  string `envconfig:"SCHEDULE_TABLE" default:"schedule"`
	Settings  string `envconfig:"SETTINGS_TABLE" default:"settings"`
	Charges   string `envconfig:"PAYMENTS_TABLE" default:"payments"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StorageDriver != StorageDynamoDB && cfg.StorageDriver != StorageMemory {
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.CASMaxAttempts < 1 {
		return nil, fmt.Errorf("CAS_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
