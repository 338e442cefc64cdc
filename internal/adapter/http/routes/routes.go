package routes

import (
	"context"
	"log"
	"strconv"

	"oficina_insufilm/internal/adapter/http/handlers"
	"oficina_insufilm/internal/adapter/http/middleware"
	"oficina_insufilm/internal/adapter/persistence/memory"
	"oficina_insufilm/internal/adapter/persistence/repository"
	"oficina_insufilm/internal/config"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/infrastructure/cache"
	"oficina_insufilm/internal/infrastructure/database"
	"oficina_insufilm/internal/infrastructure/payments"
	"oficina_insufilm/internal/usecase"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories holds one storage handle per entity kind, built once and
// shared by every use case.
type repositories struct {
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	services  interfaces.IServiceItemRepository
	inventory interfaces.IInventoryRepository
	orders    interfaces.IWorkOrderRepository
	cash      interfaces.ICashEntryRepository
	schedule  interfaces.IScheduleRepository
	settings  interfaces.ISettingsRepository
	charges   interfaces.IPaymentChargeRepository
}

// Run will start the server
func Run(cfg *config.Config) {
	router, err := NewRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires storage, use cases and handlers into a gin engine.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	policy, err := entities.NewTransitionPolicy(cfg.OrderStatusPolicy)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, cfg, newIdempotencyStore(cfg))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repos := newRepositories(cfg)

	customerUseCase := usecase.NewCustomerUseCase(repos.customers)
	vehicleUseCase := usecase.NewVehicleUseCase(repos.vehicles, repos.customers)
	serviceUseCase := usecase.NewServiceCatalogUseCase(repos.services)
	inventoryUseCase := usecase.NewInventoryUseCase(repos.inventory, cfg.LowStockThreshold, cfg.CASMaxAttempts)
	cashUseCase := usecase.NewCashUseCase(repos.cash)
	scheduleUseCase := usecase.NewScheduleUseCase(repos.schedule)
	settingsUseCase := usecase.NewSettingsUseCase(repos.settings)

	orderUseCase := usecase.NewWorkOrderUseCase(usecase.WorkOrderDeps{
		Orders:      repos.orders,
		Customers:   repos.customers,
		Vehicles:    repos.vehicles,
		Services:    repos.services,
		Charges:     repos.charges,
		Gateway:     newPaymentGateway(cfg),
		Inventory:   inventoryUseCase,
		Cash:        cashUseCase,
		Settings:    settingsUseCase,
		Policy:      policy,
		MaxAttempts: cfg.CASMaxAttempts,
		GatewayOptions: usecase.GatewayOptions{
			Mock:            cfg.PaymentGatewayMock,
			AccessToken:     cfg.MercadoPagoToken,
			TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
			TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
		},
	})

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase, cfg.LowStockThreshold)
	orderHandler := handlers.NewWorkOrderHandler(orderUseCase, cfg.LowStockThreshold, cfg.PaymentGatewayMock)
	cashHandler := handlers.NewCashHandler(cashUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, customerHandler, vehicleHandler, serviceHandler)
	addInventoryRoutes(v1, inventoryHandler)
	addOrderRoutes(v1, orderHandler)
	addCashRoutes(v1, cashHandler)
	addScheduleRoutes(v1, scheduleHandler, settingsHandler)

	return router, nil
}

func newRepositories(cfg *config.Config) repositories {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[storage][memory] using in-memory repositories")
		store := memory.New()
		return repositories{
			customers: store.Customers,
			vehicles:  store.Vehicles,
			services:  store.Services,
			inventory: store.Inventory,
			orders:    store.Orders,
			cash:      store.Cash,
			schedule:  store.Schedule,
			settings:  store.Settings,
			charges:   store.Charges,
		}
	}

	ddb := database.ConnectDynamoDB(cfg)
	return repositories{
		customers: repository.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers),
		vehicles:  repository.NewVehicleDynamoRepository(ddb, cfg.Tables.Vehicles),
		services:  repository.NewServiceItemDynamoRepository(ddb, cfg.Tables.Services),
		inventory: repository.NewInventoryDynamoRepository(ddb, cfg.Tables.Inventory),
		orders:    repository.NewWorkOrderDynamoRepository(ddb, cfg.Tables.Orders),
		cash:      repository.NewCashEntryDynamoRepository(ddb, cfg.Tables.Cash),
		schedule:  repository.NewScheduleDynamoRepository(ddb, cfg.Tables.Schedule),
		settings:  repository.NewSettingsDynamoRepository(ddb, cfg.Tables.Settings),
		charges:   repository.NewPaymentChargeDynamoRepository(ddb, cfg.Tables.Charges),
	}
}

// newPaymentGateway returns nil when Mercado Pago is mocked or not configured;
// charges then fail with a 503 unless the mock flag is set.
func newPaymentGateway(cfg *config.Config) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		log.Printf("[payments][mercadopago] mock mode enabled")
		return nil
	}
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return mpGateway
}

func newIdempotencyStore(cfg *config.Config) interfaces.IIdempotencyStore {
	if cfg.RedisAddr == "" {
		return nil
	}
	client, err := cache.New(context.Background(), cfg.RedisAddr)
	if err != nil {
		log.Printf("[idempotency][redis] disabled addr=%s err=%v", cfg.RedisAddr, err)
		return nil
	}
	log.Printf("[idempotency][redis] enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.IdempotencyTTL)
	return cache.NewIdempotencyStore(client)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, store interfaces.IIdempotencyStore) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.Idempotency(store, cfg.IdempotencyTTL))
}
