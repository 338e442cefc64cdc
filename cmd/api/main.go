package main

import (
	"log"

	_ "oficina_insufilm/docs"
	"oficina_insufilm/internal/adapter/http/routes"
	"oficina_insufilm/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina Insufilm API
// @version         1.0
// @description     Window-tint shop back office: inventory, work orders and cash ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
