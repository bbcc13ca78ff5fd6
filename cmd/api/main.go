package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"crm_reports/internal/adapter/http/routes"
	"crm_reports/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CRM Reports API
// @version         1.0
// @description     Quotes, recurring contracts, reports and dashboard backed by DynamoDB or SQLite.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
