package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres/cartrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            envOrDefault("DB_USER", "postgres"),
		DBPassword:        envOrDefault("DB_PASSWORD", "postgres"),
		DBName:            envOrDefault("DB_NAME", "storefront"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		CatalogDataDir:    envOrDefault("CATALOG_DATA_DIR", "data"),
		SettlementURL:     envOrDefault("SETTLEMENT_URL", "http://localhost:8080/api/checkout"),
		SettlementTimeout: envDuration("SETTLEMENT_TIMEOUT", 10*time.Second),
		CartRetention:     envDuration("CART_RETENTION", 30*24*time.Hour),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&cartrepo.CartSlotDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
