package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordertaking/cmd"
	httpadapter "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/postgres/catalogrepo"
	"ordertaking/internal/adapters/out/postgres/eventrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() {
		_ = app.ClosePublisher()
	}()

	seedCatalog(&app)

	relayJob := app.CreateEventRelayJob()
	if err := relayJob.Start(); err != nil {
		log.Fatalf("Failed to start event relay job: %v", err)
	}
	defer relayJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&catalogrepo.ProductDTO{}, &eventrepo.EventDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// seedCatalog loads a small demo catalog so the service answers orders out of
// the box.
func seedCatalog(app *cmd.CompositionRoot) {
	repo := app.CreateCatalogRepository()
	products := []catalogrepo.ProductDTO{
		{Code: "W1234", Description: "Standard widget", UnitPrice: decimal.RequireFromString("10.00")},
		{Code: "W5678", Description: "Deluxe widget", UnitPrice: decimal.RequireFromString("25.00")},
		{Code: "G123", Description: "Gizmo, per kilogram", UnitPrice: decimal.RequireFromString("2.50")},
	}

	for _, product := range products {
		if err := repo.Upsert(context.Background(), product); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	placeOrderHandler := app.CreatePlaceOrderCommandHandler()
	server := httpadapter.NewServer(
		&placeOrderHandler,
		app.CreateGetUnpublishedEventsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
