package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/filestore"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/settingsrepo"
	"dispatch/internal/adapters/out/ws"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleDispatchAfter = 4 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	storage, err := filestore.NewStorage(configs.UploadsDir)
	if err != nil {
		log.Fatalf("uploads storage: %v", err)
	}

	hub := ws.NewHub(logger)

	app := cmd.NewCompositionRoot(configs, gormDB, hub, storage)

	jobManager := jobs.NewJobManager(
		app.OrderUoWFactory(),
		hub,
		staleDispatchAfter(configs),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, hub, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		UploadsDir:         goDotEnvVariable("UPLOADS_DIR"),
		StaleDispatchAfter: goDotEnvVariable("STALE_DISPATCH_AFTER"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// AutoMigrate keeps schema evolution additive: new columns appear as
	// nullable, existing rows are untouched.
	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &settingsrepo.SettingDTO{}); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	return gormDB
}

func staleDispatchAfter(configs cmd.Config) time.Duration {
	if configs.StaleDispatchAfter == "" {
		return defaultStaleDispatchAfter
	}

	staleAfter, err := time.ParseDuration(configs.StaleDispatchAfter)
	if err != nil {
		log.Fatalf("invalid STALE_DISPATCH_AFTER: %v", err)
	}
	return staleAfter
}

func startWebServer(app cmd.CompositionRoot, hub *ws.Hub, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateServer(hub)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
