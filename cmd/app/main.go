package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"manufacturing/cmd"
	_ "manufacturing/docs"
	httpin "manufacturing/internal/adapters/in/http"
	"manufacturing/internal/adapters/out/postgres/historyrepo"
	"manufacturing/internal/adapters/out/postgres/inquiryrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/rabbitmq"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	waitForDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.QuotationDTO{},
		&inquiryrepo.InquiryDTO{},
		&historyrepo.ChangeRecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var notifier ports.StatusNotifier
	if configs.RabbitMQURL != "" {
		rabbitNotifier, err := rabbitmq.NewStatusNotifier(configs.RabbitMQURL, logger)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitNotifier.Close()
		notifier = rabbitNotifier
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	if configs.EnableJobs == "true" {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

// waitForDatabase pings the database through database/sql until it accepts
// connections, so the service survives being started before postgres.
func waitForDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
	log.Fatalf("Database did not become ready: %v", err)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		EnableJobs:  os.Getenv("ENABLE_JOBS"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddQuotationCommandHandler(),
		app.CreateRecordOrderMilestoneCommandHandler(),
		app.CreateCreateInquiryCommandHandler(),
		app.CreateChangeInquiryStatusCommandHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateGetInquiryStatusQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
		app.CreateGetStatusTimelineQueryHandler(),
		app.CreateGetStatusStatisticsQueryHandler(),
		app.CreateGetConsistencyReportQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
