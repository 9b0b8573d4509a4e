package main

import (
	"fmt"
	"log/slog"
	"os"

	"orderflow/cmd"
	inhttp "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres/auditrepo"
	"orderflow/internal/adapters/out/postgres/changerepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/porepo"
	"orderflow/internal/adapters/out/postgres/taskrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaStatusChangedTopic: goDotEnvVariable("KAFKA_STATUS_CHANGED_TOPIC"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		ApprovalServiceURL:      goDotEnvVariable("APPROVAL_SERVICE_URL"),
		RoutingServiceURL:       goDotEnvVariable("ROUTING_SERVICE_URL"),
		CancelableStatuses:      goDotEnvVariable("CANCELABLE_STATUSES"),
		StatusRefreshCron:       goDotEnvVariable("STATUS_REFRESH_CRON"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&changerepo.OrderChangeDTO{},
		&porepo.PurchaseOrderDTO{},
		&taskrepo.InstallTaskDTO{},
		&auditrepo.AuditLogDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := inhttp.NewServer(
		app.CreateHaltOrderCommandHandler(),
		app.CreateResumeOrderCommandHandler(),
		app.CreateRequestCancelOrderCommandHandler(),
		app.CreateConfirmProductionCommandHandler(),
		app.CreateRequestDeliveryCommandHandler(),
		app.CreateRefreshOrderStatusCommandHandler(),
		app.CreateGetNextStatesQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
