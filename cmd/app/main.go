package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	var publisher ports.EventPublisher
	if configs.KafkaBrokers != "" {
		kafkaPublisher, kafkaErr := kafka.NewPublisher(strings.Split(configs.KafkaBrokers, ","), logger)
		if kafkaErr != nil {
			log.Fatalf("Error connecting to Kafka: %v", kafkaErr)
		}
		defer func() { _ = kafkaPublisher.Close() }()
		publisher = kafkaPublisher
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error configuring jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	startWebServer(e, configs.HTTPPort)
}

func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   envOrDefault("HTTP_PORT", cmd.DefaultHTTPPort),
		DBHost:                     os.Getenv("DB_HOST"),
		DBPort:                     os.Getenv("DB_PORT"),
		DBUser:                     os.Getenv("DB_USER"),
		DBPassword:                 os.Getenv("DB_PASSWORD"),
		DBName:                     os.Getenv("DB_NAME"),
		DBSslMode:                  envOrDefault("DB_SSLMODE", "disable"),
		KafkaBrokers:               os.Getenv("KAFKA_BROKERS"),
		KafkaOrderStatusTopic:      envOrDefault("KAFKA_ORDER_STATUS_TOPIC", cmd.DefaultKafkaOrderStatusTopic),
		NotificationRelaySchedule:  envOrDefault("NOTIFICATION_RELAY_SCHEDULE", cmd.DefaultNotificationRelaySchedule),
		NotificationRelayBatchSize: cmd.DefaultNotificationRelayBatchSize,
	}

	if raw := os.Getenv("NOTIFICATION_RELAY_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid NOTIFICATION_RELAY_BATCH_SIZE %q: %v", raw, err)
		}
		config.NotificationRelayBatchSize = size
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func startWebServer(e *echo.Echo, port string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error(err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
