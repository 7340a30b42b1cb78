package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	customerhttp "github.com/kelvinmusselli/favoriteProducts/internal/customer/delivery/http"
	customerrepo "github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/client"
	favoritehttp "github.com/kelvinmusselli/favoriteProducts/internal/favorite/delivery/http"
	favoritedomain "github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	favoriterepo "github.com/kelvinmusselli/favoriteProducts/internal/favorite/repository"
	favoritecommand "github.com/kelvinmusselli/favoriteProducts/internal/favorite/usecase/command"
	"github.com/kelvinmusselli/favoriteProducts/kafka"
	"github.com/kelvinmusselli/favoriteProducts/pkg/database"
	"github.com/kelvinmusselli/favoriteProducts/pkg/logger"
	"github.com/kelvinmusselli/favoriteProducts/pkg/tracing"
)

func main() {
	logger.Init("customer-service", getEnv("APP_ENV", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing
	tp, err := tracing.InitTracer("customer-service")
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "customerdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Separate plain database/sql connection for the health ping
	pingDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer pingDB.Close()

	// Repositories
	customerRepo := customerrepo.NewGormCustomerRepository(db)
	if err := customerRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run customer migrations")
	}
	favoriteRepo := favoriterepo.NewGormFavoriteRepository(db)
	if err := favoriteRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run favorite migrations")
	}

	tracedCustomerRepo := customerrepo.NewTracingCustomerRepository(customerRepo)
	tracedFavoriteRepo := favoriterepo.NewTracingFavoriteRepository(favoriteRepo)

	// Kafka is optional; without brokers the service runs standalone and
	// favorite cleanup on customer deletion does not happen.
	var events customerhttp.EventPublisher
	var favoriteEvents favoritecommand.ProductFavoritedPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()
		events = publisher
		favoriteEvents = publisher

		consumer, err := kafka.NewConsumer(
			strings.Split(brokers, ","),
			getEnv("KAFKA_GROUP_ID", "customer-service"),
			[]string{kafka.TopicCustomerDeleted},
		)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		consumer.RegisterHandler(kafka.EventTypeCustomerDeleted,
			kafka.CustomerDeletedHandler(tracedFavoriteRepo.DeleteByCustomer))

		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
		}
	}

	// Product catalog gate is optional; without it favorite creation
	// skips catalog validation.
	var gate favoritedomain.ProductGate
	if catalogURL := getEnv("PRODUCT_API_URL", ""); catalogURL != "" {
		gate = client.NewProductClient(catalogURL)
	}

	// Handlers
	customerHandler := customerhttp.NewCustomerHandler(tracedCustomerRepo, events)
	favoriteHandler := favoritehttp.NewFavoriteHandler(tracedFavoriteRepo, gate, favoriteEvents)

	// Router
	router := mux.NewRouter()
	customerHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)
	customerHandler.RegisterHealthCheck(router, pingDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	customerhttp.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
