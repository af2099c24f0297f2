package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/usecase"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/port"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/config"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/messaging"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/ml"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/postgres"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/recent"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/telemetry"
	grpcpresentation "github.com/vishxesh10/InsureMate-LIve/internal/presentation/grpc"
	"github.com/vishxesh10/InsureMate-LIve/internal/presentation/rest"
	"github.com/vishxesh10/InsureMate-LIve/pkg/kafka"
	"github.com/vishxesh10/InsureMate-LIve/pkg/observability"
	pgutil "github.com/vishxesh10/InsureMate-LIve/pkg/postgres"
)

const serviceName = "premium-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting premium-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"environment", cfg.Environment,
	)

	// Initialize tracing.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: serviceName,
			Environment: cfg.Environment,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() {
				flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer flushCancel()
				if err := shutdown(flushCtx); err != nil {
					logger.Error("tracer shutdown error", "error", err)
				}
			}()
		}
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
		SetGlobal:   true,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background())

	predictionMetrics, err := telemetry.NewPredictionMetrics(meterProvider)
	if err != nil {
		logger.Error("failed to create prediction metrics", "error", err)
		os.Exit(1)
	}

	// The process must not serve without a model.
	forest, err := ml.LoadForest(cfg.ModelPath)
	if err != nil {
		logger.Error("failed to load model", "path", cfg.ModelPath, "error", err)
		os.Exit(1)
	}
	info := forest.Info()
	logger.Info("model loaded",
		"name", info.Name,
		"version", info.Version,
		"classes", info.Classes,
		"trees", info.Trees,
	)

	// Schema.
	if err := pgutil.RunMigrations(cfg.MigrationsDir, cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgutil.NewPool(dbCtx, pgutil.Config{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Wire infrastructure adapters.
	resultRepo := postgres.NewResultRepository(pool)
	recentBuffer := recent.NewBuffer(recent.DefaultCapacity)

	var eventPublisher port.EventPublisher
	if cfg.KafkaEnabled() {
		producer, err := kafka.NewProducer(cfg.Kafka(serviceName, ""))
		if err != nil {
			logger.Error("failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		eventPublisher = messaging.NewKafkaEventPublisher(producer, cfg.KafkaTopic, logger)
		logger.Info("publishing events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		eventPublisher = messaging.NewLogEventPublisher(logger)
		logger.Info("KAFKA_BROKERS not set, events are logged only")
	}

	// Wire use cases.
	predictUC := usecase.NewPredictPremium(usecase.PredictPremiumDeps{
		Repo:       resultRepo,
		Classifier: forest,
		Recent:     recentBuffer,
		Publisher:  eventPublisher,
		Metrics:    predictionMetrics,
		Logger:     logger,

		PublishTimeout: cfg.EventPublishTimeout,
	})
	listResultsUC := usecase.NewListResults(resultRepo)
	statisticsUC := usecase.NewGetStatistics(resultRepo)
	listRecentUC := usecase.NewListRecent(recentBuffer)

	// gRPC server.
	grpcHandler := grpcpresentation.NewPremiumServiceHandler(predictUC, listResultsUC, statisticsUC, logger)
	grpcServer, err := grpcpresentation.NewServer(grpcHandler, grpcpresentation.ServerConfig{
		Address:     cfg.GRPCAddress(),
		TLSCertFile: cfg.GRPCTLSCertFile,
		TLSKeyFile:  cfg.GRPCTLSKeyFile,
		Reflection:  cfg.GRPCReflection,
	}, logger)
	if err != nil {
		logger.Error("failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server.
	router := rest.NewRouter(rest.RouterConfig{
		Predictions:        rest.NewPredictionHandler(predictUC, listResultsUC, statisticsUC, listRecentUC, logger),
		Health:             rest.NewHealthHandler(resultRepo, logger),
		Metrics:            metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:          cfg.RateLimit,
		RateBurst:          cfg.RateBurst,
		Logger:             logger,
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("premium-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down premium-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("premium-service stopped")
}
