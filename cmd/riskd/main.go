package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scamdunk/risk-engine/internal/application/usecase"
	"github.com/scamdunk/risk-engine/internal/domain/port"
	"github.com/scamdunk/risk-engine/internal/domain/service"
	"github.com/scamdunk/risk-engine/internal/infrastructure/ai"
	"github.com/scamdunk/risk-engine/internal/infrastructure/config"
	"github.com/scamdunk/risk-engine/internal/infrastructure/messaging"
	"github.com/scamdunk/risk-engine/internal/observability"
	"github.com/scamdunk/risk-engine/internal/presentation/rest"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})

	logger.Info("starting risk-engine",
		slog.String("environment", cfg.Environment),
	)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "risk-engine",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Infrastructure adapters.
	var alerts port.AlertPublisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher := messaging.NewKafkaAlertPublisher([]string{cfg.KafkaBroker}, cfg.AlertTopic, logger)
		defer kafkaPublisher.Close()
		alerts = kafkaPublisher
		logger.Info("alert publishing enabled", slog.String("broker", cfg.KafkaBroker), slog.String("topic", cfg.AlertTopic))
	} else {
		alerts = messaging.NewNoopAlertPublisher(logger)
	}

	var aiClient port.AIDetectionClient
	if cfg.AIServiceURL != "" {
		aiClient = ai.NewDetectionClient(cfg.AIServiceURL, cfg.AITimeout, logger)
	}

	// Use cases over the pure domain evaluators.
	assessContact := usecase.NewAssessContact(service.NewContactAssessor(), alerts, logger)
	analyzeChat := usecase.NewAnalyzeChat(aiClient, service.NewChatAnalyzer(), alerts, logger)
	analyzeTrading := usecase.NewAnalyzeTrading(service.NewTradingAnalyzer(), alerts, logger)
	checkVeracity := usecase.NewCheckVeracity(service.NewVeracityChecker(), alerts, logger)

	// HTTP presentation.
	mux := http.NewServeMux()
	rest.NewScanHandler(assessContact, analyzeChat, analyzeTrading, checkVeracity, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	limiter := rest.NewRateLimiter(cfg.RateLimitRPS)
	handler := rest.LoggingMiddleware(logger)(rest.RateLimitMiddleware(limiter)(mux))

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", slog.String("error", err.Error()))
	}

	logger.Info("shutting down risk-engine")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("risk-engine stopped")
}
