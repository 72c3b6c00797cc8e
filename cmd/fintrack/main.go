package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/advisor/gemini"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/backend"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/config"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/events"
	apphttp "github.com/whoknows1409/Finance-Tracker-AI/internal/http"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/market"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if !cfg.AdvisorEnabled() {
		logger.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}

	// Persistence backend
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.Create(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}()
	}
	logger.Info("Backend initialized", "backend", cfg.DataBackend)

	// Ledger event publishing is optional: no AMQP URL, no events.
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to AMQP", log.FieldError, err)
			os.Exit(1)
		}
		defer publisher.Close()
		logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	adv, err := gemini.New(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.AdvisorTimeout,
	})
	if err != nil {
		logger.Error("Failed to initialize advisor client", log.FieldError, err)
		os.Exit(1)
	}

	quotes := market.NewYahooClient(cfg.StockAPIBaseURL, cfg.StockTimeout)

	srv := apphttp.NewServer(":"+cfg.Port,
		services.NewLedgerService(result.Backend, publisher),
		services.NewChatService(result.Backend, adv),
		services.NewStockService(quotes, adv),
		logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
