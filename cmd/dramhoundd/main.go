// dramhoundd is the long-running API daemon: it serves the trawl endpoints
// and runs the full ingestion pipeline behind them.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dramhound/dramhound/internal/cache"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/export"
	"github.com/dramhound/dramhound/internal/extract/openai"
	"github.com/dramhound/dramhound/internal/fetcher"
	"github.com/dramhound/dramhound/internal/ingest"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/server"
	"github.com/dramhound/dramhound/internal/trawler"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("closing ent client", "error", err)
		}
	}()
	if pool != nil {
		defer pool.Close()
	}

	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health ok", "driver", cfg.Database.Driver)

	bars := repository.NewBarRepository(entc, logger)
	whiskeys := repository.NewWhiskeyRepository(entc, logger)
	listings := repository.NewListingRepository(entc, logger)
	jobs := repository.NewTrawlJobRepository(entc, logger)

	validator := urlcheck.New()
	pageFetcher := fetcher.New(fetcher.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		MaxRedirects: cfg.Fetch.MaxRedirects,
		UserAgent:    cfg.Fetch.UserAgent,
	}, validator)
	converter := fetcher.NewConverter()
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		VisionModel: cfg.LLM.VisionModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxAttempts: cfg.LLM.MaxAttempts,
	}, logger)

	engine := ingest.NewEngine(whiskeys, listings, logger)
	results := cache.NewTTL(cfg.Cache.TTL, cfg.Cache.MaxSize)
	svc := trawler.NewService(validator, pageFetcher, converter, extractor, bars, jobs, engine, results, logger)
	exporter := export.NewService(bars, listings, logger)

	router := server.NewRouter(svc, bars, listings, exporter, cfg.Batch.RequestDelay, logger)
	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
