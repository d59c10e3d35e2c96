// trawl runs the pipeline once for a single URL, without the HTTP daemon.
// Handy for trying out extraction against a live menu page:
//
//	trawl -bar <bar-uuid> -url https://somebar.com/whiskey-menu
//	trawl -bar <bar-uuid> -image ./menu.jpg
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/export"
	"github.com/dramhound/dramhound/internal/extract/openai"
	"github.com/dramhound/dramhound/internal/fetcher"
	"github.com/dramhound/dramhound/internal/ingest"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/trawler"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

func main() {
	var (
		barFlag   = flag.String("bar", "", "bar id (uuid), required")
		urlFlag   = flag.String("url", "", "menu page URL to trawl")
		imageFlag = flag.String("image", "", "path to a menu photo to trawl")
		xlsxFlag  = flag.String("xlsx", "", "after trawling, write the bar menu to this .xlsx file")
	)
	flag.Parse()

	if *barFlag == "" || (*urlFlag == "") == (*imageFlag == "") {
		flag.Usage()
		os.Exit(2)
	}
	barID, err := uuid.Parse(*barFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid bar id: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer entc.Close()
	if pool != nil {
		defer pool.Close()
	}

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
	svc := trawler.NewService(validator, pageFetcher, fetcher.NewConverter(), extractor, bars, jobs, engine, nil, logger)

	var out *trawler.Outcome
	if *urlFlag != "" {
		out, err = svc.TrawlURL(ctx, trawler.TrawlURLRequest{BarID: barID, URL: *urlFlag})
	} else {
		out, err = trawlImageFile(ctx, svc, barID, *imageFlag)
	}
	if err != nil {
		if out != nil && out.Job != nil {
			logger.Error("trawl failed", "job_id", out.Job.ID, "error", err)
		} else {
			logger.Error("trawl failed", "error", err)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding outcome", "error", err)
		os.Exit(1)
	}

	if *xlsxFlag != "" {
		exporter := export.NewService(bars, listings, logger)
		data, err := exporter.ExportMenuXLSX(ctx, barID)
		if err != nil {
			logger.Error("exporting menu", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxFlag, data, 0o644); err != nil {
			logger.Error("writing xlsx", "path", *xlsxFlag, "error", err)
			os.Exit(1)
		}
		logger.Info("menu exported", "path", *xlsxFlag)
	}
}

func trawlImageFile(ctx context.Context, svc *trawler.Service, barID uuid.UUID, path string) (*trawler.Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return svc.TrawlImage(ctx, trawler.TrawlImageRequest{
		BarID:    barID,
		Data:     data,
		MIMEType: mimeType,
	})
}
