// Package trawler orchestrates the menu ingestion pipeline: URL safety
// validation, page fetch, markdown conversion, structured extraction, and
// catalog ingestion, with job state tracked throughout.
package trawler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/cache"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/extract"
	"github.com/dramhound/dramhound/internal/fetcher"
	"github.com/dramhound/dramhound/internal/ingest"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

// URLValidator decides whether a submitted URL is safe to fetch.
type URLValidator interface {
	Validate(ctx context.Context, rawURL string) urlcheck.Result
}

// PageFetcher retrieves a validated URL under the fetch safety limits.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.FetchResult, error)
}

// PageConverter turns fetched HTML into extraction-ready markdown.
type PageConverter interface {
	Convert(html []byte) (*fetcher.ConvertResult, error)
}

// Ingestor reconciles an extracted menu into the catalog.
type Ingestor interface {
	Ingest(ctx context.Context, barID uuid.UUID, menu *extract.ExtractedMenu, jobID uuid.UUID) (*ingest.TrawlResult, error)
}

// Service runs the pipeline end to end. Safety validation happens before any
// job row exists, so a rejected URL leaves no trace in job state.
type Service struct {
	validator URLValidator
	fetcher   PageFetcher
	converter PageConverter
	extractor extract.MenuExtractor
	bars      repository.BarRepository
	jobs      repository.TrawlJobRepository
	engine    Ingestor
	results   *cache.TTL // optional; nil disables change-detection caching
	logger    *slog.Logger
}

func NewService(
	validator URLValidator,
	pageFetcher PageFetcher,
	converter PageConverter,
	extractor extract.MenuExtractor,
	bars repository.BarRepository,
	jobs repository.TrawlJobRepository,
	engine Ingestor,
	results *cache.TTL,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		validator: validator,
		fetcher:   pageFetcher,
		converter: converter,
		extractor: extractor,
		bars:      bars,
		jobs:      jobs,
		engine:    engine,
		results:   results,
		logger:    logger,
	}
}

// TrawlURLRequest submits one menu page URL for a known bar.
type TrawlURLRequest struct {
	BarID       uuid.UUID
	URL         string
	SubmittedBy *string
}

// TrawlImageRequest submits one menu photograph for a known bar.
type TrawlImageRequest struct {
	BarID       uuid.UUID
	Data        []byte
	MIMEType    string
	SubmittedBy *string
}

// Outcome is the synchronous answer to a trawl submission. Job is set as soon
// as a job row exists, including when the pipeline later failed.
type Outcome struct {
	Job    *entity.TrawlJob    `json:"job"`
	Result *ingest.TrawlResult `json:"result,omitempty"`
}

// TrawlURL runs the full URL pipeline. Rejected or malformed URLs and unknown
// bars return before a job is created; every later failure is recorded on the
// job before the error is returned.
func (s *Service) TrawlURL(ctx context.Context, req TrawlURLRequest) (*Outcome, error) {
	start := time.Now()
	reqID := common.RequestIDFromContext(ctx)

	if check := s.validator.Validate(ctx, req.URL); !check.Valid {
		s.logger.Warn("trawl.rejected", "req_id", reqID, "bar_id", req.BarID, "reason", check.Reason)
		return nil, fmt.Errorf("%w: %s", common.ErrSafetyRejected, check.Reason)
	}

	if err := s.requireBar(ctx, req.BarID); err != nil {
		return nil, err
	}

	job, err := s.jobs.Start(ctx, req.BarID, req.URL, constants.SourceWebsiteScrape, req.SubmittedBy)
	if err != nil {
		return nil, err
	}
	s.logger.Info("trawl.start", "req_id", reqID, "job_id", job.ID, "bar_id", req.BarID, "url", req.URL)

	page, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("fetch: %w", err))
	}

	if out, ok := s.completeFromCache(ctx, job, page.ContentHash); ok {
		return out, nil
	}

	converted, err := s.converter.Convert(page.Body)
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("%w: html conversion: %v", common.ErrFetch, err))
	}

	menu, _, err := s.extractor.ExtractFromText(ctx, extract.TextRequest{
		Markdown:    converted.Markdown,
		TitleHint:   converted.Title,
		SourceURL:   page.FinalURL,
		ContentHash: page.ContentHash,
	})
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("extract: %w", err))
	}

	out, err := s.ingestAndComplete(ctx, job, menu)
	if err != nil {
		return out, err
	}
	s.cacheResult(job, page.ContentHash, out)
	s.logger.Info("trawl.ok",
		"req_id", reqID,
		"job_id", job.ID,
		"bar_id", req.BarID,
		"whiskeys", out.Result.WhiskeysAdded+out.Result.WhiskeysUpdated+out.Result.WhiskeysSkipped,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// TrawlImage runs the vision pipeline for an uploaded menu photograph.
func (s *Service) TrawlImage(ctx context.Context, req TrawlImageRequest) (*Outcome, error) {
	start := time.Now()
	reqID := common.RequestIDFromContext(ctx)

	mime := constants.NormalizeMIME(req.MIMEType)
	if _, ok := constants.AllowedImageMIMEs[mime]; !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", common.ErrValidation, req.MIMEType)
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", common.ErrValidation)
	}
	if len(req.Data) > constants.MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", common.ErrValidation, constants.MaxImageBytes)
	}

	if err := s.requireBar(ctx, req.BarID); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(req.Data)
	sourceRef := "image:" + hex.EncodeToString(digest[:])

	job, err := s.jobs.Start(ctx, req.BarID, sourceRef, constants.SourceUserSubmitted, req.SubmittedBy)
	if err != nil {
		return nil, err
	}
	s.logger.Info("trawl.start", "req_id", reqID, "job_id", job.ID, "bar_id", req.BarID, "source_ref", sourceRef)

	menu, _, err := s.extractor.ExtractFromImage(ctx, extract.ImageRequest{Data: req.Data, MIMEType: mime})
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("extract: %w", err))
	}
	menu.SourceType = constants.SourceUserSubmitted
	menu.ContentHash = hex.EncodeToString(digest[:])

	out, err := s.ingestAndComplete(ctx, job, menu)
	if err != nil {
		return out, err
	}
	s.logger.Info("trawl.ok",
		"req_id", reqID,
		"job_id", job.ID,
		"bar_id", req.BarID,
		"whiskeys", out.Result.WhiskeysAdded+out.Result.WhiskeysUpdated+out.Result.WhiskeysSkipped,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Job looks up a trawl job by id.
func (s *Service) Job(ctx context.Context, jobID uuid.UUID) (*entity.TrawlJob, error) {
	return s.jobs.GetByID(ctx, jobID)
}

func (s *Service) requireBar(ctx context.Context, barID uuid.UUID) error {
	exists, err := s.bars.Exists(ctx, barID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: bar %s", common.ErrNotFound, barID)
	}
	return nil
}

func (s *Service) ingestAndComplete(ctx context.Context, job *entity.TrawlJob, menu *extract.ExtractedMenu) (*Outcome, error) {
	result, err := s.engine.Ingest(ctx, job.BarID, menu, job.ID)
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("ingest: %w", err))
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.failJob(ctx, job, fmt.Errorf("encode result: %w", err))
	}

	count := result.WhiskeysAdded + result.WhiskeysUpdated
	if err := s.jobs.Complete(ctx, job.ID, count, resultJSON); err != nil {
		return &Outcome{Job: job, Result: result}, err
	}

	job.Status = string(constants.JobStatusCompleted)
	job.WhiskeyCount = count
	job.Result = resultJSON
	return &Outcome{Job: job, Result: result}, nil
}

// failJob records the failure on the job, then surfaces the original error.
// The terminal-guard error from a racing writer is logged, not propagated;
// the pipeline error is what the caller needs to see.
func (s *Service) failJob(ctx context.Context, job *entity.TrawlJob, cause error) (*Outcome, error) {
	msg := cause.Error()
	if err := s.jobs.Fail(ctx, job.ID, msg); err != nil {
		s.logger.Error("trawl.fail_record", "job_id", job.ID, "error", err, "cause", msg)
	} else {
		job.Status = string(constants.JobStatusFailed)
		job.ErrorMessage = &msg
	}
	s.logger.Warn("trawl.failed", "job_id", job.ID, "bar_id", job.BarID, "error", msg)
	return &Outcome{Job: job}, cause
}

// completeFromCache short-circuits the pipeline when the page content hash
// matches a recent trawl for the same bar. The new job still completes, with
// the cached result attached.
func (s *Service) completeFromCache(ctx context.Context, job *entity.TrawlJob, contentHash string) (*Outcome, bool) {
	if s.results == nil || contentHash == "" {
		return nil, false
	}
	entry, ok := s.results.Get(cacheKey(job.BarID, contentHash))
	if !ok {
		return nil, false
	}

	if err := s.jobs.Complete(ctx, job.ID, entry.WhiskeyCount, entry.ResultRaw); err != nil {
		return nil, false
	}
	job.Status = string(constants.JobStatusCompleted)
	job.WhiskeyCount = entry.WhiskeyCount
	job.Result = entry.ResultRaw

	var result ingest.TrawlResult
	if err := json.Unmarshal(entry.ResultRaw, &result); err != nil {
		s.logger.Warn("trawl.cache_decode", "job_id", job.ID, "error", err)
		return &Outcome{Job: job}, true
	}
	s.logger.Info("trawl.cache_hit", "job_id", job.ID, "bar_id", job.BarID, "content_hash", contentHash)
	return &Outcome{Job: job, Result: &result}, true
}

func (s *Service) cacheResult(job *entity.TrawlJob, contentHash string, out *Outcome) {
	if s.results == nil || contentHash == "" || out.Result == nil {
		return
	}
	s.results.Set(cacheKey(job.BarID, contentHash), cache.Entry{
		JobID:        job.ID.String(),
		BarID:        job.BarID.String(),
		CachedAt:     time.Now().UTC(),
		WhiskeyCount: job.WhiskeyCount,
		ResultRaw:    job.Result,
	})
}

func cacheKey(barID uuid.UUID, contentHash string) string {
	return barID.String() + ":" + contentHash
}
