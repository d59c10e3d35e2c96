package trawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/ingest"
)

// MaxBatchURLs caps a single batch submission.
const MaxBatchURLs = 20

// BatchItem reports the outcome of one URL within a batch, in submission
// order. JobID is nil when the URL was rejected before a job existed.
type BatchItem struct {
	URL    string              `json:"url"`
	JobID  *uuid.UUID          `json:"job_id,omitempty"`
	Status string              `json:"status"`
	Result *ingest.TrawlResult `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// BatchRequest submits several menu page URLs for one bar.
type BatchRequest struct {
	BarID       uuid.UUID
	URLs        []string
	SubmittedBy *string
	// Delay paces consecutive requests. Zero means no pause.
	Delay time.Duration
}

// RunBatch trawls each URL sequentially with a pause between requests,
// isolating failures per URL: one bad URL never stops the rest. Items come
// back in submission order. Cancellation stops the batch between URLs and
// returns the items finished so far alongside the context error.
func (s *Service) RunBatch(ctx context.Context, req BatchRequest) ([]BatchItem, error) {
	if len(req.URLs) == 0 {
		return nil, fmt.Errorf("%w: batch has no URLs", common.ErrValidation)
	}
	if len(req.URLs) > MaxBatchURLs {
		return nil, fmt.Errorf("%w: batch exceeds %d URLs", common.ErrValidation, MaxBatchURLs)
	}
	if err := s.requireBar(ctx, req.BarID); err != nil {
		return nil, err
	}

	items := make([]BatchItem, 0, len(req.URLs))
	for i, url := range req.URLs {
		if i > 0 && req.Delay > 0 {
			if err := sleepCtx(ctx, req.Delay); err != nil {
				return items, err
			}
		}
		if err := ctx.Err(); err != nil {
			return items, err
		}

		items = append(items, s.runBatchItem(ctx, req, url))
	}

	s.logger.Info("trawl.batch.ok", "bar_id", req.BarID, "urls", len(req.URLs))
	return items, nil
}

func (s *Service) runBatchItem(ctx context.Context, req BatchRequest, url string) BatchItem {
	item := BatchItem{URL: url}

	out, err := s.TrawlURL(ctx, TrawlURLRequest{
		BarID:       req.BarID,
		URL:         url,
		SubmittedBy: req.SubmittedBy,
	})
	if out != nil && out.Job != nil {
		id := out.Job.ID
		item.JobID = &id
		item.Status = out.Job.Status
		item.Result = out.Result
	}

	switch {
	case err == nil:
		// item.Status already carries the terminal job status
	case errors.Is(err, common.ErrSafetyRejected):
		item.Status = "REJECTED"
		item.Error = err.Error()
	default:
		if item.Status == "" {
			item.Status = "FAILED"
		}
		item.Error = err.Error()
	}
	if err != nil && item.Result == nil {
		item.Result = &ingest.TrawlResult{Success: false, Error: err.Error()}
	}
	return item
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
