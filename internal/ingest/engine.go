// Package ingest reconciles an extracted menu against the whiskey catalog.
// The policy is best-effort per item, fail-fast per batch: one bad menu line
// is counted and skipped, lost storage connectivity aborts the whole pass.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/extract"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/utils"
)

// TrawlResult is the outward-facing summary of one ingestion. When Success is
// true the three counters sum to len(Menu.Whiskeys).
type TrawlResult struct {
	Success         bool                   `json:"success"`
	Menu            *extract.ExtractedMenu `json:"menu,omitempty"`
	WhiskeysAdded   int                    `json:"whiskeys_added"`
	WhiskeysUpdated int                    `json:"whiskeys_updated"`
	WhiskeysSkipped int                    `json:"whiskeys_skipped"`
	Error           string                 `json:"error,omitempty"`
}

// Engine merges extracted menus into the catalog through the repositories.
type Engine struct {
	whiskeys repository.WhiskeyRepository
	listings repository.ListingRepository
	logger   *slog.Logger
}

func NewEngine(whiskeys repository.WhiskeyRepository, listings repository.ListingRepository, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{whiskeys: whiskeys, listings: listings, logger: logger}
}

// Ingest reconciles menu against the catalog for barID. Items are processed
// in menu order; each is matched-or-created as a catalog whiskey, then
// matched-or-created as a (bar, whiskey) listing. jobID is for log
// correlation only; job state belongs to the job repository.
func (e *Engine) Ingest(ctx context.Context, barID uuid.UUID, menu *extract.ExtractedMenu, jobID uuid.UUID) (*TrawlResult, error) {
	start := time.Now()
	result := &TrawlResult{Menu: menu}

	for i, item := range menu.Whiskeys {
		outcome, err := e.ingestItem(ctx, barID, menu, &item)
		if err != nil {
			if errors.Is(err, common.ErrDatabase) {
				e.logger.Error("ingest.aborted",
					"job_id", jobID, "bar_id", barID, "item_index", i, "error", err)
				return nil, fmt.Errorf("ingest aborted at item %d: %w", i, err)
			}
			// item-level failure: count and move on
			e.logger.Warn("ingest.item_skipped",
				"job_id", jobID, "bar_id", barID, "item_index", i, "name", item.Name, "error", err)
			result.WhiskeysSkipped++
			continue
		}
		switch outcome {
		case outcomeAdded:
			result.WhiskeysAdded++
		case outcomeUpdated:
			result.WhiskeysUpdated++
		default:
			result.WhiskeysSkipped++
		}
	}

	result.Success = true
	e.logger.Info("ingest.ok",
		"job_id", jobID,
		"bar_id", barID,
		"added", result.WhiskeysAdded,
		"updated", result.WhiskeysUpdated,
		"skipped", result.WhiskeysSkipped,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

type itemOutcome int

const (
	outcomeAdded itemOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (e *Engine) ingestItem(ctx context.Context, barID uuid.UUID, menu *extract.ExtractedMenu, item *extract.ExtractedWhiskey) (itemOutcome, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return outcomeSkipped, fmt.Errorf("%w: whiskey has no name", common.ErrValidation)
	}

	w, err := e.resolveWhiskey(ctx, name, item)
	if err != nil {
		return outcomeSkipped, err
	}

	listing, err := e.listings.GetForBar(ctx, barID, w.ID)
	switch {
	case err == nil:
		return e.updateListing(ctx, listing, item)
	case errors.Is(err, common.ErrNotFound):
		_, err := e.listings.Create(ctx, repository.CreateListingRequest{
			BarID:      barID,
			WhiskeyID:  w.ID,
			Price:      item.Price,
			PourSize:   item.PourSize,
			Notes:      item.Notes,
			SourceType: string(menu.SourceType),
		})
		if err != nil {
			return outcomeSkipped, err
		}
		return outcomeAdded, nil
	default:
		return outcomeSkipped, err
	}
}

// resolveWhiskey matches the item against the catalog by normalized
// (name, distillery), creating the entry when nothing matches. A create that
// loses a concurrent race falls back to one re-lookup.
func (e *Engine) resolveWhiskey(ctx context.Context, name string, item *extract.ExtractedWhiskey) (*entity.Whiskey, error) {
	nameKey := utils.NormalizeKey(name)
	distilleryKey := ""
	if item.Distillery != nil {
		distilleryKey = utils.NormalizeKey(*item.Distillery)
	}

	found, err := e.whiskeys.FindByKeys(ctx, nameKey, distilleryKey)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	spirit := ""
	if item.SpiritType != nil {
		spirit = *item.SpiritType
	}
	created, err := e.whiskeys.Create(ctx, repository.CreateWhiskeyRequest{
		Name:       name,
		Distillery: item.Distillery,
		SpiritType: spirit,
		AgeYears:   item.AgeYears,
		ABV:        item.ABV,
	})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, common.ErrConflict) {
		// lost a concurrent create for the same identity
		return e.whiskeys.FindByKeys(ctx, nameKey, distilleryKey)
	}
	return nil, err
}

// updateListing applies only the fields the menu stated. Absent fields never
// overwrite stored values; identical values count as skipped but still
// refresh last_verified.
func (e *Engine) updateListing(ctx context.Context, listing *entity.BarWhiskey, item *extract.ExtractedWhiskey) (itemOutcome, error) {
	var req repository.UpdateListingRequest
	changed := false

	if item.Price != nil && (listing.Price == nil || *listing.Price != *item.Price) {
		req.Price = item.Price
		changed = true
	}
	if item.PourSize != nil && (listing.PourSize == nil || *listing.PourSize != *item.PourSize) {
		req.PourSize = item.PourSize
		changed = true
	}
	if item.Notes != nil && (listing.Notes == nil || *listing.Notes != *item.Notes) {
		req.Notes = item.Notes
		changed = true
	}
	if !listing.Available {
		avail := true // the whiskey is back on the menu
		req.Available = &avail
		changed = true
	}

	if _, err := e.listings.Update(ctx, listing.ID, req); err != nil {
		return outcomeSkipped, err
	}
	if changed {
		return outcomeUpdated, nil
	}
	return outcomeSkipped, nil
}
