package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/utils"
)

// CreateListingRequest wraps parameters for creating a bar-whiskey listing.
type CreateListingRequest struct {
	BarID      uuid.UUID
	WhiskeyID  uuid.UUID
	Price      *float64
	PourSize   *string
	Notes      *string
	SourceType string
}

// UpdateListingRequest carries only the fields the menu actually stated.
// Nil fields are left untouched in storage; last_verified always refreshes.
type UpdateListingRequest struct {
	Price    *float64
	PourSize *string
	Notes    *string
	// Available is a tri-state for the same reason the others are pointers.
	Available *bool
}

type ListingRepository interface {
	GetForBar(ctx context.Context, barID, whiskeyID uuid.UUID) (*entity.BarWhiskey, error)
	Create(ctx context.Context, req CreateListingRequest) (*entity.BarWhiskey, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateListingRequest) (*entity.BarWhiskey, error)
	// ListMenu returns the bar's current listings joined onto their whiskeys,
	// ordered by whiskey name.
	ListMenu(ctx context.Context, barID uuid.UUID) ([]*entity.MenuItem, error)
}

type listingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewListingRepository(client *ent.Client, logger *slog.Logger) ListingRepository {
	return &listingRepository{client: client, logger: logger}
}

func (r *listingRepository) GetForBar(ctx context.Context, barID, whiskeyID uuid.UUID) (*entity.BarWhiskey, error) {
	l, err := r.client.BarWhiskey.Query().
		Where(barwhiskey.BarID(barID), barwhiskey.WhiskeyID(whiskeyID)).
		Only(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return utils.ToBarWhiskey(l), nil
}

func (r *listingRepository) Create(ctx context.Context, req CreateListingRequest) (*entity.BarWhiskey, error) {
	create := r.client.BarWhiskey.Create().
		SetBarID(req.BarID).
		SetWhiskeyID(req.WhiskeyID).
		SetSourceType(req.SourceType).
		SetLastVerified(time.Now().UTC())
	if req.Price != nil {
		create = create.SetPrice(*req.Price)
	}
	if req.PourSize != nil {
		create = create.SetPourSize(*req.PourSize)
	}
	if req.Notes != nil {
		create = create.SetNotes(*req.Notes)
	}

	l, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("listing create failed",
			"bar_id", req.BarID, "whiskey_id", req.WhiskeyID, "error", err)
		return nil, classify(err)
	}
	r.logger.Info("listing created", "listing_id", l.ID, "bar_id", req.BarID, "whiskey_id", req.WhiskeyID)
	return utils.ToBarWhiskey(l), nil
}

func (r *listingRepository) Update(ctx context.Context, id uuid.UUID, req UpdateListingRequest) (*entity.BarWhiskey, error) {
	update := r.client.BarWhiskey.UpdateOneID(id).
		SetLastVerified(time.Now().UTC())
	if req.Price != nil {
		update = update.SetPrice(*req.Price)
	}
	if req.PourSize != nil {
		update = update.SetPourSize(*req.PourSize)
	}
	if req.Notes != nil {
		update = update.SetNotes(*req.Notes)
	}
	if req.Available != nil {
		update = update.SetAvailable(*req.Available)
	}

	l, err := update.Save(ctx)
	if err != nil {
		r.logger.Error("listing update failed", "listing_id", id, "error", err)
		return nil, classify(err)
	}
	return utils.ToBarWhiskey(l), nil
}

func (r *listingRepository) ListMenu(ctx context.Context, barID uuid.UUID) ([]*entity.MenuItem, error) {
	rows, err := r.client.BarWhiskey.Query().
		Where(barwhiskey.BarID(barID)).
		WithWhiskey().
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}

	items := make([]*entity.MenuItem, 0, len(rows))
	for _, row := range rows {
		w := row.Edges.Whiskey
		if w == nil {
			continue
		}
		items = append(items, &entity.MenuItem{
			WhiskeyName:  w.Name,
			Distillery:   w.Distillery,
			SpiritType:   w.SpiritType,
			AgeYears:     w.AgeYears,
			ABV:          w.Abv,
			Price:        row.Price,
			PourSize:     row.PourSize,
			Available:    row.Available,
			Notes:        row.Notes,
			LastVerified: row.LastVerified,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].WhiskeyName < items[j].WhiskeyName })
	return items, nil
}
