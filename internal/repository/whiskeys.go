package repository

import (
	"context"
	"log/slog"

	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/utils"
)

// CreateWhiskeyRequest wraps parameters for creating a catalog whiskey.
type CreateWhiskeyRequest struct {
	Name       string
	Distillery *string
	SpiritType string
	AgeYears   *int
	ABV        *float64
}

type WhiskeyRepository interface {
	// FindByKeys resolves a whiskey by its normalized (name, distillery)
	// identity. Returns common.ErrNotFound when no catalog entry matches.
	FindByKeys(ctx context.Context, nameKey, distilleryKey string) (*entity.Whiskey, error)
	Create(ctx context.Context, req CreateWhiskeyRequest) (*entity.Whiskey, error)
}

type whiskeyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWhiskeyRepository(client *ent.Client, logger *slog.Logger) WhiskeyRepository {
	return &whiskeyRepository{client: client, logger: logger}
}

func (r *whiskeyRepository) FindByKeys(ctx context.Context, nameKey, distilleryKey string) (*entity.Whiskey, error) {
	w, err := r.client.Whiskey.Query().
		Where(whiskey.NameKey(nameKey), whiskey.DistilleryKey(distilleryKey)).
		Only(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return utils.ToWhiskey(w), nil
}

func (r *whiskeyRepository) Create(ctx context.Context, req CreateWhiskeyRequest) (*entity.Whiskey, error) {
	spirit := req.SpiritType
	if spirit == "" {
		spirit = "other"
	}
	distilleryKey := ""
	create := r.client.Whiskey.Create().
		SetName(req.Name).
		SetNameKey(utils.NormalizeKey(req.Name)).
		SetSpiritType(spirit)
	if req.Distillery != nil {
		create = create.SetDistillery(*req.Distillery)
		distilleryKey = utils.NormalizeKey(*req.Distillery)
	}
	create = create.SetDistilleryKey(distilleryKey)
	if req.AgeYears != nil {
		create = create.SetAgeYears(*req.AgeYears)
	}
	if req.ABV != nil {
		create = create.SetAbv(*req.ABV)
	}

	w, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("whiskey create failed", "name", req.Name, "error", err)
		return nil, classify(err)
	}
	r.logger.Info("whiskey created", "whiskey_id", w.ID, "name", req.Name)
	return utils.ToWhiskey(w), nil
}
