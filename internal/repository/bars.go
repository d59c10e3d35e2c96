package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/utils"
)

type BarRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bar, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, name string, websiteURL *string) (*entity.Bar, error)
}

type barRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBarRepository(client *ent.Client, logger *slog.Logger) BarRepository {
	return &barRepository{client: client, logger: logger}
}

func (r *barRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bar, error) {
	b, err := r.client.Bar.Query().Where(bar.ID(id)).Only(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return utils.ToBar(b), nil
}

func (r *barRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.client.Bar.Query().Where(bar.ID(id)).Exist(ctx)
	if err != nil {
		return false, classify(err)
	}
	return ok, nil
}

func (r *barRepository) Create(ctx context.Context, name string, websiteURL *string) (*entity.Bar, error) {
	create := r.client.Bar.Create().SetName(name)
	if websiteURL != nil {
		create = create.SetWebsiteURL(*websiteURL)
	}
	b, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("bar create failed", "name", name, "error", err)
		return nil, classify(err)
	}
	r.logger.Info("bar created", "bar_id", b.ID, "name", name)
	return utils.ToBar(b), nil
}
