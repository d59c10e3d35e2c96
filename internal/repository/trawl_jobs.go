package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/utils"
)

// TrawlJobRepository is the single writer of job state. Every pipeline stage
// reports into it; nothing else mutates trawl_job rows. Jobs transition from
// PROCESSING to exactly one terminal state, enforced with a conditional
// update so a lost race surfaces as ErrJobTerminal instead of a double write.
type TrawlJobRepository interface {
	Start(ctx context.Context, barID uuid.UUID, sourceRef string, sourceType constants.SourceType, submittedBy *string) (*entity.TrawlJob, error)
	Complete(ctx context.Context, jobID uuid.UUID, whiskeyCount int, result json.RawMessage) error
	Fail(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.TrawlJob, error)
}

type trawlJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTrawlJobRepository(entc *ent.Client, log *slog.Logger) TrawlJobRepository {
	return &trawlJobRepo{ent: entc, log: log}
}

func (r *trawlJobRepo) Start(ctx context.Context, barID uuid.UUID, sourceRef string, sourceType constants.SourceType, submittedBy *string) (*entity.TrawlJob, error) {
	create := r.ent.TrawlJob.
		Create().
		SetBarID(barID).
		SetSourceRef(sourceRef).
		SetSourceType(string(sourceType)).
		SetStatus(string(constants.JobStatusProcessing))
	if submittedBy != nil {
		create = create.SetSubmittedBy(*submittedBy)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("trawl_job start failed", "bar_id", barID, "source_ref", sourceRef, "err", err)
		return nil, classify(err)
	}
	r.log.Info("trawl_job started", "job_id", job.ID, "bar_id", barID, "source_type", sourceType)
	return utils.ToTrawlJob(job), nil
}

func (r *trawlJobRepo) Complete(ctx context.Context, jobID uuid.UUID, whiskeyCount int, result json.RawMessage) error {
	n, err := r.ent.TrawlJob.
		Update().
		Where(trawljob.ID(jobID), trawljob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusCompleted)).
		SetWhiskeyCount(whiskeyCount).
		SetResult(result).
		Save(ctx)
	if err != nil {
		r.log.Error("trawl_job complete failed", "job_id", jobID, "err", err)
		return classify(err)
	}
	if n == 0 {
		return r.terminalOrMissing(ctx, jobID)
	}
	r.log.Info("trawl_job completed", "job_id", jobID, "whiskey_count", whiskeyCount)
	return nil
}

func (r *trawlJobRepo) Fail(ctx context.Context, jobID uuid.UUID, message string) error {
	n, err := r.ent.TrawlJob.
		Update().
		Where(trawljob.ID(jobID), trawljob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("trawl_job fail-transition failed", "job_id", jobID, "err", err)
		return classify(err)
	}
	if n == 0 {
		return r.terminalOrMissing(ctx, jobID)
	}
	r.log.Warn("trawl_job failed", "job_id", jobID, "error", message)
	return nil
}

func (r *trawlJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.TrawlJob, error) {
	job, err := r.ent.TrawlJob.Query().Where(trawljob.ID(jobID)).Only(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return utils.ToTrawlJob(job), nil
}

// terminalOrMissing disambiguates a zero-row conditional update.
func (r *trawlJobRepo) terminalOrMissing(ctx context.Context, jobID uuid.UUID) error {
	exists, err := r.ent.TrawlJob.Query().Where(trawljob.ID(jobID)).Exist(ctx)
	if err != nil {
		return classify(err)
	}
	if !exists {
		return common.ErrNotFound
	}
	return common.ErrJobTerminal
}
