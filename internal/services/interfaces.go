package services

import (
	"context"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"
	"agenda-modista/internal/transport/dto"
)

// Board is the kanban partition of the collection: three disjoint columns,
// each in chronological order. Jobs with an unrecognized status appear in no
// column (they are logged as data anomalies but stay in the collection).
type Board struct {
	ToDo       []models.Job
	InProgress []models.Job
	Done       []models.Job
}

// JobService defines the interface for the job collection: CRUD mutations
// (persisted through the repository), the view projections, and the finance
// rollup. All mutations are serialized; no partial state is ever observable.
type JobService interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
	MoveStatus(ctx context.Context, req *dto.MoveStatusRequest) (*models.Job, error)
	ListChronological(ctx context.Context) []models.Job
	Board(ctx context.Context) Board
	FinanceSummary(ctx context.Context, granularity finance.Granularity) (*finance.Summary, error)
}
