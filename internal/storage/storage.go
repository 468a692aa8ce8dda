package storage

import (
	"context"

	"agenda-modista/internal/models"
)

// JobRepository defines the interface for job persistence. Two
// implementations exist: postgres (pgx) and memory (optionally seeded from a
// YAML file); the backend is selected by configuration, not by duplicated
// business logic.
//
// The repository deals in raw records only: derived fields (pending balance,
// payment status) are a service concern and are ignored here.
type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error) // assigns the ID
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
}
