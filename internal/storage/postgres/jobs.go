// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"agenda-modista/internal/models"
	"agenda-modista/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, job_name, client_name, client_phone, piece_count,
		received_date, estimated_delivery_date, actual_delivery_date,
		total_value, deposit_received, status, detail, measurements, image_url,
		created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// List retrieves all jobs, oldest reception first (a stable baseline; the
// service re-sorts its own snapshots anyway).
func (r *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		ORDER BY received_date ASC NULLS FIRST, id ASC
	`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// Create saves a new job record. The ID is assigned by the database.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO jobs (job_name, client_name, client_phone, piece_count,
			received_date, estimated_delivery_date, actual_delivery_date,
			total_value, deposit_received, status, detail, measurements, image_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		job.JobName,
		job.ClientName,
		job.ClientPhone,
		job.PieceCount,
		job.ReceivedDate,
		job.EstimatedDeliveryDate,
		job.ActualDeliveryDate,
		job.TotalValue,
		job.DepositReceived,
		job.Status,
		job.Detail,
		job.Measurements,
		job.ImageURL,
	)

	createdJob, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
			log.Printf("Error creating job: constraint violation: %v\n", err)
			return nil, fmt.Errorf("failed to create job: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %d", createdJob.ID)
	return createdJob, nil
}

// Update replaces the stored record. The service layer merges partial updates
// over a snapshot first, so a full-column write keeps the row and the
// in-memory collection identical.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := fmt.Sprintf(`
		UPDATE jobs
		SET job_name = $1, client_name = $2, client_phone = $3, piece_count = $4,
			received_date = $5, estimated_delivery_date = $6, actual_delivery_date = $7,
			total_value = $8, deposit_received = $9, status = $10, detail = $11,
			measurements = $12, image_url = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		job.JobName,
		job.ClientName,
		job.ClientPhone,
		job.PieceCount,
		job.ReceivedDate,
		job.EstimatedDeliveryDate,
		job.ActualDeliveryDate,
		job.TotalValue,
		job.DepositReceived,
		job.Status,
		job.Detail,
		job.Measurements,
		job.ImageURL,
		job.ID,
	)

	updatedJob, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %d\n", job.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %d: %v\n", job.ID, err)
		return nil, fmt.Errorf("failed to update job %d: %w", job.ID, err)
	}

	log.Printf("Job updated successfully: %d", updatedJob.ID)
	return updatedJob, nil
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %d: %v\n", id, err)
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %d\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %d", id)
	return nil
}
