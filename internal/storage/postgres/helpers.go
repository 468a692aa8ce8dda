package postgres

import (
	"context"

	"agenda-modista/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstracts over a pool and a transaction so repos can be reused
// inside WithTx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// scanJob scans a full job row in jobColumns order.
func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.JobName,
		&job.ClientName,
		&job.ClientPhone,
		&job.PieceCount,
		&job.ReceivedDate,
		&job.EstimatedDeliveryDate,
		&job.ActualDeliveryDate,
		&job.TotalValue,
		&job.DepositReceived,
		&job.Status,
		&job.Detail,
		&job.Measurements,
		&job.ImageURL,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
