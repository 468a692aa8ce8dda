package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"agenda-modista/internal/models"
	"agenda-modista/internal/storage"
	"agenda-modista/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors. Anything that is not a
// known storage sentinel counts as a persistence failure: recoverable,
// retryable by the caller.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrPersistence, operation, err)
	}
	log.Printf("Repository error during %s: %v", operation, err)
	return fmt.Errorf("%w: %s: %v", ErrPersistence, operation, err)
}

// validateJob checks the invariants every stored record must satisfy.
func validateJob(job *models.Job) error {
	if strings.TrimSpace(job.JobName) == "" {
		return fmt.Errorf("%w: nombre_trabajo must not be blank", ErrValidation)
	}
	if strings.TrimSpace(job.ClientName) == "" {
		return fmt.Errorf("%w: nombre_cliente must not be blank", ErrValidation)
	}
	if job.PieceCount <= 0 {
		return fmt.Errorf("%w: cantidad_piezas must be positive", ErrValidation)
	}
	if job.TotalValue < 0 {
		return fmt.Errorf("%w: valor_total must not be negative", ErrValidation)
	}
	if job.DepositReceived < 0 {
		return fmt.Errorf("%w: abono_recibido must not be negative", ErrValidation)
	}
	if !job.Status.Valid() {
		return fmt.Errorf("%w: invalid estado_trabajo %q", ErrValidation, job.Status)
	}
	if err := job.Measurements.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// mergeUpdate applies the non-nil fields of a partial update over a snapshot.
func mergeUpdate(job models.Job, req *dto.UpdateJobRequest) models.Job {
	if req.JobName != nil {
		job.JobName = *req.JobName
	}
	if req.ClientName != nil {
		job.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		job.ClientPhone = *req.ClientPhone
	}
	if req.PieceCount != nil {
		job.PieceCount = *req.PieceCount
	}
	if req.ReceivedDate != nil {
		job.ReceivedDate = req.ReceivedDate
	}
	if req.EstimatedDeliveryDate != nil {
		job.EstimatedDeliveryDate = req.EstimatedDeliveryDate
	}
	if req.ActualDeliveryDate != nil {
		job.ActualDeliveryDate = req.ActualDeliveryDate
	}
	if req.TotalValue != nil {
		job.TotalValue = *req.TotalValue
	}
	if req.DepositReceived != nil {
		job.DepositReceived = *req.DepositReceived
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Detail != nil {
		job.Detail = *req.Detail
	}
	if req.Measurements != nil {
		job.Measurements = *req.Measurements
	}
	if req.ImageURL != nil {
		job.ImageURL = *req.ImageURL
	}
	return job
}
