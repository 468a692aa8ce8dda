package handlers

import (
	"fmt"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"
	"agenda-modista/internal/services"
	"agenda-modista/internal/transport/dto"

	"github.com/go-playground/validator"
)

// FormatValidationErrors turns validator errors into a field->message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	measurements := job.Measurements
	if measurements == nil {
		measurements = models.Measurements{}
	}
	return dto.JobResponse{
		ID:                    job.ID,
		JobName:               job.JobName,
		ClientName:            job.ClientName,
		ClientPhone:           job.ClientPhone,
		PieceCount:            job.PieceCount,
		ReceivedDate:          job.ReceivedDate,
		EstimatedDeliveryDate: job.EstimatedDeliveryDate,
		ActualDeliveryDate:    job.ActualDeliveryDate,
		TotalValue:            job.TotalValue,
		DepositReceived:       job.DepositReceived,
		Status:                string(job.Status),
		Detail:                job.Detail,
		Measurements:          measurements,
		ImageURL:              job.ImageURL,
		PendingBalance:        job.PendingBalance,
		PaymentStatus:         string(job.PaymentStatus),
		CreatedAt:             job.CreatedAt,
		UpdatedAt:             job.UpdatedAt,
	}
}

// MapJobsToResponses converts a slice of jobs.
func MapJobsToResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, MapJobModelToJobResponse(&jobs[i]))
	}
	return responses
}

// MapBoardToResponse converts a services.Board to a dto.BoardResponse
func MapBoardToResponse(board services.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ToDo:       MapJobsToResponses(board.ToDo),
		InProgress: MapJobsToResponses(board.InProgress),
		Done:       MapJobsToResponses(board.Done),
	}
}

// MapSummaryToResponse converts a finance.Summary to a dto.FinanceSummaryResponse
func MapSummaryToResponse(summary *finance.Summary, granularity finance.Granularity) dto.FinanceSummaryResponse {
	buckets := make([]dto.PeriodBucketResponse, 0, len(summary.Buckets))
	for _, bucket := range summary.Buckets {
		buckets = append(buckets, dto.PeriodBucketResponse{
			Period:         bucket.Label,
			TotalValue:     bucket.TotalValue,
			CollectedValue: bucket.CollectedValue,
			PendingValue:   bucket.PendingValue,
		})
	}
	return dto.FinanceSummaryResponse{
		Period:  string(granularity),
		Buckets: buckets,
		Totals: dto.FinanceTotalsResponse{
			TotalValue:     summary.TotalValue,
			CollectedValue: summary.CollectedValue,
			PendingValue:   summary.PendingValue,
		},
	}
}
