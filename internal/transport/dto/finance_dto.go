// internal/transport/dto/finance_dto.go
package dto

// PeriodBucketResponse is one weekly or monthly bucket of the finance view.
// Labels follow the dashboard convention: "2024-3" for March 2024, "2024-S2"
// for the second week-of-month.
type PeriodBucketResponse struct {
	Period         string  `json:"periodo"`
	TotalValue     float64 `json:"total"`
	CollectedValue float64 `json:"cobrados"`
	PendingValue   float64 `json:"pendiente"`
}

// FinanceTotalsResponse are the grand totals across all buckets.
type FinanceTotalsResponse struct {
	TotalValue     float64 `json:"total"`
	CollectedValue float64 `json:"cobrados"`
	PendingValue   float64 `json:"pendiente"`
}

// FinanceSummaryResponse is the full payload of the Finanzas view.
type FinanceSummaryResponse struct {
	Period  string                 `json:"periodo"`
	Buckets []PeriodBucketResponse `json:"resumen"`
	Totals  FinanceTotalsResponse  `json:"totales"`
}
