// Package finance holds the pure financial logic of the agenda: per-job
// derived fields and the weekly/monthly rollups behind the Finanzas view.
package finance

import "agenda-modista/internal/models"

// Derive returns the job with PendingBalance and PaymentStatus recomputed from
// TotalValue and DepositReceived. It is total and idempotent: it only reads
// the two raw inputs, every other field passes through unchanged.
//
// The check order matters. "Pagado" wins whenever the balance is <= 0, so an
// overpaid or fully refunded job is never reported as "Abono", and a zero-value
// job with no deposit counts as paid rather than unpaid.
func Derive(job models.Job) models.Job {
	pending := job.TotalValue - job.DepositReceived
	job.PendingBalance = pending

	switch {
	case job.DepositReceived > 0 && pending > 0:
		job.PaymentStatus = models.PaymentStatusPartial
	case pending <= 0:
		job.PaymentStatus = models.PaymentStatusPaid
	default:
		job.PaymentStatus = models.PaymentStatusUnpaid
	}
	return job
}
