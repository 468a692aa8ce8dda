package finance_test

import (
	"testing"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDerive_Classification(t *testing.T) {
	cases := []struct {
		name       string
		total      float64
		deposit    float64
		wantStatus models.PaymentStatus
	}{
		{"no deposit", 100, 0, models.PaymentStatusUnpaid},
		{"partial deposit", 100, 50, models.PaymentStatusPartial},
		{"exact payment", 100, 100, models.PaymentStatusPaid},
		{"overpayment", 100, 150, models.PaymentStatusPaid},
		{"zero value zero deposit", 0, 0, models.PaymentStatusPaid},
		{"zero value with deposit", 0, 20, models.PaymentStatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := models.Job{TotalValue: tc.total, DepositReceived: tc.deposit}
			derived := finance.Derive(job)

			assert.Equal(t, tc.wantStatus, derived.PaymentStatus)
			assert.Equal(t, tc.total-tc.deposit, derived.PendingBalance)
		})
	}
}

func TestDerive_OverpaymentHasNegativeBalance(t *testing.T) {
	derived := finance.Derive(models.Job{TotalValue: 100, DepositReceived: 150})

	assert.Equal(t, -50.0, derived.PendingBalance)
	assert.Equal(t, models.PaymentStatusPaid, derived.PaymentStatus)
}

func TestDerive_Idempotent(t *testing.T) {
	job := models.Job{TotalValue: 100, DepositReceived: 30}

	once := finance.Derive(job)
	twice := finance.Derive(once)

	assert.Equal(t, once, twice)
}

func TestDerive_PassesOtherFieldsThrough(t *testing.T) {
	received := models.NewDate(2024, 3, 12)
	job := models.Job{
		ID:           7,
		JobName:      "Vestido de gala",
		ClientName:   "María Torres",
		PieceCount:   2,
		ReceivedDate: &received,
		TotalValue:   200,
		Status:       models.JobStatusInProgress,
		Measurements: models.Measurements{{Name: "cintura", Value: "74cm"}},
	}

	derived := finance.Derive(job)

	assert.Equal(t, job.ID, derived.ID)
	assert.Equal(t, job.JobName, derived.JobName)
	assert.Equal(t, job.ClientName, derived.ClientName)
	assert.Equal(t, job.PieceCount, derived.PieceCount)
	assert.Equal(t, job.ReceivedDate, derived.ReceivedDate)
	assert.Equal(t, job.Status, derived.Status)
	assert.Equal(t, job.Measurements, derived.Measurements)
}

func TestDerive_OverwritesStaleDerivedFields(t *testing.T) {
	job := models.Job{
		TotalValue:      100,
		DepositReceived: 100,
		PendingBalance:  999,
		PaymentStatus:   models.PaymentStatusUnpaid,
	}

	derived := finance.Derive(job)

	assert.Equal(t, 0.0, derived.PendingBalance)
	assert.Equal(t, models.PaymentStatusPaid, derived.PaymentStatus)
}
