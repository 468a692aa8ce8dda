package finance_test

import (
	"testing"
	"time"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year, month, day int) *models.Date {
	d := models.NewDate(year, time.Month(month), day)
	return &d
}

func jobOn(received *models.Date, total, deposit float64) models.Job {
	return models.Job{ReceivedDate: received, TotalValue: total, DepositReceived: deposit}
}

func TestAggregate_MonthlySingleBucket(t *testing.T) {
	jobs := []models.Job{
		jobOn(datePtr(2024, 1, 15), 100, 100),
		jobOn(datePtr(2024, 1, 20), 200, 50),
	}

	summary := finance.Aggregate(jobs, finance.GranularityMonthly)

	require.Len(t, summary.Buckets, 1)
	bucket := summary.Buckets[0]
	assert.Equal(t, "2024-1", bucket.Label)
	assert.Equal(t, 300.0, bucket.TotalValue)
	assert.Equal(t, 150.0, bucket.CollectedValue)
	assert.Equal(t, 150.0, bucket.PendingValue)
}

func TestAggregate_WeeklyWeekOfMonth(t *testing.T) {
	jobs := []models.Job{
		jobOn(datePtr(2024, 3, 1), 100, 0),  // day 1 -> week 1
		jobOn(datePtr(2024, 3, 7), 50, 0),   // day 7 -> week 1
		jobOn(datePtr(2024, 3, 8), 200, 0),  // day 8 -> week 2
		jobOn(datePtr(2024, 3, 31), 300, 0), // day 31 -> week 5
	}

	summary := finance.Aggregate(jobs, finance.GranularityWeekly)

	require.Len(t, summary.Buckets, 3)
	assert.Equal(t, "2024-S1", summary.Buckets[0].Label)
	assert.Equal(t, 150.0, summary.Buckets[0].TotalValue)
	assert.Equal(t, "2024-S2", summary.Buckets[1].Label)
	assert.Equal(t, 200.0, summary.Buckets[1].TotalValue)
	assert.Equal(t, "2024-S5", summary.Buckets[2].Label)
	assert.Equal(t, 300.0, summary.Buckets[2].TotalValue)
}

func TestAggregate_WeeklyResetsEveryMonth(t *testing.T) {
	// Week-of-month, not week-of-year: April 2nd is S1 again.
	jobs := []models.Job{
		jobOn(datePtr(2024, 3, 3), 100, 0),
		jobOn(datePtr(2024, 4, 2), 200, 0),
	}

	summary := finance.Aggregate(jobs, finance.GranularityWeekly)

	require.Len(t, summary.Buckets, 2)
	assert.Equal(t, "2024-S1", summary.Buckets[0].Label)
	assert.Equal(t, "2024-S1", summary.Buckets[1].Label)
	assert.Equal(t, 100.0, summary.Buckets[0].TotalValue)
	assert.Equal(t, 200.0, summary.Buckets[1].TotalValue)
}

func TestAggregate_DeliveryDateTakesPriority(t *testing.T) {
	received := datePtr(2024, 1, 10)
	delivered := datePtr(2024, 2, 5)
	job := models.Job{ReceivedDate: received, ActualDeliveryDate: delivered, TotalValue: 100}

	summary := finance.Aggregate([]models.Job{job}, finance.GranularityMonthly)

	require.Len(t, summary.Buckets, 1)
	assert.Equal(t, "2024-2", summary.Buckets[0].Label)
}

func TestAggregate_UndatedJobsAreExcluded(t *testing.T) {
	jobs := []models.Job{
		{TotalValue: 500}, // no dates at all
		jobOn(datePtr(2024, 1, 15), 100, 0),
	}

	summary := finance.Aggregate(jobs, finance.GranularityMonthly)

	require.Len(t, summary.Buckets, 1)
	assert.Equal(t, 100.0, summary.TotalValue)
}

func TestAggregate_BucketsSortedByYearThenPeriod(t *testing.T) {
	jobs := []models.Job{
		jobOn(datePtr(2024, 2, 1), 10, 0),
		jobOn(datePtr(2023, 11, 1), 20, 0),
		jobOn(datePtr(2024, 1, 1), 30, 0),
	}

	summary := finance.Aggregate(jobs, finance.GranularityMonthly)

	require.Len(t, summary.Buckets, 3)
	assert.Equal(t, "2023-11", summary.Buckets[0].Label)
	assert.Equal(t, "2024-1", summary.Buckets[1].Label)
	assert.Equal(t, "2024-2", summary.Buckets[2].Label)
}

func TestAggregate_OverpaymentUsesBalanceIdentity(t *testing.T) {
	// Collected is total - pending, never a raw deposit re-read: an overpaid
	// job counts its full deposit as collected and a negative pending.
	jobs := []models.Job{jobOn(datePtr(2024, 1, 10), 100, 150)}

	summary := finance.Aggregate(jobs, finance.GranularityMonthly)

	require.Len(t, summary.Buckets, 1)
	assert.Equal(t, 100.0, summary.Buckets[0].TotalValue)
	assert.Equal(t, 150.0, summary.Buckets[0].CollectedValue)
	assert.Equal(t, -50.0, summary.Buckets[0].PendingValue)
}

func TestAggregate_GrandTotals(t *testing.T) {
	jobs := []models.Job{
		jobOn(datePtr(2024, 1, 15), 100, 100),
		jobOn(datePtr(2024, 2, 20), 200, 50),
	}

	summary := finance.Aggregate(jobs, finance.GranularityMonthly)

	assert.Equal(t, 300.0, summary.TotalValue)
	assert.Equal(t, 150.0, summary.CollectedValue)
	assert.Equal(t, 150.0, summary.PendingValue)
}

func TestParseGranularity(t *testing.T) {
	g, err := finance.ParseGranularity("semanal")
	require.NoError(t, err)
	assert.Equal(t, finance.GranularityWeekly, g)

	g, err = finance.ParseGranularity("mensual")
	require.NoError(t, err)
	assert.Equal(t, finance.GranularityMonthly, g)

	_, err = finance.ParseGranularity("anual")
	assert.Error(t, err)
}
