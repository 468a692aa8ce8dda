package finance

import (
	"fmt"
	"sort"

	"agenda-modista/internal/models"
)

// Granularity selects the period bucketing of the financial rollup. The
// values are the wire values of the `periodo` query parameter.
type Granularity string

const (
	GranularityWeekly  Granularity = "semanal"
	GranularityMonthly Granularity = "mensual"
)

// ParseGranularity validates a user-supplied period string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityWeekly:
		return GranularityWeekly, nil
	case GranularityMonthly:
		return GranularityMonthly, nil
	default:
		return "", fmt.Errorf("invalid period %q: expected %q or %q", s, GranularityWeekly, GranularityMonthly)
	}
}

// Bucket is one period of the rollup. Period is the month number (1-12) for
// monthly buckets and the week-of-month (1-5) for weekly buckets.
type Bucket struct {
	Year           int     `json:"-"`
	Period         int     `json:"-"`
	Label          string  `json:"periodo"`
	TotalValue     float64 `json:"total"`
	CollectedValue float64 `json:"cobrados"`
	PendingValue   float64 `json:"pendiente"`
}

// Summary is the full rollup: ordered buckets plus grand totals.
type Summary struct {
	Buckets        []Bucket `json:"resumen"`
	TotalValue     float64  `json:"total"`
	CollectedValue float64  `json:"cobrados"`
	PendingValue   float64  `json:"pendiente"`
}

type periodKey struct {
	year   int
	period int
}

// Aggregate groups jobs into weekly or monthly buckets. The bucketing date is
// the actual delivery date when present, else the received date; a job with
// neither contributes to no bucket. Weekly buckets are week-of-month
// (days 1-7 are week 1, 8-14 week 2, ...) and reset every calendar month.
// These are not ISO week numbers.
//
// Collected money is computed as TotalValue - PendingBalance rather than a
// re-read of the deposit, so overpayments are counted the same way Derive
// classifies them. Jobs are re-derived here, so callers may pass raw records.
func Aggregate(jobs []models.Job, granularity Granularity) Summary {
	grouped := make(map[periodKey]*Bucket)

	for _, job := range jobs {
		date := bucketDate(job)
		if date == nil {
			continue
		}

		var key periodKey
		var label string
		switch granularity {
		case GranularityWeekly:
			week := (date.Day()-1)/7 + 1
			key = periodKey{year: date.Year(), period: week}
			label = fmt.Sprintf("%d-S%d", key.year, key.period)
		default:
			key = periodKey{year: date.Year(), period: int(date.Month())}
			label = fmt.Sprintf("%d-%d", key.year, key.period)
		}

		bucket, ok := grouped[key]
		if !ok {
			bucket = &Bucket{Year: key.year, Period: key.period, Label: label}
			grouped[key] = bucket
		}

		derived := Derive(job)
		bucket.TotalValue += derived.TotalValue
		bucket.PendingValue += derived.PendingBalance
		bucket.CollectedValue += derived.TotalValue - derived.PendingBalance
	}

	summary := Summary{Buckets: make([]Bucket, 0, len(grouped))}
	for _, bucket := range grouped {
		summary.Buckets = append(summary.Buckets, *bucket)
	}
	sort.Slice(summary.Buckets, func(i, j int) bool {
		a, b := summary.Buckets[i], summary.Buckets[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Period < b.Period
	})

	for _, bucket := range summary.Buckets {
		summary.TotalValue += bucket.TotalValue
		summary.CollectedValue += bucket.CollectedValue
		summary.PendingValue += bucket.PendingValue
	}
	return summary
}

func bucketDate(job models.Job) *models.Date {
	if job.ActualDeliveryDate != nil {
		return job.ActualDeliveryDate
	}
	return job.ReceivedDate
}
