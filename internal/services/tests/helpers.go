package services_test

import (
	"context"
	"errors"
	"time"

	"agenda-modista/internal/models"
	"agenda-modista/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

// Ensure MockJobRepository implements the interface (compile-time check)
var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) List(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Job")
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- small pointer/value helpers ---

func ptrStr(s string) *string { return &s }

func ptrFloat64(f float64) *float64 { return &f }

func ptrStatus(s models.JobStatus) *models.JobStatus { return &s }

func mkDate(year, month, day int) *models.Date {
	d := models.NewDate(year, time.Month(month), day)
	return &d
}
