package routes_test

import (
	"context"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"
	"agenda-modista/internal/services"
	"agenda-modista/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// MockJobService is a mock implementation of services.JobService
type MockJobService struct {
	mock.Mock
}

// Ensure MockJobService implements the interface (compile-time check)
var _ services.JobService = (*MockJobService)(nil)

func (m *MockJobService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockJobService) MoveStatus(ctx context.Context, req *dto.MoveStatusRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListChronological(ctx context.Context) []models.Job {
	args := m.Called(ctx)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs
	}
	return nil
}

func (m *MockJobService) Board(ctx context.Context) services.Board {
	args := m.Called(ctx)
	return args.Get(0).(services.Board)
}

func (m *MockJobService) FinanceSummary(ctx context.Context, granularity finance.Granularity) (*finance.Summary, error) {
	args := m.Called(ctx, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Summary), args.Error(1)
}
