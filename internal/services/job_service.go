package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"
	"agenda-modista/internal/storage"
	"agenda-modista/internal/transport/dto"

	"github.com/redis/go-redis/v9"
)

const summaryCachePrefix = "finanzas:resumen:"

// jobService owns the in-memory collection of jobs. The repository is the
// source of truth; the collection mirrors its last known-good state, with
// derived fields recomputed on every write. A single mutex serializes all
// mutations, and a repository call is always awaited to completion before the
// collection is touched, so readers never observe partial state.
type jobService struct {
	repo  storage.JobRepository
	cache *redis.Client // optional finance-summary cache, may be nil

	mu    sync.Mutex
	jobs  map[int64]models.Job
	order []int64 // insertion order, keeps the chronological sort stable
}

// NewJobService creates a new instance of JobService. cache may be nil, in
// which case finance summaries are always computed from scratch.
func NewJobService(repo storage.JobRepository, cache *redis.Client) JobService {
	return &jobService{
		repo:  repo,
		cache: cache,
		jobs:  make(map[int64]models.Job),
	}
}

// Load replaces the collection with the repository contents. Records with an
// unrecognized status are kept (they are still the user's data) but flagged.
func (s *jobService) Load(ctx context.Context) error {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return mapRepoError(err, "loading jobs")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = make(map[int64]models.Job, len(jobs))
	s.order = s.order[:0]
	for _, job := range jobs {
		if !job.Status.Valid() {
			log.Printf("Data anomaly: job %d has unrecognized status %q", job.ID, job.Status)
		}
		s.jobs[job.ID] = finance.Derive(job)
		s.order = append(s.order, job.ID)
	}
	log.Printf("Job collection loaded: %d jobs", len(jobs))
	return nil
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := models.Job{
		JobName:               req.JobName,
		ClientName:            req.ClientName,
		ClientPhone:           req.ClientPhone,
		PieceCount:            req.PieceCount,
		ReceivedDate:          req.ReceivedDate,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		ActualDeliveryDate:    req.ActualDeliveryDate,
		TotalValue:            req.TotalValue,
		DepositReceived:       req.DepositReceived,
		Status:                req.Status,
		Detail:                req.Detail,
		Measurements:          req.Measurements,
		ImageURL:              req.ImageURL,
	}
	if job.PieceCount == 0 {
		job.PieceCount = 1
	}
	if job.Status == "" {
		job.Status = models.JobStatusToDo
	}
	if err := validateJob(&job); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.repo.Create(ctx, &job)
	if err != nil {
		// Collection untouched: a failed create leaves no partial insert.
		return nil, mapRepoError(err, "creating job")
	}

	derived := finance.Derive(*created)
	s.jobs[derived.ID] = derived
	s.order = append(s.order, derived.ID)
	s.invalidateSummary(ctx)

	return &derived, nil
}

func (s *jobService) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, id)
	}
	return &job, nil
}

func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	// A missing id in the request itself is a malformed call, distinct from
	// a well-formed id that matches no record.
	if req.ID == 0 {
		return nil, fmt.Errorf("%w: missing job id", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.jobs[req.ID]
	if !ok {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, req.ID)
	}

	merged := mergeUpdate(existing, req)
	if err := validateJob(&merged); err != nil {
		return nil, err
	}
	merged = finance.Derive(merged)

	persisted, err := s.repo.Update(ctx, &merged)
	if err != nil {
		// The in-memory record was never touched, so readers keep seeing the
		// pre-update snapshot.
		return nil, mapRepoError(err, fmt.Sprintf("updating job %d", req.ID))
	}

	derived := finance.Derive(*persisted)
	s.jobs[derived.ID] = derived
	s.invalidateSummary(ctx)

	return &derived, nil
}

func (s *jobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	if req.ID == 0 {
		return fmt.Errorf("%w: missing job id", ErrValidation)
	}
	// Deletion is irreversible; the UI boundary must have obtained the
	// confirmation before the call reaches the core.
	if !req.Confirm {
		return fmt.Errorf("%w: delete requires confirmation", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[req.ID]; !ok {
		// Deleting twice reports not-found the second time, never a silent
		// success.
		return fmt.Errorf("%w: job %d", ErrNotFound, req.ID)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %d", req.ID))
	}

	delete(s.jobs, req.ID)
	for i, id := range s.order {
		if id == req.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.invalidateSummary(ctx)
	return nil
}

// MoveStatus is the drag-and-drop operation of the board: an update that
// changes only the workflow status.
func (s *jobService) MoveStatus(ctx context.Context, req *dto.MoveStatusRequest) (*models.Job, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid estado_trabajo %q", ErrValidation, req.Status)
	}
	status := req.Status
	return s.Update(ctx, &dto.UpdateJobRequest{ID: req.ID, Status: &status})
}

// ListChronological returns all jobs sorted ascending by reception date.
// Absent dates sort as earliest; the sort is stable, so jobs with equal dates
// keep their insertion order.
func (s *jobService) ListChronological(ctx context.Context) []models.Job {
	s.mu.Lock()
	jobs := s.snapshotLocked()
	s.mu.Unlock()

	sortChronological(jobs)
	return jobs
}

// Board partitions the collection into the three workflow columns. A job with
// an unrecognized status lands in no column and is logged as a data anomaly;
// it is not removed from the collection.
func (s *jobService) Board(ctx context.Context) Board {
	jobs := s.ListChronological(ctx)

	board := Board{
		ToDo:       []models.Job{},
		InProgress: []models.Job{},
		Done:       []models.Job{},
	}
	for _, job := range jobs {
		switch job.Status {
		case models.JobStatusToDo:
			board.ToDo = append(board.ToDo, job)
		case models.JobStatusInProgress:
			board.InProgress = append(board.InProgress, job)
		case models.JobStatusDone:
			board.Done = append(board.Done, job)
		default:
			log.Printf("Data anomaly: job %d has unrecognized status %q, excluded from board", job.ID, job.Status)
		}
	}
	return board
}

// FinanceSummary computes the weekly or monthly rollup. When a cache client
// is configured the result is cached until the next mutation; cache failures
// fall back to a fresh computation.
func (s *jobService) FinanceSummary(ctx context.Context, granularity finance.Granularity) (*finance.Summary, error) {
	key := summaryCachePrefix + string(granularity)

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var cached finance.Summary
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			log.Printf("Discarding malformed cached finance summary %s: %v", key, err)
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("Finance summary cache read failed: %v", err)
		}
	}

	s.mu.Lock()
	jobs := s.snapshotLocked()
	s.mu.Unlock()

	summary := finance.Aggregate(jobs, granularity)

	if s.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, key, data, 0).Err(); err != nil {
				log.Printf("Finance summary cache write failed: %v", err)
			}
		}
	}
	return &summary, nil
}

// invalidateSummary drops cached finance summaries after a mutation. Caller
// must hold the mutex, so the cache never outlives the collection change.
func (s *jobService) invalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := []string{
		summaryCachePrefix + string(finance.GranularityWeekly),
		summaryCachePrefix + string(finance.GranularityMonthly),
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Finance summary cache invalidation failed: %v", err)
	}
}

// snapshotLocked copies the collection in insertion order. Caller must hold
// the mutex.
func (s *jobService) snapshotLocked() []models.Job {
	jobs := make([]models.Job, 0, len(s.order))
	for _, id := range s.order {
		jobs = append(jobs, s.jobs[id])
	}
	return jobs
}

func sortChronological(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return receivedTime(jobs[i]).Before(receivedTime(jobs[j]))
	})
}

// receivedTime treats an absent reception date as the earliest possible date
// so undated jobs sort to the front.
func receivedTime(job models.Job) time.Time {
	if job.ReceivedDate == nil {
		return time.Time{}
	}
	return job.ReceivedDate.Time
}
