// Package memory provides a JobRepository backed by an in-process map,
// optionally seeded from a YAML file. It replaces the old "static seed"
// variant of the dashboard backend and is the default for local development.
package memory

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"agenda-modista/internal/models"
	"agenda-modista/internal/storage"

	"gopkg.in/yaml.v3"
)

// JobRepo implements storage.JobRepository with an in-memory map and
// auto-increment IDs.
type JobRepo struct {
	mu     sync.Mutex
	jobs   map[int64]models.Job
	order  []int64
	nextID int64
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// NewJobRepo creates an empty in-memory repository.
func NewJobRepo() *JobRepo {
	return &JobRepo{jobs: make(map[int64]models.Job), nextID: 1}
}

// seedJob mirrors the job fields in the seed YAML. Dates are plain
// "YYYY-MM-DD" strings.
type seedJob struct {
	JobName               string            `yaml:"nombre_trabajo"`
	ClientName            string            `yaml:"nombre_cliente"`
	ClientPhone           string            `yaml:"telefono_cliente"`
	PieceCount            int               `yaml:"cantidad_piezas"`
	ReceivedDate          string            `yaml:"fecha_recepcion"`
	EstimatedDeliveryDate string            `yaml:"fecha_entrega_estimada"`
	ActualDeliveryDate    string            `yaml:"fecha_entrega"`
	TotalValue            float64           `yaml:"valor_total"`
	DepositReceived       float64           `yaml:"abono_recibido"`
	Status                string            `yaml:"estado_trabajo"`
	Detail                string            `yaml:"detalle_general"`
	Measurements          []seedMeasurement `yaml:"medidas"`
	ImageURL              string            `yaml:"imagen_url"`
}

type seedMeasurement struct {
	Name  string `yaml:"nombre"`
	Value string `yaml:"valor"`
}

// NewJobRepoFromSeed creates a repository pre-populated from a YAML seed file.
func NewJobRepoFromSeed(path string) (*JobRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seeds []seedJob
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	repo := NewJobRepo()
	for i, seed := range seeds {
		job, err := seed.toJob()
		if err != nil {
			return nil, fmt.Errorf("invalid seed entry %d: %w", i, err)
		}
		repo.insert(job)
	}

	log.Printf("Seeded in-memory job repository with %d jobs from %s", len(seeds), path)
	return repo, nil
}

func (s seedJob) toJob() (models.Job, error) {
	job := models.Job{
		JobName:         s.JobName,
		ClientName:      s.ClientName,
		ClientPhone:     s.ClientPhone,
		PieceCount:      s.PieceCount,
		TotalValue:      s.TotalValue,
		DepositReceived: s.DepositReceived,
		Status:          models.JobStatus(s.Status),
		Detail:          s.Detail,
		ImageURL:        s.ImageURL,
	}
	if job.PieceCount <= 0 {
		job.PieceCount = 1
	}
	if job.Status == "" {
		job.Status = models.JobStatusToDo
	}
	for _, m := range s.Measurements {
		job.Measurements = append(job.Measurements, models.Measurement{Name: m.Name, Value: m.Value})
	}

	var err error
	if job.ReceivedDate, err = parseSeedDate(s.ReceivedDate); err != nil {
		return job, err
	}
	if job.EstimatedDeliveryDate, err = parseSeedDate(s.EstimatedDeliveryDate); err != nil {
		return job, err
	}
	if job.ActualDeliveryDate, err = parseSeedDate(s.ActualDeliveryDate); err != nil {
		return job, err
	}
	return job, nil
}

func parseSeedDate(s string) (*models.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &models.Date{Time: t}, nil
}

// insert assigns an ID and stores the job. Caller must not hold the mutex.
func (r *JobRepo) insert(job models.Job) models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = r.nextID
	r.nextID++
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.jobs[job.ID] = job
	r.order = append(r.order, job.ID)
	return job
}

// List returns all jobs in insertion order.
func (r *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]models.Job, 0, len(r.order))
	for _, id := range r.order {
		jobs = append(jobs, r.jobs[id])
	}
	return jobs, nil
}

// Create stores a new job and assigns the next ID.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	created := r.insert(*job)
	return &created, nil
}

// Update replaces the stored record.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.jobs[job.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := *job
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.jobs[job.ID] = updated
	return &updated, nil
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.jobs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
