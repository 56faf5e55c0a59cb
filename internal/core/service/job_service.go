package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const collectionJobs = "jobs"

// JobService owns the job catalog in memory and writes snapshots through
// to the collection store after every mutation.
type JobService struct {
	mu       sync.RWMutex
	jobs     []*domain.Job
	store    ports.CollectionStore
	notifier ports.NotificationPublisher
	logger   zerolog.Logger
}

func NewJobService(store ports.CollectionStore, notifier ports.NotificationPublisher, logger zerolog.Logger) *JobService {
	return &JobService{store: store, notifier: notifier, logger: logger}
}

// Restore loads the cached catalog from a previous run. Best-effort: a
// miss or a decode failure leaves the catalog empty.
func (s *JobService) Restore(ctx context.Context) {
	var jobs []*domain.Job
	if err := s.store.Load(ctx, collectionJobs, &jobs); err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("failed to restore job catalog")
		}
		return
	}
	s.mu.Lock()
	s.jobs = jobs
	s.mu.Unlock()
	s.logger.Info().Int("jobs", len(jobs)).Msg("job catalog restored")
}

// AddJob assigns a new id and creation timestamp, initializes the
// applicant list and appends the posting to the catalog.
func (s *JobService) AddJob(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ID:          newID("JOB"),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location: domain.Location{
			Lat:     in.Location.Lat,
			Lng:     in.Location.Lng,
			Address: in.Location.Address,
		},
		Category:     in.Category,
		Image:        in.Image,
		EmployerID:   in.EmployerID,
		EmployerName: in.EmployerName,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
		Applicants:   []string{},
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.persist(ctx)
	s.mu.Unlock()

	s.logger.Info().Str("job_id", job.ID).Str("employer_id", job.EmployerID).Str("category", job.Category).Msg("job created")

	clone := *job
	return &clone, nil
}

// ApplyToJob appends studentID to the job's applicant list if not already
// present. Idempotent; returns nil when the job does not exist.
func (s *JobService) ApplyToJob(ctx context.Context, jobID, studentID string) *domain.Job {
	s.mu.Lock()
	job := s.find(jobID)
	if job == nil {
		s.mu.Unlock()
		return nil
	}
	if job.HasApplicant(studentID) {
		clone := *job
		s.mu.Unlock()
		return &clone
	}
	job.Applicants = append(job.Applicants, studentID)
	s.persist(ctx)
	clone := *job
	s.mu.Unlock()

	s.logger.Info().Str("job_id", jobID).Str("student_id", studentID).Msg("application recorded")

	if s.notifier != nil {
		s.notifier.Publish(ports.NotificationInput{
			UserID:  clone.EmployerID,
			Type:    domain.NotificationSuccess,
			Title:   "New applicant",
			Message: fmt.Sprintf("A student applied to %q", clone.Title),
		})
	}
	return &clone
}

// GetJob returns the job with the given id.
func (s *JobService) GetJob(_ context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job := s.find(id)
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

// JobsForEmployer returns all postings owned by employerID, order-preserving.
func (s *JobService) JobsForEmployer(_ context.Context, employerID string) []*domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Job
	for _, job := range s.jobs {
		if job.EmployerID == employerID {
			clone := *job
			out = append(out, &clone)
		}
	}
	return out
}

// AppliedJobs returns all postings studentID has applied to.
func (s *JobService) AppliedJobs(_ context.Context, studentID string) []*domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Job
	for _, job := range s.jobs {
		if job.HasApplicant(studentID) {
			clone := *job
			out = append(out, &clone)
		}
	}
	return out
}

// FilterJobs returns jobs matching the filter. The criteria are applied
// in a fixed order; when a free-text query is present it decides the
// final inclusion of jobs that survived the other criteria.
func (s *JobService) FilterJobs(_ context.Context, f ports.JobFilter) []*domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Job
	for _, job := range s.jobs {
		if !matches(job, f) {
			continue
		}
		clone := *job
		out = append(out, &clone)
	}
	return out
}

func matches(job *domain.Job, f ports.JobFilter) bool {
	if f.Category != "" && f.Category != domain.CategoryAll && job.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && job.PriceValue() < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && job.PriceValue() > f.MaxPrice {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location.Address), strings.ToLower(f.Location)) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		return strings.Contains(strings.ToLower(job.Title), q) ||
			strings.Contains(strings.ToLower(job.Description), q)
	}
	return true
}

// UpdateStatus advances the job's lifecycle on behalf of its owner.
func (s *JobService) UpdateStatus(ctx context.Context, jobID, employerID string, status domain.JobStatus) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.find(jobID)
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, job.Status, status)
	}

	job.Status = status
	s.persist(ctx)

	s.logger.Info().Str("job_id", jobID).Str("status", string(status)).Msg("job status updated")

	clone := *job
	return &clone, nil
}

// find returns the catalog entry with the given id. Caller holds the lock.
func (s *JobService) find(id string) *domain.Job {
	for _, job := range s.jobs {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// persist writes the catalog snapshot through to the cache. Best-effort;
// the in-memory state stays authoritative. Caller holds the lock.
func (s *JobService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, collectionJobs, s.jobs); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache job catalog")
	}
}
