package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// LocationInput holds a geographic point with its display address.
type LocationInput struct {
	Lat     float64
	Lng     float64
	Address string
}

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title        string
	Description  string
	Price        string // display string, e.g. "$75"
	Location     LocationInput
	Category     string
	Image        string
	EmployerID   string
	EmployerName string
}

// JobFilter selects jobs matching all set criteria. A set Query decides
// the final inclusion of jobs that pass the structural criteria: it
// matches on title or description (long-standing catalog behavior, kept
// on purpose).
type JobFilter struct {
	Category string  // empty or "All" = any
	MinPrice float64 // 0 = no lower bound
	MaxPrice float64 // 0 = no upper bound
	Location string  // case-insensitive substring on the address
	Query    string  // case-insensitive substring on title or description
}

// JobService owns the job catalog: postings, applicant bookkeeping and
// the status lifecycle. Lookups on missing jobs degrade to no-ops or
// empty results rather than erroring, except where noted.
type JobService interface {
	AddJob(ctx context.Context, in CreateJobInput) (*domain.Job, error)
	// ApplyToJob appends studentID to the job's applicants if not already
	// present. Idempotent; returns nil when the job does not exist.
	ApplyToJob(ctx context.Context, jobID, studentID string) *domain.Job
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	JobsForEmployer(ctx context.Context, employerID string) []*domain.Job
	AppliedJobs(ctx context.Context, studentID string) []*domain.Job
	FilterJobs(ctx context.Context, f JobFilter) []*domain.Job
	// UpdateStatus advances the job's lifecycle. Only the owning employer
	// may do so; invalid transitions return domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, jobID, employerID string, status domain.JobStatus) (*domain.Job, error)
}
