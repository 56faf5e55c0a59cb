package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubStore struct {
	data    map[string][]byte
	saveErr error // if set, Save returns this error
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Load(_ context.Context, name string, v any) error {
	b, ok := s.data[name]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(b, v)
}

func (s *stubStore) Save(_ context.Context, name string, v any) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[name] = b
	return nil
}

type stubPublisher struct {
	published []ports.NotificationInput
}

func (p *stubPublisher) Publish(n ports.NotificationInput) {
	p.published = append(p.published, n)
}

func newJobService() (*JobService, *stubPublisher) {
	pub := &stubPublisher{}
	return NewJobService(newStubStore(), pub, zerolog.Nop()), pub
}

func postJob(t *testing.T, svc *JobService, title, price, category, address, employerID string) *domain.Job {
	t.Helper()
	job, err := svc.AddJob(context.Background(), ports.CreateJobInput{
		Title:       title,
		Description: title + " description",
		Price:       price,
		Location:    ports.LocationInput{Lat: 40.0150, Lng: -105.2705, Address: address},
		Category:    category,
		EmployerID:  employerID,
	})
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	return job
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestJobService_AddJob_InitializesPosting(t *testing.T) {
	svc, _ := newJobService()

	job := postJob(t, svc, "Yard Work", "$75", "Yard Work", "123 College St, Boulder, CO", "employer-1")

	if job.ID == "" {
		t.Fatalf("expected generated id")
	}
	if job.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", job.Status)
	}
	if job.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	if len(job.Applicants) != 0 {
		t.Fatalf("expected empty applicant list, got %v", job.Applicants)
	}
}

func TestJobService_ApplyToJob_Idempotent(t *testing.T) {
	svc, pub := newJobService()
	job := postJob(t, svc, "Yard Work", "$75", "Yard Work", "Boulder, CO", "employer-1")

	first := svc.ApplyToJob(context.Background(), job.ID, "student-1")
	second := svc.ApplyToJob(context.Background(), job.ID, "student-1")

	if first == nil || second == nil {
		t.Fatalf("expected job on both applications")
	}
	if len(second.Applicants) != 1 {
		t.Fatalf("expected one applicant after double apply, got %v", second.Applicants)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected exactly one employer notification, got %d", len(pub.published))
	}
	if pub.published[0].UserID != "employer-1" {
		t.Fatalf("notification went to %s", pub.published[0].UserID)
	}
}

func TestJobService_ApplyToJob_MissingJobIsNoop(t *testing.T) {
	svc, pub := newJobService()

	if got := svc.ApplyToJob(context.Background(), "JOB-NOPE", "student-1"); got != nil {
		t.Fatalf("expected nil for missing job, got %+v", got)
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no notifications, got %d", len(pub.published))
	}
}

func TestJobService_QueriesByEmployerAndStudent(t *testing.T) {
	svc, _ := newJobService()
	a := postJob(t, svc, "Yard Work", "$75", "Yard Work", "Boulder, CO", "employer-1")
	postJob(t, svc, "Move Furniture", "$150", "Moving & Furniture", "Fort Collins, CO", "employer-2")
	b := postJob(t, svc, "Tech Help", "$60", "Tech Help", "San Diego, CA", "employer-1")

	mine := svc.JobsForEmployer(context.Background(), "employer-1")
	if len(mine) != 2 || mine[0].ID != a.ID || mine[1].ID != b.ID {
		t.Fatalf("unexpected employer jobs: %+v", mine)
	}

	svc.ApplyToJob(context.Background(), b.ID, "student-1")
	applied := svc.AppliedJobs(context.Background(), "student-1")
	if len(applied) != 1 || applied[0].ID != b.ID {
		t.Fatalf("unexpected applied jobs: %+v", applied)
	}
}

func TestJobService_FilterJobs_PriceBounds(t *testing.T) {
	svc, _ := newJobService()
	postJob(t, svc, "Cheap", "$50", "Errands", "Boulder, CO", "employer-1")
	expensive := postJob(t, svc, "Expensive", "$150", "Errands", "Boulder, CO", "employer-1")

	got := svc.FilterJobs(context.Background(), ports.JobFilter{MinPrice: 100})
	if len(got) != 1 || got[0].ID != expensive.ID {
		t.Fatalf("expected only the $150 job, got %+v", got)
	}

	got = svc.FilterJobs(context.Background(), ports.JobFilter{MaxPrice: 100})
	if len(got) != 1 || got[0].Title != "Cheap" {
		t.Fatalf("expected only the $50 job, got %+v", got)
	}
}

func TestJobService_FilterJobs_CategoryAndLocation(t *testing.T) {
	svc, _ := newJobService()
	postJob(t, svc, "Yard Work", "$75", "Yard Work", "123 College St, Boulder, CO", "employer-1")
	postJob(t, svc, "Tech Help", "$60", "Tech Help", "789 Campus Way, San Diego, CA", "employer-1")

	got := svc.FilterJobs(context.Background(), ports.JobFilter{Category: "Tech Help"})
	if len(got) != 1 || got[0].Title != "Tech Help" {
		t.Fatalf("category filter failed: %+v", got)
	}

	// "All" is the sentinel for any category.
	got = svc.FilterJobs(context.Background(), ports.JobFilter{Category: domain.CategoryAll})
	if len(got) != 2 {
		t.Fatalf("expected all jobs for category All, got %d", len(got))
	}

	got = svc.FilterJobs(context.Background(), ports.JobFilter{Location: "boulder"})
	if len(got) != 1 || got[0].Title != "Yard Work" {
		t.Fatalf("location filter failed: %+v", got)
	}
}

func TestJobService_FilterJobs_QueryDecidesFinalInclusion(t *testing.T) {
	svc, _ := newJobService()
	postJob(t, svc, "Rake leaves", "$75", "Yard Work", "Boulder, CO", "employer-1")
	postJob(t, svc, "Laptop setup", "$60", "Tech Help", "Boulder, CO", "employer-1")

	// Query applies after the structural filters: a job that fails the
	// category check is excluded even when the query matches its title.
	got := svc.FilterJobs(context.Background(), ports.JobFilter{Category: "Tech Help", Query: "rake"})
	if len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}

	// A job that passes the structural filters is included only when the
	// query matches its title or description.
	got = svc.FilterJobs(context.Background(), ports.JobFilter{Location: "boulder", Query: "laptop"})
	if len(got) != 1 || got[0].Title != "Laptop setup" {
		t.Fatalf("query filter failed: %+v", got)
	}
}

func TestJobService_UpdateStatus(t *testing.T) {
	svc, _ := newJobService()
	job := postJob(t, svc, "Yard Work", "$75", "Yard Work", "Boulder, CO", "employer-1")

	updated, err := svc.UpdateStatus(context.Background(), job.ID, "employer-1", domain.StatusInProgress)
	if err != nil {
		t.Fatalf("valid transition rejected: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("status not applied: %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), job.ID, "employer-1", domain.StatusPending); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), job.ID, "employer-2", domain.StatusCompleted); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "JOB-NOPE", "employer-1", domain.StatusCancelled); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_RestoreFromCache(t *testing.T) {
	store := newStubStore()
	first := NewJobService(store, nil, zerolog.Nop())
	job, err := first.AddJob(context.Background(), ports.CreateJobInput{
		Title: "Yard Work", Price: "$75", Category: "Yard Work", EmployerID: "employer-1",
	})
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	second := NewJobService(store, nil, zerolog.Nop())
	second.Restore(context.Background())

	restored, err := second.GetJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("job not restored: %v", err)
	}
	if restored.Title != "Yard Work" || restored.Price != "$75" {
		t.Fatalf("restored job corrupted: %+v", restored)
	}
}
