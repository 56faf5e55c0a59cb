package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusCancelled  JobStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[JobStatus][]JobStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrJobNotFound = errors.New("job not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Categories is the fixed set of job categories offered on the platform.
var Categories = []string{
	"Yard Work",
	"Moving & Furniture",
	"Cleaning",
	"Tech Help",
	"Tutoring",
	"Pet Care",
	"Errands",
	"Other",
}

// CategoryAll is the filter sentinel meaning "any category".
const CategoryAll = "All"

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Location is a geographic point with its display address.
type Location struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address" bson:"address"`
}

// Job is a posting created by an employer that students can apply to.
// Price is kept as the display string entered by the employer ("$75");
// PriceValue derives the numeric amount for filtering and analytics.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Location     Location  `json:"location"`
	Category     string    `json:"category"`
	Image        string    `json:"image,omitempty"`
	EmployerID   string    `json:"employer_id"`
	EmployerName string    `json:"employer_name,omitempty"`
	Status       JobStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Applicants   []string  `json:"applicants"`
}

// HasApplicant reports whether studentID already applied to this job.
func (j *Job) HasApplicant(studentID string) bool {
	for _, id := range j.Applicants {
		if id == studentID {
			return true
		}
	}
	return false
}

// PriceValue strips everything but digits and the decimal point from the
// display price and parses the remainder. Returns 0 when nothing numeric
// is left.
func (j *Job) PriceValue() float64 {
	var b strings.Builder
	for _, r := range j.Price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
