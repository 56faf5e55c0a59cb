package handler

import (
	"time"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// Response-only types owned by the transport layer. Intentionally
// separate from the domain types so the JSON contract is not coupled to
// internal service changes.

type jobLocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type jobResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Price        string              `json:"price"`
	Location     jobLocationResponse `json:"location"`
	Category     string              `json:"category"`
	Image        string              `json:"image,omitempty"`
	EmployerID   string              `json:"employer_id"`
	EmployerName string              `json:"employer_name,omitempty"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	Applicants   []string            `json:"applicants"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Price:       j.Price,
		Location: jobLocationResponse{
			Lat:     j.Location.Lat,
			Lng:     j.Location.Lng,
			Address: j.Location.Address,
		},
		Category:     j.Category,
		Image:        j.Image,
		EmployerID:   j.EmployerID,
		EmployerName: j.EmployerName,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt.UTC(),
		Applicants:   j.Applicants,
	}
}

func toJobListResponse(jobs []*domain.Job) jobListResponse {
	items := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = toJobResponse(j)
	}
	return jobListResponse{Data: items, Count: len(items)}
}
