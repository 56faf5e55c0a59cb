package service

import (
	"context"
	"sort"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// AnalyticsService derives employer dashboard numbers from the job
// catalog. Pure read-model; holds no state of its own.
type AnalyticsService struct {
	jobs ports.JobService
}

func NewAnalyticsService(jobs ports.JobService) *AnalyticsService {
	return &AnalyticsService{jobs: jobs}
}

// ForEmployer computes earnings over completed jobs, the completion rate
// and the employer's categories ranked by posting count.
func (s *AnalyticsService) ForEmployer(ctx context.Context, employerID string) *ports.EmployerAnalytics {
	jobs := s.jobs.JobsForEmployer(ctx, employerID)

	var earnings float64
	completed := 0
	counts := make(map[string]int)
	for _, job := range jobs {
		if job.Status == domain.StatusCompleted {
			completed++
			earnings += job.PriceValue()
		}
		counts[job.Category]++
	}

	successRate := 0.0
	if len(jobs) > 0 {
		successRate = float64(completed) / float64(len(jobs)) * 100
	}

	categories := make([]ports.CategoryCount, 0, len(counts))
	for category, count := range counts {
		categories = append(categories, ports.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})

	return &ports.EmployerAnalytics{
		Earnings:          earnings,
		JobSuccessRate:    successRate,
		PopularCategories: categories,
	}
}
