package ports

import "context"

// CategoryCount pairs a category with how many of the employer's jobs
// fall into it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// EmployerAnalytics is the dashboard read-model for one employer.
type EmployerAnalytics struct {
	Earnings          float64         `json:"earnings"`         // sum of completed job prices
	JobSuccessRate    float64         `json:"job_success_rate"` // completed / total, percent
	PopularCategories []CategoryCount `json:"popular_categories"`
}

// AnalyticsService derives dashboard numbers from the job catalog.
type AnalyticsService interface {
	ForEmployer(ctx context.Context, employerID string) *EmployerAnalytics
}
