package domain

import "time"

// ReportStatus tracks the moderation state of a user report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// ReportedUser records one report filed against a user.
type ReportedUser struct {
	UserID     string       `json:"user_id"` // the user being reported
	ReportedBy string       `json:"reported_by"`
	Reason     string       `json:"reason"`
	Timestamp  time.Time    `json:"timestamp"`
	Status     ReportStatus `json:"status"`
}

// EmergencyContact is a contact a student registers for safety check-ins.
type EmergencyContact struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}
