package dto

import "time"

// DashboardOverview aggregates a college's event, registration and feedback counters.
type DashboardOverview struct {
	TotalEvents             int     `json:"total_events"`
	PublishedEvents         int     `json:"published_events"`
	CompletedEvents         int     `json:"completed_events"`
	UpcomingEvents          int     `json:"upcoming_events"`
	TotalRegisteredStudents int     `json:"total_registered_students"`
	TotalRegistrations      int     `json:"total_registrations"`
	TotalAttendances        int     `json:"total_attendances"`
	AttendanceRate          int     `json:"attendance_rate"`
	TotalFeedback           int     `json:"total_feedback"`
	AverageRating           float64 `json:"average_rating"`
}

// CategoryBreakdown counts events and live registrations per category.
type CategoryBreakdown struct {
	CategoryID        string `json:"category_id"`
	CategoryName      string `json:"category_name"`
	EventCount        int    `json:"event_count"`
	RegistrationCount int    `json:"registration_count"`
}

// DashboardReport is the payload of GET /reports/dashboard.
type DashboardReport struct {
	Overview          DashboardOverview   `json:"overview"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
