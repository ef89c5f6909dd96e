package dto

import (
	"time"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

// EventPopularityRow describes one event in the popularity report.
type EventPopularityRow struct {
	EventID            string    `json:"event_id"`
	Name               string    `json:"name"`
	ShortCode          string    `json:"short_code"`
	CategoryName       *string   `json:"category_name"`
	TotalRegistrations int       `json:"total_registrations"`
	TotalAttendees     int       `json:"total_attendees"`
	AttendanceRate     float64   `json:"attendance_rate"`
	AverageRating      string    `json:"average_rating"`
	FeedbackCount      int       `json:"feedback_count"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
}

// EventPopularitySummary is computed over every filtered event, before the limit.
type EventPopularitySummary struct {
	TotalEvents           int     `json:"total_events"`
	TotalRegistrations    int     `json:"total_registrations"`
	AverageAttendanceRate float64 `json:"average_attendance_rate"`
}

// EventPopularityReport is the payload of GET /reports/event-popularity.
type EventPopularityReport struct {
	Events  []EventPopularityRow   `json:"events"`
	Summary EventPopularitySummary `json:"summary"`
}

// StudentParticipationRow describes one student's engagement.
type StudentParticipationRow struct {
	UserID                string  `json:"user_id"`
	StudentID             *string `json:"student_id"`
	Name                  string  `json:"name"`
	Department            *string `json:"department"`
	YearOfStudy           *int    `json:"year_of_study"`
	EventsRegistered      int     `json:"events_registered"`
	EventsAttended        int     `json:"events_attended"`
	AttendanceRate        float64 `json:"attendance_rate"`
	AverageFeedbackRating string  `json:"average_feedback_rating"`
}

// StudentParticipationSummary is computed over every eligible student.
type StudentParticipationSummary struct {
	TotalStudents           int     `json:"total_students"`
	AverageEventsPerStudent float64 `json:"average_events_per_student"`
	OverallAttendanceRate   float64 `json:"overall_attendance_rate"`
}

// StudentParticipationReport is the payload of GET /reports/student-participation.
type StudentParticipationReport struct {
	Students []StudentParticipationRow  `json:"students"`
	Summary  StudentParticipationSummary `json:"summary"`
}

// TopActiveStudentRow is a ranked participation row.
type TopActiveStudentRow struct {
	Rank                  int      `json:"rank"`
	UserID                string   `json:"user_id"`
	StudentID             *string  `json:"student_id"`
	Name                  string   `json:"name"`
	Department            *string  `json:"department"`
	YearOfStudy           *int     `json:"year_of_study"`
	Email                 string   `json:"email"`
	EventsRegistered      int      `json:"events_registered"`
	EventsAttended        int      `json:"events_attended"`
	AttendanceRate        float64  `json:"attendance_rate"`
	AverageFeedbackRating string   `json:"average_feedback_rating"`
	RecentEventsAttended  []string `json:"recent_events_attended"`
}

// TopActiveStudentsMetadata describes how the ranking was produced.
type TopActiveStudentsMetadata struct {
	MetricUsed    models.RankMetric `json:"metric_used"`
	TotalReturned int               `json:"total_returned"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

// TopActiveStudentsReport is the payload of GET /reports/top-active-students.
type TopActiveStudentsReport struct {
	TopStudents []TopActiveStudentRow     `json:"top_students"`
	Metadata    TopActiveStudentsMetadata `json:"metadata"`
}
