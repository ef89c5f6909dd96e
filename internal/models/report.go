package models

import "time"

// ReportKind names a report composer.
type ReportKind string

const (
	ReportEventPopularity      ReportKind = "event-popularity"
	ReportStudentParticipation ReportKind = "student-participation"
	ReportTopActiveStudents    ReportKind = "top-active-students"
	ReportDashboard            ReportKind = "dashboard"
)

// RankMetric selects the primary ordering key of the top active students report.
type RankMetric string

const (
	MetricEventsAttended   RankMetric = "events_attended"
	MetricEventsRegistered RankMetric = "events_registered"
)

// ReportQuery holds the raw, caller supplied query parameters.
type ReportQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	CategoryID string `form:"category_id" validate:"omitempty,max=64"`
	MinEvents  string `form:"min_events" validate:"omitempty,number"`
	Limit      string `form:"limit" validate:"omitempty,number"`
	Metric     string `form:"metric"`
}

// DateRange bounds events by their schedule. From applies to the start date, To to the end date; both inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ReportFilter is the validated, typed form of a ReportQuery.
type ReportFilter struct {
	Range      DateRange
	CategoryID string
	MinEvents  int
	// Limit of zero means unrestricted.
	Limit  int
	Metric RankMetric
}

// DatasetQuery describes which slice of a college's records a report needs.
type DatasetQuery struct {
	CollegeID         string
	Statuses          []EventStatus
	Range             DateRange
	CategoryID        string
	IncludeStudents   bool
	IncludeCategories bool
}

// ReportDataset is a point-in-time snapshot of one college's records.
type ReportDataset struct {
	CollegeID     string
	Events        []Event
	Students      []User
	Registrations []Registration
	Attendance    []Attendance
	Feedback      []Feedback
	Categories    []Category
}

// ExportFormat is the rendering of an exported report.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)
