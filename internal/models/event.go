package models

import "time"

// EventStatus captures the lifecycle of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// ReportableEventStatuses are the statuses considered by event and student reports.
var ReportableEventStatuses = []EventStatus{EventStatusPublished, EventStatusCompleted}

// Reportable reports whether events in this status feed popularity and participation reports.
func (s EventStatus) Reportable() bool {
	return s == EventStatusPublished || s == EventStatusCompleted
}

// Event represents a scheduled campus event.
type Event struct {
	ID         string      `db:"event_id" json:"event_id"`
	CollegeID  string      `db:"college_id" json:"college_id"`
	CategoryID *string     `db:"category_id" json:"category_id"`
	Name       string      `db:"name" json:"name"`
	Code       string      `db:"college_event_code" json:"short_code"`
	StartDate  time.Time   `db:"start_date" json:"start_date"`
	EndDate    time.Time   `db:"end_date" json:"end_date"`
	Status     EventStatus `db:"status" json:"status"`
}
