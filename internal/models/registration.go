package models

import "time"

// RegistrationStatus represents whether a seat is still held.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

// Registration links a user to an event.
type Registration struct {
	ID      string             `db:"registration_id" json:"registration_id"`
	EventID string             `db:"event_id" json:"event_id"`
	UserID  string             `db:"user_id" json:"user_id"`
	Status  RegistrationStatus `db:"status" json:"status"`
}

// Live reports whether the registration counts toward metrics.
func (r Registration) Live() bool {
	return r.Status == RegistrationStatusRegistered
}

// Attendance records a check-in against one registration.
type Attendance struct {
	ID             string     `db:"attendance_id" json:"attendance_id"`
	RegistrationID string     `db:"registration_id" json:"registration_id"`
	CheckedInAt    *time.Time `db:"check_in_time" json:"check_in_time,omitempty"`
}
