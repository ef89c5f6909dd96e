package models

import "strings"

// UserRole represents the roles carried by campus accounts.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleStaff   UserRole = "staff"
	RoleAdmin   UserRole = "admin"
)

// ReportViewerRoles may read report payloads.
var ReportViewerRoles = []UserRole{RoleAdmin, RoleStaff}

// User represents a campus account stored in the users table.
type User struct {
	ID          string   `db:"user_id" json:"user_id"`
	CollegeID   string   `db:"college_id" json:"college_id"`
	StudentID   *string  `db:"student_id" json:"student_id"`
	FirstName   string   `db:"first_name" json:"first_name"`
	LastName    string   `db:"last_name" json:"last_name"`
	Email       string   `db:"email" json:"email"`
	Role        UserRole `db:"role" json:"role"`
	Department  *string  `db:"department" json:"department"`
	YearOfStudy *int     `db:"year_of_study" json:"year_of_study"`
	Active      bool     `db:"is_active" json:"is_active"`
}

// FullName joins first and last name the way reports display students.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// EligibleForParticipation reports whether the user counts in participation reports.
func (u User) EligibleForParticipation() bool {
	return u.Active && u.Role == RoleStudent
}
