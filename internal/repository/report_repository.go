package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

const (
	selectEventsSQL = `SELECT e.event_id, e.college_id, e.category_id, e.name, e.college_event_code, e.start_date, e.end_date, e.status
        FROM events e`
	selectRegistrationsSQL = `SELECT er.registration_id, er.event_id, er.user_id, er.status
        FROM event_registrations er
        JOIN events e ON e.event_id = er.event_id`
	selectAttendanceSQL = `SELECT ea.attendance_id, ea.registration_id, ea.check_in_time
        FROM event_attendance ea
        JOIN event_registrations er ON er.registration_id = ea.registration_id
        JOIN events e ON e.event_id = er.event_id`
	selectFeedbackSQL = `SELECT ef.feedback_id, ef.event_id, ef.user_id, ef.rating, ef.comment
        FROM event_feedback ef
        JOIN events e ON e.event_id = ef.event_id`
	selectStudentsSQL = `SELECT u.user_id, u.college_id, u.student_id, u.first_name, u.last_name, u.email, u.role, u.department, u.year_of_study, u.is_active
        FROM users u`
	selectCategoriesSQL = `SELECT category_id, name, description, color_code FROM event_categories ORDER BY name ASC, category_id ASC`

	liveRegistrationClause = "er.status = 'registered'"
)

// ReportRepository reads tenant scoped snapshots for the reporting engine.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository instantiates the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Snapshot loads every record the query asks for inside one read-only repeatable-read transaction,
// so all sections computed from the result observe the same point in time.
func (r *ReportRepository) Snapshot(ctx context.Context, query models.DatasetQuery) (*models.ReportDataset, error) {
	events, err := eventPredicate(query)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin report snapshot: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	dataset := &models.ReportDataset{CollegeID: query.CollegeID}

	if err := sqlx.SelectContext(ctx, tx, &dataset.Events, selectEventsSQL+events.where()+" ORDER BY e.start_date DESC, e.event_id ASC", events.arguments()...); err != nil {
		return nil, fmt.Errorf("query report events: %w", err)
	}

	registrations := events.clone().literal(liveRegistrationClause)
	if err := sqlx.SelectContext(ctx, tx, &dataset.Registrations, selectRegistrationsSQL+registrations.where()+" ORDER BY er.registration_id ASC", registrations.arguments()...); err != nil {
		return nil, fmt.Errorf("query report registrations: %w", err)
	}

	if err := sqlx.SelectContext(ctx, tx, &dataset.Attendance, selectAttendanceSQL+registrations.where()+" ORDER BY ea.attendance_id ASC", registrations.arguments()...); err != nil {
		return nil, fmt.Errorf("query report attendance: %w", err)
	}

	if err := sqlx.SelectContext(ctx, tx, &dataset.Feedback, selectFeedbackSQL+events.where()+" ORDER BY ef.feedback_id ASC", events.arguments()...); err != nil {
		return nil, fmt.Errorf("query report feedback: %w", err)
	}

	if query.IncludeStudents {
		students, err := studentPredicate(query.CollegeID)
		if err != nil {
			return nil, err
		}
		if err := sqlx.SelectContext(ctx, tx, &dataset.Students, selectStudentsSQL+students.where()+" ORDER BY u.last_name ASC, u.first_name ASC, u.user_id ASC", students.arguments()...); err != nil {
			return nil, fmt.Errorf("query report students: %w", err)
		}
	}

	if query.IncludeCategories {
		if err := sqlx.SelectContext(ctx, tx, &dataset.Categories, selectCategoriesSQL); err != nil {
			return nil, fmt.Errorf("query report categories: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit report snapshot: %w", err)
	}
	return dataset, nil
}
