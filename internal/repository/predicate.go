package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

var errMissingTenant = errors.New("tenant scope requires a college id")

// tenantPredicate accumulates conjunctive WHERE clauses. The tenant clause is always first and bound to $1,
// so a predicate cannot exist without a college scope.
type tenantPredicate struct {
	clauses []string
	args    []interface{}
}

func newTenantPredicate(column, collegeID string) (*tenantPredicate, error) {
	if strings.TrimSpace(collegeID) == "" {
		return nil, errMissingTenant
	}
	return &tenantPredicate{
		clauses: []string{column + " = $1"},
		args:    []interface{}{collegeID},
	}, nil
}

// bind appends a clause whose single %d verb receives the next placeholder index.
func (p *tenantPredicate) bind(format string, value interface{}) *tenantPredicate {
	p.args = append(p.args, value)
	p.clauses = append(p.clauses, fmt.Sprintf(format, len(p.args)))
	return p
}

// literal appends a clause without parameters. Only constant SQL belongs here.
func (p *tenantPredicate) literal(clause string) *tenantPredicate {
	p.clauses = append(p.clauses, clause)
	return p
}

func (p *tenantPredicate) clone() *tenantPredicate {
	return &tenantPredicate{
		clauses: append([]string(nil), p.clauses...),
		args:    p.arguments(),
	}
}

func (p *tenantPredicate) where() string {
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

func (p *tenantPredicate) arguments() []interface{} {
	out := make([]interface{}, len(p.args))
	copy(out, p.args)
	return out
}

// eventPredicate scopes the events table (alias e) to the query's college and optional filters.
func eventPredicate(q models.DatasetQuery) (*tenantPredicate, error) {
	p, err := newTenantPredicate("e.college_id", q.CollegeID)
	if err != nil {
		return nil, err
	}
	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, status := range q.Statuses {
			statuses[i] = string(status)
		}
		p.bind("e.status = ANY($%d)", pq.Array(statuses))
	}
	if q.Range.From != nil {
		p.bind("e.start_date >= $%d", *q.Range.From)
	}
	if q.Range.To != nil {
		p.bind("e.end_date <= $%d", *q.Range.To)
	}
	if q.CategoryID != "" {
		p.bind("e.category_id = $%d", q.CategoryID)
	}
	return p, nil
}

// studentPredicate scopes the users table (alias u) to active students of the college.
func studentPredicate(collegeID string) (*tenantPredicate, error) {
	p, err := newTenantPredicate("u.college_id", collegeID)
	if err != nil {
		return nil, err
	}
	p.literal("u.role = 'student'").literal("u.is_active = true")
	return p, nil
}
