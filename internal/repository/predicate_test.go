package repository

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-reports-api/internal/models"
)

func TestTenantPredicateRequiresCollege(t *testing.T) {
	_, err := newTenantPredicate("e.college_id", "  ")
	assert.ErrorIs(t, err, errMissingTenant)

	_, err = eventPredicate(models.DatasetQuery{})
	assert.ErrorIs(t, err, errMissingTenant)

	_, err = studentPredicate("")
	assert.ErrorIs(t, err, errMissingTenant)
}

func TestEventPredicateTenantFirst(t *testing.T) {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
	p, err := eventPredicate(models.DatasetQuery{
		CollegeID:  "college-1",
		Statuses:   models.ReportableEventStatuses,
		Range:      models.DateRange{From: &from, To: &to},
		CategoryID: "cat-1",
	})
	require.NoError(t, err)

	assert.Equal(t, " WHERE e.college_id = $1 AND e.status = ANY($2) AND e.start_date >= $3 AND e.end_date <= $4 AND e.category_id = $5", p.where())
	args := p.arguments()
	require.Len(t, args, 5)
	assert.Equal(t, "college-1", args[0])
	assert.Equal(t, pq.Array([]string{"published", "completed"}), args[1])
	assert.Equal(t, from, args[2])
	assert.Equal(t, to, args[3])
	assert.Equal(t, "cat-1", args[4])
}

func TestEventPredicateWithoutFilters(t *testing.T) {
	p, err := eventPredicate(models.DatasetQuery{CollegeID: "college-1"})
	require.NoError(t, err)
	assert.Equal(t, " WHERE e.college_id = $1", p.where())
	assert.Equal(t, []interface{}{"college-1"}, p.arguments())
}

func TestStudentPredicate(t *testing.T) {
	p, err := studentPredicate("college-1")
	require.NoError(t, err)
	assert.Equal(t, " WHERE u.college_id = $1 AND u.role = 'student' AND u.is_active = true", p.where())
}

func TestArgumentsReturnsCopy(t *testing.T) {
	p, err := newTenantPredicate("e.college_id", "college-1")
	require.NoError(t, err)
	args := p.arguments()
	args[0] = "college-2"
	assert.Equal(t, "college-1", p.arguments()[0])
}

func TestCloneIsIndependent(t *testing.T) {
	base, err := eventPredicate(models.DatasetQuery{CollegeID: "college-1", CategoryID: "cat-1"})
	require.NoError(t, err)
	live := base.clone().literal("er.status = 'registered'")

	assert.Equal(t, " WHERE e.college_id = $1 AND e.category_id = $2", base.where())
	assert.Equal(t, " WHERE e.college_id = $1 AND e.category_id = $2 AND er.status = 'registered'", live.where())
}
