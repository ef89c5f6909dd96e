package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

func TestReportFilterBuilderDefaults(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 500)

	cases := map[models.ReportKind]int{
		models.ReportEventPopularity:      10,
		models.ReportStudentParticipation: 50,
		models.ReportTopActiveStudents:    3,
		models.ReportDashboard:            0,
	}
	for kind, want := range cases {
		filter, err := builder.Build(kind, models.ReportQuery{})
		require.NoError(t, err)
		assert.Equal(t, want, filter.Limit, kind)
		assert.Equal(t, models.MetricEventsAttended, filter.Metric)
		assert.Nil(t, filter.Range.From)
		assert.Nil(t, filter.Range.To)
		assert.Zero(t, filter.MinEvents)
	}
}

func TestReportFilterBuilderParsesValues(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 500)

	filter, err := builder.Build(models.ReportEventPopularity, models.ReportQuery{
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		CategoryID: " cat-1 ",
		MinEvents:  "5",
		Limit:      "25",
		Metric:     "EVENTS_REGISTERED",
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-1", filter.CategoryID)
	assert.Equal(t, 5, filter.MinEvents)
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, models.MetricEventsRegistered, filter.Metric)
	require.NotNil(t, filter.Range.From)
	require.NotNil(t, filter.Range.To)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.Range.From)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *filter.Range.To)
}

func TestReportFilterBuilderAcceptsRFC3339(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 0)

	filter, err := builder.Build(models.ReportEventPopularity, models.ReportQuery{
		StartDate: "2024-03-01T08:00:00+07:00",
		EndDate:   "2024-03-01T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC), *filter.Range.From)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), *filter.Range.To)
}

func TestReportFilterBuilderSameDayRange(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 0)

	_, err := builder.Build(models.ReportEventPopularity, models.ReportQuery{StartDate: "2024-05-05", EndDate: "2024-05-05"})
	assert.NoError(t, err)
}

func TestReportFilterBuilderRejectsInvalidInput(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 100)

	cases := []struct {
		name    string
		query   models.ReportQuery
		message string
	}{
		{"bad start date", models.ReportQuery{StartDate: "01/02/2024"}, "start_date must be a date (YYYY-MM-DD) or RFC3339 timestamp"},
		{"bad end date", models.ReportQuery{EndDate: "yesterday"}, "end_date must be a date (YYYY-MM-DD) or RFC3339 timestamp"},
		{"inverted range", models.ReportQuery{StartDate: "2024-02-01", EndDate: "2024-01-01"}, "start_date must not be after end_date"},
		{"non numeric limit", models.ReportQuery{Limit: "ten"}, "limit must be a positive integer"},
		{"negative limit", models.ReportQuery{Limit: "-1"}, "limit must be a positive integer"},
		{"zero limit", models.ReportQuery{Limit: "0"}, "limit must be a positive integer"},
		{"limit above cap", models.ReportQuery{Limit: "101"}, "limit must not exceed 100"},
		{"negative min events", models.ReportQuery{MinEvents: "-2"}, "min_events must be a non-negative integer"},
		{"fractional min events", models.ReportQuery{MinEvents: "1.5"}, "min_events must be a non-negative integer"},
		{"overflowing limit", models.ReportQuery{Limit: "99999999999999999999999"}, "limit must be a positive integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(models.ReportEventPopularity, tc.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrValidation))
			appErr := appErrors.FromError(err)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestReportFilterBuilderLimitAtCap(t *testing.T) {
	builder := NewReportFilterBuilder(nil, 100)

	filter, err := builder.Build(models.ReportStudentParticipation, models.ReportQuery{Limit: "100"})
	require.NoError(t, err)
	assert.Equal(t, 100, filter.Limit)
}

func TestParseRankMetricFallsBack(t *testing.T) {
	assert.Equal(t, models.MetricEventsRegistered, ParseRankMetric("events_registered"))
	assert.Equal(t, models.MetricEventsAttended, ParseRankMetric("events_attended"))
	assert.Equal(t, models.MetricEventsAttended, ParseRankMetric("popularity"))
	assert.Equal(t, models.MetricEventsAttended, ParseRankMetric(""))
}
