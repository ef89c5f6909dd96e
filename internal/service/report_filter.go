package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

const dateLayout = "2006-01-02"

var defaultReportLimits = map[models.ReportKind]int{
	models.ReportEventPopularity:      10,
	models.ReportStudentParticipation: 50,
	models.ReportTopActiveStudents:    3,
	models.ReportDashboard:            0,
}

var queryFieldNames = map[string]string{
	"CategoryID": "category_id",
	"MinEvents":  "min_events",
	"Limit":      "limit",
}

// ReportFilterBuilder turns raw query parameters into a typed ReportFilter.
type ReportFilterBuilder struct {
	validator *validator.Validate
	maxLimit  int
}

// NewReportFilterBuilder constructs a builder. A non-positive maxLimit disables the cap.
func NewReportFilterBuilder(validate *validator.Validate, maxLimit int) *ReportFilterBuilder {
	if validate == nil {
		validate = validator.New()
	}
	return &ReportFilterBuilder{validator: validate, maxLimit: maxLimit}
}

// DefaultLimit returns the row limit applied when the caller sends none; zero means unrestricted.
func DefaultLimit(kind models.ReportKind) int {
	return defaultReportLimits[kind]
}

// Build validates the query for the given report. It never touches the store.
func (b *ReportFilterBuilder) Build(kind models.ReportKind, query models.ReportQuery) (models.ReportFilter, error) {
	query = trimQuery(query)
	if err := b.validator.Struct(query); err != nil {
		return models.ReportFilter{}, validationFailure(err)
	}

	filter := models.ReportFilter{
		CategoryID: query.CategoryID,
		Limit:      DefaultLimit(kind),
		Metric:     ParseRankMetric(query.Metric),
	}

	from, err := parseBoundary("start_date", query.StartDate, false)
	if err != nil {
		return models.ReportFilter{}, err
	}
	to, err := parseBoundary("end_date", query.EndDate, true)
	if err != nil {
		return models.ReportFilter{}, err
	}
	if from != nil && to != nil && from.After(*to) {
		return models.ReportFilter{}, appErrors.Clone(appErrors.ErrValidation, "start_date must not be after end_date")
	}
	filter.Range = models.DateRange{From: from, To: to}

	if query.MinEvents != "" {
		minEvents, err := strconv.Atoi(query.MinEvents)
		if err != nil || minEvents < 0 {
			return models.ReportFilter{}, appErrors.Clone(appErrors.ErrValidation, "min_events must be a non-negative integer")
		}
		filter.MinEvents = minEvents
	}

	if query.Limit != "" {
		limit, err := strconv.Atoi(query.Limit)
		if err != nil || limit <= 0 {
			return models.ReportFilter{}, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer")
		}
		if b.maxLimit > 0 && limit > b.maxLimit {
			return models.ReportFilter{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("limit must not exceed %d", b.maxLimit))
		}
		filter.Limit = limit
	}

	return filter, nil
}

// ParseRankMetric resolves the ranking metric, falling back to events_attended for unknown values.
func ParseRankMetric(raw string) models.RankMetric {
	switch models.RankMetric(strings.ToLower(strings.TrimSpace(raw))) {
	case models.MetricEventsRegistered:
		return models.MetricEventsRegistered
	default:
		return models.MetricEventsAttended
	}
}

func trimQuery(query models.ReportQuery) models.ReportQuery {
	return models.ReportQuery{
		StartDate:  strings.TrimSpace(query.StartDate),
		EndDate:    strings.TrimSpace(query.EndDate),
		CategoryID: strings.TrimSpace(query.CategoryID),
		MinEvents:  strings.TrimSpace(query.MinEvents),
		Limit:      strings.TrimSpace(query.Limit),
		Metric:     strings.TrimSpace(query.Metric),
	}
}

// parseBoundary accepts YYYY-MM-DD or RFC3339. A date-only upper bound covers the whole day.
func parseBoundary(field, raw string, upper bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if day, err := time.Parse(dateLayout, raw); err == nil {
		if upper {
			day = day.Add(24*time.Hour - time.Nanosecond)
		}
		return &day, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must be a date (YYYY-MM-DD) or RFC3339 timestamp", field))
	}
	ts = ts.UTC()
	return &ts, nil
}

func validationFailure(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		if name, ok := queryFieldNames[field]; ok {
			field = name
		}
		var message string
		switch fieldErrs[0].Tag() {
		case "number":
			message = fmt.Sprintf("%s must be a non-negative integer", field)
			if field == "limit" {
				message = "limit must be a positive integer"
			}
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fieldErrs[0].Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
}
