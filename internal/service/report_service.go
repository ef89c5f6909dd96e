package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/campus-reports-api/internal/dto"
	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
	"github.com/noah-isme/campus-reports-api/pkg/middleware/requestid"
)

const reportViewAction = "view reports"

type reportStore interface {
	Snapshot(ctx context.Context, query models.DatasetQuery) (*models.ReportDataset, error)
}

// ReportServiceConfig tunes report execution.
type ReportServiceConfig struct {
	QueryTimeout time.Duration
	MaxLimit     int
}

// ReportServiceParams groups constructor dependencies.
type ReportServiceParams struct {
	Store     reportStore
	Validator *validator.Validate
	Metrics   *MetricsService
	Logger    *zap.Logger
	Config    ReportServiceConfig
}

// ReportService composes the college reports from one store snapshot per request.
type ReportService struct {
	store   reportStore
	filters *ReportFilterBuilder
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
	cfg     ReportServiceConfig
}

// NewReportService constructs a ReportService with sane defaults.
func NewReportService(params ReportServiceParams) *ReportService {
	cfg := params.Config
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 15 * time.Second
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 500
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:   params.Store,
		filters: NewReportFilterBuilder(params.Validator, cfg.MaxLimit),
		metrics: params.Metrics,
		logger:  logger,
		now:     time.Now,
		cfg:     cfg,
	}
}

// EventPopularity ranks the college's published and completed events by registrations then rating.
func (s *ReportService) EventPopularity(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.EventPopularityReport, error) {
	kind := models.ReportEventPopularity
	filter, err := s.prepare(caller, collegeID, kind, query)
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	dataset, err := s.snapshot(ctx, kind, models.DatasetQuery{
		CollegeID:         collegeID,
		Statuses:          models.ReportableEventStatuses,
		Range:             filter.Range,
		CategoryID:        filter.CategoryID,
		IncludeCategories: true,
	})
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	idx, err := indexDataset(dataset, eventScope(filter))
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}

	categories := categoryNames(dataset.Categories)
	all, ranked := reportPipeline[models.Event, popularityRow]{
		subjects: idx.scoped,
		key:      func(e models.Event) string { return e.ID },
		tallies:  idx.fold(byEvent),
		row: func(e models.Event, t tally) popularityRow {
			return popularityRow{event: e, tally: t, category: lookupCategory(categories, e.CategoryID)}
		},
		order: []orderKey[popularityRow]{
			desc(func(r popularityRow) int { return r.tally.Registrations }),
			{compare: func(a, b popularityRow) int { return compareRating(a.tally, b.tally) }, descending: true},
		},
		limit: filter.Limit,
	}.run()

	report := &dto.EventPopularityReport{Events: make([]dto.EventPopularityRow, 0, len(ranked))}
	for _, row := range ranked {
		report.Events = append(report.Events, row.payload())
	}
	var registrations, attendees int
	for _, row := range all {
		registrations += row.tally.Registrations
		attendees += row.tally.Attendances
	}
	report.Summary = dto.EventPopularitySummary{
		TotalEvents:           len(all),
		TotalRegistrations:    registrations,
		AverageAttendanceRate: Rate(attendees, registrations),
	}
	s.succeed(kind)
	return report, nil
}

// StudentParticipation reports engagement for every active student of the college.
func (s *ReportService) StudentParticipation(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.StudentParticipationReport, error) {
	kind := models.ReportStudentParticipation
	filter, err := s.prepare(caller, collegeID, kind, query)
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	all, ranked, err := s.participation(ctx, kind, collegeID, filter,
		func(r participationRow) bool { return r.tally.Registrations >= filter.MinEvents },
		[]orderKey[participationRow]{
			desc(func(r participationRow) int { return r.tally.Attendances }),
			desc(func(r participationRow) int { return r.tally.Registrations }),
			desc(func(r participationRow) float64 { return r.tally.AttendanceRate() }),
		})
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}

	report := &dto.StudentParticipationReport{Students: make([]dto.StudentParticipationRow, 0, len(ranked))}
	for _, row := range ranked {
		report.Students = append(report.Students, row.payload())
	}
	report.Summary = participationSummary(all)
	s.succeed(kind)
	return report, nil
}

// TopActiveStudents ranks students with at least one attendance by the selected metric.
func (s *ReportService) TopActiveStudents(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.TopActiveStudentsReport, error) {
	kind := models.ReportTopActiveStudents
	filter, err := s.prepare(caller, collegeID, kind, query)
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	primary := desc(func(r participationRow) int { return r.tally.Attendances })
	if filter.Metric == models.MetricEventsRegistered {
		primary = desc(func(r participationRow) int { return r.tally.Registrations })
	}
	_, ranked, err := s.participation(ctx, kind, collegeID, filter,
		func(r participationRow) bool { return r.tally.Attendances > 0 },
		[]orderKey[participationRow]{
			primary,
			desc(func(r participationRow) float64 { return r.tally.AttendanceRate() }),
		})
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}

	report := &dto.TopActiveStudentsReport{TopStudents: make([]dto.TopActiveStudentRow, 0, len(ranked))}
	for i, row := range ranked {
		base := row.payload()
		recent := row.tally.attendedEvents
		if recent == nil {
			recent = []string{}
		}
		report.TopStudents = append(report.TopStudents, dto.TopActiveStudentRow{
			Rank:                  i + 1,
			UserID:                base.UserID,
			StudentID:             base.StudentID,
			Name:                  base.Name,
			Department:            base.Department,
			YearOfStudy:           base.YearOfStudy,
			Email:                 row.user.Email,
			EventsRegistered:      base.EventsRegistered,
			EventsAttended:        base.EventsAttended,
			AttendanceRate:        base.AttendanceRate,
			AverageFeedbackRating: base.AverageFeedbackRating,
			RecentEventsAttended:  recent,
		})
	}
	report.Metadata = dto.TopActiveStudentsMetadata{
		MetricUsed:    filter.Metric,
		TotalReturned: len(report.TopStudents),
		GeneratedAt:   s.now().UTC(),
	}
	s.succeed(kind)
	return report, nil
}

// Dashboard builds the four overview sections from a single snapshot of every college event.
func (s *ReportService) Dashboard(ctx context.Context, caller models.CallerIdentity, collegeID string) (*dto.DashboardReport, error) {
	kind := models.ReportDashboard
	if _, err := s.prepare(caller, collegeID, kind, models.ReportQuery{}); err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	dataset, err := s.snapshot(ctx, kind, models.DatasetQuery{CollegeID: collegeID, IncludeCategories: true})
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}
	idx, err := indexDataset(dataset, nil)
	if err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}

	now := s.now()
	var (
		events       eventSection
		registration registrationSection
		feedback     feedbackSection
		breakdown    []dto.CategoryBreakdown
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		events = summarizeEvents(idx.scoped, now)
		return nil
	})
	group.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		registration = summarizeRegistrations(idx)
		return nil
	})
	group.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		feedback = summarizeFeedback(idx)
		return nil
	})
	group.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		breakdown = breakdownCategories(dataset.Categories, idx)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, s.fail(ctx, kind, collegeID, err)
	}

	report := &dto.DashboardReport{
		Overview: dto.DashboardOverview{
			TotalEvents:             events.total,
			PublishedEvents:         events.published,
			CompletedEvents:         events.completed,
			UpcomingEvents:          events.upcoming,
			TotalRegisteredStudents: registration.users,
			TotalRegistrations:      registration.registrations,
			TotalAttendances:        registration.attendances,
			AttendanceRate:          WholePercent(registration.attendances, registration.registrations),
			TotalFeedback:           feedback.count,
			AverageRating:           AverageRating(feedback.sum, feedback.count, 2),
		},
		CategoryBreakdown: breakdown,
		GeneratedAt:       now.UTC(),
	}
	s.succeed(kind)
	return report, nil
}

// prepare runs the checks that must pass before the store is touched.
func (s *ReportService) prepare(caller models.CallerIdentity, collegeID string, kind models.ReportKind, query models.ReportQuery) (models.ReportFilter, error) {
	if err := authorize(caller, reportViewAction, models.ReportViewerRoles...); err != nil {
		return models.ReportFilter{}, err
	}
	if err := ensureCollege(caller, collegeID); err != nil {
		return models.ReportFilter{}, err
	}
	return s.filters.Build(kind, query)
}

// snapshot loads the dataset under the configured query timeout.
func (s *ReportService) snapshot(ctx context.Context, kind models.ReportKind, query models.DatasetQuery) (*models.ReportDataset, error) {
	if s.store == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "report store is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	dataset, err := s.store.Snapshot(ctx, query)
	s.metrics.ObserveDBQuery("report_"+string(kind), time.Since(start))
	if err != nil {
		return nil, err
	}
	return dataset, nil
}

func (s *ReportService) participation(ctx context.Context, kind models.ReportKind, collegeID string, filter models.ReportFilter, keep func(participationRow) bool, order []orderKey[participationRow]) ([]participationRow, []participationRow, error) {
	dataset, err := s.snapshot(ctx, kind, models.DatasetQuery{
		CollegeID:       collegeID,
		Statuses:        models.ReportableEventStatuses,
		IncludeStudents: true,
	})
	if err != nil {
		return nil, nil, err
	}
	idx, err := indexDataset(dataset, func(e models.Event) bool { return e.Status.Reportable() })
	if err != nil {
		return nil, nil, err
	}
	students := make([]models.User, 0, len(dataset.Students))
	for _, user := range dataset.Students {
		if user.EligibleForParticipation() {
			students = append(students, user)
		}
	}
	all, ranked := reportPipeline[models.User, participationRow]{
		subjects: students,
		key:      func(u models.User) string { return u.ID },
		tallies:  idx.fold(byUser),
		row:      func(u models.User, t tally) participationRow { return participationRow{user: u, tally: t} },
		keep:     keep,
		order:    order,
		limit:    filter.Limit,
	}.run()
	return all, ranked, nil
}

// fail maps any error onto the public taxonomy. Typed errors pass through; everything else is a
// store or aggregation fault and is logged before being reported as INTERNAL_ERROR.
func (s *ReportService) fail(ctx context.Context, kind models.ReportKind, collegeID string, err error) error {
	appErr := appErrors.FromError(err)
	if appErr.Code == appErrors.ErrInternal.Code {
		s.logger.Error("report build failed",
			zap.String("report", string(kind)),
			zap.String("college_id", collegeID),
			zap.String("request_id", requestid.FromContext(ctx)),
			zap.Error(err),
		)
		appErr = appErrors.Internal(err, "failed to generate report")
	}
	s.metrics.RecordReport(string(kind), appErr.Code)
	return appErr
}

func (s *ReportService) succeed(kind models.ReportKind) {
	s.metrics.RecordReport(string(kind), "ok")
}

// eventScope re-applies the filter in memory so the store's WHERE clause and the report agree.
func eventScope(filter models.ReportFilter) func(models.Event) bool {
	return func(e models.Event) bool {
		if !e.Status.Reportable() {
			return false
		}
		if filter.Range.From != nil && e.StartDate.Before(*filter.Range.From) {
			return false
		}
		if filter.Range.To != nil && e.EndDate.After(*filter.Range.To) {
			return false
		}
		if filter.CategoryID != "" && (e.CategoryID == nil || *e.CategoryID != filter.CategoryID) {
			return false
		}
		return true
	}
}

type popularityRow struct {
	event    models.Event
	category *string
	tally    tally
}

func (r popularityRow) payload() dto.EventPopularityRow {
	return dto.EventPopularityRow{
		EventID:            r.event.ID,
		Name:               r.event.Name,
		ShortCode:          r.event.Code,
		CategoryName:       r.category,
		TotalRegistrations: r.tally.Registrations,
		TotalAttendees:     r.tally.Attendances,
		AttendanceRate:     r.tally.AttendanceRate(),
		AverageRating:      FormatRating(r.tally.RatingSum, r.tally.FeedbackCount),
		FeedbackCount:      r.tally.FeedbackCount,
		StartDate:          r.event.StartDate,
		EndDate:            r.event.EndDate,
	}
}

type participationRow struct {
	user  models.User
	tally tally
}

func (r participationRow) payload() dto.StudentParticipationRow {
	return dto.StudentParticipationRow{
		UserID:                r.user.ID,
		StudentID:             r.user.StudentID,
		Name:                  r.user.FullName(),
		Department:            r.user.Department,
		YearOfStudy:           r.user.YearOfStudy,
		EventsRegistered:      r.tally.Registrations,
		EventsAttended:        r.tally.Attendances,
		AttendanceRate:        r.tally.AttendanceRate(),
		AverageFeedbackRating: FormatRating(r.tally.RatingSum, r.tally.FeedbackCount),
	}
}

// participationSummary averages over every eligible student: mean registrations and the mean of
// unrounded per-student attendance rates, both rounded half-up to one decimal.
func participationSummary(rows []participationRow) dto.StudentParticipationSummary {
	summary := dto.StudentParticipationSummary{TotalStudents: len(rows)}
	if len(rows) == 0 {
		return summary
	}
	var registrations int
	var rates float64
	for _, row := range rows {
		registrations += row.tally.Registrations
		rates += row.tally.rawAttendanceRate()
	}
	summary.AverageEventsPerStudent = roundMean(float64(registrations)/float64(len(rows)), 1)
	summary.OverallAttendanceRate = roundMean(rates/float64(len(rows)), 1)
	return summary
}

func categoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names
}

func lookupCategory(names map[string]string, id *string) *string {
	if id == nil {
		return nil
	}
	name, ok := names[*id]
	if !ok {
		return nil
	}
	return &name
}

type eventSection struct {
	total, published, completed, upcoming int
}

func summarizeEvents(events []models.Event, now time.Time) eventSection {
	section := eventSection{total: len(events)}
	for _, event := range events {
		switch event.Status {
		case models.EventStatusPublished:
			section.published++
		case models.EventStatusCompleted:
			section.completed++
		}
		if event.StartDate.After(now) {
			section.upcoming++
		}
	}
	return section
}

type registrationSection struct {
	users, registrations, attendances int
}

func summarizeRegistrations(idx *datasetIndex) registrationSection {
	users := make(map[string]bool)
	section := registrationSection{registrations: len(idx.registrations)}
	for _, registration := range idx.registrations {
		users[registration.UserID] = true
		if idx.attended[registration.ID] {
			section.attendances++
		}
	}
	section.users = len(users)
	return section
}

type feedbackSection struct {
	count, sum int
}

func summarizeFeedback(idx *datasetIndex) feedbackSection {
	section := feedbackSection{count: len(idx.feedback)}
	for _, fb := range idx.feedback {
		section.sum += fb.Rating
	}
	return section
}

// breakdownCategories lists every category, including those without events.
func breakdownCategories(categories []models.Category, idx *datasetIndex) []dto.CategoryBreakdown {
	eventCounts := make(map[string]int)
	eventCategory := make(map[string]string)
	for _, event := range idx.scoped {
		if event.CategoryID == nil {
			continue
		}
		eventCounts[*event.CategoryID]++
		eventCategory[event.ID] = *event.CategoryID
	}
	registrationCounts := make(map[string]int)
	for _, registration := range idx.registrations {
		if categoryID, ok := eventCategory[registration.EventID]; ok {
			registrationCounts[categoryID]++
		}
	}

	rows := make([]dto.CategoryBreakdown, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, dto.CategoryBreakdown{
			CategoryID:        category.ID,
			CategoryName:      category.Name,
			EventCount:        eventCounts[category.ID],
			RegistrationCount: registrationCounts[category.ID],
		})
	}
	return rank(rows, []orderKey[dto.CategoryBreakdown]{
		desc(func(r dto.CategoryBreakdown) int { return r.EventCount }),
		asc(func(r dto.CategoryBreakdown) string { return r.CategoryName }),
		asc(func(r dto.CategoryBreakdown) string { return r.CategoryID }),
	}, 0)
}
