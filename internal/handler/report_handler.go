package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-reports-api/internal/dto"
	"github.com/noah-isme/campus-reports-api/internal/middleware"
	"github.com/noah-isme/campus-reports-api/internal/models"
	"github.com/noah-isme/campus-reports-api/internal/service"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
	"github.com/noah-isme/campus-reports-api/pkg/response"
)

type reportService interface {
	EventPopularity(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.EventPopularityReport, error)
	StudentParticipation(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.StudentParticipationReport, error)
	TopActiveStudents(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.TopActiveStudentsReport, error)
	Dashboard(ctx context.Context, caller models.CallerIdentity, collegeID string) (*dto.DashboardReport, error)
}

type reportExporter interface {
	Export(ctx context.Context, caller models.CallerIdentity, collegeID string, report models.ReportKind, format string, query models.ReportQuery) (*service.ExportFile, error)
}

// ReportHandler exposes the college report endpoints.
type ReportHandler struct {
	reports reportService
	exports reportExporter
}

// NewReportHandler constructs the handler. exports may be nil when exports are disabled.
func NewReportHandler(reports reportService, exports reportExporter) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// EventPopularity godoc
// @Summary Event popularity report
// @Description Ranks published and completed events by registrations, then average rating.
// @Tags Reports
// @Produce json
// @Param college_id path string true "College ID"
// @Param start_date query string false "Earliest event start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Latest event end (YYYY-MM-DD or RFC3339)"
// @Param category_id query string false "Category ID"
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {object} response.Envelope{data=dto.EventPopularityReport}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /colleges/{college_id}/reports/event-popularity [get]
func (h *ReportHandler) EventPopularity(c *gin.Context) {
	h.serve(c, models.ReportEventPopularity, func(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (interface{}, error) {
		return h.reports.EventPopularity(ctx, caller, collegeID, query)
	})
}

// StudentParticipation godoc
// @Summary Student participation report
// @Tags Reports
// @Produce json
// @Param college_id path string true "College ID"
// @Param min_events query int false "Minimum live registrations" default(0)
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} response.Envelope{data=dto.StudentParticipationReport}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /colleges/{college_id}/reports/student-participation [get]
func (h *ReportHandler) StudentParticipation(c *gin.Context) {
	h.serve(c, models.ReportStudentParticipation, func(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (interface{}, error) {
		return h.reports.StudentParticipation(ctx, caller, collegeID, query)
	})
}

// TopActiveStudents godoc
// @Summary Top active students
// @Tags Reports
// @Produce json
// @Param college_id path string true "College ID"
// @Param metric query string false "events_attended or events_registered" default(events_attended)
// @Param limit query int false "Maximum rows" default(3)
// @Success 200 {object} response.Envelope{data=dto.TopActiveStudentsReport}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /colleges/{college_id}/reports/top-active-students [get]
func (h *ReportHandler) TopActiveStudents(c *gin.Context) {
	h.serve(c, models.ReportTopActiveStudents, func(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (interface{}, error) {
		return h.reports.TopActiveStudents(ctx, caller, collegeID, query)
	})
}

// Dashboard godoc
// @Summary College dashboard overview
// @Tags Reports
// @Produce json
// @Param college_id path string true "College ID"
// @Success 200 {object} response.Envelope{data=dto.DashboardReport}
// @Failure 403 {object} response.Envelope
// @Router /colleges/{college_id}/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	h.serve(c, models.ReportDashboard, func(ctx context.Context, caller models.CallerIdentity, collegeID string, _ models.ReportQuery) (interface{}, error) {
		return h.reports.Dashboard(ctx, caller, collegeID)
	})
}

// Export godoc
// @Summary Export a report as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param college_id path string true "College ID"
// @Param report path string true "event-popularity, student-participation or top-active-students"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /colleges/{college_id}/reports/{report}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "report exports are disabled"))
		return
	}
	caller, ok := callerFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var query models.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	file, err := h.exports.Export(c.Request.Context(), caller, c.Param(collegeParam), models.ReportKind(c.Param("report")), c.Query("format"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

type reportFunc func(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (interface{}, error)

func (h *ReportHandler) serve(c *gin.Context, kind models.ReportKind, build reportFunc) {
	if h.reports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	caller, ok := callerFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var query models.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}

	start := time.Now()
	payload, err := build(c.Request.Context(), caller, c.Param(collegeParam), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["report"] = string(kind)
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, payload, meta)
}
