package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-reports-api/internal/dto"
	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
	"github.com/noah-isme/campus-reports-api/pkg/export"
)

type reportComposer interface {
	EventPopularity(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.EventPopularityReport, error)
	StudentParticipation(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.StudentParticipationReport, error)
	TopActiveStudents(ctx context.Context, caller models.CallerIdentity, collegeID string, query models.ReportQuery) (*dto.TopActiveStudentsReport, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders report rows as CSV or PDF documents.
type ExportService struct {
	reports reportComposer
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(reports reportComposer, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{reports: reports, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Export runs the named report with the caller's filters and renders it in the requested format.
func (s *ExportService) Export(ctx context.Context, caller models.CallerIdentity, collegeID string, report models.ReportKind, format string, query models.ReportQuery) (*ExportFile, error) {
	exportFormat, err := parseExportFormat(format)
	if err != nil {
		return nil, err
	}

	var (
		dataset export.Dataset
		title   string
	)
	switch report {
	case models.ReportEventPopularity:
		result, err := s.reports.EventPopularity(ctx, caller, collegeID, query)
		if err != nil {
			return nil, err
		}
		dataset, title = popularityDataset(result), "Event Popularity Report"
	case models.ReportStudentParticipation:
		result, err := s.reports.StudentParticipation(ctx, caller, collegeID, query)
		if err != nil {
			return nil, err
		}
		dataset, title = participationDataset(result), "Student Participation Report"
	case models.ReportTopActiveStudents:
		result, err := s.reports.TopActiveStudents(ctx, caller, collegeID, query)
		if err != nil {
			return nil, err
		}
		dataset, title = topActiveDataset(result), "Top Active Students"
	default:
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("report %q cannot be exported", report))
	}

	var payload []byte
	contentType := "text/csv"
	switch exportFormat {
	case models.ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		contentType = "application/pdf"
		payload, err = s.pdf.Render(dataset, title)
	}
	if err != nil {
		s.logger.Error("render export failed", zap.String("report", string(report)), zap.String("format", string(exportFormat)), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s_%s.%s", report, collegeID, s.now().UTC().Format("20060102_150405"), exportFormat),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func parseExportFormat(raw string) (models.ExportFormat, error) {
	switch models.ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", models.ExportFormatCSV:
		return models.ExportFormatCSV, nil
	case models.ExportFormatPDF:
		return models.ExportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func popularityDataset(report *dto.EventPopularityReport) export.Dataset {
	headers := []string{"Event", "Code", "Category", "Registrations", "Attendees", "Attendance Rate (%)", "Average Rating", "Feedback", "Start", "End"}
	rows := make([]map[string]string, 0, len(report.Events))
	for _, event := range report.Events {
		rows = append(rows, map[string]string{
			"Event":               event.Name,
			"Code":                event.ShortCode,
			"Category":            deref(event.CategoryName),
			"Registrations":       strconv.Itoa(event.TotalRegistrations),
			"Attendees":           strconv.Itoa(event.TotalAttendees),
			"Attendance Rate (%)": formatRate(event.AttendanceRate),
			"Average Rating":      event.AverageRating,
			"Feedback":            strconv.Itoa(event.FeedbackCount),
			"Start":               event.StartDate.UTC().Format(time.RFC3339),
			"End":                 event.EndDate.UTC().Format(time.RFC3339),
		})
	}
	return export.Dataset{
		Headers: headers,
		Rows:    rows,
		Notes: []string{
			fmt.Sprintf("Total events: %d", report.Summary.TotalEvents),
			fmt.Sprintf("Total registrations: %d", report.Summary.TotalRegistrations),
			fmt.Sprintf("Average attendance rate: %s%%", formatRate(report.Summary.AverageAttendanceRate)),
		},
	}
}

func participationDataset(report *dto.StudentParticipationReport) export.Dataset {
	headers := []string{"Student ID", "Name", "Department", "Year", "Registered", "Attended", "Attendance Rate (%)", "Average Feedback"}
	rows := make([]map[string]string, 0, len(report.Students))
	for _, student := range report.Students {
		rows = append(rows, map[string]string{
			"Student ID":          deref(student.StudentID),
			"Name":                student.Name,
			"Department":          deref(student.Department),
			"Year":                formatYear(student.YearOfStudy),
			"Registered":          strconv.Itoa(student.EventsRegistered),
			"Attended":            strconv.Itoa(student.EventsAttended),
			"Attendance Rate (%)": formatRate(student.AttendanceRate),
			"Average Feedback":    student.AverageFeedbackRating,
		})
	}
	return export.Dataset{
		Headers: headers,
		Rows:    rows,
		Notes: []string{
			fmt.Sprintf("Total students: %d", report.Summary.TotalStudents),
			fmt.Sprintf("Average events per student: %.1f", report.Summary.AverageEventsPerStudent),
			fmt.Sprintf("Overall attendance rate: %.1f%%", report.Summary.OverallAttendanceRate),
		},
	}
}

func topActiveDataset(report *dto.TopActiveStudentsReport) export.Dataset {
	headers := []string{"Rank", "Student ID", "Name", "Email", "Registered", "Attended", "Attendance Rate (%)", "Recent Events"}
	rows := make([]map[string]string, 0, len(report.TopStudents))
	for _, student := range report.TopStudents {
		rows = append(rows, map[string]string{
			"Rank":                strconv.Itoa(student.Rank),
			"Student ID":          deref(student.StudentID),
			"Name":                student.Name,
			"Email":               student.Email,
			"Registered":          strconv.Itoa(student.EventsRegistered),
			"Attended":            strconv.Itoa(student.EventsAttended),
			"Attendance Rate (%)": formatRate(student.AttendanceRate),
			"Recent Events":       strings.Join(student.RecentEventsAttended, "; "),
		})
	}
	return export.Dataset{
		Headers: headers,
		Rows:    rows,
		Notes: []string{
			fmt.Sprintf("Ranked by: %s", report.Metadata.MetricUsed),
			fmt.Sprintf("Generated at: %s", report.Metadata.GeneratedAt.UTC().Format(time.RFC3339)),
		},
	}
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

func formatYear(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
