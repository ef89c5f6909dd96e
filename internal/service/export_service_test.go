package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-reports-api/internal/models"
	"github.com/noah-isme/campus-reports-api/pkg/export"
)

type failingPDF struct{}

func (failingPDF) Render(export.Dataset, string) ([]byte, error) {
	return nil, errors.New("font missing")
}

func newTestExportService(store *fakeReportStore) *ExportService {
	svc := NewExportService(newTestReportService(store), zap.NewNop(), nil, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestExportServicePopularityCSV(t *testing.T) {
	b := newDataset(testCollege)
	b.event("e1", models.EventStatusPublished, fixedNow, "")
	b.register("e1", "u1", models.RegistrationStatusRegistered, true)
	b.register("e1", "u2", models.RegistrationStatusRegistered, false)

	file, err := newTestExportService(&fakeReportStore{dataset: b.ds}).Export(context.Background(), adminCaller, testCollege, models.ReportEventPopularity, "CSV", models.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "event-popularity_col-1_20240615_090000.csv", file.Filename)

	lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Event,Code,Category,Registrations,Attendees,Attendance Rate (%),Average Rating,Feedback,Start,End", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Event e1,EV-e1,,2,1,50.00,0.0,0,"))
}

func TestExportServiceTopActivePDF(t *testing.T) {
	file, err := newTestExportService(&fakeReportStore{dataset: topActiveFixture().ds}).Export(context.Background(), staffCaller, testCollege, models.ReportTopActiveStudents, "pdf", models.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportServiceParticipationCSV(t *testing.T) {
	file, err := newTestExportService(&fakeReportStore{dataset: participationFixture().ds}).Export(context.Background(), adminCaller, testCollege, models.ReportStudentParticipation, "", models.ReportQuery{MinEvents: "5"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "NIM-s1,Ana Putri,,,5,3,60.00,4.5", lines[1])
}

func TestExportServiceRejects(t *testing.T) {
	store := &fakeReportStore{dataset: newDataset(testCollege).ds}
	svc := newTestExportService(store)
	ctx := context.Background()

	_, err := svc.Export(ctx, adminCaller, testCollege, models.ReportEventPopularity, "xlsx", models.ReportQuery{})
	assert.Equal(t, "VALIDATION_ERROR", appCode(err))

	_, err = svc.Export(ctx, adminCaller, testCollege, models.ReportDashboard, "csv", models.ReportQuery{})
	assert.Equal(t, "NOT_FOUND", appCode(err))

	_, err = svc.Export(ctx, studentCaller, testCollege, models.ReportEventPopularity, "csv", models.ReportQuery{})
	assert.Equal(t, "FORBIDDEN", appCode(err))
	assert.Zero(t, store.calls)
}

func TestExportServiceRenderFailure(t *testing.T) {
	svc := NewExportService(newTestReportService(&fakeReportStore{dataset: newDataset(testCollege).ds}), zap.NewNop(), nil, failingPDF{})

	_, err := svc.Export(context.Background(), adminCaller, testCollege, models.ReportEventPopularity, "pdf", models.ReportQuery{})
	assert.Equal(t, "INTERNAL_ERROR", appCode(err))
}
