package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Event", "Registrations", "Attendance Rate (%)"},
		Rows: []map[string]string{
			{"Event": "Hackathon, 2025", "Registrations": "10", "Attendance Rate (%)": "80.00"},
			{"Event": "Career Fair", "Registrations": "5"},
		},
		Notes: []string{"Total events: 2"},
	}
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	expected := "Event,Registrations,Attendance Rate (%)\n\"Hackathon, 2025\",10,80.00\nCareer Fair,5,\n"
	assert.Equal(t, expected, string(payload))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDataset(), "Event Popularity")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestPDFExporterLandscapeForWideTables(t *testing.T) {
	headers := []string{"A", "B", "C", "D", "E", "F", "G"}
	payload, err := NewPDFExporter().Render(Dataset{Headers: headers, Rows: []map[string]string{{"A": "a very long cell value that needs truncation to fit"}}}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "x")
	assert.Error(t, err)
}

func TestRenderersReportMissingHeaders(t *testing.T) {
	_, csvErr := NewCSVExporter().Render(Dataset{Rows: []map[string]string{{"x": "1"}}})
	_, pdfErr := NewPDFExporter().Render(Dataset{}, "")
	assert.ErrorIs(t, csvErr, errNoHeaders)
	assert.ErrorIs(t, pdfErr, errNoHeaders)
}
