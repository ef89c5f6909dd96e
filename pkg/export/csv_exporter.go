package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
)

var errNoHeaders = errors.New("dataset has no headers")

// Dataset is the tabular content of an exported report. Rows are keyed by header.
// Notes are summary lines shown above the table where the format allows it.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
	Notes   []string
}

// records flattens the dataset into header-ordered records, header first.
func (d Dataset) records() ([][]string, error) {
	if len(d.Headers) == 0 {
		return nil, errNoHeaders
	}
	out := make([][]string, 0, len(d.Rows)+1)
	out = append(out, d.Headers)
	for _, row := range d.Rows {
		record := make([]string, len(d.Headers))
		for i, header := range d.Headers {
			record[i] = row[header]
		}
		out = append(out, record)
	}
	return out, nil
}

// CSVExporter renders datasets as RFC 4180 CSV. Notes are left out so the file stays machine readable.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render encodes the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	records, err := data.records()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := csv.NewWriter(buf).WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
