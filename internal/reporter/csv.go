package reporter

import (
	"bytes"
	"encoding/csv"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// CSVReporter outputs findings as comma-separated rows for spreadsheets
// and ad-hoc scripting
type CSVReporter struct{}

type csvRow struct {
	Host     string
	Severity string
	Message  string
}

func (c csvRow) toSlice() []string {
	return []string{c.Host, c.Severity, c.Message}
}

// Report generates CSV output with a header row
func (r *CSVReporter) Report(findings []models.Finding) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvRow{"host", "severity", "message"}.toSlice()); err != nil {
		return nil, err
	}

	for _, f := range findings {
		row := csvRow{Host: f.Host, Severity: f.Severity, Message: f.Message}
		if err := w.Write(row.toSlice()); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
