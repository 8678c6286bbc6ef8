package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// JSONReporter outputs findings in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Summary  jsonSummary   `json:"summary"`
	Findings []jsonFinding `json:"findings"`
}

type jsonSummary struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity,omitempty"`
}

type jsonFinding struct {
	Host     string `json:"host"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Report generates JSON output for the given findings
func (r *JSONReporter) Report(findings []models.Finding) ([]byte, error) {
	output := jsonOutput{
		Summary:  jsonSummary{Total: len(findings)},
		Findings: make([]jsonFinding, 0, len(findings)),
	}

	for _, f := range findings {
		if f.Severity != "" {
			if output.Summary.BySeverity == nil {
				output.Summary.BySeverity = make(map[string]int)
			}
			output.Summary.BySeverity[f.Severity]++
		}

		output.Findings = append(output.Findings, jsonFinding{
			Host:     f.Host,
			Severity: f.Severity,
			Message:  f.Message,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
