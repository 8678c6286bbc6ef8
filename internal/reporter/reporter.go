package reporter

import "github.com/ethanolivertroy/riskboard/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report renders the given findings
	Report(findings []models.Finding) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string, color bool) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "csv":
		return &CSVReporter{}
	default:
		return &TableReporter{Color: color}
	}
}
