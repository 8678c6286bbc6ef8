package reporter

import (
	"bytes"
	"fmt"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// maxMessageWidth caps the message column. The full text stays available in
// the json and csv formats and in the interactive grid's detail line.
const maxMessageWidth = 80

// severityColors maps ranked severity labels to terminal colors. Unranked
// labels render unstyled.
var severityColors = map[models.SeverityRank]termenv.Color{
	models.RankCritical: termenv.ANSIBrightRed,
	models.RankHigh:     termenv.ANSIRed,
	models.RankMedium:   termenv.ANSIYellow,
	models.RankLow:      termenv.ANSIBlue,
	models.RankInfo:     termenv.ANSIGreen,
}

// TableReporter renders findings as a terminal grid with fixed
// Host, Severity, Message columns
type TableReporter struct {
	Color bool
}

// Report renders the findings table. Zero findings yield an empty table.
func (r *TableReporter) Report(findings []models.Finding) ([]byte, error) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.SetHeader([]string{"Host", "Severity", "Message"})

	for i := range findings {
		f := findings[i]
		table.Append([]string{
			f.Host,
			r.severityCell(f.Severity),
			truncate.StringWithTail(f.Message, maxMessageWidth, "..."),
		})
	}
	table.Render()

	fmt.Fprintf(&buf, "\n%d findings\n", len(findings))

	return buf.Bytes(), nil
}

func (r *TableReporter) severityCell(severity string) string {
	if !r.Color {
		return severity
	}
	color, ok := severityColors[models.RankSeverity(severity)]
	if !ok {
		return severity
	}
	return termenv.String(severity).Foreground(color).String()
}
