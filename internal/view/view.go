package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog/log"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// Fetcher is the backend collaborator the view mounts with.
type Fetcher interface {
	FetchRisks(ctx context.Context) ([]models.Finding, error)
}

// baseColumns is the fixed column set in its canonical order. Rotating the
// grid changes only the on-screen order; data binding stays by field.
var baseColumns = [3]struct {
	title string
	width int
}{
	{"Host", 24},
	{"Severity", 12},
	{"Message", 60},
}

const (
	defaultGridHeight = 12
	minGridHeight     = 3
	// title, header border, detail lines and help line around the grid
	chromeHeight = 8
)

var (
	// Custom table title style.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(0)

	helpStyle = lipgloss.NewStyle().Faint(true)

	detailStyle = lipgloss.NewStyle().PaddingLeft(1)
)

type risksLoadedMsg []models.Finding

type risksFailedMsg struct{ err error }

// Model is the findings view: it fetches the risks table once on mount and
// renders it as a navigable grid. Shifting rows or rotating columns changes
// widget state only; the fetched records are never modified.
type Model struct {
	client  Fetcher
	records []models.Finding // response order, replaced wholesale on load

	grid     table.Model
	rows     [][3]string // widget copy of the rows, reorderable
	colOrder [3]int      // widget column permutation
	loaded   bool
	width    int
}

// New creates the view around its backend client. The fetch is issued by
// Init, not here.
func New(client Fetcher) Model {
	m := Model{
		client:   client,
		colOrder: [3]int{0, 1, 2},
	}
	m.grid = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(defaultGridHeight),
		table.WithStyles(gridStyles()),
	)
	return m
}

// Records returns the fetched rows in response order.
func (m Model) Records() []models.Finding {
	return m.records
}

// Loaded reports whether the mount-time fetch has completed, successfully
// or not.
func (m Model) Loaded() bool {
	return m.loaded
}

// Init issues the one fetch for this mount. Rendering is not blocked; the
// result is delivered back to Update on the program's event loop.
func (m Model) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		findings, err := client.FetchRisks(context.Background())
		if err != nil {
			return risksFailedMsg{err: err}
		}
		return risksLoadedMsg(findings)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case risksLoadedMsg:
		m.records = msg
		m.rows = make([][3]string, len(m.records))
		for i, f := range m.records {
			m.rows[i] = [3]string{f.Host, f.Severity, f.Message}
		}
		m.loaded = true
		m.syncGrid()
		return m, nil

	case risksFailedMsg:
		// Terminal state, same as an empty result: the grid stays empty and
		// the failure goes to the log sink only.
		log.Error().Err(msg.err).Msg("failed to fetch risks table")
		m.loaded = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		h := msg.Height - chromeHeight
		if h < minGridHeight {
			h = minGridHeight
		}
		m.grid.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "J":
			m.moveRow(1)
			return m, nil
		case "K":
			m.moveRow(-1)
			return m, nil
		case "H":
			m.rotateColumns(-1)
			return m, nil
		case "L":
			m.rotateColumns(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// View renders the grid with a detail block for the selected row standing in
// for the dashboard's cell tooltips.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Risks"))
	b.WriteString("\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString(helpStyle.Render("up/down move | J/K shift row | H/L rotate columns | q quit"))
	b.WriteString("\n")
	return b.String()
}

// moveRow shifts the selected row by delta within the widget rows.
func (m *Model) moveRow(delta int) {
	if len(m.rows) < 2 {
		return
	}
	i := m.grid.Cursor()
	j := i + delta
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
	m.syncGrid()
	m.grid.SetCursor(j)
}

// rotateColumns cycles the on-screen column order.
func (m *Model) rotateColumns(delta int) {
	if delta > 0 {
		m.colOrder = [3]int{m.colOrder[1], m.colOrder[2], m.colOrder[0]}
	} else {
		m.colOrder = [3]int{m.colOrder[2], m.colOrder[0], m.colOrder[1]}
	}
	m.syncGrid()
}

// syncGrid projects the widget rows through the column permutation and
// rebinds the grid.
func (m *Model) syncGrid() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{r[m.colOrder[0]], r[m.colOrder[1]], r[m.colOrder[2]]}
	}
	m.grid.SetColumns(m.columns())
	m.grid.SetRows(rows)
}

func (m Model) columns() []table.Column {
	cols := make([]table.Column, 3)
	for pos, idx := range m.colOrder {
		cols[pos] = table.Column{Title: baseColumns[idx].title, Width: baseColumns[idx].width}
	}
	return cols
}

func (m Model) detailView() string {
	if len(m.rows) == 0 {
		return ""
	}
	cursor := m.grid.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return ""
	}
	row := m.rows[cursor]

	width := m.width
	if width <= 0 {
		width = baseColumns[0].width + baseColumns[1].width + baseColumns[2].width
	}

	detail := fmt.Sprintf("host: %s    severity: %s\n%s",
		row[0], row[1], wordwrap.String(row[2], width-2))
	return detailStyle.Render(detail) + "\n"
}

// gridStyles tweaks the default table styles for the findings grid.
func gridStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// Run mounts the view and blocks until the user quits.
func Run(client Fetcher) error {
	_, err := tea.NewProgram(New(client), tea.WithAltScreen()).Run()
	return err
}
