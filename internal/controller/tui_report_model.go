package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

const (
	// Title (2) + summary (2) + footer (1) + border (2) + header (2).
	chromeHeight  = 9
	minListRows   = 5
	defaultWidth  = 100
	severityCol   = 8
	lineCol       = 6
	// The list reserves a row for its filter input.
	filterBarRows = 1
)

type findingItem struct {
	file    string
	finding m.Finding
}

func (i findingItem) FilterValue() string {
	return i.file + " " + i.finding.Method + " " + i.finding.Message
}

// findingDelegate renders one finding per row.
type findingDelegate struct{}

func (d findingDelegate) Height() int  { return 1 }
func (d findingDelegate) Spacing() int { return 0 }
func (d findingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d findingDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(findingItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	severityStyle := lipgloss.NewStyle().Width(severityCol).Foreground(lipgloss.Color("11"))
	if it.finding.Severity == m.SeverityError {
		severityStyle = severityStyle.Foreground(lipgloss.Color("9")).Bold(true)
	}

	lineStyle := lipgloss.NewStyle().Width(lineCol).Align(lipgloss.Right).Foreground(lipgloss.Color("12"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if isSelected {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		severityStyle = severityStyle.Inherit(selected).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		lineStyle = lineStyle.Inherit(selected).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		textStyle = selected
	}

	width := lm.Width() - severityCol - lineCol - 2
	text := fmt.Sprintf("%s  %s: %s", it.file, it.finding.Method, it.finding.Message)

	line := fmt.Sprintf("%s%s  %s",
		severityStyle.Render(it.finding.Severity.Label()),
		lineStyle.Render(fmt.Sprintf("%d", it.finding.Line)),
		textStyle.Render(truncateToWidth(text, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	return runewidth.Truncate(text, width, "…")
}

// reportModel browses the findings of a saved report.
type reportModel struct {
	width       int
	height      int
	findingList list.Model
	total       int
	totalFiles  int
	errors      int
}

func newReportModel(reports []m.FileReport) reportModel {
	items := make([]list.Item, 0)
	model := reportModel{totalFiles: len(reports)}

	for _, report := range reports {
		for _, f := range report.Findings {
			items = append(items, findingItem{file: string(report.File), finding: f})

			if f.Severity == m.SeverityError {
				model.errors++
			}
		}
	}

	model.total = len(items)

	findingList := list.New(items, findingDelegate{}, defaultWidth, max(len(items), 1))
	findingList.SetShowPagination(false)
	findingList.SetShowFilter(true)
	findingList.SetShowHelp(false)
	findingList.SetShowTitle(false)
	findingList.SetShowStatusBar(false)
	findingList.FilterInput.Placeholder = "Filter by file, method or message…"

	model.findingList = findingList

	return model
}

// needsPagination reports whether the findings overflow a known terminal
// height.
func (m reportModel) needsPagination() bool {
	if m.height <= 0 {
		return false
	}

	return m.total > m.height-chromeHeight
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.findingList.SetWidth(m.width)

	case tea.KeyMsg:
		if m.findingList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}

		m.findingList, cmd = m.findingList.Update(msg)

		return m, cmd
	}

	return m, cmd
}

func (m reportModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Code documentation report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Findings: %s   Errors: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.errors)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
	))

	if m.total == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, summary, "  No errors were detected.") + "\n"
	}

	view := []string{title, summary, m.renderTable()}

	if m.needsPagination() {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(m.width)

		view = append(view, footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, view...) + "\n"
}

func (m reportModel) renderTable() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	// Margin (2) + border (2) + padding (2).
	listWidth := width - 6

	listHeight := max(m.total, 1) + filterBarRows
	if m.needsPagination() {
		listHeight = max(m.height-chromeHeight, minListRows)
	}

	m.findingList.SetHeight(listHeight)
	m.findingList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s%*s  %s", severityCol, "Type", lineCol, "Line", "File  Method: Details"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			strings.TrimRight(m.findingList.View(), "\n"),
		),
	)
}
