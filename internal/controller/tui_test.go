package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTUI_Progress(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	ui := NewTUI(out, errOut)

	require.NoError(t, ui.Start(2))
	ui.Advance("a.js")
	ui.Advance("b.js")
	ui.Close()

	assert.Empty(t, out.String())
	assert.Nil(t, ui.bar)

	require.NoError(t, ui.Start(0))
	ui.Advance("c.js")
	ui.Close()
}

func TestTUI_DisplayReport(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out, &bytes.Buffer{})

	require.NoError(t, ui.DisplayReport(m.ReporterText, sampleReports()))
	assert.Contains(t, out.String(), "File: src/app.js")

	out.Reset()

	require.NoError(t, ui.DisplayReport(m.ReporterJSON, sampleReports()))
	assert.True(t, strings.HasPrefix(out.String(), "["))
}

func TestTUI_DisplaySummary(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out, &bytes.Buffer{})

	ui.DisplaySummary(m.Summary{FilesScanned: 2, FilesWithFindings: 1, Findings: 2})

	assert.Contains(t, out.String(), "Code documentation check completed.")
	assert.Contains(t, out.String(), "Scanned a total of 2 files.")
	assert.Contains(t, out.String(), "Found 2 errors across 1 files.")
}

func TestTUI_BrowsePrintsWithoutTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out, &bytes.Buffer{})

	require.NoError(t, ui.Browse(sampleReports()))

	assert.Contains(t, out.String(), "Code documentation report")
	assert.Contains(t, out.String(), "src/util.js")
}

func TestReportModel_Counts(t *testing.T) {
	model := newReportModel(sampleReports())

	assert.Equal(t, 3, model.total)
	assert.Equal(t, 2, model.errors)
	assert.Equal(t, 2, model.totalFiles)
	assert.Len(t, model.findingList.Items(), 3)
}

func TestReportModel_NeedsPagination(t *testing.T) {
	model := newReportModel(sampleReports())
	assert.False(t, model.needsPagination())

	model.height = chromeHeight + 3
	assert.False(t, model.needsPagination())

	model.height = chromeHeight + 2
	assert.True(t, model.needsPagination())
}

func TestReportModel_Update(t *testing.T) {
	model := newReportModel(sampleReports())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	sized, ok := updated.(reportModel)
	require.True(t, ok)
	assert.Equal(t, 80, sized.width)
	assert.Equal(t, 40, sized.height)

	_, cmd := sized.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = sized.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestReportModel_View(t *testing.T) {
	view := newReportModel(sampleReports()).View()

	assert.Contains(t, view, "Code documentation report")
	assert.Contains(t, view, "Findings:")
	assert.Contains(t, view, "add")
	assert.NotContains(t, view, "q quit")

	empty := newReportModel(nil).View()
	assert.Contains(t, empty, "No errors were detected.")
}

func TestReportModel_ViewWithPagination(t *testing.T) {
	var reports []m.FileReport
	for i := 0; i < 30; i++ {
		reports = append(reports, sampleReports()...)
	}

	model := newReportModel(reports)
	model.width = 100
	model.height = 20

	assert.Contains(t, model.View(), "q quit")
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("abc", 0))
	assert.Equal(t, "abc", truncateToWidth("abc", 3))
	assert.Equal(t, "ab…", truncateToWidth("abcdef", 3))
	assert.Equal(t, "日…", truncateToWidth("日本語", 4))
}

func TestFindingItem_FilterValue(t *testing.T) {
	item := findingItem{file: "a.js", finding: m.Finding{Method: "add", Message: "missing"}}

	assert.Equal(t, "a.js add missing", item.FilterValue())
}
