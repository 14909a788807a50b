package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeReport returns a report with the given level-2 sections, each followed
// by n list items so that the body scrolls.
func makeReport(n int, sections ...string) string {
	var b strings.Builder
	b.WriteString("# Inspection Report\n\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "- %s item %d\n", s, i)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newTestApp(t *testing.T, md string) *App {
	t.Helper()
	app := NewApp("report.md", md, WithStyle("notty"))
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	app = m.(*App)
	require.NoError(t, app.err)
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_Anchors(t *testing.T) {
	app := newTestApp(t, makeReport(30, "Alpha", "Beta", "Gamma"))

	require.Len(t, app.outline, 4)
	require.Len(t, app.anchors, 4)
	for i := 1; i < len(app.anchors); i++ {
		assert.Greater(t, app.anchors[i], app.anchors[i-1], "anchor %d", i)
	}
	assert.Equal(t, 3, app.sectionCount())
}

func TestApp_WindowSizeMsgResizesViewport(t *testing.T) {
	app := newTestApp(t, makeReport(3, "Alpha"))

	assert.Equal(t, 120, app.width)
	assert.Equal(t, 18, app.viewport.Height)
	assert.Equal(t, 120-maxOutlineWidth, app.viewport.Width)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = m.(*App)
	assert.False(t, app.showOutline)
	assert.Equal(t, 120, app.viewport.Width)
	assert.Equal(t, 120, app.renderWidth)
}

func TestApp_NextPrevSection(t *testing.T) {
	app := newTestApp(t, makeReport(30, "Alpha", "Beta", "Gamma"))
	require.Equal(t, -1, app.currentSection())

	m, _ := app.Update(runes("n"))
	app = m.(*App)
	assert.Equal(t, 1, app.cursor)
	assert.Equal(t, app.anchors[1], app.viewport.YOffset)
	assert.Equal(t, 1, app.currentSection())

	m, _ = app.Update(runes("n"))
	app = m.(*App)
	assert.Equal(t, 2, app.cursor)
	assert.Equal(t, app.anchors[2], app.viewport.YOffset)

	m, _ = app.Update(runes("p"))
	app = m.(*App)
	assert.Equal(t, 1, app.cursor)
	assert.Equal(t, app.anchors[1], app.viewport.YOffset)

	// Before the first section, p goes to the top.
	m, _ = app.Update(runes("p"))
	app = m.(*App)
	assert.Equal(t, 0, app.viewport.YOffset)
}

func TestApp_JumpToHeading(t *testing.T) {
	app := newTestApp(t, makeReport(30, "Alpha", "Beta", "Gamma"))

	for i := 0; i < 2; i++ {
		m, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
		app = m.(*App)
	}
	assert.Equal(t, 2, app.cursor)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = m.(*App)
	assert.Equal(t, app.anchors[2], app.viewport.YOffset)
	assert.Contains(t, renderHeader(app), "§ 2/3 Beta")

	// The cursor stops at both ends.
	for i := 0; i < 10; i++ {
		m, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
		app = m.(*App)
	}
	assert.Equal(t, 0, app.cursor)
}

func TestApp_TopBottom(t *testing.T) {
	app := newTestApp(t, makeReport(30, "Alpha", "Beta"))

	m, _ := app.Update(runes("G"))
	app = m.(*App)
	assert.True(t, app.viewport.AtBottom())

	m, _ = app.Update(runes("g"))
	app = m.(*App)
	assert.True(t, app.viewport.AtTop())
}

func TestApp_QuitAndHelp(t *testing.T) {
	app := newTestApp(t, makeReport(1, "Alpha"))

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Contains(t, renderFooter(app), "? for help")
	m, _ := app.Update(runes("?"))
	app = m.(*App)
	assert.Contains(t, renderFooter(app), "enter: jump")
}

func TestApp_View(t *testing.T) {
	app := newTestApp(t, makeReport(1, "Alpha", "Beta"))
	view := app.View()

	assert.Contains(t, view, "report.md")
	assert.Contains(t, view, "Inspection Report")
	assert.Contains(t, view, "Alpha item 0")
}

func TestApp_RenderErrorFallsBackToSource(t *testing.T) {
	md := makeReport(1, "Alpha")
	app := NewApp("r.md", md, WithStyle("no-such-style"))

	require.Error(t, app.err)
	assert.Contains(t, app.View(), "- Alpha item 0")
	assert.Contains(t, renderHeader(app), "render failed")
}

func TestVerdictStyle(t *testing.T) {
	assert.Equal(t, StyleVerdictGood, VerdictStyle("good"))
	assert.Equal(t, StyleVerdictCritical, VerdictStyle("critical"))
	assert.Equal(t, StyleVerdictUnknown, VerdictStyle("other"))
}
