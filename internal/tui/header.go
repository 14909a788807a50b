package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   report title
//	center: current section, e.g. "§ 3/7 3. Cluster Information"
//	right:  scroll position, or the render error
func renderHeader(app *App) string {
	width := app.frameWidth()

	left := app.title
	center := ""
	if i := app.currentSection(); i >= 0 {
		center = fmt.Sprintf("§ %d/%d %s", app.sectionOrdinal(i), app.sectionCount(), app.outline[i].Title)
	}
	right := fmt.Sprintf("%3.0f%%", app.viewport.ScrollPercent()*100)
	if app.err != nil {
		right = StyleError.Render("render failed: " + app.err.Error())
	}

	// Inner width excludes StyleHeader's horizontal padding.
	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 2 {
		return StyleHeader.Width(width).Render(ansi.Truncate(left+"  "+right, inner, "…"))
	}
	leftGap := gap / 2
	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", gap-leftGap) + right
	return StyleHeader.Width(width).Render(line)
}
