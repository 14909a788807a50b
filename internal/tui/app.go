// Package tui is a terminal viewer for generated reports.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	maxOutlineWidth = 40
)

// App is the root Bubble Tea model of the report viewer.
type App struct {
	title    string
	markdown string
	style    string // glamour standard style, "auto" detects the terminal

	outline []Heading
	anchors []int // rendered line of every outline entry

	viewport    viewport.Model
	renderWidth int // body width of the last render
	err         error

	// Layout
	width, height int

	// UI state
	showHelp    bool
	showOutline bool
	cursor      int
}

// Option configures an App.
type Option func(*App)

// WithStyle selects a glamour standard style such as "dark" or "notty".
func WithStyle(style string) Option {
	return func(app *App) { app.style = style }
}

// NewApp creates a viewer for markdown. title is shown in the header.
func NewApp(title, markdown string, opts ...Option) *App {
	app := &App{
		title:       title,
		markdown:    markdown,
		style:       "auto",
		outline:     Outline(markdown),
		viewport:    viewport.New(defaultWidth, defaultHeight),
		width:       defaultWidth,
		height:      defaultHeight,
		showOutline: true,
	}
	app.viewport.MouseWheelEnabled = true
	for _, o := range opts {
		o(app)
	}
	app.layout()
	return app
}

// Run opens the viewer on the alternate screen and blocks until it quits.
func Run(title, markdown string, opts ...Option) error {
	p := tea.NewProgram(NewApp(title, markdown, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.layout()
		return app, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		app.viewport, cmd = app.viewport.Update(msg)
		return app, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			app.layout()
			return app, nil
		case key.Matches(msg, keys.Outline):
			app.showOutline = !app.showOutline
			app.layout()
			return app, nil
		case key.Matches(msg, keys.Next):
			app.jumpSection(1)
			return app, nil
		case key.Matches(msg, keys.Prev):
			app.jumpSection(-1)
			return app, nil
		case key.Matches(msg, keys.Top):
			app.viewport.GotoTop()
			return app, nil
		case key.Matches(msg, keys.Bottom):
			app.viewport.GotoBottom()
			return app, nil
		}
		if app.showOutline && len(app.outline) > 0 {
			switch {
			case key.Matches(msg, keys.Up):
				if app.cursor > 0 {
					app.cursor--
				}
				return app, nil
			case key.Matches(msg, keys.Down):
				if app.cursor < len(app.outline)-1 {
					app.cursor++
				}
				return app, nil
			case key.Matches(msg, keys.Jump):
				app.viewport.SetYOffset(app.anchors[app.cursor])
				return app, nil
			}
		}
		var cmd tea.Cmd
		app.viewport, cmd = app.viewport.Update(msg)
		return app, cmd
	}

	return app, nil
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	body := app.viewport.View()
	if app.showOutline {
		body = lipgloss.JoinHorizontal(lipgloss.Top, renderOutline(app), body)
	}
	return strings.Join([]string{renderHeader(app), body, renderFooter(app)}, "\n")
}

func (app *App) frameWidth() int {
	if app.width <= 0 {
		return defaultWidth
	}
	return app.width
}

// outlineWidth is the width of the outline panel including its border.
func (app *App) outlineWidth() int {
	if !app.showOutline {
		return 0
	}
	w := app.frameWidth() / 3
	if w > maxOutlineWidth {
		w = maxOutlineWidth
	}
	return w
}

// layout sizes the viewport to the window and re-renders the body when its
// width changed.
func (app *App) layout() {
	h := app.height - 2 // header and footer
	if h < 1 {
		h = 1
	}
	w := app.frameWidth() - app.outlineWidth()
	if w < 10 {
		w = 10
	}
	app.viewport.Width = w
	app.viewport.Height = h
	if w != app.renderWidth {
		app.render(w)
	}
}

func (app *App) render(width int) {
	offset := app.viewport.YOffset
	body, err := renderMarkdown(app.markdown, app.style, width)
	app.err = err
	if err != nil {
		body = app.markdown
	}
	app.renderWidth = width
	app.viewport.SetContent(body)
	app.viewport.SetYOffset(offset)
	app.anchors = anchorLines(app.outline, strings.Split(ansi.Strip(body), "\n"))
}

func renderMarkdown(md, style string, width int) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width-2))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// currentSection returns the outline index of the level-2 heading the top of
// the viewport is in, or -1 above the first one.
func (app *App) currentSection() int {
	cur := -1
	for i, h := range app.outline {
		if h.Level != 2 {
			continue
		}
		if app.anchors[i] > app.viewport.YOffset {
			break
		}
		cur = i
	}
	return cur
}

// sectionOrdinal is the one-based position of outline entry i among the
// level-2 headings.
func (app *App) sectionOrdinal(i int) int {
	n := 0
	for _, h := range app.outline[:i+1] {
		if h.Level == 2 {
			n++
		}
	}
	return n
}

func (app *App) sectionCount() int {
	n := 0
	for _, h := range app.outline {
		if h.Level == 2 {
			n++
		}
	}
	return n
}

// jumpSection scrolls to the next (dir > 0) or previous level-2 heading and
// moves the outline cursor with it.
func (app *App) jumpSection(dir int) {
	cur := app.currentSection()
	if dir > 0 {
		for i := cur + 1; i < len(app.outline); i++ {
			if app.outline[i].Level == 2 && app.anchors[i] > app.viewport.YOffset {
				app.cursor = i
				app.viewport.SetYOffset(app.anchors[i])
				return
			}
		}
		return
	}
	for i := cur - 1; i >= 0; i-- {
		if app.outline[i].Level == 2 {
			app.cursor = i
			app.viewport.SetYOffset(app.anchors[i])
			return
		}
	}
	if cur >= 0 {
		app.viewport.GotoTop()
	}
}

// renderOutline lists the headings, indented by level, with the cursor
// highlighted. Entries scroll with the cursor when they do not fit.
func renderOutline(app *App) string {
	width := app.outlineWidth() - 2 // border and padding
	if width < 1 {
		width = 1
	}
	height := app.viewport.Height

	start := 0
	if app.cursor >= height {
		start = app.cursor - height + 1
	}
	var lines []string
	for i := start; i < len(app.outline) && len(lines) < height; i++ {
		h := app.outline[i]
		text := ansi.Truncate(strings.Repeat(" ", h.Level-1)+h.Title, width, "…")
		style := StyleOutlineItem
		if i == app.cursor {
			style = StyleOutlineSelected
		}
		lines = append(lines, style.Render(text))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return StyleOutline.Width(width + 1).Height(height).Render(strings.Join(lines, "\n"))
}
