package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
)

// Verdict styles, used by the CLI summary as well.
var (
	StyleVerdictGood     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleVerdictDegraded = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleVerdictCritical = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleVerdictUnknown  = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// Outline panel styles.
var (
	StyleOutline = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorGray).
			PaddingRight(1)

	StyleOutlineItem     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleOutlineSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
)

// VerdictStyle returns the style for a verdict name: "good", "degraded" or
// "critical".
func VerdictStyle(verdict string) lipgloss.Style {
	switch verdict {
	case "good":
		return StyleVerdictGood
	case "degraded":
		return StyleVerdictDegraded
	case "critical":
		return StyleVerdictCritical
	default:
		return StyleVerdictUnknown
	}
}
