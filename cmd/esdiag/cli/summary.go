package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/tui"
)

var styleLabel = lipgloss.NewStyle().Bold(true).Width(10)

// printSummary writes the outcome of one run as aligned label/value lines.
func printSummary(w io.Writer, res *runResult) {
	asm := res.Asm
	verdict := asm.Verdict.String()

	rows := [][2]string{
		{"Cluster", asm.ClusterName},
		{"Verdict", tui.VerdictStyle(verdict).Render(strings.ToUpper(verdict))},
		{"Findings", countFindings(asm.Findings())},
		{"Report", res.Out.ReportPath},
		{"Cases", filepath.Dir(res.Out.RunPath)},
	}
	if n := failureCount(res.Failures); n > 0 {
		rows = append(rows, [2]string{"Failed", tui.StyleError.Render(fmt.Sprintf("%d section(s), see the report", n))})
	}
	for _, r := range rows {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, styleLabel.Render(r[0]+":"), r[1]))
	}
}

// countFindings renders e.g. "1 critical, 3 warning, 0 info".
func countFindings(findings []model.Finding) string {
	counts := map[model.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return fmt.Sprintf("%d %s, %d %s, %d %s",
		counts[model.SeverityCritical], model.SeverityCritical,
		counts[model.SeverityWarning], model.SeverityWarning,
		counts[model.SeverityInfo], model.SeverityInfo)
}

func failureCount(err error) int {
	if err == nil {
		return 0
	}
	if merr, ok := err.(*multierror.Error); ok {
		return len(merr.Errors)
	}
	return 1
}
