package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/model"
)

// writer accumulates the Markdown body and the findings of one section.
type writer struct {
	b        strings.Builder
	cat      i18n.Catalog
	findings []model.Finding
}

func newWriter(opts Options) *writer {
	return &writer{cat: i18n.New(opts.Locale)}
}

// h3 and h4 write a heading looked up in the catalog.
func (w *writer) h3(key string) {
	fmt.Fprintf(&w.b, "### %s\n\n", w.cat.T(key))
}

func (w *writer) h4(key string) {
	fmt.Fprintf(&w.b, "#### %s\n\n", w.cat.T(key))
}

func (w *writer) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) linef(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *writer) blank() {
	w.b.WriteByte('\n')
}

// para writes a catalog string followed by an empty line.
func (w *writer) para(key string, args ...any) {
	w.line(w.cat.F(key, args...))
	w.blank()
}

func (w *writer) bullet(format string, args ...any) {
	w.b.WriteString("- ")
	w.linef(format, args...)
}

// table writes a header row and its separator.
func (w *writer) table(headers ...string) {
	w.row(headers...)
	w.b.WriteString("|")
	for range headers {
		w.b.WriteString("---|")
	}
	w.b.WriteByte('\n')
}

func (w *writer) row(cells ...string) {
	w.b.WriteString("|")
	for _, c := range cells {
		w.b.WriteString(" ")
		w.b.WriteString(cell(c))
		w.b.WriteString(" |")
	}
	w.b.WriteByte('\n')
}

// kv writes one bold-label row of a two-column table.
func (w *writer) kv(label, value string) {
	w.row("**"+label+"**", value)
}

// unavailable notes a missing artifact in the body and as a finding.
func (w *writer) unavailable(topic model.Topic, file string) {
	w.para("unavailable", file)
	w.add(model.Finding{
		Topic:    topic,
		Severity: model.SeverityInfo,
		Title:    "Data unavailable",
		Evidence: file + " is missing or unreadable",
	})
}

func (w *writer) add(f model.Finding) {
	w.findings = append(w.findings, f)
}

func (w *writer) section(name string, c caseData) model.Section {
	return model.Section{
		Name:     name,
		Content:  w.b.String(),
		Findings: w.findings,
		Case:     c,
	}
}

// cell keeps a value from breaking the table it is written into.
func cell(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// caseData is the raw input snapshot written to an analyzer's case file.
type caseData map[string]json.RawMessage

var jsonNull = json.RawMessage("null")

// rawCase collects artifacts as stored in the bundle. pairs alternates case
// keys and artifact file names; absent artifacts are recorded as null.
func rawCase(src Source, pairs ...string) caseData {
	c := make(caseData, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if raw, ok := src.Raw(pairs[i+1]); ok {
			c[pairs[i]] = raw
		} else {
			c[pairs[i]] = jsonNull
		}
	}
	return c
}

// put stores v under key as JSON.
func (c caseData) put(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode case field %s: %w", key, err)
	}
	c[key] = b
	return nil
}
