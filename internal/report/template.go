package report

import (
	"embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dm/esdiag/internal/i18n"
)

//go:embed templates/*.md
var builtin embed.FS

var rePlaceholder = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Template is a report skeleton whose {{NAME}} slots receive the content of
// the analyzer with that name.
type Template struct {
	text string
}

// DefaultTemplate returns the built-in skeleton of l.
func DefaultTemplate(l i18n.Locale) Template {
	b, err := builtin.ReadFile("templates/" + l.String() + ".md")
	if err != nil {
		// every Locale has an embedded skeleton
		panic(fmt.Sprintf("missing built-in template for %s: %v", l, err))
	}
	return Template{text: string(b)}
}

// ParseTemplate wraps a custom skeleton.
func ParseTemplate(text string) Template {
	return Template{text: text}
}

// LoadTemplate reads a custom skeleton from path.
func LoadTemplate(path string) (Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template %q: %w", path, err)
	}
	return ParseTemplate(string(b)), nil
}

// Placeholders returns the distinct slot names in order of first appearance.
func (t Template) Placeholders() []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range rePlaceholder.FindAllStringSubmatch(t.text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Fill substitutes every slot in a single pass. Slots missing from content
// get the not-implemented notice of cat. Content is never re-scanned, so a
// section containing "{{...}}" text is kept verbatim.
func (t Template) Fill(content map[string]string, cat i18n.Catalog) string {
	var pairs []string
	for _, name := range t.Placeholders() {
		body, ok := content[name]
		if !ok {
			body = cat.F("report.not_implemented", name)
		}
		pairs = append(pairs, "{{"+name+"}}", strings.TrimRight(body, "\n"))
	}
	if len(pairs) == 0 {
		return t.text
	}
	return strings.NewReplacer(pairs...).Replace(t.text)
}
