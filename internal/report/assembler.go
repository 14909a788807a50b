// Package report runs the analyzers over a bundle and assembles their
// sections into the Markdown report and the per-analyzer case files.
package report

import (
	"fmt"
	"strings"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"

	"github.com/dm/esdiag/internal/engine"
	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/model"
)

// Options configure an Assembler.
type Options struct {
	Locale i18n.Locale

	// Template overrides the built-in skeleton of Locale when set.
	Template *Template

	// MaxLineBytes is passed on to the log analyzers.
	MaxLineBytes int

	// Now returns the time used in the report file name. Defaults to time.Now.
	Now func() time.Time
}

// SectionResult is the outcome of one analyzer.
type SectionResult struct {
	model.Section

	// Err is set when the analyzer failed. Content then holds the error
	// notice written into the report.
	Err error
}

// Failed reports whether the analyzer failed.
func (r SectionResult) Failed() bool {
	return r.Err != nil
}

// Assembly is an assembled report held in memory.
type Assembly struct {
	Markdown    string
	ClusterName string
	Verdict     model.Verdict
	Sections    []SectionResult
	GeneratedAt time.Time
	Duration    time.Duration
}

// Findings returns the findings of every section in report order.
func (a *Assembly) Findings() []model.Finding {
	var out []model.Finding
	for _, s := range a.Sections {
		out = append(out, s.Findings...)
	}
	return out
}

// Assembler fills a template with the sections of analyzers.
type Assembler struct {
	src       engine.Source
	analyzers []engine.Analyzer
	opts      Options
}

// New returns an Assembler running every engine analyzer over src.
func New(src engine.Source, opts Options) *Assembler {
	return NewWithAnalyzers(src, engine.All(src, engine.Options{Locale: opts.Locale, MaxLineBytes: opts.MaxLineBytes}), opts)
}

// NewWithAnalyzers returns an Assembler running the given analyzers.
func NewWithAnalyzers(src engine.Source, analyzers []engine.Analyzer, opts Options) *Assembler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Assembler{src: src, analyzers: analyzers, opts: opts}
}

// Assemble runs every analyzer and fills the template. A failing analyzer
// does not stop the run: its slot gets an error notice and its error is
// part of the returned *multierror.Error. The Assembly is complete in both
// cases.
func (a *Assembler) Assemble() (*Assembly, error) {
	start := a.opts.Now()
	cat := i18n.New(a.opts.Locale)
	tmpl := DefaultTemplate(a.opts.Locale)
	if a.opts.Template != nil {
		tmpl = *a.opts.Template
	}

	var failures *multierror.Error
	content := make(map[string]string, len(a.analyzers))
	results := make([]SectionResult, 0, len(a.analyzers))
	for _, an := range a.analyzers {
		klog.V(1).Infof("generating section %s", an.Name())
		res := generate(an)
		if res.Failed() {
			klog.Warningf("section %s failed: %v", an.Name(), res.Err)
			res.Content = cat.F("report.generation_error", an.Name(), res.Err)
			failures = multierror.Append(failures, fmt.Errorf("section %s: %w", an.Name(), res.Err))
		}
		content[an.Name()] = res.Content
		results = append(results, res)
	}

	health, _ := a.src.ClusterHealth()
	asm := &Assembly{
		Markdown:    tmpl.Fill(content, cat),
		ClusterName: "unknown",
		Verdict:     engine.ClusterVerdict(health),
		Sections:    results,
		GeneratedAt: start,
	}
	if health != nil {
		if name, ok := health.ClusterName.Get(); ok && name != "" {
			asm.ClusterName = name
		}
	}
	asm.Duration = a.opts.Now().Sub(start)
	return asm, failures.ErrorOrNil()
}

// generate runs one analyzer, turning a panic into an error.
func generate(an engine.Analyzer) (res SectionResult) {
	defer func() {
		if r := recover(); r != nil {
			res = SectionResult{Section: model.Section{Name: an.Name()}, Err: fmt.Errorf("recovered from panic: %v", r)}
		}
	}()
	sec, err := an.Generate()
	if err != nil {
		return SectionResult{Section: model.Section{Name: an.Name()}, Err: err}
	}
	sec.Name = an.Name()
	return SectionResult{Section: sec}
}

// FileName returns the report file name for a cluster generated at t:
// ES_Report_<cluster>_<YYYYMMDD_HHMMSS>.md. Dashes and spaces in the
// cluster name become underscores.
func FileName(cluster string, t time.Time) string {
	if cluster == "" {
		cluster = "unknown"
	}
	cluster = strings.NewReplacer("-", "_", " ", "_").Replace(cluster)
	return fmt.Sprintf("ES_Report_%s_%s.md", cluster, t.Format("20060102_150405"))
}
