package cli

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/dm/esdiag/internal/bundle"
	"github.com/dm/esdiag/internal/config"
	"github.com/dm/esdiag/internal/metrics"
	"github.com/dm/esdiag/internal/report"
	"github.com/dm/esdiag/internal/store"
)

// runResult is the outcome of analyzing one bundle.
type runResult struct {
	Bundle  string // as given on the command line
	DataDir string
	Asm     *report.Assembly
	Out     *report.Output

	// Failures holds the analyzers that failed. The report is still written.
	Failures error
}

// analyze resolves base, assembles its report and writes it to outDir. rec
// may be nil.
func analyze(cfg config.Config, tmpl *report.Template, base, outDir string, rec *metrics.Recorder) (*runResult, error) {
	dataDir, err := bundle.Resolve(base)
	if err != nil {
		return nil, err
	}
	klog.Infof("analyzing bundle %s", dataDir)

	s, err := store.Open(dataDir, store.WithCacheSize(cfg.CacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}

	asm, failures := report.New(s, report.Options{
		Locale:       cfg.ParsedLocale(),
		Template:     tmpl,
		MaxLineBytes: cfg.MaxLineBytes,
	}).Assemble()
	if failures != nil {
		klog.Warningf("bundle %s: %v", dataDir, failures)
	}

	out, err := report.Write(asm, outDir, dataDir)
	if err != nil {
		return nil, err
	}
	klog.Infof("report written to %s", out.ReportPath)

	if rec != nil {
		for _, sec := range asm.Sections {
			rec.ObserveSection(sec.Section, sec.Failed())
		}
		rec.SetVerdict(asm.Verdict)
		rec.SetDuration(asm.Duration)
	}

	return &runResult{Bundle: base, DataDir: dataDir, Asm: asm, Out: out, Failures: failures}, nil
}

// loadTemplate returns the custom template of cfg, or nil for the built-in one.
func loadTemplate(cfg config.Config) (*report.Template, error) {
	if cfg.Template == "" {
		return nil, nil
	}
	t, err := report.LoadTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
