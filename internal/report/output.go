package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// CasesDir is the output subdirectory holding the case files.
const CasesDir = "cases"

// RunFile is the name of the run metadata file inside CasesDir.
const RunFile = "run.json"

// Output lists the files written for one assembly.
type Output struct {
	RunID      string
	ReportPath string
	CasePaths  []string
	RunPath    string
}

// runMeta is the content of run.json.
type runMeta struct {
	RunID       string        `json:"run_id"`
	Bundle      string        `json:"bundle"`
	Cluster     string        `json:"cluster"`
	Verdict     string        `json:"verdict"`
	GeneratedAt string        `json:"generated_at"`
	DurationMS  int64         `json:"duration_ms"`
	Report      string        `json:"report"`
	Sections    []sectionMeta `json:"sections"`
}

type sectionMeta struct {
	Name     string `json:"name"`
	Findings int    `json:"findings"`
	Error    string `json:"error,omitempty"`
}

// Write stores the report and the case files of asm under dir. bundle is
// recorded in run.json. Analyzers that failed get no case file.
func Write(asm *Assembly, dir, bundle string) (*Output, error) {
	casesDir := filepath.Join(dir, CasesDir)
	if err := os.MkdirAll(casesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	out := &Output{
		RunID:      uuid.NewString(),
		ReportPath: filepath.Join(dir, FileName(asm.ClusterName, asm.GeneratedAt)),
		RunPath:    filepath.Join(casesDir, RunFile),
	}
	if err := os.WriteFile(out.ReportPath, []byte(asm.Markdown), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	klog.V(1).Infof("report written to %s", out.ReportPath)

	meta := runMeta{
		RunID:       out.RunID,
		Bundle:      bundle,
		Cluster:     asm.ClusterName,
		Verdict:     asm.Verdict.String(),
		GeneratedAt: asm.GeneratedAt.UTC().Format(time.RFC3339),
		DurationMS:  asm.Duration.Milliseconds(),
		Report:      filepath.Base(out.ReportPath),
	}
	for _, s := range asm.Sections {
		sm := sectionMeta{Name: s.Name, Findings: len(s.Findings)}
		if s.Failed() {
			sm.Error = s.Err.Error()
		}
		meta.Sections = append(meta.Sections, sm)
		if s.Failed() {
			continue
		}

		path := filepath.Join(casesDir, CaseFileName(s.Name))
		if err := writeJSON(path, s.Case); err != nil {
			return nil, fmt.Errorf("failed to write case file for %s: %w", s.Name, err)
		}
		out.CasePaths = append(out.CasePaths, path)
	}
	if err := writeJSON(out.RunPath, meta); err != nil {
		return nil, fmt.Errorf("failed to write run metadata: %w", err)
	}
	return out, nil
}

// CaseFileName returns the case file name of an analyzer.
func CaseFileName(name string) string {
	return strings.ToLower(name) + "_case.json"
}

// writeJSON writes v two-space indented without HTML escaping. Map keys are
// sorted by encoding/json.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
