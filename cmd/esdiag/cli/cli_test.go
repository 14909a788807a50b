package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esdiag/internal/report"
	"github.com/dm/esdiag/internal/store"
)

// makeBundle creates an extracted bundle with its data one directory down.
func makeBundle(t *testing.T, cluster, status string) string {
	t.Helper()
	root := t.TempDir()
	data := filepath.Join(root, "diag-"+cluster)
	require.NoError(t, os.MkdirAll(data, 0o755))
	health := `{"cluster_name":"` + cluster + `","status":"` + status + `","number_of_nodes":1,"unassigned_shards":0}`
	require.NoError(t, os.WriteFile(filepath.Join(data, store.ClusterHealthFile), []byte(health), 0o644))
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCmd(t *testing.T) {
	bundle := makeBundle(t, "prod", "green")
	outDir := t.TempDir()
	promFile := filepath.Join(outDir, "esdiag.prom")

	out, err := execute(t, "report", bundle, "--output", outDir, "--metrics-file", promFile)
	require.NoError(t, err)

	assert.Contains(t, out, "prod")
	assert.Contains(t, out, "GOOD")

	reports, err := filepath.Glob(filepath.Join(outDir, "ES_Report_prod_*.md"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	md, err := os.ReadFile(reports[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Elasticsearch Cluster Inspection Report")

	raw, err := os.ReadFile(filepath.Join(outDir, report.CasesDir, report.RunFile))
	require.NoError(t, err)
	var meta struct {
		Bundle  string `json:"bundle"`
		Cluster string `json:"cluster"`
		Verdict string `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "prod", meta.Cluster)
	assert.Equal(t, "good", meta.Verdict)
	assert.Equal(t, filepath.Join(bundle, "diag-prod"), meta.Bundle)

	prom, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "esdiag_cluster_verdict")
}

func TestReportCmd_Locale(t *testing.T) {
	bundle := makeBundle(t, "prod", "green")
	outDir := t.TempDir()

	_, err := execute(t, "report", bundle, "-o", outDir, "--locale", "zh-CN")
	require.NoError(t, err)

	reports, _ := filepath.Glob(filepath.Join(outDir, "ES_Report_*.md"))
	require.Len(t, reports, 1)
	md, err := os.ReadFile(reports[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Elasticsearch 集群巡检报告")
}

func TestReportCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no bundle", []string{"report", t.TempDir(), "-o", t.TempDir()}, "no diagnostic data directory found"},
		{"bad locale", []string{"report", t.TempDir(), "--locale", "!!"}, "invalid locale"},
		{"bad parallel", []string{"report", t.TempDir(), "--parallel", "0"}, "parallel must be positive"},
		{"missing template", []string{"report", t.TempDir(), "--template", "/nonexistent/t.md"}, "template"},
		{"missing arg", []string{"report"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	bundle := makeBundle(t, "prod", "yellow")
	fromFile := t.TempDir()
	fromFlag := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "esdiag.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_dir: "+fromFile+"\nlocale: zh\n"), 0o644))

	_, err := execute(t, "report", bundle, "--config", cfgPath)
	require.NoError(t, err)
	inFile, _ := filepath.Glob(filepath.Join(fromFile, "ES_Report_*.md"))
	assert.Len(t, inFile, 1)

	_, err = execute(t, "report", bundle, "--config", cfgPath, "--output", fromFlag)
	require.NoError(t, err)
	inFlag, _ := filepath.Glob(filepath.Join(fromFlag, "ES_Report_*.md"))
	assert.Len(t, inFlag, 1)
}

func TestBatchCmd(t *testing.T) {
	a := makeBundle(t, "alpha", "green")
	b := makeBundle(t, "beta", "red")
	missing := t.TempDir()
	outDir := t.TempDir()
	promFile := filepath.Join(outDir, "batch.prom")

	out, err := execute(t, "batch", a, b, missing, a, "-o", outDir, "--parallel", "2", "--metrics-file", promFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.NotContains(t, err.Error(), a)

	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "Error:")

	for _, bundle := range []string{a, b} {
		reports, _ := filepath.Glob(filepath.Join(outDir, filepath.Base(bundle), "ES_Report_*.md"))
		assert.Len(t, reports, 1, bundle)
	}

	prom, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `bundle="`+a+`"`)
	assert.Contains(t, string(prom), `bundle="`+b+`"`)
}

func TestOutputDirs(t *testing.T) {
	got := outputDirs("out", []string{"/a/x", "/b/x", "/c/y", "."})
	assert.Equal(t, []string{
		filepath.Join("out", "x"),
		filepath.Join("out", "x-2"),
		filepath.Join("out", "y"),
		filepath.Join("out", "bundle"),
	}, got)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "./a", "b", "a/"}))
}

func TestResolveAndVersion(t *testing.T) {
	bundle := makeBundle(t, "prod", "green")

	out, err := execute(t, "resolve", bundle)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bundle, "diag-prod")+"\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "esdiag dev\n", out)
}
