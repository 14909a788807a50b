package config

import (
	"os"
	"path/filepath"
	"testing"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esdiag/internal/i18n"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "esdiag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `locale: zh-CN
output_dir: /tmp/reports
parallel: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zh-CN", cfg.Locale)
	assert.Equal(t, i18n.ZH, cfg.ParsedLocale())
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Parallel)
	// untouched keys keep their defaults
	assert.Equal(t, Default().CacheSize, cfg.CacheSize)
	assert.Equal(t, Default().MaxLineBytes, cfg.MaxLineBytes)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid yaml", "locale: [en\n", "failed to load config"},
		{"bad locale", "locale: \"!!\"\n", "invalid locale"},
		{"zero parallel", "parallel: 0\n", "parallel must be positive"},
		{"negative cache", "cache_size: -1\n", "cache_size must be at least"},
		{"cache below artifact count", "cache_size: 1\n", "cache_size must be at least"},
		{"tiny line limit", "max_line_bytes: 10\n", "max_line_bytes must be at least 1024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Config{Locale: "en"}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"output_dir", "cache_size", "max_line_bytes", "parallel"} {
		assert.Contains(t, err.Error(), want)
	}

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
}
