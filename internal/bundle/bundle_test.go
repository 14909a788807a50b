package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{name: "base holds marker", files: []string{"cluster_health.json", "sub/nodes.json"}, want: "."},
		{name: "nodes_info marker", files: []string{"nodes_info.json"}, want: "."},
		{name: "first subdirectory by name", files: []string{"b/nodes.json", "a/cluster_stats.json"}, want: "a"},
		{name: "skips hidden and macos metadata", files: []string{".cache/nodes.json", "__MACOSX/nodes.json", "z/nodes.json"}, want: "z"},
		{name: "only first level", files: []string{"a/b/nodes.json"}, want: ""},
		{name: "empty", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			for _, f := range tt.files {
				touch(t, filepath.Join(base, filepath.FromSlash(f)))
			}
			got, err := Resolve(base)
			if tt.want == "" {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(base, tt.want), got)
		})
	}
}

func TestResolve_MarkerMustBeFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "nodes.json"), 0o755))
	_, err := Resolve(base)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_BadBase(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	file := filepath.Join(t.TempDir(), "x.zip")
	touch(t, file)
	_, err = Resolve(file)
	assert.Error(t, err)
}
