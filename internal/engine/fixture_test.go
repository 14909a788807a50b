package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

// writeBundle creates a bundle directory holding the given files.
func writeBundle(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func openBundle(t *testing.T, files map[string]string) *store.Store {
	t.Helper()
	s, err := store.Open(writeBundle(t, files))
	require.NoError(t, err)
	return s
}

func generate(t *testing.T, a Analyzer) model.Section {
	t.Helper()
	sec, err := a.Generate()
	require.NoError(t, err)
	require.Equal(t, a.Name(), sec.Name)
	return sec
}

func findingsTitled(sec model.Section, title string) []model.Finding {
	var out []model.Finding
	for _, f := range sec.Findings {
		if f.Title == title {
			out = append(out, f)
		}
	}
	return out
}

func logFiles(n int, size int64) []store.LogFile {
	files := make([]store.LogFile, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range files {
		files[i] = store.LogFile{
			Name:    fmt.Sprintf("es-%03d.log", i),
			Size:    size,
			ModTime: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return files
}

const greenHealth = `{
  "cluster_name": "prod",
  "status": "green",
  "number_of_nodes": 1,
  "number_of_data_nodes": 1,
  "active_primary_shards": 3,
  "active_shards": 6,
  "relocating_shards": 0,
  "initializing_shards": 0,
  "unassigned_shards": 0,
  "active_shards_percent_as_number": 100.0
}`

const yellowHealth = `{
  "cluster_name": "prod",
  "status": "yellow",
  "number_of_nodes": 1,
  "number_of_data_nodes": 1,
  "active_primary_shards": 3,
  "active_shards": 3,
  "unassigned_shards": 3,
  "active_shards_percent_as_number": 50.0
}`

const singleNode = `{
  "cluster_name": "prod",
  "nodes": {
    "n1": {"name": "es-1", "ip": "10.0.0.1", "version": "8.11.0", "roles": ["master", "data"]}
  }
}`

// hotNodeStats has 85% heap usage both by bytes and by heap_used_percent.
const hotNodeStats = `{
  "nodes": {
    "n1": {
      "name": "es-1",
      "roles": ["master", "data"],
      "jvm": {"mem": {"heap_used_in_bytes": 85, "heap_max_in_bytes": 100, "heap_used_percent": 85}}
    }
  }
}`

// bigShards lists three indices, each with one 60GiB primary and an
// unassigned replica.
const bigShards = `[
  {"index": "logs-a", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "1000000", "store": "64424509440", "node": "es-1"},
  {"index": "logs-a", "shard": "0", "prirep": "r", "state": "UNASSIGNED", "docs": "", "store": ""},
  {"index": "logs-b", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "1000000", "store": "64424509440", "node": "es-1"},
  {"index": "logs-b", "shard": "0", "prirep": "r", "state": "UNASSIGNED", "docs": "", "store": ""},
  {"index": "logs-c", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "1000000", "store": "64424509440", "node": "es-1"},
  {"index": "logs-c", "shard": "0", "prirep": "r", "state": "UNASSIGNED", "docs": "", "store": ""}
]`
