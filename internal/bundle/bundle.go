// Package bundle locates the diagnostic data directory inside an extracted
// upload.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"k8s.io/klog/v2"
)

// ErrNotFound is returned by Resolve when neither the base directory nor any
// of its first-level subdirectories holds a marker file.
var ErrNotFound = errors.New("no diagnostic data directory found")

// Markers are the files whose presence identifies a data directory.
var Markers = []string{"cluster_health.json", "cluster_stats.json", "nodes.json", "nodes_info.json"}

// Resolve returns base when it holds a marker file, otherwise the first
// first-level subdirectory in name order that does. Hidden directories and
// __MACOSX are skipped.
func Resolve(base string) (string, error) {
	fi, err := os.Stat(base)
	if err != nil {
		return "", fmt.Errorf("failed to resolve bundle %q: %w", base, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("failed to resolve bundle %q: not a directory", base)
	}
	if hasMarker(base) {
		return base, nil
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("failed to list %q: %w", base, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || skipped(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		dir := filepath.Join(base, name)
		if hasMarker(dir) {
			klog.V(1).Infof("bundle data found in subdirectory %s", name)
			return dir, nil
		}
	}
	return "", fmt.Errorf("%q: %w", base, ErrNotFound)
}

func skipped(name string) bool {
	return strings.HasPrefix(name, ".") || name == "__MACOSX"
}

func hasMarker(dir string) bool {
	for _, m := range Markers {
		fi, err := os.Stat(filepath.Join(dir, m))
		if err == nil && fi.Mode().IsRegular() {
			return true
		}
	}
	return false
}
