// Package engine holds the per-topic analyzers that turn a diagnostic bundle
// into report sections.
package engine

import (
	"encoding/json"
	"io"

	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/logparse"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

// Section names, in report order. They double as template placeholders.
const (
	NameReportOverview       = "REPORT_OVERVIEW"
	NameExecutiveSummary     = "EXECUTIVE_SUMMARY"
	NameClusterBasicInfo     = "CLUSTER_BASIC_INFO"
	NameNodeInfo             = "NODE_INFO"
	NameIndexAnalysis        = "INDEX_ANALYSIS"
	NameLogAnalysis          = "LOG_ANALYSIS"
	NameFinalRecommendations = "FINAL_RECOMMENDATIONS"
)

// Source is the read side of a bundle. *store.Store implements it.
type Source interface {
	Raw(name string) (json.RawMessage, bool)
	ClusterHealth() (*store.ClusterHealth, bool)
	ClusterStats() (*store.ClusterStats, bool)
	ClusterSettings() (*store.ClusterSettings, bool)
	Nodes() (*store.NodesInfo, bool)
	NodesStats() (*store.NodesStats, bool)
	Shards() ([]store.ShardRow, bool)
	IndicesStats() (*store.IndicesStats, bool)
	IndexSettings() (store.IndexSettings, bool)
	Licenses() (*store.Licenses, bool)
	Manifest() (*store.Manifest, bool)
	Master() ([]store.MasterRow, bool)
	ILMPolicies() (map[string]json.RawMessage, bool)
	LogFiles() ([]store.LogFile, bool)
	OpenLog(name string) (io.ReadCloser, error)
}

var _ Source = (*store.Store)(nil)

// Options are the inputs of an analyzer besides the bundle itself.
type Options struct {
	Locale i18n.Locale

	// MaxLineBytes bounds a single log line; longer lines are dropped.
	// Zero means logparse.DefaultMaxLineBytes.
	MaxLineBytes int
}

func (o Options) maxLineBytes() int {
	if o.MaxLineBytes > 0 {
		return o.MaxLineBytes
	}
	return logparse.DefaultMaxLineBytes
}

// Analyzer produces one report section.
type Analyzer interface {
	Name() string
	Generate() (model.Section, error)
}

// All returns every analyzer in report order.
func All(src Source, opts Options) []Analyzer {
	return []Analyzer{
		NewOverview(src, opts),
		NewSummary(src, opts),
		NewCluster(src, opts),
		NewNodes(src, opts),
		NewIndices(src, opts),
		NewLogs(src, opts),
		NewAssessment(src, opts),
	}
}
