package engine

import (
	"strconv"
	"strings"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

// Summary renders the executive summary: status, key metrics and shard
// health.
type Summary struct {
	src  Source
	opts Options
}

func NewSummary(src Source, opts Options) *Summary {
	return &Summary{src: src, opts: opts}
}

func (s *Summary) Name() string { return NameExecutiveSummary }

func (s *Summary) Generate() (model.Section, error) {
	w := newWriter(s.opts)
	health, hasHealth := s.src.ClusterHealth()
	stats, hasStats := s.src.ClusterStats()

	status := "unknown"
	if hasHealth {
		status = strings.ToLower(health.Status.Or("unknown"))
	}
	icon, descKey := statusIcon(status)

	w.h3("summary.overall")
	w.bullet("**%s**: %s", w.cat.T("summary.status"), strings.ToUpper(status))
	w.linef("  - %s %s", icon, w.cat.T(descKey))
	w.blank()

	optCount := func(o store.Opt[int64]) string {
		if v, ok := o.Get(); ok {
			return format.FormatNumber(v)
		}
		return format.NA
	}
	nodes, dataNodes, primaries, shards := format.NA, format.NA, format.NA, format.NA
	if hasHealth {
		nodes = optCount(health.NumberOfNodes)
		dataNodes = optCount(health.NumberOfDataNodes)
		primaries = optCount(health.ActivePrimaryShards)
		shards = optCount(health.ActiveShards)
	}
	indices, size, docs := format.NA, format.NA, format.NA
	if hasStats && stats.Indices != nil {
		indices = optCount(stats.Indices.Count)
		if b, ok := stats.Indices.Store.SizeInBytes.Get(); ok {
			size = format.FormatBytes(b)
		}
		docs = optCount(stats.Indices.Docs.Count)
	}

	w.h3("summary.metrics")
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"))
	w.kv(w.cat.T("metric.nodes"), nodes)
	w.kv(w.cat.T("metric.data_nodes"), dataNodes)
	w.kv(w.cat.T("metric.indices"), indices)
	w.kv(w.cat.T("metric.primaries"), primaries)
	w.kv(w.cat.T("metric.shards"), shards)
	w.kv(w.cat.T("metric.size"), size)
	w.kv(w.cat.T("metric.docs"), docs)
	w.blank()

	w.h3("summary.health")
	if !hasHealth {
		w.unavailable(model.TopicCluster, store.ClusterHealthFile)
	} else {
		w.table(w.cat.T("col.metric"), w.cat.T("col.value"))
		w.kv(w.cat.T("shards.active_percent"), format.FormatPercent(health.ActiveShardsPercent.Or(0)))
		w.kv(w.cat.T("shards.relocating"), strconv.FormatInt(health.RelocatingShards.Or(0), 10))
		w.kv(w.cat.T("shards.initializing"), strconv.FormatInt(health.InitializingShards.Or(0), 10))
		w.kv(w.cat.T("shards.unassigned"), strconv.FormatInt(health.UnassignedShards.Or(0), 10))
		w.blank()
		if health.UnassignedShards.Or(0) > 0 {
			w.para("summary.unassigned_note", health.UnassignedShards.Or(0))
		}
		if health.RelocatingShards.Or(0) > 0 {
			w.para("summary.relocating_note", health.RelocatingShards.Or(0))
		}
	}
	if !hasStats {
		w.unavailable(model.TopicCluster, store.ClusterStatsFile)
	}

	c := rawCase(s.src,
		"cluster_health", store.ClusterHealthFile,
		"cluster_stats", store.ClusterStatsFile,
	)
	return w.section(s.Name(), c), nil
}

// statusIcon maps a lower-cased cluster color to its icon and description key.
func statusIcon(status string) (string, string) {
	switch status {
	case "green":
		return "🟢", "status.green"
	case "yellow":
		return "🟡", "status.yellow"
	case "red":
		return "🔴", "status.red"
	default:
		return "❓", "status.unknown"
	}
}
