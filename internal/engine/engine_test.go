package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

func TestAll_ReportOrder(t *testing.T) {
	src := openBundle(t, nil)
	var names []string
	for _, a := range All(src, Options{}) {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{
		NameReportOverview,
		NameExecutiveSummary,
		NameClusterBasicInfo,
		NameNodeInfo,
		NameIndexAnalysis,
		NameLogAnalysis,
		NameFinalRecommendations,
	}, names)
}

func TestAll_EmptyBundle(t *testing.T) {
	src := openBundle(t, nil)
	for _, locale := range []i18n.Locale{i18n.EN, i18n.ZH} {
		for _, a := range All(src, Options{Locale: locale}) {
			t.Run(locale.String()+"/"+a.Name(), func(t *testing.T) {
				sec := generate(t, a)
				assert.NotEmpty(t, sec.Content)
				assert.NotContains(t, sec.Content, "%!", "unformatted catalog verb")
				for _, raw := range sec.Case {
					assert.NotEmpty(t, raw)
				}
			})
		}
	}
}

func TestAll_EmptyBundleReportsUnavailableData(t *testing.T) {
	src := openBundle(t, nil)

	overview := generate(t, NewOverview(src, Options{}))
	assert.Contains(t, overview.Content, "**Data unavailable**")
	assert.NotEmpty(t, findingsTitled(overview, "Data unavailable"))

	nodes := generate(t, NewNodes(src, Options{}))
	assert.Contains(t, nodes.Content, "`nodes.json` is missing or unreadable")

	assessment := generate(t, NewAssessment(src, Options{}))
	assert.Contains(t, assessment.Content, "Unable to retrieve cluster health status")
	assert.Contains(t, assessment.Content, "Log directory not found")
}

func TestAssessment_GreenCluster(t *testing.T) {
	src := openBundle(t, map[string]string{store.ClusterHealthFile: greenHealth})
	sec := generate(t, NewAssessment(src, Options{}))

	assert.Contains(t, sec.Content, "✅ Cluster is running well")
	assert.NotContains(t, sec.Content, "replica shard issues exist")
	require.Len(t, findingsTitled(sec, "Cluster verdict: good"), 1)
	assert.Contains(t, sec.Content, "No configuration items requiring special confirmation")
	assert.Contains(t, sec.Content, "**Optimization Implementation Principles**")

	h, ok := src.ClusterHealth()
	require.True(t, ok)
	assert.Equal(t, model.VerdictGood, ClusterVerdict(h))
}

func TestClusterVerdict(t *testing.T) {
	tests := []struct {
		name string
		json string
		want model.Verdict
	}{
		{"green", `{"status":"green","unassigned_shards":0}`, model.VerdictGood},
		{"green with unassigned", `{"status":"green","unassigned_shards":2}`, model.VerdictCritical},
		{"yellow", `{"status":"yellow","unassigned_shards":4}`, model.VerdictDegraded},
		{"red", `{"status":"red"}`, model.VerdictCritical},
		{"no status", `{"cluster_name":"x"}`, model.VerdictCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := openBundle(t, map[string]string{store.ClusterHealthFile: tt.json})
			h, ok := src.ClusterHealth()
			require.True(t, ok)
			assert.Equal(t, tt.want, ClusterVerdict(h))
		})
	}
	assert.Equal(t, model.VerdictCritical, ClusterVerdict(nil))
}

func TestDegradedClusterWithOversizedShards(t *testing.T) {
	src := openBundle(t, map[string]string{
		store.ClusterHealthFile: yellowHealth,
		store.NodesFile:         singleNode,
		store.NodesStatsFile:    hotNodeStats,
		store.ShardsFile:        bigShards,
	})

	assessment := generate(t, NewAssessment(src, Options{}))
	assert.Equal(t, 1, strings.Count(assessment.Content, "replica shard issues exist"))
	assert.Len(t, findingsTitled(assessment, "Heap pressure"), 1)
	assert.Contains(t, assessment.Content, "Watch JVM heap usage")

	nodes := generate(t, NewNodes(src, Options{}))
	heap := findingsTitled(nodes, "High JVM heap usage")
	require.Len(t, heap, 1)
	assert.Equal(t, model.SeverityWarning, heap[0].Severity)
	assert.Contains(t, nodes.Content, "JVM heap usage high: 85.0%")

	indices := generate(t, NewIndices(src, Options{}))
	oversized := findingsTitled(indices, "Oversized shard")
	require.Len(t, oversized, 3)
	for i, name := range []string{"logs-a", "logs-b", "logs-c"} {
		assert.Equal(t, name+": largest primary shard 60.0GB", oversized[i].Evidence)
	}
	assert.Contains(t, indices.Content, "3 indices have primary shards larger than 50GB")
}

func TestOversizedFindingIsPerIndex(t *testing.T) {
	// Two oversized primaries of the same index yield one finding.
	src := openBundle(t, map[string]string{store.ShardsFile: `[
	  {"index": "big", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "10", "store": "64424509440"},
	  {"index": "big", "shard": "1", "prirep": "p", "state": "STARTED", "docs": "10", "store": "75161927680"}
	]`})
	sec := generate(t, NewIndices(src, Options{}))
	oversized := findingsTitled(sec, "Oversized shard")
	require.Len(t, oversized, 1)
	assert.Equal(t, "big: largest primary shard 70.0GB", oversized[0].Evidence)
}

func TestConfirmations(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		wantItem []string
	}{
		{
			name:  "rebalance none",
			files: map[string]string{store.ClusterSettingsFile: `{"persistent":{"cluster.routing.rebalance.enable":"none"},"transient":{}}`},
			wantItem: []string{
				"Shard rebalancing disabled",
			},
		},
		{
			name:     "transient wins over persistent",
			files:    map[string]string{store.ClusterSettingsFile: `{"persistent":{"cluster.routing.rebalance.enable":"none"},"transient":{"cluster":{"routing":{"rebalance":{"enable":"all"}}}}}`},
			wantItem: nil,
		},
		{
			name:     "allocation primaries",
			files:    map[string]string{store.ClusterSettingsFile: `{"persistent":{},"transient":{"cluster.routing.allocation.enable":"primaries"}}`},
			wantItem: []string{"Shard allocation restricted"},
		},
		{
			name: "large index from indices stats",
			files: map[string]string{store.IndicesStatsFile: `{"indices":{
			  "events": {"total": {"docs": {"count": 250000000}}},
			  ".system": {"total": {"docs": {"count": 900000000}}},
			  "small": {"total": {"docs": {"count": 5}}}
			}}`},
			wantItem: []string{"Very large indices present"},
		},
		{
			name:     "nothing to confirm",
			files:    map[string]string{store.ClusterSettingsFile: `{"persistent":{},"transient":{}}`},
			wantItem: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confirmations(openBundle(t, tt.files), i18n.New(i18n.EN))
			var items []string
			for _, c := range got {
				items = append(items, c.Item)
			}
			assert.Equal(t, tt.wantItem, items)
		})
	}
}

func TestAssessment_RebalanceNone(t *testing.T) {
	src := openBundle(t, map[string]string{
		store.ClusterHealthFile:   greenHealth,
		store.ClusterSettingsFile: `{"persistent":{"cluster.routing.rebalance.enable":"none"},"transient":{}}`,
	})
	confirmations := Confirmations(src, i18n.New(i18n.EN))
	require.Len(t, confirmations, 1)
	assert.Equal(t, "cluster.routing.rebalance.enable = none", confirmations[0].Current)

	sec := generate(t, NewAssessment(src, Options{}))
	assert.Contains(t, sec.Content, "**1. Shard rebalancing disabled**")
	assert.Contains(t, sec.Content, "- **Current State**: cluster.routing.rebalance.enable = none")
	assert.NotContains(t, sec.Content, "**2. ")

	cluster := generate(t, NewCluster(src, Options{}))
	assert.Len(t, findingsTitled(cluster, "Shard rebalancing disabled"), 1)
	assert.Contains(t, cluster.Content, "Shard rebalancing is disabled.")
}

func TestLargeIndices_FallsBackToShardListing(t *testing.T) {
	src := openBundle(t, map[string]string{store.ShardsFile: `[
	  {"index": "huge", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "150000000", "store": "1"},
	  {"index": "huge", "shard": "1", "prirep": "p", "state": "STARTED", "docs": "150000000", "store": "1"},
	  {"index": "huge", "shard": "0", "prirep": "r", "state": "STARTED", "docs": "150000000", "store": "1"},
	  {"index": "tiny", "shard": "0", "prirep": "p", "state": "STARTED", "docs": "1", "store": "1"}
	]`})
	assert.Equal(t, []string{"huge"}, largeIndices(src))
}

func TestRecommendations_SortedByPriority(t *testing.T) {
	var stats, settings []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("small-%02d", i)
		stats = append(stats, fmt.Sprintf(`%q: {"total": {"store": {"size_in_bytes": 209715200}}}`, name))
		settings = append(settings, fmt.Sprintf(`%q: {"settings": {"index": {"number_of_shards": "1"}}}`, name))
	}
	stats = append(stats, `"big": {"total": {"store": {"size_in_bytes": 128849018880}}}`)
	settings = append(settings, `"big": {"settings": {"index.number_of_shards": "2"}}`)

	src := openBundle(t, map[string]string{
		store.NodesStatsFile:    `{"nodes": {"n1": {"name": "es-1", "jvm": {"mem": {"heap_used_percent": 91}}}}}`,
		store.IndicesStatsFile:  `{"indices": {` + strings.Join(stats, ",") + `}}`,
		store.IndexSettingsFile: `{` + strings.Join(settings, ",") + `}`,
	})
	recs := Recommendations(src, i18n.New(i18n.EN))

	var titles []string
	var priorities []model.Priority
	for _, r := range recs {
		titles = append(titles, r.Title)
		priorities = append(priorities, r.Priority)
	}
	assert.Equal(t, []string{
		"Relieve JVM heap pressure",
		"Split oversized shards",
		"Configure index lifecycle management",
		"Consolidate small shards",
	}, titles)
	assert.Equal(t, []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityMedium, model.PriorityLow}, priorities)
	assert.Equal(t, "1 nodes use more than 85% of their heap", recs[0].Description)
	assert.Equal(t, "12 indices average less than 1GB per shard", recs[3].Description)
}

func TestRecommendations_NoneNeeded(t *testing.T) {
	src := openBundle(t, map[string]string{
		store.NodesStatsFile:  `{"nodes": {"n1": {"name": "es-1", "jvm": {"mem": {"heap_used_percent": 40}}}}}`,
		store.ILMPoliciesFile: `{"logs": {"policy": {}}}`,
	})
	assert.Empty(t, Recommendations(src, i18n.New(i18n.EN)))

	sec := generate(t, NewAssessment(src, Options{}))
	assert.Contains(t, sec.Content, "no obvious optimization suggestions")
	assert.Contains(t, sec.Content, "✅ All nodes' resource usage is normal")
}

func TestAssessLogHealth(t *testing.T) {
	cat := i18n.New(i18n.EN)
	tests := []struct {
		name       string
		files      []store.LogFile
		dir        bool
		err, warn  bool
		want       model.Severity
		desc       string
		detailWith string
	}{
		{name: "missing dir", dir: false, want: model.SeverityWarning, desc: "Log directory not found"},
		{name: "healthy", files: logFiles(3, 1024), dir: true, want: model.SeverityInfo, desc: "Log files are healthy", detailWith: "3 log files (0 compressed)"},
		{name: "too many", files: logFiles(60, 1), dir: true, want: model.SeverityCritical, desc: "Too many log files", detailWith: "60 log files"},
		{name: "many", files: logFiles(25, 1), dir: true, want: model.SeverityWarning, desc: "Many log files", detailWith: "25 log files"},
		{name: "too large", files: logFiles(2, 600*oneMiB), dir: true, want: model.SeverityCritical, desc: "Log files are too large", detailWith: "1.2 GB"},
		{name: "large escalates healthy", files: logFiles(2, 300*oneMiB), dir: true, want: model.SeverityWarning, desc: "Log files are large", detailWith: "600.0 MB"},
		{name: "large keeps many", files: logFiles(25, 25*oneMiB), dir: true, want: model.SeverityWarning, desc: "Many log files", detailWith: "625.0 MB"},
		{name: "errors replace", files: logFiles(25, 1), dir: true, err: true, want: model.SeverityCritical, desc: "Error entries found in logs"},
		{name: "warnings escalate healthy", files: logFiles(1, 1), dir: true, warn: true, want: model.SeverityWarning, desc: "Warning entries found in logs"},
		{name: "warnings keep critical", files: logFiles(60, 1), dir: true, warn: true, want: model.SeverityCritical, desc: "Too many log files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AssessLogHealth(cat, tt.files, tt.dir, tt.err, tt.warn)
			assert.Equal(t, tt.want, h.Severity)
			assert.Equal(t, tt.desc, h.Description)
			if tt.detailWith != "" {
				assert.Contains(t, strings.Join(h.Details, "\n"), tt.detailWith)
			}
		})
	}
}

func TestAssessment_ManyLogFiles(t *testing.T) {
	files := map[string]string{store.ClusterHealthFile: greenHealth}
	for i := 0; i < 60; i++ {
		files[fmt.Sprintf("logs/es-%02d.log", i)] = ""
	}
	src := openBundle(t, files)

	sec := generate(t, NewAssessment(src, Options{}))
	assert.Contains(t, sec.Content, "**Log Health**: 🔴 Too many log files")
	assert.Contains(t, sec.Content, "60 log files, rotation or cleanup needed")

	logs := generate(t, NewLogs(src, Options{}))
	found := findingsTitled(logs, "Too many log files")
	require.Len(t, found, 1)
	assert.Equal(t, model.SeverityCritical, found[0].Severity)
	assert.Contains(t, found[0].Evidence, "60")
}

func TestIndexRecords(t *testing.T) {
	rows := []store.ShardRow{
		{Index: store.Some("b"), Shard: store.Some("0"), PriRep: store.Some("p"), State: store.Some("STARTED"), Docs: catInt(10), Store: catInt(100)},
		{Index: store.Some("b"), Shard: store.Some("0"), PriRep: store.Some("r"), State: store.Some("UNASSIGNED")},
		{Index: store.Some("a"), Shard: store.Some("0"), PriRep: store.Some("p"), State: store.Some("STARTED"), Docs: catInt(5), Store: catInt(50)},
		{Index: store.Some("a"), Shard: store.Some("1"), PriRep: store.Some("p"), State: store.Some("STARTED"), Docs: catInt(7), Store: catInt(70)},
		{Index: store.Some("a"), Shard: store.Some("0"), PriRep: store.Some("r"), State: store.Some("STARTED"), Docs: catInt(5), Store: catInt(50)},
	}
	got := indexRecords(shardRecords(rows))
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, 2, a.PrimaryShards)
	assert.Equal(t, 1, a.ReplicaShards)
	assert.Equal(t, int64(12), a.Docs)
	assert.Equal(t, int64(120), a.StoreBytes)
	assert.Equal(t, int64(70), a.MaxPrimaryShardBytes)
	assert.Equal(t, "green", a.Health())

	b := got[1]
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, map[string]int{"STARTED": 1, "UNASSIGNED": 1}, b.States)
	assert.Equal(t, "yellow", b.Health())
}

func catInt(n int64) store.CatInt {
	return store.CatInt{Opt: store.Some(n)}
}

func TestClassifyIndex(t *testing.T) {
	tests := []struct {
		name string
		rec  model.IndexRecord
		want shardClass
	}{
		{"oversized", model.IndexRecord{MaxPrimaryShardBytes: 60 * oneGiB, Docs: 10}, shardOversized},
		{"exactly 50GiB", model.IndexRecord{MaxPrimaryShardBytes: 50 * oneGiB, Docs: 10}, shardOK},
		{"undersized", model.IndexRecord{MaxPrimaryShardBytes: oneGiB, Docs: 5000}, shardUndersized},
		{"small but few docs", model.IndexRecord{MaxPrimaryShardBytes: oneGiB, Docs: 1000}, shardOK},
		{"healthy", model.IndexRecord{MaxPrimaryShardBytes: 20 * oneGiB, Docs: 5000}, shardOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIndex(tt.rec))
		})
	}
}

func TestSelectTypical(t *testing.T) {
	var records []model.IndexRecord
	for i := 0; i < 40; i++ {
		records = append(records, model.IndexRecord{
			Name:       fmt.Sprintf("app-%02d", i),
			Docs:       int64(i),
			StoreBytes: int64(i) * 50 * oneMiB,
		})
	}
	records = append(records, model.IndexRecord{Name: ".kibana", StoreBytes: 10 * oneGiB})

	w := newWriter(Options{})
	picks := selectTypical(w, records)
	require.NotEmpty(t, picks)
	assert.LessOrEqual(t, len(picks), 20)

	seen := map[string]bool{}
	for _, p := range picks {
		assert.False(t, p.rec.System(), p.rec.Name)
		assert.False(t, seen[p.rec.Name], "duplicate pick %s", p.rec.Name)
		seen[p.rec.Name] = true
	}
	// the largest application index comes first
	assert.Equal(t, "app-39", picks[0].rec.Name)

	assert.Empty(t, selectTypical(w, []model.IndexRecord{{Name: ".security"}}))
}

func TestGenerate_Deterministic(t *testing.T) {
	files := map[string]string{
		store.ClusterHealthFile: yellowHealth,
		store.NodesFile:         singleNode,
		store.NodesStatsFile:    hotNodeStats,
		store.ShardsFile:        bigShards,
		"logs/es.log":           "[2024-03-01T10:15:30,123][WARN ][o.e.c.r.a.DiskThresholdMonitor] [es-1] high disk watermark [90%] exceeded\n",
	}
	dir := writeBundle(t, files)
	run := func() []model.Section {
		src, err := store.Open(dir)
		require.NoError(t, err)
		var out []model.Section
		for _, a := range All(src, Options{}) {
			out = append(out, generate(t, a))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestCluster_RebalanceModes(t *testing.T) {
	modes := map[string]string{
		"none":      "rebalance.none",
		"primaries": "rebalance.primaries",
		"replicas":  "rebalance.replicas",
		"all":       "rebalance.all",
	}
	tests := []struct {
		name     string
		settings string
		wantKey  string
	}{
		{"none", `{"persistent":{"cluster.routing.rebalance.enable":"none"},"transient":{}}`, "rebalance.none"},
		{"primaries", `{"persistent":{"cluster.routing.rebalance.enable":"primaries"},"transient":{}}`, "rebalance.primaries"},
		{"replicas", `{"persistent":{},"transient":{"cluster.routing.rebalance.enable":"replicas"}}`, "rebalance.replicas"},
		{"all", `{"persistent":{"cluster.routing.rebalance.enable":"all"},"transient":{}}`, "rebalance.all"},
		{"unset defaults to all", `{"persistent":{},"transient":{}}`, "rebalance.all"},
	}
	cat := i18n.New(i18n.EN)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := openBundle(t, map[string]string{
				store.ClusterHealthFile:   greenHealth,
				store.ClusterSettingsFile: tt.settings,
			})
			sec := generate(t, NewCluster(src, Options{}))

			for _, key := range modes {
				if key == tt.wantKey {
					assert.Contains(t, sec.Content, cat.F(key))
				} else {
					assert.NotContains(t, sec.Content, cat.F(key))
				}
			}
			wantFindings := 0
			if tt.wantKey == "rebalance.none" {
				wantFindings = 1
			}
			assert.Len(t, findingsTitled(sec, "Shard rebalancing disabled"), wantFindings)
		})
	}
}

func TestIndices_SearchLatency(t *testing.T) {
	src := openBundle(t, map[string]string{
		store.NodesStatsFile: `{"nodes":{"n1":{"name":"es-1","indices":{"search":{"query_total":4,"query_time_in_millis":10,"fetch_time_in_millis":4000}}}}}`,
	})
	sec := generate(t, NewIndices(src, Options{}))
	assert.Contains(t, sec.Content, "| 2.50 ms |")
	assert.Contains(t, sec.Content, "| 1.00 s |")
	assert.NotContains(t, sec.Content, "2.50ms")
}
