package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const (
	maxTypicalIndices  = 20
	maxLargeIndices    = 8
	maxPrefixIndices   = 8
	maxMediumIndices   = 2
	maxSmallIndices    = 2
	maxDisplayName     = 25
	maxProblemShards   = 10
	maxPatternExamples = 3
	maxIndexRecs       = 3
)

var reDatedIndex = regexp.MustCompile(`\d{4}[-.]\d{2}[-.]\d{2}`)

// Indices renders index overview, typical indices, health, naming patterns,
// shard distribution, performance and sizing recommendations.
type Indices struct {
	src  Source
	opts Options
}

func NewIndices(src Source, opts Options) *Indices {
	return &Indices{src: src, opts: opts}
}

func (ix *Indices) Name() string { return NameIndexAnalysis }

func (ix *Indices) Generate() (model.Section, error) {
	w := newWriter(ix.opts)
	stats, _ := ix.src.ClusterStats()
	health, _ := ix.src.ClusterHealth()
	rows, hasShards := ix.src.Shards()
	nodesStats, hasNodesStats := ix.src.NodesStats()

	shards := shardRecords(rows)
	records := indexRecords(shards)

	indexOverview(w, stats, health)
	typicalIndices(w, records, hasShards)
	indexHealth(w, records, shards, hasShards)
	namingPatterns(w, records, hasShards)
	shardDistribution(w, shards, hasShards)
	indexPerformance(w, nodesStats, stats)
	if !hasShards {
		w.unavailable(model.TopicIndex, store.ShardsFile)
	}
	dataNodes := 0
	if hasNodesStats {
		for _, n := range nodesStats.Nodes {
			if isDataNode(n.Roles) {
				dataNodes++
			}
		}
	}
	indexRecommendations(w, records, dataNodes, hasNodesStats)

	cd := rawCase(ix.src,
		"cluster_stats", store.ClusterStatsFile,
		"cluster_health", store.ClusterHealthFile,
		"indices_data", store.ShardsFile,
	)
	return w.section(ix.Name(), cd), nil
}

func indexOverview(w *writer, stats *store.ClusterStats, health *store.ClusterHealth) {
	w.h3("index.overview")
	if stats == nil || stats.Indices == nil {
		w.unavailable(model.TopicIndex, store.ClusterStatsFile)
		return
	}
	in := stats.Indices
	count := in.Count.Or(0)
	total := in.Shards.Total.Or(0)
	primaries := in.Shards.Primaries.Or(0)
	docs := in.Docs.Count.Or(0)
	size := in.Store.SizeInBytes.Or(0)

	w.h4("index.basic")
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"), w.cat.T("col.description"))
	w.row("**"+w.cat.T("metric.indices")+"**", format.FormatNumber(count), w.cat.T("index.desc.indices"))
	w.row("**"+w.cat.T("metric.shards")+"**", format.FormatNumber(total), w.cat.T("index.desc.shards"))
	w.row("**"+w.cat.T("metric.primaries")+"**", format.FormatNumber(primaries), w.cat.T("index.desc.primaries"))
	w.row("**"+w.cat.T("metric.replicas")+"**", format.FormatNumber(total-primaries), w.cat.T("index.desc.replicas"))
	w.row("**"+w.cat.T("shards.replication")+"**", fmt.Sprintf("%.1f", in.Shards.Replication.Or(0)), w.cat.T("index.desc.replication"))
	w.row("**"+w.cat.T("metric.docs")+"**", format.FormatNumber(docs), w.cat.T("index.desc.docs"))
	w.row("**"+w.cat.T("metric.deleted_docs")+"**", format.FormatNumber(in.Docs.Deleted), w.cat.T("index.desc.deleted"))
	w.row("**"+w.cat.T("metric.size")+"**", in.Store.Size.Or(format.FormatBytes(size)), w.cat.T("index.desc.size"))
	w.blank()

	var avgShards, avgPrimaries float64
	if idx := in.Shards.Index; idx != nil {
		avgShards, avgPrimaries = idx.Shards.Avg, idx.Primaries.Avg
	}
	avgDocs, avgSize := int64(0), int64(0)
	if count > 0 {
		avgDocs, avgSize = docs/count, size/count
	}
	w.h4("index.averages")
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"), w.cat.T("col.description"))
	w.row("**"+w.cat.T("index.avg_shards")+"**", format.FormatFloat(avgShards), w.cat.T("index.desc.avg_shards"))
	w.row("**"+w.cat.T("index.avg_primaries")+"**", format.FormatFloat(avgPrimaries), w.cat.T("index.desc.avg_primaries"))
	w.row("**"+w.cat.T("index.avg_docs")+"**", format.FormatNumber(avgDocs), w.cat.T("index.desc.avg_docs"))
	w.row("**"+w.cat.T("index.avg_size")+"**", format.FormatBytes(avgSize), w.cat.T("index.desc.avg_size"))
	w.blank()

	if health == nil {
		return
	}
	pct := func(n, of int64) string {
		if p, ok := percent(n, of); ok {
			return format.FormatPercent(p)
		}
		return format.NA
	}
	w.h4("index.shard_health")
	w.table(w.cat.T("col.state"), w.cat.T("col.count"), w.cat.T("col.percent"), w.cat.T("col.description"))
	active := health.ActiveShards.Or(0)
	activePrimaries := health.ActivePrimaryShards.Or(0)
	w.row("**"+w.cat.T("shards.active")+"**", fmt.Sprint(active), pct(active, total), w.cat.T("index.desc.active"))
	w.row("**"+w.cat.T("shards.active_primaries")+"**", fmt.Sprint(activePrimaries), pct(activePrimaries, primaries), w.cat.T("index.desc.active_primaries"))
	w.row("**"+w.cat.T("shards.relocating")+"**", fmt.Sprint(health.RelocatingShards.Or(0)), pct(health.RelocatingShards.Or(0), total), w.cat.T("index.desc.relocating"))
	w.row("**"+w.cat.T("shards.initializing")+"**", fmt.Sprint(health.InitializingShards.Or(0)), pct(health.InitializingShards.Or(0), total), w.cat.T("index.desc.initializing"))
	w.row("**"+w.cat.T("shards.unassigned")+"**", fmt.Sprint(health.UnassignedShards.Or(0)), pct(health.UnassignedShards.Or(0), total), w.cat.T("index.desc.unassigned"))
	w.blank()
}

// typicalPick is one row of the typical indices table.
type typicalPick struct {
	rec  model.IndexRecord
	desc string
}

// indexPrefix is the part of an application index name before the first '-'
// or, without one, before the first '_'.
func indexPrefix(name string) string {
	sep := "_"
	if strings.Contains(name, "-") {
		sep = "-"
	}
	return strings.SplitN(name, sep, 2)[0]
}

// selectTypical picks up to twenty representative application indices:
// the largest ones, one per dominant name prefix, then a few medium and small
// ones. records must be sorted by name.
func selectTypical(w *writer, records []model.IndexRecord) []typicalPick {
	var app, large, medium, small []model.IndexRecord
	prefixes := map[string][]model.IndexRecord{}
	for _, r := range records {
		if r.System() {
			continue
		}
		app = append(app, r)
		p := indexPrefix(r.Name)
		prefixes[p] = append(prefixes[p], r)
		switch {
		case r.StoreBytes > oneGiB:
			large = append(large, r)
		case r.StoreBytes > 100*oneMiB:
			medium = append(medium, r)
		default:
			small = append(small, r)
		}
	}
	if len(app) == 0 {
		return nil
	}
	bySize := func(rs []model.IndexRecord) {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].StoreBytes > rs[j].StoreBytes })
	}

	var picks []typicalPick
	picked := map[string]bool{}
	add := func(r model.IndexRecord, desc string) {
		picks = append(picks, typicalPick{rec: r, desc: desc})
		picked[r.Name] = true
	}

	bySize(large)
	for _, r := range large[:min(len(large), maxLargeIndices)] {
		add(r, w.cat.F("typical.large", float64(r.StoreBytes)/float64(oneGiB)))
	}

	names := sortedKeys(prefixes)
	sort.SliceStable(names, func(i, j int) bool { return len(prefixes[names[i]]) > len(prefixes[names[j]]) })
	for _, p := range names[:min(len(names), maxPrefixIndices)] {
		group := prefixes[p]
		represented := false
		for _, r := range group {
			if picked[r.Name] {
				represented = true
				break
			}
		}
		if represented {
			continue
		}
		bySize(group)
		add(group[0], prefixDescription(w, p))
	}

	bySize(medium)
	n := 0
	for _, r := range medium {
		if n >= maxMediumIndices {
			break
		}
		if !picked[r.Name] {
			add(r, w.cat.F("typical.medium", float64(r.StoreBytes)/float64(oneMiB)))
			n++
		}
	}

	sort.SliceStable(small, func(i, j int) bool { return small[i].Docs > small[j].Docs })
	n = 0
	for _, r := range small {
		if n >= maxSmallIndices {
			break
		}
		if picked[r.Name] {
			continue
		}
		if r.Docs > 0 {
			add(r, w.cat.F("typical.small", format.FormatNumber(r.Docs)))
		} else {
			add(r, w.cat.T("typical.empty"))
		}
		n++
	}
	return picks[:min(len(picks), maxTypicalIndices)]
}

func prefixDescription(w *writer, prefix string) string {
	switch prefix {
	case "i":
		return w.cat.T("typical.app_main")
	case "logs":
		return w.cat.T("typical.logs")
	case "metrics":
		return w.cat.T("typical.metrics")
	case "geonames":
		return w.cat.T("typical.geo")
	default:
		return w.cat.F("typical.prefix", prefix)
	}
}

func typicalIndices(w *writer, records []model.IndexRecord, hasShards bool) {
	w.h3("index.details")
	w.h4("index.typical")
	w.table(w.cat.T("col.index_name"), w.cat.T("col.status"), w.cat.T("col.primaries"), w.cat.T("col.replicas"),
		w.cat.T("col.docs"), w.cat.T("col.size"), w.cat.T("col.type"))
	if !hasShards {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA, format.NA, format.NA)
		w.blank()
		return
	}
	for _, p := range selectTypical(w, records) {
		r := p.rec
		name := r.Name
		if len(name) > maxDisplayName {
			name = name[:maxDisplayName] + "..."
		}
		icon := "🔴"
		if r.LastState == "STARTED" {
			icon = "🟢"
		}
		replicas := 0
		if r.PrimaryShards > 0 {
			replicas = r.ReplicaShards / r.PrimaryShards
		}
		w.row(name, icon, fmt.Sprint(r.PrimaryShards), fmt.Sprint(replicas), format.FormatNumber(r.Docs),
			format.FormatBytes(r.StoreBytes), p.desc)
	}
	w.blank()
}

func indexHealth(w *writer, records []model.IndexRecord, shards []model.ShardRecord, hasShards bool) {
	w.h3("index.health")
	w.h4("index.health_distribution")
	if !hasShards {
		return
	}
	colors := map[string]int{}
	for _, r := range records {
		colors[r.Health()]++
	}
	total := int64(len(records))
	pct := func(n int) string {
		if p, ok := percent(int64(n), total); ok {
			return format.FormatPercent(p)
		}
		return format.NA
	}
	w.table(w.cat.T("col.health"), w.cat.T("col.index_count"), w.cat.T("col.percent"), w.cat.T("col.description"))
	w.row("🟢 **"+w.cat.T("color.green")+"**", fmt.Sprint(colors["green"]), pct(colors["green"]), w.cat.T("index.desc.green"))
	w.row("🟡 **"+w.cat.T("color.yellow")+"**", fmt.Sprint(colors["yellow"]), pct(colors["yellow"]), w.cat.T("index.desc.yellow"))
	w.row("🔴 **"+w.cat.T("color.red")+"**", fmt.Sprint(colors["red"]), pct(colors["red"]), w.cat.T("index.desc.red"))
	w.blank()

	var problems []model.ShardRecord
	for _, s := range shards {
		if s.State != "STARTED" {
			problems = append(problems, s)
		}
	}
	if len(problems) == 0 {
		w.h4("index.shard_state")
		w.para("index.all_started")
		return
	}
	w.h4("index.problem_shards")
	w.table(w.cat.T("col.index_name"), w.cat.T("col.shard_id"), w.cat.T("col.type"), w.cat.T("col.state"), w.cat.T("col.node"))
	for _, s := range problems[:min(len(problems), maxProblemShards)] {
		kind := w.cat.T("shard.replica")
		if s.Primary {
			kind = w.cat.T("shard.primary")
		}
		w.row(s.Index, s.Shard, kind, s.State, format.OrNA(s.Node))
	}
	if len(problems) > maxProblemShards {
		w.row("...", "...", "...", "...", "...")
		w.row("**"+w.cat.F("index.problem_total", len(problems))+"**", "", "", "", "")
	}
	w.blank()
	w.add(model.Finding{
		Topic:    model.TopicIndex,
		Severity: model.SeverityWarning,
		Title:    "Shards not started",
		Evidence: fmt.Sprintf("%d shards are not in STARTED state", len(problems)),
		Action:   "Check allocation explain output for the listed shards",
	})
}

func namingPatterns(w *writer, records []model.IndexRecord, hasShards bool) {
	w.h3("index.patterns")
	w.h4("index.naming")
	if !hasShards {
		return
	}
	var system, monitoring, app, dated []string
	for _, r := range records {
		switch {
		case r.System():
			system = append(system, r.Name)
			if strings.Contains(r.Name, "monitoring") {
				monitoring = append(monitoring, r.Name)
			}
		case reDatedIndex.MatchString(r.Name):
			dated = append(dated, r.Name)
		default:
			app = append(app, r.Name)
		}
	}
	examples := func(names []string) string {
		s := strings.Join(names[:min(len(names), maxPatternExamples)], ", ")
		if len(names) > maxPatternExamples {
			s += "..."
		}
		return s
	}
	w.table(w.cat.T("col.index_type"), w.cat.T("col.count"), w.cat.T("col.examples"))
	w.row("**"+w.cat.T("pattern.system")+"**", fmt.Sprint(len(system)), examples(system))
	w.row("**"+w.cat.T("pattern.monitoring")+"**", fmt.Sprint(len(monitoring)), examples(monitoring))
	w.row("**"+w.cat.T("pattern.application")+"**", fmt.Sprint(len(app)), examples(app))
	w.row("**"+w.cat.T("pattern.time_series")+"**", fmt.Sprint(len(dated)), examples(dated))
	w.blank()
}

type nodeShards struct {
	primary, replica int
	bytes            int64
}

// sizeBucket is a half-open byte range [lo, hi); hi zero means unbounded.
type sizeBucket struct {
	label  string
	lo, hi int64
}

var shardSizeBuckets = []sizeBucket{
	{"< 1MB", 0, oneMiB},
	{"1MB - 100MB", oneMiB, 100 * oneMiB},
	{"100MB - 1GB", 100 * oneMiB, oneGiB},
	{"1GB - 10GB", oneGiB, 10 * oneGiB},
	{"> 10GB", 10 * oneGiB, 0},
}

func shardDistribution(w *writer, shards []model.ShardRecord, hasShards bool) {
	w.h3("index.shard_distribution")
	w.h4("index.per_node")
	if !hasShards {
		return
	}
	perNode := map[string]*nodeShards{}
	var sizes []int64
	for _, s := range shards {
		node := s.Node
		if node == "" {
			node = "unknown"
		}
		ns, ok := perNode[node]
		if !ok {
			ns = &nodeShards{}
			perNode[node] = ns
		}
		if s.Primary {
			ns.primary++
		} else {
			ns.replica++
		}
		if s.HasStore {
			ns.bytes += s.StoreBytes
			sizes = append(sizes, s.StoreBytes)
		}
	}
	w.table(w.cat.T("col.node_name"), w.cat.T("col.primaries"), w.cat.T("col.replica_shards"), w.cat.T("col.total_shards"), w.cat.T("col.shard_size"))
	for _, node := range sortedKeys(perNode) {
		ns := perNode[node]
		w.row(node, fmt.Sprint(ns.primary), fmt.Sprint(ns.replica), fmt.Sprint(ns.primary+ns.replica), format.FormatBytes(ns.bytes))
	}
	w.blank()

	w.h4("index.size_distribution")
	if len(sizes) == 0 {
		return
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	w.table(w.cat.T("col.size_range"), w.cat.T("col.shard_count"), w.cat.T("col.percent"))
	var sum int64
	for _, s := range sizes {
		sum += s
	}
	for _, b := range shardSizeBuckets {
		count := 0
		for _, s := range sizes {
			if s >= b.lo && (b.hi == 0 || s < b.hi) {
				count++
			}
		}
		p, _ := percent(int64(count), int64(len(sizes)))
		w.row(b.label, fmt.Sprint(count), format.FormatPercent(p))
	}
	w.blank()
	w.linef("**%s**:", w.cat.T("size.stats"))
	w.bullet("%s: %s", w.cat.T("size.min"), format.FormatBytes(sizes[0]))
	w.bullet("%s: %s", w.cat.T("size.max"), format.FormatBytes(sizes[len(sizes)-1]))
	w.bullet("%s: %s", w.cat.T("size.avg"), format.FormatBytes(sum/int64(len(sizes))))
	w.bullet("%s: %s", w.cat.T("size.median"), format.FormatBytes(sizes[len(sizes)/2]))
	w.blank()
}

func indexPerformance(w *writer, ns *store.NodesStats, stats *store.ClusterStats) {
	w.h3("index.performance")
	w.h4("index.operations")
	if ns == nil {
		w.unavailable(model.TopicIndex, store.NodesStatsFile)
		return
	}
	var indexed, deleted, queries, queryMillis, fetchMillis int64
	for _, id := range sortedKeys(ns.Nodes) {
		in := ns.Nodes[id].Indices
		if in == nil {
			continue
		}
		if in.Indexing != nil {
			indexed += in.Indexing.IndexTotal.Or(0)
			deleted += in.Indexing.DeleteTotal.Or(0)
		}
		if in.Search != nil {
			queries += in.Search.QueryTotal.Or(0)
			queryMillis += in.Search.QueryTimeInMillis
			fetchMillis += in.Search.FetchTimeInMillis
		}
	}
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"), w.cat.T("col.description"))
	w.row("**"+w.cat.T("perf.index_total")+"**", format.FormatNumber(indexed), w.cat.T("perf.desc.index_total"))
	w.row("**"+w.cat.T("perf.delete_total")+"**", format.FormatNumber(deleted), w.cat.T("perf.desc.delete_total"))
	w.row("**"+w.cat.T("perf.query_total")+"**", format.FormatNumber(queries), w.cat.T("perf.desc.query_total"))
	w.row("**"+w.cat.T("perf.avg_query")+"**", format.FormatLatency(safeDivide(float64(queryMillis), float64(queries))), w.cat.T("perf.desc.avg_query"))
	w.row("**"+w.cat.T("perf.avg_fetch")+"**", format.FormatLatency(safeDivide(float64(fetchMillis), float64(queries))), w.cat.T("perf.desc.avg_fetch"))
	w.blank()

	if stats == nil || stats.Indices == nil || stats.Indices.QueryCache == nil {
		return
	}
	qc := stats.Indices.QueryCache
	hitRate := format.NA
	if p, ok := percent(qc.HitCount, qc.TotalCount); ok {
		hitRate = format.FormatPercent(p)
	}
	w.h4("index.query_cache")
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"), w.cat.T("col.description"))
	w.row("**"+w.cat.T("cache.memory")+"**", qc.MemorySize.Or(format.FormatBytes(qc.MemorySizeInBytes)), w.cat.T("cache.desc.memory"))
	w.row("**"+w.cat.T("cache.hit_rate")+"**", hitRate, w.cat.T("cache.desc.hit_rate"))
	w.row("**"+w.cat.T("cache.total")+"**", format.FormatNumber(qc.TotalCount), w.cat.T("cache.desc.total"))
	w.row("**"+w.cat.T("cache.hits")+"**", format.FormatNumber(qc.HitCount), w.cat.T("cache.desc.hits"))
	w.row("**"+w.cat.T("cache.evictions")+"**", format.FormatNumber(qc.Evictions), w.cat.T("cache.desc.evictions"))
	w.blank()
}

// indexRecommendations applies the sizing, document count and distribution
// rules to application indices and records one finding per offending index.
func indexRecommendations(w *writer, records []model.IndexRecord, dataNodes int, checkDistribution bool) {
	w.h3("index.optimization")
	var highDocs, oversized, undersized, crowded []model.IndexRecord
	for _, r := range records {
		if r.System() {
			continue
		}
		if r.Docs > highDocCount {
			highDocs = append(highDocs, r)
			w.add(model.Finding{
				Topic:    model.TopicIndex,
				Severity: model.SeverityWarning,
				Title:    "High document count",
				Evidence: fmt.Sprintf("%s: %s documents", r.Name, format.FormatNumber(r.Docs)),
				Action:   "Split the index by time or business dimension",
			})
		}
		switch classifyIndex(r) {
		case shardOversized:
			oversized = append(oversized, r)
			w.add(model.Finding{
				Topic:    model.TopicIndex,
				Severity: model.SeverityWarning,
				Title:    "Oversized shard",
				Evidence: fmt.Sprintf("%s: largest primary shard %s", r.Name, format.FormatGiB(r.MaxPrimaryShardBytes)),
				Action:   "Increase the primary shard count or split the index by time",
			})
		case shardUndersized:
			undersized = append(undersized, r)
			w.add(model.Finding{
				Topic:    model.TopicIndex,
				Severity: model.SeverityInfo,
				Title:    "Undersized shard",
				Evidence: fmt.Sprintf("%s: largest primary shard %s with %s documents", r.Name, format.FormatGiB(r.MaxPrimaryShardBytes), format.FormatNumber(r.Docs)),
				Action:   "Consolidate related indices or reduce the primary shard count",
			})
		}
		if checkDistribution && r.PrimaryShards > shardsPerDataNode*dataNodes {
			crowded = append(crowded, r)
			w.add(model.Finding{
				Topic:    model.TopicIndex,
				Severity: model.SeverityInfo,
				Title:    "Inefficient shard distribution",
				Evidence: fmt.Sprintf("%s: %d primary shards for %d data nodes", r.Name, r.PrimaryShards, dataNodes),
				Action:   "Keep primary shards at or below twice the data node count",
			})
		}
	}

	var issues, recs []string
	if len(highDocs) > 0 {
		issues = append(issues, w.cat.F("index.issue.high_docs", len(highDocs)))
		for _, r := range highDocs[:min(len(highDocs), maxIndexRecs)] {
			recs = append(recs, w.cat.F("index.rec.high_docs", r.Name, format.FormatNumber(r.Docs)))
		}
	}
	if len(oversized) > 0 {
		issues = append(issues, w.cat.F("index.issue.oversized", len(oversized)))
		for _, r := range oversized[:min(len(oversized), maxIndexRecs)] {
			recs = append(recs, w.cat.F("index.rec.oversized", r.Name, format.FormatGiB(r.MaxPrimaryShardBytes)))
		}
	}
	if len(undersized) > 0 {
		issues = append(issues, w.cat.F("index.issue.undersized", len(undersized)))
		recs = append(recs, w.cat.T("index.rec.undersized"))
	}
	if len(crowded) > 0 {
		issues = append(issues, w.cat.F("index.issue.distribution", len(crowded)))
		recs = append(recs, w.cat.F("index.rec.distribution", dataNodes))
	}

	if len(issues) > 0 {
		w.h4("index.issues")
		for _, s := range issues {
			w.bullet("🟡 %s", s)
		}
		w.blank()
	} else {
		w.h4("index.config_state")
		w.para("index.config_ok")
	}
	w.h4("index.recommendations")
	if len(recs) == 0 {
		w.bullet("%s", w.cat.T("index.rec.none"))
	}
	for _, s := range recs {
		w.bullet("**%s**", s)
	}
	w.blank()
	w.h4("index.best_practices")
	w.para("index.best_practices_body", dataNodes)
}
