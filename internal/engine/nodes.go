package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const dayMillis = 24 * 60 * 60 * 1000

// Nodes renders per-node resources, JVM, roles, performance, storage and
// resource alerts.
type Nodes struct {
	src  Source
	opts Options
}

func NewNodes(src Source, opts Options) *Nodes {
	return &Nodes{src: src, opts: opts}
}

func (n *Nodes) Name() string { return NameNodeInfo }

// namedStats pairs a nodes_stats entry with its node id.
type namedStats struct {
	id string
	store.NodeStats
}

// statsByName orders nodes_stats entries by node name, then id.
func statsByName(ns *store.NodesStats) []namedStats {
	if ns == nil {
		return nil
	}
	out := make([]namedStats, 0, len(ns.Nodes))
	for id, s := range ns.Nodes {
		out = append(out, namedStats{id: id, NodeStats: s})
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].Name.Or(""), out[j].Name.Or("")
		if ni != nj {
			return ni < nj
		}
		return out[i].id < out[j].id
	})
	return out
}

// nodeRecords joins nodes.json with nodes_stats.json by node id, sorted by
// name. Metrics stay unset for nodes without stats.
func nodeRecords(info *store.NodesInfo, stats *store.NodesStats) []model.NodeRecord {
	if info == nil {
		return nil
	}
	out := make([]model.NodeRecord, 0, len(info.Nodes))
	for id, ni := range info.Nodes {
		rec := model.NodeRecord{
			ID:      id,
			Name:    ni.Name.Or(id),
			IP:      ni.IP.Or(format.NA),
			Version: ni.Version.Or(format.NA),
			Roles:   ni.Roles,
		}
		if stats != nil {
			if s, ok := stats.Nodes[id]; ok {
				fillNodeMetrics(&rec, s)
			}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func fillNodeMetrics(rec *model.NodeRecord, s store.NodeStats) {
	if s.OS != nil && s.OS.CPU != nil {
		rec.CPUPercent, rec.HasCPU = s.OS.CPU.Percent.Get()
	}
	rec.HeapPercent, rec.HasHeap = heapRatio(s.JVM)
	rec.DiskPercent, rec.HasDisk = diskRatio(s.FS)
	if s.JVM != nil {
		start, okStart := s.JVM.StartTimeInMillis.Get()
		now, okNow := s.Timestamp.Get()
		if okStart && okNow && start > 0 && now > 0 {
			rec.UptimeDays = (now - start) / dayMillis
			rec.HasUptime = true
		}
	}
}

// heapRatio derives heap usage from used/max bytes.
func heapRatio(jvm *store.NodeJVMStats) (float64, bool) {
	if jvm == nil || jvm.Mem == nil || jvm.Mem.HeapMaxInBytes <= 0 {
		return 0, false
	}
	return float64(jvm.Mem.HeapUsedInBytes) / float64(jvm.Mem.HeapMaxInBytes) * 100, true
}

func diskRatio(fs *store.NodeFSStats) (float64, bool) {
	if fs == nil || fs.Total == nil {
		return 0, false
	}
	return percent(fs.Total.TotalInBytes-fs.Total.FreeInBytes, fs.Total.TotalInBytes)
}

func (n *Nodes) Generate() (model.Section, error) {
	w := newWriter(n.opts)
	info, hasInfo := n.src.Nodes()
	stats, hasStats := n.src.NodesStats()
	if !hasInfo {
		w.unavailable(model.TopicNode, store.NodesFile)
	}
	if !hasStats {
		w.unavailable(model.TopicNode, store.NodesStatsFile)
	}

	records := nodeRecords(info, stats)
	ordered := statsByName(stats)
	alerts := nodeAlerts(w, records)

	n.overview(w, records, alerts)
	n.hardware(w, ordered)
	n.jvm(w, info, ordered)
	n.roles(w, info)
	n.performance(w, ordered)
	n.storage(w, ordered)
	n.alertSection(w, alerts, info)

	cd := rawCase(n.src,
		"nodes_info", store.NodesFile,
		"nodes_stats", store.NodesStatsFile,
		"nodes_usage", store.NodesUsageFile,
	)
	return w.section(n.Name(), cd), nil
}

// nodeAlert is one resource alert line of a node.
type nodeAlert struct {
	node     string
	severity model.Severity
	text     string
}

func alertIcon(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityWarning:
		return "🟡"
	default:
		return "🟢"
	}
}

// nodeAlerts evaluates the CPU, heap and disk thresholds of every node and
// records a finding per alert.
func nodeAlerts(w *writer, records []model.NodeRecord) []nodeAlert {
	var alerts []nodeAlert
	push := func(rec model.NodeRecord, sev model.Severity, title, key string, value float64) {
		text := w.cat.F(key+"."+sev.String(), value)
		alerts = append(alerts, nodeAlert{node: rec.Name, severity: sev, text: text})
		w.add(model.Finding{
			Topic:    model.TopicNode,
			Severity: sev,
			Title:    title,
			Evidence: fmt.Sprintf("%s: %.1f%%", rec.Name, value),
			Action:   w.cat.T(key + "_action"),
		})
	}
	for _, rec := range records {
		if sev, ok := cpuSeverity(rec.CPUPercent); rec.HasCPU && ok {
			push(rec, sev, "High CPU usage", "alert.cpu", rec.CPUPercent)
		}
		if sev, ok := heapSeverity(rec.HeapPercent); rec.HasHeap && ok {
			push(rec, sev, "High JVM heap usage", "alert.heap", rec.HeapPercent)
		}
		if sev, ok := diskSeverity(rec.DiskPercent); rec.HasDisk && ok {
			push(rec, sev, "High disk usage", "alert.disk", rec.DiskPercent)
		}
	}
	return alerts
}

func (n *Nodes) overview(w *writer, records []model.NodeRecord, alerts []nodeAlert) {
	w.h3("nodes.overview")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.ip"), w.cat.T("col.roles"), w.cat.T("col.version"),
		w.cat.T("col.uptime"), w.cat.T("col.cpu"), w.cat.T("col.heap"), w.cat.T("col.disk"), w.cat.T("col.status"))
	if len(records) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA, format.NA, format.NA, format.NA, "⚠️ "+w.cat.T("no_data"))
		w.blank()
		return
	}
	worst := map[string]model.Severity{}
	for _, a := range alerts {
		if a.severity > worst[a.node] {
			worst[a.node] = a.severity
		}
	}
	for _, rec := range records {
		uptime, cpu, heap, disk := format.NA, format.NA, format.NA, format.NA
		if rec.HasUptime {
			uptime = w.cat.F("unit.days", rec.UptimeDays)
		}
		if rec.HasCPU {
			cpu = format.FormatPercent(rec.CPUPercent)
		}
		if rec.HasHeap {
			heap = format.FormatPercent(rec.HeapPercent)
		}
		if rec.HasDisk {
			disk = format.FormatPercent(rec.DiskPercent)
		}
		w.row(rec.Name, rec.IP, strings.Join(rec.Roles, ", "), rec.Version, uptime, cpu, heap, disk, alertIcon(worst[rec.Name]))
	}
	w.blank()
}

func (n *Nodes) hardware(w *writer, ordered []namedStats) {
	w.h3("nodes.hardware")
	w.h4("nodes.cpu")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.cpu_cores"), w.cat.T("col.available_cores"), w.cat.T("col.cpu"), w.cat.T("col.load"))
	if len(ordered) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA)
	}
	for _, s := range ordered {
		cores, avail, cpu, load := format.NA, format.NA, format.NA, format.NA
		if s.OS != nil {
			if v, ok := s.OS.AllocatedProcessors.Get(); ok {
				cores = fmt.Sprint(v)
			}
			if v, ok := s.OS.AvailableProcessors.Get(); ok {
				avail = fmt.Sprint(v)
			}
			if s.OS.CPU != nil {
				cpu = format.FormatPercent(s.OS.CPU.Percent.Or(0))
				if la := s.OS.CPU.LoadAverage; la != nil {
					load = fmt.Sprintf("%.2f/%.2f/%.2f", la.One, la.Five, la.Fifteen)
				}
			}
		}
		w.row(s.Name.Or(format.NA), cores, avail, cpu, load)
	}
	w.blank()

	w.h4("nodes.memory")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.system_mem"), w.cat.T("col.heap_max"), w.cat.T("col.heap_used"), w.cat.T("col.heap"))
	for _, s := range ordered {
		sysMem, heapMax, heapUsed, heap := format.NA, format.NA, format.NA, format.NA
		if s.OS != nil && s.OS.Mem != nil {
			sysMem = s.OS.Mem.Total.Or(format.NA)
		}
		if s.JVM != nil && s.JVM.Mem != nil {
			heapMax = s.JVM.Mem.HeapMax.Or(format.NA)
			heapUsed = s.JVM.Mem.HeapUsed.Or(format.NA)
		}
		if p, ok := heapRatio(s.JVM); ok {
			heap = format.FormatPercent(p)
		}
		w.row(s.Name.Or(format.NA), sysMem, heapMax, heapUsed, heap)
	}
	w.blank()
}

func (n *Nodes) jvm(w *writer, info *store.NodesInfo, ordered []namedStats) {
	w.h3("nodes.jvm")
	w.h4("nodes.jvm_config")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.java_version"), w.cat.T("col.jvm_version"), w.cat.T("col.gc"), w.cat.T("col.heap_config"))
	infos := infoByName(info)
	if len(infos) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA)
	}
	for _, ni := range infos {
		java, vm, gc, heap := format.NA, format.NA, format.NA, format.NA
		if j := ni.JVM; j != nil {
			java = j.Version.Or(format.NA)
			vm = strings.TrimSpace(j.VMName.Or(format.NA) + " " + j.VMVersion.Or(""))
			if len(j.GCCollectors) > 0 {
				gc = strings.Join(j.GCCollectors, ", ")
			}
			if j.Mem != nil {
				heap = w.cat.F("jvm.heap_config", j.Mem.HeapInit.Or(format.NA), j.Mem.HeapMax.Or(format.NA))
			}
		}
		w.row(ni.Name.Or(ni.id), java, vm, gc, heap)
	}
	w.blank()

	w.h4("nodes.gc")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.young_gc"), w.cat.T("col.old_gc"), w.cat.T("col.gc_overhead"))
	for _, s := range ordered {
		young, old, overhead := format.NA, format.NA, format.NA
		if s.JVM != nil && s.JVM.GC != nil {
			var totalMillis int64
			for _, name := range sortedKeys(s.JVM.GC.Collectors) {
				c := s.JVM.GC.Collectors[name]
				totalMillis += c.CollectionTimeInMillis
				entry := w.cat.F("gc.count_time", c.CollectionCount, c.CollectionTimeInMillis)
				lower := strings.ToLower(name)
				switch {
				case strings.Contains(lower, "young") || strings.Contains(lower, "eden"):
					young = entry
				case strings.Contains(lower, "old"):
					old = entry
				}
			}
			if up, ok := s.JVM.UptimeInMillis.Get(); ok && up > 0 {
				overhead = format.FormatPercent(safeDivide(float64(totalMillis), float64(up)) * 100)
			}
		}
		w.row(s.Name.Or(format.NA), young, old, overhead)
	}
	w.blank()
}

// namedInfo pairs a nodes.json entry with its node id.
type namedInfo struct {
	id string
	store.NodeInfo
}

func infoByName(info *store.NodesInfo) []namedInfo {
	if info == nil {
		return nil
	}
	out := make([]namedInfo, 0, len(info.Nodes))
	for id, n := range info.Nodes {
		out = append(out, namedInfo{id: id, NodeInfo: n})
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].Name.Or(out[i].id), out[j].Name.Or(out[j].id)
		if ni != nj {
			return ni < nj
		}
		return out[i].id < out[j].id
	})
	return out
}

func (n *Nodes) roles(w *writer, info *store.NodesInfo) {
	w.h3("nodes.roles")
	w.h4("nodes.roles_detail")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.primary_role"), w.cat.T("col.roles"), w.cat.T("col.attributes"))
	infos := infoByName(info)
	if len(infos) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA)
	}
	for _, ni := range infos {
		rec := model.NodeRecord{Roles: ni.Roles}
		all := format.NA
		if len(ni.Roles) > 0 {
			all = strings.Join(ni.Roles, ", ")
		}
		attrs := w.cat.T("none")
		if len(ni.Attributes) > 0 {
			pairs := make([]string, 0, len(ni.Attributes))
			for _, k := range sortedKeys(ni.Attributes) {
				pairs = append(pairs, k+":"+ni.Attributes[k])
			}
			attrs = strings.Join(pairs, ", ")
		}
		w.row(ni.Name.Or(ni.id), rec.PrimaryRole(), all, attrs)
	}
	w.blank()
}

func (n *Nodes) performance(w *writer, ordered []namedStats) {
	w.h3("nodes.performance")
	w.h4("nodes.indexing")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.index_ops"), w.cat.T("col.delete_ops"), w.cat.T("col.query_ops"), w.cat.T("col.avg_query"))
	if len(ordered) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA)
	}
	for _, s := range ordered {
		indexed, deleted, queries, avg := format.NA, format.NA, format.NA, format.NA
		if s.Indices != nil {
			if ix := s.Indices.Indexing; ix != nil {
				indexed = optNumber(ix.IndexTotal)
				deleted = optNumber(ix.DeleteTotal)
			}
			if sr := s.Indices.Search; sr != nil {
				queries = optNumber(sr.QueryTotal)
				if total := sr.QueryTotal.Or(0); total > 0 {
					avg = format.FormatLatency(float64(sr.QueryTimeInMillis) / float64(total))
				}
			}
		}
		w.row(s.Name.Or(format.NA), indexed, deleted, queries, avg)
	}
	w.blank()
}

func (n *Nodes) storage(w *writer, ordered []namedStats) {
	w.h3("nodes.storage")
	w.h4("nodes.storage_usage")
	w.table(w.cat.T("col.node_name"), w.cat.T("col.total_space"), w.cat.T("col.used_space"), w.cat.T("col.free_space"),
		w.cat.T("col.usage"), w.cat.T("col.shard_count"))
	if len(ordered) == 0 {
		w.row(format.NA, format.NA, format.NA, format.NA, format.NA, format.NA)
	}
	for _, s := range ordered {
		total, used, free, usage, shards := format.NA, format.NA, format.NA, format.NA, format.NA
		if s.FS != nil && s.FS.Total != nil && s.FS.Total.TotalInBytes > 0 {
			t := s.FS.Total
			total = format.FormatBytes(t.TotalInBytes)
			used = format.FormatBytes(t.TotalInBytes - t.FreeInBytes)
			free = format.FormatBytes(t.FreeInBytes)
			if p, ok := diskRatio(s.FS); ok {
				usage = format.FormatPercent(p)
			}
		}
		if s.Indices != nil && s.Indices.Shards != nil {
			shards = fmt.Sprint(len(s.Indices.Shards))
		}
		w.row(s.Name.Or(format.NA), total, used, free, usage, shards)
	}
	w.blank()
}

func (n *Nodes) alertSection(w *writer, alerts []nodeAlert, info *store.NodesInfo) {
	w.h3("nodes.alerts")
	w.h4("nodes.alert_check")
	var lines []string
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("%s **%s**: %s", alertIcon(a.severity), a.node, a.text))
	}
	if info != nil {
		if versions := distinctVersions(info); len(versions) > 1 {
			joined := strings.Join(versions, ", ")
			lines = append(lines, "🟡 "+w.cat.F("alert.mixed_versions", joined))
			w.add(model.Finding{
				Topic:    model.TopicNode,
				Severity: model.SeverityWarning,
				Title:    "Mixed Elasticsearch versions",
				Evidence: joined,
				Action:   "Upgrade every node to the same version",
			})
		}
	}
	if len(lines) == 0 {
		w.para("nodes.no_alerts")
	} else {
		w.linef("**%s**:", w.cat.T("nodes.current_alerts"))
		for _, l := range lines {
			w.bullet("%s", l)
		}
		w.blank()
	}
	w.h4("nodes.advice")
	w.para("nodes.advice_body")
}

func optNumber(o store.Opt[int64]) string {
	if v, ok := o.Get(); ok {
		return format.FormatNumber(v)
	}
	return format.NA
}
