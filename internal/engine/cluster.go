package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const (
	rebalanceKey  = "cluster.routing.rebalance.enable"
	allocationKey = "cluster.routing.allocation.enable"

	maxRoleNodesListed = 5
)

// Cluster renders identity, master, topology, settings, storage and shard
// allocation strategy.
type Cluster struct {
	src  Source
	opts Options
}

func NewCluster(src Source, opts Options) *Cluster {
	return &Cluster{src: src, opts: opts}
}

func (c *Cluster) Name() string { return NameClusterBasicInfo }

func (c *Cluster) Generate() (model.Section, error) {
	w := newWriter(c.opts)
	stats, hasStats := c.src.ClusterStats()
	health, hasHealth := c.src.ClusterHealth()
	master, _ := c.src.Master()
	nodes, hasNodes := c.src.Nodes()
	settings, hasSettings := c.src.ClusterSettings()

	if !hasStats && !hasHealth {
		w.unavailable(model.TopicCluster, store.ClusterStatsFile)
	}
	identity(w, stats, health)
	masterInfo(w, master, nodes)
	topology(w, stats, nodes)
	settingsOverview(w, settings, nodes)
	statusStatistics(w, stats, health)
	storageArchitecture(w, stats)
	shardStrategy(w, settings, hasSettings, stats)
	if !hasNodes {
		w.unavailable(model.TopicCluster, store.NodesFile)
	}

	cd := rawCase(c.src,
		"cluster_stats", store.ClusterStatsFile,
		"cluster_health", store.ClusterHealthFile,
		"master_info", store.MasterFile,
		"nodes_info", store.NodesFile,
		"cluster_settings", store.ClusterSettingsFile,
	)
	return w.section(c.Name(), cd), nil
}

func identity(w *writer, stats *store.ClusterStats, health *store.ClusterHealth) {
	uuid, name, status := format.NA, format.NA, format.NA
	switch {
	case stats != nil:
		uuid = stats.ClusterUUID.Or(format.NA)
		name = stats.ClusterName.Or(format.NA)
		status = stats.Status.Or(format.NA)
	case health != nil:
		name = health.ClusterName.Or(format.NA)
		status = health.Status.Or(format.NA)
	}
	w.h3("cluster.identity")
	w.table(w.cat.T("col.item"), w.cat.T("col.value"))
	w.kv(w.cat.T("cluster.uuid"), code(uuid))
	w.kv(w.cat.T("cluster.name"), code(name))
	w.kv(w.cat.T("cluster.status"), code(strings.ToUpper(status)))
	w.kv(w.cat.T("cluster.description"), w.cat.T("cluster.production"))
	w.blank()
}

func masterInfo(w *writer, rows []store.MasterRow, nodes *store.NodesInfo) {
	w.h3("cluster.master")
	if len(rows) == 0 {
		w.para("cluster.master_missing")
		w.add(model.Finding{
			Topic:    model.TopicCluster,
			Severity: model.SeverityWarning,
			Title:    "Master node unknown",
			Evidence: store.MasterFile + " has no entries",
		})
		return
	}
	m := rows[0]
	id := m.ID.Or(format.NA)
	name := m.Node.Or(format.NA)
	roles, ver := format.NA, format.NA
	if nodes != nil {
		for _, nid := range sortedKeys(nodes.Nodes) {
			n := nodes.Nodes[nid]
			if nid == id || n.Name.Or("") == name {
				roles = strings.Join(n.Roles, ", ")
				ver = n.Version.Or(format.NA)
				break
			}
		}
	}
	w.table(w.cat.T("col.item"), w.cat.T("col.value"))
	w.kv(w.cat.T("master.current"), code(name))
	w.kv(w.cat.T("master.id"), code(id))
	w.kv(w.cat.T("master.address"), code(m.Host.Or(format.NA)+":"+m.IP.Or(format.NA)))
	w.kv(w.cat.T("master.roles"), code(roles))
	w.kv(w.cat.T("master.version"), code(ver))
	w.kv(w.cat.T("master.state"), w.cat.T("master.active"))
	w.blank()
}

func topology(w *writer, stats *store.ClusterStats, nodes *store.NodesInfo) {
	w.h3("cluster.topology")
	total, responding := format.NA, format.NA
	if stats != nil && stats.NodesHeader != nil {
		if v, ok := stats.NodesHeader.Total.Get(); ok {
			total = fmt.Sprint(v)
		}
		if v, ok := stats.NodesHeader.Successful.Get(); ok {
			responding = fmt.Sprint(v)
		}
	}
	w.h4("topology.overview")
	w.table(w.cat.T("col.item"), w.cat.T("col.count"))
	w.kv(w.cat.T("topology.total"), total)
	w.kv(w.cat.T("topology.responding"), responding)
	w.blank()
	if nodes == nil {
		return
	}

	members := map[string][]string{}
	segments := map[string]int{}
	for _, id := range sortedKeys(nodes.Nodes) {
		n := nodes.Nodes[id]
		name := n.Name.Or(id)
		for _, r := range n.Roles {
			members[r] = append(members[r], name)
		}
		if parts := strings.Split(n.IP.Or(""), "."); len(parts) >= 3 {
			segments[strings.Join(parts[:3], ".")+".x"]++
		}
	}

	w.h4("topology.roles")
	w.table(w.cat.T("col.role_type"), w.cat.T("col.count"), w.cat.T("col.node_list"))
	for _, role := range sortedKeys(members) {
		names := members[role]
		sort.Strings(names)
		list := strings.Join(names[:min(len(names), maxRoleNodesListed)], ", ")
		if len(names) > maxRoleNodesListed {
			list += w.cat.F("topology.more_nodes", len(names))
		}
		w.row("**"+role+"**", fmt.Sprint(len(names)), list)
	}
	w.blank()

	w.h4("topology.network")
	w.bullet("**%s**:", w.cat.T("topology.segments"))
	for _, seg := range sortedKeys(segments) {
		w.linef("  - `%s`: %s", seg, w.cat.F("topology.segment_nodes", segments[seg]))
	}
	w.blank()
}

func settingsOverview(w *writer, settings *store.ClusterSettings, nodes *store.NodesInfo) {
	w.h3("cluster.settings")
	w.h4("settings.key_params")
	if nodes != nil && len(nodes.Nodes) > 0 {
		first := nodes.Nodes[sortedKeys(nodes.Nodes)[0]].Settings
		get := func(key string) string {
			if v, ok := first.Lookup(key); ok && v != "" {
				return v
			}
			return format.NA
		}
		discovery := format.NA
		if first.Has("discovery") {
			discovery = "zen"
		}
		w.table(w.cat.T("col.config_item"), w.cat.T("col.value"))
		for _, key := range []string{"cluster.name", "network.host", "http.port", "transport.port"} {
			w.kv(key, code(get(key)))
		}
		w.kv(w.cat.T("settings.discovery"), code(discovery))
		w.blank()
	}
	if settings == nil {
		return
	}
	w.h4("settings.dynamic")
	persistent := settings.Persistent.Flat()
	transient := settings.Transient.Flat()
	for _, scope := range []struct {
		key  string
		flat []store.Setting
	}{{"settings.persistent", persistent}, {"settings.transient", transient}} {
		if len(scope.flat) == 0 {
			continue
		}
		w.linef("**%s**:", w.cat.T(scope.key))
		for _, kv := range scope.flat {
			w.bullet("`%s`: `%s`", kv.Key, kv.Value)
		}
		w.blank()
	}
	if len(persistent) == 0 && len(transient) == 0 {
		w.bullet("%s", w.cat.T("settings.none"))
		w.blank()
	}
}

func statusStatistics(w *writer, stats *store.ClusterStats, health *store.ClusterHealth) {
	w.h3("cluster.status_stats")
	pending, waiting := format.NA, format.NA
	if health != nil {
		if v, ok := health.NumberOfPendingTasks.Get(); ok {
			pending = fmt.Sprint(v)
		}
		if v, ok := health.TaskMaxWaitingInQueueMillis.Get(); ok {
			waiting = fmt.Sprintf("%d ms", v)
		}
	}
	collected := format.NA
	if stats != nil {
		collected = format.FormatMillis(stats.Timestamp.Or(0))
	}
	w.table(w.cat.T("col.item"), w.cat.T("col.value"))
	w.kv(w.cat.T("status.collected"), collected)
	w.kv(w.cat.T("status.pending"), pending)
	w.kv(w.cat.T("status.max_wait"), waiting)
	w.blank()
}

func storageArchitecture(w *writer, stats *store.ClusterStats) {
	w.h3("cluster.storage")
	if stats == nil || stats.Indices == nil {
		return
	}
	bytes := stats.Indices.Store.SizeInBytes.Or(0)
	total := stats.Indices.Store.Size.Or(format.FormatBytes(bytes))
	nodes := int64(1)
	if stats.NodesHeader != nil {
		nodes = stats.NodesHeader.Total.Or(1)
	}
	avg := format.NA
	if bytes > 0 && nodes > 0 {
		avg = format.FormatBytes(bytes / nodes)
	}
	w.table(w.cat.T("col.item"), w.cat.T("col.value"))
	w.kv(w.cat.T("storage.total"), total)
	w.kv(w.cat.T("storage.bytes"), format.FormatNumber(bytes)+" bytes")
	w.kv(w.cat.T("storage.avg_node"), avg)
	w.blank()
}

// rebalanceSetting returns the effective rebalance mode, "all" when unset.
func rebalanceSetting(settings *store.ClusterSettings) string {
	if v, ok := settings.Lookup(rebalanceKey); ok && v != "" {
		return strings.ToLower(v)
	}
	return "all"
}

func shardStrategy(w *writer, settings *store.ClusterSettings, hasSettings bool, stats *store.ClusterStats) {
	w.h3("cluster.shard_strategy")
	if stats != nil && stats.Indices != nil {
		sh := stats.Indices.Shards
		opt := func(o store.Opt[int64]) string {
			if v, ok := o.Get(); ok {
				return fmt.Sprint(v)
			}
			return format.NA
		}
		replication := format.NA
		if v, ok := sh.Replication.Get(); ok {
			replication = fmt.Sprintf("%.2f", v)
		}
		w.table(w.cat.T("col.item"), w.cat.T("col.value"))
		w.kv(w.cat.T("metric.shards"), opt(sh.Total))
		w.kv(w.cat.T("metric.primaries"), opt(sh.Primaries))
		w.kv(w.cat.T("shards.replication"), replication)
		w.blank()
	}

	w.h4("rebalance.heading")
	if !hasSettings {
		w.para("rebalance.no_settings")
		return
	}
	mode := rebalanceSetting(settings)
	w.bullet("**%s**: `%s`", w.cat.T("rebalance.strategy"), mode)
	switch mode {
	case "none":
		w.para("rebalance.none")
		w.add(model.Finding{
			Topic:    model.TopicCluster,
			Severity: model.SeverityWarning,
			Title:    "Shard rebalancing disabled",
			Evidence: rebalanceKey + " = none",
			Action:   "Restore the setting to all once maintenance is finished",
		})
	case "primaries":
		w.para("rebalance.primaries")
	case "replicas":
		w.para("rebalance.replicas")
	default:
		w.para("rebalance.all")
	}
}

func code(s string) string {
	return "`" + s + "`"
}
