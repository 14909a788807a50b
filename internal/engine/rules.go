package engine

import (
	"sort"
	"strings"

	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const (
	oneMiB = int64(1 << 20)
	oneGiB = int64(1 << 30)

	oversizedShardBytes  = 50 * oneGiB
	undersizedShardBytes = 10 * oneGiB
	undersizedMinDocs    = 1000
	highDocCount         = 200_000_000
	shardsPerDataNode    = 2
)

// Node resource thresholds, in percent. The assessment module uses its own
// heap pair.
const (
	nodeHeapWarn     = 80.0
	nodeCPUCritical  = 80.0
	nodeCPUWarn      = 60.0
	nodeDiskCritical = 90.0
	nodeDiskWarn     = 80.0

	assessHeapCritical = 85.0
	assessHeapWarn     = 70.0
)

// Log accumulation thresholds.
const (
	logFilesCritical   = 50
	logFilesWarn       = 20
	logBytesCritical   = oneGiB
	logBytesWarn       = 500 * oneMiB
	activeLogLarge     = 100 * oneMiB
	activeLogNoticable = 50 * oneMiB
)

// safeDivide returns a/b, or 0 when b is zero.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// percent returns part/whole*100 and false when whole is not positive.
func percent(part, whole int64) (float64, bool) {
	if whole <= 0 {
		return 0, false
	}
	return float64(part) / float64(whole) * 100, true
}

// ClusterVerdict derives the overall verdict from cluster health: good for
// green with no unassigned shards, degraded for yellow, critical for
// everything else including missing health.
func ClusterVerdict(h *store.ClusterHealth) model.Verdict {
	if h == nil {
		return model.VerdictCritical
	}
	status, _ := h.Status.Get()
	switch {
	case strings.EqualFold(status, "green") && h.UnassignedShards.Or(0) == 0:
		return model.VerdictGood
	case strings.EqualFold(status, "yellow"):
		return model.VerdictDegraded
	default:
		return model.VerdictCritical
	}
}

// cpuSeverity rates a node's CPU percentage. The second result is false
// below the warning threshold.
func cpuSeverity(p float64) (model.Severity, bool) {
	switch {
	case p > nodeCPUCritical:
		return model.SeverityCritical, true
	case p > nodeCPUWarn:
		return model.SeverityWarning, true
	}
	return model.SeverityInfo, false
}

func diskSeverity(p float64) (model.Severity, bool) {
	switch {
	case p > nodeDiskCritical:
		return model.SeverityCritical, true
	case p > nodeDiskWarn:
		return model.SeverityWarning, true
	}
	return model.SeverityInfo, false
}

func heapSeverity(p float64) (model.Severity, bool) {
	if p > nodeHeapWarn {
		return model.SeverityWarning, true
	}
	return model.SeverityInfo, false
}

// heapPressure rates heap_used_percent for the assessment module.
func heapPressure(p float64) (model.Severity, bool) {
	switch {
	case p > assessHeapCritical:
		return model.SeverityCritical, true
	case p > assessHeapWarn:
		return model.SeverityWarning, true
	}
	return model.SeverityInfo, false
}

// isDataNode reports whether roles include the generic data role or one of
// the tiered data_* roles.
func isDataNode(roles []string) bool {
	for _, r := range roles {
		if r == "data" || strings.HasPrefix(r, "data_") {
			return true
		}
	}
	return false
}

type shardClass int

const (
	shardOK shardClass = iota
	shardOversized
	shardUndersized
)

// classifyIndex applies the shard sizing rule to an index's largest primary
// shard and its primary document count.
func classifyIndex(r model.IndexRecord) shardClass {
	switch {
	case r.MaxPrimaryShardBytes > oversizedShardBytes:
		return shardOversized
	case r.MaxPrimaryShardBytes < undersizedShardBytes && r.Docs > undersizedMinDocs:
		return shardUndersized
	}
	return shardOK
}

// shardRecords converts the flat shard listing into typed records.
func shardRecords(rows []store.ShardRow) []model.ShardRecord {
	out := make([]model.ShardRecord, 0, len(rows))
	for _, r := range rows {
		rec := model.ShardRecord{
			Index:   r.Index.Or("unknown"),
			Shard:   r.Shard.Or("N/A"),
			Primary: r.PriRep.Or("") == "p",
			State:   r.State.Or("UNKNOWN"),
			Node:    r.Node.Or(""),
		}
		rec.Docs, rec.HasDocs = r.Docs.Get()
		rec.StoreBytes, rec.HasStore = r.Store.Get()
		out = append(out, rec)
	}
	return out
}

// indexRecords aggregates shard records per index, sorted by index name.
// Document and size totals count primaries only.
func indexRecords(shards []model.ShardRecord) []model.IndexRecord {
	byName := map[string]*model.IndexRecord{}
	for _, s := range shards {
		rec, ok := byName[s.Index]
		if !ok {
			rec = &model.IndexRecord{Name: s.Index, States: map[string]int{}}
			byName[s.Index] = rec
		}
		rec.States[s.State]++
		rec.LastState = s.State
		if !s.Primary {
			rec.ReplicaShards++
			continue
		}
		rec.PrimaryShards++
		if s.HasDocs {
			rec.Docs += s.Docs
		}
		if s.HasStore {
			rec.StoreBytes += s.StoreBytes
			if s.StoreBytes > rec.MaxPrimaryShardBytes {
				rec.MaxPrimaryShardBytes = s.StoreBytes
			}
		}
	}
	out := make([]model.IndexRecord, 0, len(byName))
	for _, rec := range byName {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
