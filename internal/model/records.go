package model

import (
	"encoding/json"
	"strings"
)

// NodeRecord is the per-node view joined from nodes.json and nodes_stats.json.
// Has* flags tell a measured zero apart from missing data.
type NodeRecord struct {
	ID      string
	Name    string
	IP      string
	Version string
	Roles   []string

	CPUPercent  float64
	HasCPU      bool
	HeapPercent float64
	HasHeap     bool
	DiskPercent float64
	HasDisk     bool
	UptimeDays  int64
	HasUptime   bool
}

// HasRole reports whether the node carries role.
func (n NodeRecord) HasRole(role string) bool {
	for _, r := range n.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// PrimaryRole picks the most significant role: master, data, ingest, or
// coordinating when none of those is present.
func (n NodeRecord) PrimaryRole() string {
	for _, r := range []string{"master", "data", "ingest"} {
		if n.HasRole(r) {
			return r
		}
	}
	return "coordinating"
}

// ShardRecord is one row of the flat shard listing.
type ShardRecord struct {
	Index      string
	Shard      string
	Primary    bool
	State      string
	Node       string
	Docs       int64
	HasDocs    bool
	StoreBytes int64
	HasStore   bool
}

// IndexRecord aggregates the shard records of one index. Docs and sizes count
// primaries only.
type IndexRecord struct {
	Name                 string
	PrimaryShards        int
	ReplicaShards        int
	Docs                 int64
	StoreBytes           int64
	MaxPrimaryShardBytes int64
	States               map[string]int
	LastState            string
}

// System reports whether the index is a dot-prefixed system index.
func (r IndexRecord) System() bool {
	return strings.HasPrefix(r.Name, ".")
}

// Health derives the index color from its shard states: green when every
// shard is STARTED, yellow when any shard is UNASSIGNED or INITIALIZING,
// red otherwise.
func (r IndexRecord) Health() string {
	allStarted := true
	for state := range r.States {
		if state != "STARTED" {
			allStarted = false
			break
		}
	}
	switch {
	case allStarted:
		return "green"
	case r.States["UNASSIGNED"] > 0 || r.States["INITIALIZING"] > 0:
		return "yellow"
	default:
		return "red"
	}
}

// Section is the output of one analyzer: its Markdown body, the findings it
// derived, and the raw artifacts it read keyed by artifact name.
type Section struct {
	Name     string
	Content  string
	Findings []Finding
	Case     map[string]json.RawMessage

	// Log line counters; only the log analyzer sets them.
	ParsedLines    int64
	DroppedLines   int64 // unparseable lines, oversized ones included
	OversizedLines int64
}
