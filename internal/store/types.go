package store

import "encoding/json"

// ClusterHealth is cluster_health.json (GET /_cluster/health).
type ClusterHealth struct {
	ClusterName                 Opt[string]  `json:"cluster_name"`
	Status                      Opt[string]  `json:"status"`
	TimedOut                    bool         `json:"timed_out"`
	NumberOfNodes               Opt[int64]   `json:"number_of_nodes"`
	NumberOfDataNodes           Opt[int64]   `json:"number_of_data_nodes"`
	ActivePrimaryShards         Opt[int64]   `json:"active_primary_shards"`
	ActiveShards                Opt[int64]   `json:"active_shards"`
	RelocatingShards            Opt[int64]   `json:"relocating_shards"`
	InitializingShards          Opt[int64]   `json:"initializing_shards"`
	UnassignedShards            Opt[int64]   `json:"unassigned_shards"`
	DelayedUnassignedShards     Opt[int64]   `json:"delayed_unassigned_shards"`
	NumberOfPendingTasks        Opt[int64]   `json:"number_of_pending_tasks"`
	TaskMaxWaitingInQueueMillis Opt[int64]   `json:"task_max_waiting_in_queue_millis"`
	ActiveShardsPercent         Opt[float64] `json:"active_shards_percent_as_number"`
}

// NodesHeader is the "_nodes" summary attached to multi-node responses.
type NodesHeader struct {
	Total      Opt[int64] `json:"total"`
	Successful Opt[int64] `json:"successful"`
	Failed     int64      `json:"failed"`
}

// ClusterStats is cluster_stats.json (GET /_cluster/stats).
type ClusterStats struct {
	ClusterUUID Opt[string]          `json:"cluster_uuid"`
	ClusterName Opt[string]          `json:"cluster_name"`
	Status      Opt[string]          `json:"status"`
	Timestamp   Opt[int64]           `json:"timestamp"`
	NodesHeader *NodesHeader         `json:"_nodes,omitempty"`
	Indices     *ClusterStatsIndices `json:"indices,omitempty"`
	Nodes       *ClusterStatsNodes   `json:"nodes,omitempty"`
}

// ClusterStatsIndices is the "indices" block of cluster stats.
type ClusterStatsIndices struct {
	Count  Opt[int64] `json:"count"`
	Shards struct {
		Total       Opt[int64]   `json:"total"`
		Primaries   Opt[int64]   `json:"primaries"`
		Replication Opt[float64] `json:"replication"`
		Index       *struct {
			Shards    MinMaxAvg `json:"shards"`
			Primaries MinMaxAvg `json:"primaries"`
		} `json:"index,omitempty"`
	} `json:"shards"`
	Docs struct {
		Count   Opt[int64] `json:"count"`
		Deleted int64      `json:"deleted"`
	} `json:"docs"`
	Store struct {
		Size        Opt[string] `json:"size"`
		SizeInBytes Opt[int64]  `json:"size_in_bytes"`
	} `json:"store"`
	QueryCache *QueryCacheStats `json:"query_cache,omitempty"`
	Segments   struct {
		Count         int64 `json:"count"`
		MemoryInBytes int64 `json:"memory_in_bytes"`
	} `json:"segments"`
}

// MinMaxAvg is a min/max/avg triple from cluster stats.
type MinMaxAvg struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// QueryCacheStats is the query cache block shared by cluster and node stats.
type QueryCacheStats struct {
	MemorySize        Opt[string] `json:"memory_size"`
	MemorySizeInBytes int64       `json:"memory_size_in_bytes"`
	TotalCount        int64       `json:"total_count"`
	HitCount          int64       `json:"hit_count"`
	MissCount         int64       `json:"miss_count"`
	Evictions         int64       `json:"evictions"`
}

// ClusterStatsNodes is the "nodes" block of cluster stats.
type ClusterStatsNodes struct {
	Count    map[string]int64 `json:"count"`
	Versions []string         `json:"versions"`
}

// ClusterSettings is cluster_settings.json. Each scope may be written flat
// ("cluster.routing.rebalance.enable") or nested, depending on flat_settings.
type ClusterSettings struct {
	Persistent Settings `json:"persistent"`
	Transient  Settings `json:"transient"`
	Defaults   Settings `json:"defaults"`
}

// NodesInfo is nodes.json (GET /_nodes).
type NodesInfo struct {
	NodesHeader *NodesHeader        `json:"_nodes,omitempty"`
	ClusterName Opt[string]         `json:"cluster_name"`
	Nodes       map[string]NodeInfo `json:"nodes"`
}

// NodeInfo is one node of nodes.json.
type NodeInfo struct {
	Name             Opt[string]       `json:"name"`
	TransportAddress Opt[string]       `json:"transport_address"`
	Host             Opt[string]       `json:"host"`
	IP               Opt[string]       `json:"ip"`
	Version          Opt[string]       `json:"version"`
	Roles            []string          `json:"roles"`
	Attributes       map[string]string `json:"attributes"`
	Settings         Settings          `json:"settings"`
	OS               *struct {
		Name                Opt[string] `json:"name"`
		AvailableProcessors Opt[int64]  `json:"available_processors"`
		AllocatedProcessors Opt[int64]  `json:"allocated_processors"`
	} `json:"os,omitempty"`
	JVM *struct {
		Version      Opt[string] `json:"version"`
		VMName       Opt[string] `json:"vm_name"`
		VMVersion    Opt[string] `json:"vm_version"`
		GCCollectors []string    `json:"gc_collectors"`
		Mem          *struct {
			HeapInit        Opt[string] `json:"heap_init"`
			HeapInitInBytes Opt[int64]  `json:"heap_init_in_bytes"`
			HeapMax         Opt[string] `json:"heap_max"`
			HeapMaxInBytes  Opt[int64]  `json:"heap_max_in_bytes"`
		} `json:"mem,omitempty"`
	} `json:"jvm,omitempty"`
}

// NodesStats is nodes_stats.json (GET /_nodes/stats).
type NodesStats struct {
	NodesHeader *NodesHeader         `json:"_nodes,omitempty"`
	Nodes       map[string]NodeStats `json:"nodes"`
}

// NodeStats is one node of nodes_stats.json. Sub-sections are nil when the
// collector did not include them.
type NodeStats struct {
	Timestamp Opt[int64]        `json:"timestamp"`
	Name      Opt[string]       `json:"name"`
	Host      Opt[string]       `json:"host"`
	IP        Opt[string]       `json:"ip"`
	Roles     []string          `json:"roles"`
	Indices   *NodeIndicesStats `json:"indices,omitempty"`
	OS        *NodeOSStats      `json:"os,omitempty"`
	JVM       *NodeJVMStats     `json:"jvm,omitempty"`
	FS        *NodeFSStats      `json:"fs,omitempty"`
}

// NodeIndicesStats holds per-node indexing and search counters.
type NodeIndicesStats struct {
	Indexing *struct {
		IndexTotal        Opt[int64] `json:"index_total"`
		IndexTimeInMillis int64      `json:"index_time_in_millis"`
		DeleteTotal       Opt[int64] `json:"delete_total"`
	} `json:"indexing,omitempty"`
	Search *struct {
		QueryTotal        Opt[int64] `json:"query_total"`
		QueryTimeInMillis int64      `json:"query_time_in_millis"`
		FetchTimeInMillis int64      `json:"fetch_time_in_millis"`
	} `json:"search,omitempty"`
	Shards map[string]json.RawMessage `json:"shards,omitempty"`
}

// NodeOSStats holds OS-level metrics of one node.
type NodeOSStats struct {
	AvailableProcessors Opt[int64] `json:"available_processors"`
	AllocatedProcessors Opt[int64] `json:"allocated_processors"`
	CPU                 *struct {
		Percent     Opt[float64] `json:"percent"`
		LoadAverage *struct {
			One     float64 `json:"1m"`
			Five    float64 `json:"5m"`
			Fifteen float64 `json:"15m"`
		} `json:"load_average,omitempty"`
	} `json:"cpu,omitempty"`
	Mem *struct {
		Total        Opt[string] `json:"total"`
		TotalInBytes Opt[int64]  `json:"total_in_bytes"`
	} `json:"mem,omitempty"`
}

// NodeJVMStats holds JVM metrics of one node.
type NodeJVMStats struct {
	StartTimeInMillis Opt[int64] `json:"start_time_in_millis"`
	UptimeInMillis    Opt[int64] `json:"uptime_in_millis"`
	Mem               *struct {
		HeapUsed        Opt[string]  `json:"heap_used"`
		HeapUsedInBytes int64        `json:"heap_used_in_bytes"`
		HeapUsedPercent Opt[float64] `json:"heap_used_percent"`
		HeapMax         Opt[string]  `json:"heap_max"`
		HeapMaxInBytes  int64        `json:"heap_max_in_bytes"`
	} `json:"mem,omitempty"`
	GC *struct {
		Collectors map[string]struct {
			CollectionCount        int64 `json:"collection_count"`
			CollectionTimeInMillis int64 `json:"collection_time_in_millis"`
		} `json:"collectors"`
	} `json:"gc,omitempty"`
}

// NodeFSStats holds filesystem totals of one node.
type NodeFSStats struct {
	Total *struct {
		TotalInBytes     int64 `json:"total_in_bytes"`
		FreeInBytes      int64 `json:"free_in_bytes"`
		AvailableInBytes int64 `json:"available_in_bytes"`
	} `json:"total,omitempty"`
}

// ShardRow is one entry of indices.json, the flat _cat/shards listing.
type ShardRow struct {
	Index  Opt[string] `json:"index"`
	Shard  Opt[string] `json:"shard"`
	PriRep Opt[string] `json:"prirep"`
	State  Opt[string] `json:"state"`
	Docs   CatInt      `json:"docs"`
	Store  CatInt      `json:"store"`
	IP     Opt[string] `json:"ip"`
	Node   Opt[string] `json:"node"`
}

// IndicesStats is indices_stats.json (GET /_stats).
type IndicesStats struct {
	Indices map[string]IndexStats `json:"indices"`
}

// IndexStats holds the primaries and total blocks of one index.
type IndexStats struct {
	Primaries IndexStatsBlock `json:"primaries"`
	Total     IndexStatsBlock `json:"total"`
}

// IndexStatsBlock is the docs/store part of an index stats block.
type IndexStatsBlock struct {
	Docs struct {
		Count Opt[int64] `json:"count"`
	} `json:"docs"`
	Store struct {
		SizeInBytes Opt[int64] `json:"size_in_bytes"`
	} `json:"store"`
}

// IndexSettings is settings.json (GET /_settings), keyed by index name.
type IndexSettings map[string]struct {
	Settings Settings `json:"settings"`
}

// Licenses is licenses.json (GET /_license).
type Licenses struct {
	License *struct {
		Status     Opt[string] `json:"status"`
		UID        Opt[string] `json:"uid"`
		Type       Opt[string] `json:"type"`
		IssueDate  Opt[string] `json:"issue_date"`
		ExpiryDate Opt[string] `json:"expiry_date"`
		MaxNodes   Opt[int64]  `json:"max_nodes"`
		IssuedTo   Opt[string] `json:"issued_to"`
		Issuer     Opt[string] `json:"issuer"`
	} `json:"license,omitempty"`
}

// Manifest is manifest.json written by the diagnostics tool.
type Manifest struct {
	CollectionDate Opt[string] `json:"collectionDate"`
	ProductVersion FlexString  `json:"Product Version"`
	DiagVersion    FlexString  `json:"diagVersion"`
}

// MasterRow is one entry of master.json (_cat/master).
type MasterRow struct {
	ID   Opt[string] `json:"id"`
	Host Opt[string] `json:"host"`
	IP   Opt[string] `json:"ip"`
	Node Opt[string] `json:"node"`
}
