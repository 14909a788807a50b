package store

import "encoding/json"

// Artifact file names, relative to the bundle root.
const (
	ClusterHealthFile   = "cluster_health.json"
	ClusterStatsFile    = "cluster_stats.json"
	ClusterSettingsFile = "cluster_settings.json"
	NodesFile           = "nodes.json"
	NodesStatsFile      = "nodes_stats.json"
	NodesUsageFile      = "nodes_usage.json"
	ShardsFile          = "indices.json"
	IndicesStatsFile    = "indices_stats.json"
	IndexSettingsFile   = "settings.json"
	LicensesFile        = "licenses.json"
	ManifestFile        = "manifest.json"
	MasterFile          = "master.json"
	ILMPoliciesFile     = "commercial/ilm_policies.json"
)

// Artifacts lists every JSON document the getters read.
var Artifacts = []string{
	ClusterHealthFile, ClusterStatsFile, ClusterSettingsFile,
	NodesFile, NodesStatsFile, NodesUsageFile,
	ShardsFile, IndicesStatsFile, IndexSettingsFile,
	LicensesFile, ManifestFile, MasterFile, ILMPoliciesFile,
}

// MinCacheSize holds every artifact at once, so a run never evicts a decoded
// document and reads it again.
var MinCacheSize = len(Artifacts)

func (s *Store) ClusterHealth() (*ClusterHealth, bool) {
	return decode[ClusterHealth](s, ClusterHealthFile)
}

func (s *Store) ClusterStats() (*ClusterStats, bool) {
	return decode[ClusterStats](s, ClusterStatsFile)
}

func (s *Store) ClusterSettings() (*ClusterSettings, bool) {
	return decode[ClusterSettings](s, ClusterSettingsFile)
}

// Nodes returns nodes.json.
func (s *Store) Nodes() (*NodesInfo, bool) {
	return decode[NodesInfo](s, NodesFile)
}

func (s *Store) NodesStats() (*NodesStats, bool) {
	return decode[NodesStats](s, NodesStatsFile)
}

// Shards returns the flat shard listing of indices.json.
func (s *Store) Shards() ([]ShardRow, bool) {
	rows, ok := decode[[]ShardRow](s, ShardsFile)
	if !ok {
		return nil, false
	}
	return *rows, true
}

func (s *Store) IndicesStats() (*IndicesStats, bool) {
	return decode[IndicesStats](s, IndicesStatsFile)
}

// IndexSettings returns settings.json.
func (s *Store) IndexSettings() (IndexSettings, bool) {
	v, ok := decode[IndexSettings](s, IndexSettingsFile)
	if !ok {
		return nil, false
	}
	return *v, true
}

func (s *Store) Licenses() (*Licenses, bool) {
	return decode[Licenses](s, LicensesFile)
}

func (s *Store) Manifest() (*Manifest, bool) {
	return decode[Manifest](s, ManifestFile)
}

// Master returns the _cat/master rows of master.json.
func (s *Store) Master() ([]MasterRow, bool) {
	rows, ok := decode[[]MasterRow](s, MasterFile)
	if !ok {
		return nil, false
	}
	return *rows, true
}

// ILMPolicies returns the lifecycle policies keyed by policy name. An empty
// object is reported as present with no entries.
func (s *Store) ILMPolicies() (map[string]json.RawMessage, bool) {
	v, ok := decode[map[string]json.RawMessage](s, ILMPoliciesFile)
	if !ok {
		return nil, false
	}
	return *v, true
}

// NodesUsage returns nodes_usage.json undecoded; only the case snapshot of the
// node analyzer carries it.
func (s *Store) NodesUsage() (json.RawMessage, bool) {
	return s.Raw(NodesUsageFile)
}
