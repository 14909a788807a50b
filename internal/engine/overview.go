package engine

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-version"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

// Overview renders the report header table: customer, cluster, license and
// collection metadata.
type Overview struct {
	src  Source
	opts Options
}

func NewOverview(src Source, opts Options) *Overview {
	return &Overview{src: src, opts: opts}
}

func (o *Overview) Name() string { return NameReportOverview }

func (o *Overview) Generate() (model.Section, error) {
	w := newWriter(o.opts)
	lic, hasLic := o.src.Licenses()
	health, hasHealth := o.src.ClusterHealth()
	manifest, hasManifest := o.src.Manifest()

	customer := format.NA
	licType, licStatus, expiry, maxNodes := format.NA, format.NA, format.NA, format.NA
	if hasLic && lic.License != nil {
		l := lic.License
		customer = format.OrNA(l.IssuedTo.Or(""))
		licType = format.OrNA(l.Type.Or(""))
		licStatus = format.OrNA(l.Status.Or(""))
		if v, ok := l.ExpiryDate.Get(); ok {
			expiry = format.FormatISO(v)
		}
		if n, ok := l.MaxNodes.Get(); ok {
			maxNodes = fmt.Sprint(n)
		}
	}

	clusterName := format.NA
	if hasHealth {
		clusterName = format.OrNA(health.ClusterName.Or(""))
	}

	collected, esVersion, diagVersion := format.NA, format.NA, format.NA
	if hasManifest {
		if v, ok := manifest.CollectionDate.Get(); ok {
			collected = format.FormatISO(v)
		}
		esVersion = format.OrNA(manifest.ProductVersion.Or(""))
		diagVersion = format.OrNA(manifest.DiagVersion.Or(""))
	}
	if esVersion == format.NA {
		if nodes, ok := o.src.Nodes(); ok {
			esVersion = format.OrNA(newestVersion(nodes))
		}
	}

	w.table(w.cat.T("col.item"), w.cat.T("col.content"))
	w.kv(w.cat.T("overview.customer"), customer)
	w.kv(w.cat.T("overview.cluster"), clusterName)
	w.kv(w.cat.T("overview.date"), collected)
	w.kv(w.cat.T("overview.version"), esVersion)
	w.kv(w.cat.T("overview.license"), fmt.Sprintf("%s (%s)", licType, licStatus))
	w.kv(w.cat.T("overview.owner"), customer)
	w.kv(w.cat.T("overview.expiry"), expiry)
	w.kv(w.cat.T("overview.max_nodes"), maxNodes)
	w.kv(w.cat.T("overview.diag_version"), diagVersion)
	w.blank()
	w.table(w.cat.T("col.item"), w.cat.T("col.content"))
	w.kv(w.cat.T("overview.executor"), w.cat.T("to_fill"))
	w.kv(w.cat.T("overview.contact"), w.cat.T("to_fill"))
	w.blank()

	if !hasLic {
		w.unavailable(model.TopicCluster, store.LicensesFile)
	}
	if !hasManifest {
		w.unavailable(model.TopicCluster, store.ManifestFile)
	}

	c := rawCase(o.src,
		"licenses", store.LicensesFile,
		"cluster_health", store.ClusterHealthFile,
		"manifest", store.ManifestFile,
	)
	return w.section(o.Name(), c), nil
}

// newestVersion returns the highest parseable node version, or the first
// version by node id when none parses.
func newestVersion(nodes *store.NodesInfo) string {
	ids := sortedKeys(nodes.Nodes)
	var newest *version.Version
	raw := ""
	for _, id := range ids {
		s, ok := nodes.Nodes[id].Version.Get()
		if !ok || s == "" {
			continue
		}
		if raw == "" {
			raw = s
		}
		v, err := version.NewVersion(s)
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	if newest != nil {
		return newest.Original()
	}
	return raw
}

// distinctVersions returns the distinct versions across nodes sorted
// ascending. Unparseable versions sort after parseable ones, by text.
func distinctVersions(nodes *store.NodesInfo) []string {
	seen := map[string]struct{}{}
	for _, n := range nodes.Nodes {
		if s, ok := n.Version.Get(); ok && s != "" {
			seen[s] = struct{}{}
		}
	}
	out := sortedKeys(seen)
	sort.SliceStable(out, func(i, j int) bool {
		vi, ei := version.NewVersion(out[i])
		vj, ej := version.NewVersion(out[j])
		switch {
		case ei == nil && ej == nil:
			return vi.LessThan(vj)
		case ei == nil:
			return true
		default:
			return false
		}
	})
	return out
}
