package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const (
	recommendationOversizedShard = 50 * oneGiB
	recommendationSmallShard     = oneGiB
	recommendationSmallIndexMin  = 100 * oneMiB
	undersizedIndicesThreshold   = 10
)

// Assessment renders the closing assessment: overall health, items that need
// a human to confirm them, and prioritized optimizations. It reads artifacts
// directly and does not depend on the other analyzers.
type Assessment struct {
	src  Source
	opts Options
}

func NewAssessment(src Source, opts Options) *Assessment {
	return &Assessment{src: src, opts: opts}
}

func (a *Assessment) Name() string { return NameFinalRecommendations }

func (a *Assessment) Generate() (model.Section, error) {
	w := newWriter(a.opts)
	a.healthAssessment(w)
	renderConfirmations(w, Confirmations(a.src, w.cat))
	renderRecommendations(w, Recommendations(a.src, w.cat))

	cd := rawCase(a.src,
		"cluster_health", store.ClusterHealthFile,
		"cluster_stats", store.ClusterStatsFile,
		"cluster_settings", store.ClusterSettingsFile,
		"nodes_stats", store.NodesStatsFile,
		"indices_stats", store.IndicesStatsFile,
		"indices_settings", store.IndexSettingsFile,
		"ilm_policies", store.ILMPoliciesFile,
	)
	return w.section(a.Name(), cd), nil
}

// heapNode is a node whose heap_used_percent crosses the assessment pair.
type heapNode struct {
	name     string
	percent  float64
	severity model.Severity
}

func heapPressureNodes(ns *store.NodesStats) []heapNode {
	var out []heapNode
	for _, s := range statsByName(ns) {
		if s.JVM == nil || s.JVM.Mem == nil {
			continue
		}
		p, ok := s.JVM.Mem.HeapUsedPercent.Get()
		if !ok {
			continue
		}
		if sev, hot := heapPressure(p); hot {
			out = append(out, heapNode{name: s.Name.Or(s.id), percent: p, severity: sev})
		}
	}
	return out
}

func (a *Assessment) healthAssessment(w *writer) {
	w.h3("assess.health")
	health, ok := a.src.ClusterHealth()
	if !ok {
		w.para("assess.no_health")
		w.add(model.Finding{
			Topic:    model.TopicAssessment,
			Severity: model.SeverityCritical,
			Title:    "Cluster health unknown",
			Evidence: store.ClusterHealthFile + " is missing or unreadable",
		})
	} else {
		verdict := ClusterVerdict(health)
		var key string
		var sev model.Severity
		switch verdict {
		case model.VerdictGood:
			key, sev = "assess.verdict.good", model.SeverityInfo
		case model.VerdictDegraded:
			key, sev = "assess.verdict.degraded", model.SeverityWarning
		default:
			key, sev = "assess.verdict.critical", model.SeverityCritical
		}
		w.para(key)
		w.add(model.Finding{
			Topic:    model.TopicAssessment,
			Severity: sev,
			Title:    "Cluster verdict: " + verdict.String(),
			Evidence: fmt.Sprintf("status=%s unassigned_shards=%d", health.Status.Or("unknown"), health.UnassignedShards.Or(0)),
		})
	}

	if ns, ok := a.src.NodesStats(); ok {
		hot := heapPressureNodes(ns)
		if len(hot) == 0 {
			w.para("assess.nodes_ok")
		} else {
			w.line(w.cat.T("assess.nodes_hot"))
			for _, n := range hot {
				w.bullet("%s %s: %s", alertIcon(n.severity), n.name, w.cat.F("assess.heap_line", n.percent))
				w.add(model.Finding{
					Topic:    model.TopicAssessment,
					Severity: n.severity,
					Title:    "Heap pressure",
					Evidence: fmt.Sprintf("%s: heap_used_percent %.1f", n.name, n.percent),
				})
			}
			w.blank()
		}
	}

	files, dirOK := a.src.LogFiles()
	sawError, sawWarn := false, false
	if dirOK {
		sawError, sawWarn = detectSeverities(a.src, files, a.opts.maxLineBytes())
	}
	lh := AssessLogHealth(w.cat, files, dirOK, sawError, sawWarn)
	w.linef("**%s**: %s %s", w.cat.T("assess.log_health"), lh.Icon(), lh.Description)
	for _, d := range lh.Details {
		w.bullet("%s", d)
	}
	w.blank()
}

// Confirmations lists settings and conditions that may be intentional and
// need confirmation by the cluster owner.
func Confirmations(src Source, cat i18n.Catalog) []model.Confirmation {
	var out []model.Confirmation
	if settings, ok := src.ClusterSettings(); ok {
		if v, _ := settings.Lookup(rebalanceKey); strings.EqualFold(v, "none") {
			out = append(out, model.Confirmation{
				Item:       cat.T("confirm.rebalance.item"),
				Current:    rebalanceKey + " = none",
				Reason:     cat.T("confirm.rebalance.reason"),
				Suggestion: cat.T("confirm.rebalance.suggestion"),
			})
		}
		if v, _ := settings.Lookup(allocationKey); strings.EqualFold(v, "none") || strings.EqualFold(v, "primaries") {
			out = append(out, model.Confirmation{
				Item:       cat.T("confirm.allocation.item"),
				Current:    allocationKey + " = " + strings.ToLower(v),
				Reason:     cat.T("confirm.allocation.reason"),
				Suggestion: cat.T("confirm.allocation.suggestion"),
			})
		}
	}
	if large := largeIndices(src); len(large) > 0 {
		out = append(out, model.Confirmation{
			Item:       cat.T("confirm.large.item"),
			Current:    cat.F("confirm.large.current", len(large)),
			Reason:     cat.T("confirm.large.reason"),
			Suggestion: cat.T("confirm.large.suggestion"),
			Detail:     large,
		})
	}
	return out
}

// largeIndices returns application indices above the document threshold,
// sorted by name. indices_stats totals are preferred; the shard listing's
// primary documents are the fallback.
func largeIndices(src Source) []string {
	var out []string
	if is, ok := src.IndicesStats(); ok {
		for name, ix := range is.Indices {
			if !strings.HasPrefix(name, ".") && ix.Total.Docs.Count.Or(0) > highDocCount {
				out = append(out, name)
			}
		}
	} else if rows, ok := src.Shards(); ok {
		for _, r := range indexRecords(shardRecords(rows)) {
			if !r.System() && r.Docs > highDocCount {
				out = append(out, r.Name)
			}
		}
	}
	sort.Strings(out)
	return out
}

func renderConfirmations(w *writer, items []model.Confirmation) {
	w.h3("assess.confirm")
	w.para("assess.confirm_intro")
	if len(items) == 0 {
		w.para("assess.confirm_none")
		return
	}
	for i, c := range items {
		w.linef("**%d. %s**", i+1, c.Item)
		w.bullet("**%s**: %s", w.cat.T("confirm.current"), c.Current)
		w.bullet("**%s**: %s", w.cat.T("confirm.reason"), c.Reason)
		w.bullet("**%s**: %s", w.cat.T("confirm.suggestion"), c.Suggestion)
		w.blank()
		w.add(model.Finding{
			Topic:    model.TopicAssessment,
			Severity: model.SeverityWarning,
			Title:    c.Item,
			Evidence: c.Current,
			Action:   c.Suggestion,
		})
	}
}

// Recommendations derives optimization suggestions sorted by priority.
// Equal priorities keep derivation order.
func Recommendations(src Source, cat i18n.Catalog) []model.Recommendation {
	var out []model.Recommendation
	rec := func(p model.Priority, key string, args ...any) model.Recommendation {
		return model.Recommendation{
			Priority:    p,
			Category:    cat.T(key + ".category"),
			Title:       cat.T(key + ".title"),
			Description: cat.F(key+".description", args...),
			Impact:      cat.T(key + ".impact"),
			Action:      cat.T(key + ".action"),
			Timing:      cat.T(key + ".timing"),
		}
	}

	if ns, ok := src.NodesStats(); ok {
		var critical, warning int
		for _, n := range heapPressureNodes(ns) {
			if n.severity == model.SeverityCritical {
				critical++
			} else {
				warning++
			}
		}
		switch {
		case critical > 0:
			out = append(out, rec(model.PriorityHigh, "rec.heap_high", critical))
		case warning > 0:
			out = append(out, rec(model.PriorityMedium, "rec.heap_medium", warning))
		}
	}

	stats, hasStats := src.IndicesStats()
	settings, hasSettings := src.IndexSettings()
	if hasStats && hasSettings {
		var oversized, undersized int
		for _, name := range sortedKeys(stats.Indices) {
			if strings.HasPrefix(name, ".") {
				continue
			}
			cfg, ok := settings[name]
			if !ok {
				continue
			}
			shards := int64(1)
			if v, ok := cfg.Settings.Lookup("index.number_of_shards"); ok {
				if n, err := strconv.ParseInt(v, 10, 64); err == nil {
					shards = n
				}
			}
			if shards <= 0 {
				continue
			}
			total := stats.Indices[name].Total.Store.SizeInBytes.Or(0)
			perShard := total / shards
			switch {
			case perShard > recommendationOversizedShard:
				oversized++
			case perShard < recommendationSmallShard && total > recommendationSmallIndexMin:
				undersized++
			}
		}
		if oversized > 0 {
			out = append(out, rec(model.PriorityMedium, "rec.oversized", oversized))
		}
		if undersized >= undersizedIndicesThreshold {
			out = append(out, rec(model.PriorityLow, "rec.undersized", undersized))
		}
	}

	if policies, ok := src.ILMPolicies(); !ok || len(policies) == 0 {
		out = append(out, rec(model.PriorityMedium, "rec.ilm"))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func priorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func renderRecommendations(w *writer, recs []model.Recommendation) {
	w.h3("assess.optimize")
	w.para("assess.optimize_intro")
	if len(recs) == 0 {
		w.para("assess.optimize_none")
	}
	for i, r := range recs {
		w.linef("**%d. %s** %s %s", i+1, r.Title, priorityIcon(r.Priority), w.cat.F("priority.label", w.cat.T("priority."+r.Priority.String())))
		w.blank()
		w.bullet("**%s**: %s", w.cat.T("rec.field.description"), r.Description)
		w.bullet("**%s**: %s", w.cat.T("rec.field.impact"), r.Impact)
		w.bullet("**%s**: %s", w.cat.T("rec.field.action"), r.Action)
		w.bullet("**%s**: %s", w.cat.T("rec.field.timing"), r.Timing)
		w.blank()
	}
	w.para("assess.principles")
}
