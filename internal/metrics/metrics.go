// Package metrics exposes per-run statistics of esdiag as Prometheus metrics
// written to a textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dm/esdiag/internal/model"
)

// Recorder holds the metrics of one analyzed bundle.
type Recorder struct {
	Findings         *prometheus.CounterVec // findings by topic and severity
	AnalyzerFailures *prometheus.CounterVec // failed analyzers by name
	LogLinesParsed   prometheus.Counter
	LogLinesDropped  prometheus.Counter
	LogLinesOversize prometheus.Counter
	ClusterVerdict   prometheus.Gauge // 0 good, 1 degraded, 2 critical
	RunDuration      prometheus.Gauge
}

// NewRecorder registers the metrics of bundle on reg. Several recorders may
// share a registry as long as their bundle names differ.
func NewRecorder(reg prometheus.Registerer, bundle string) *Recorder {
	labels := prometheus.Labels{"bundle": bundle}
	r := &Recorder{
		Findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "esdiag_findings_total",
			Help:        "Findings reported by the analyzers",
			ConstLabels: labels,
		}, []string{"topic", "severity"}),
		AnalyzerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "esdiag_analyzer_failures_total",
			Help:        "Analyzers that failed and were replaced by an error notice",
			ConstLabels: labels,
		}, []string{"analyzer"}),
		LogLinesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "esdiag_log_lines_parsed_total",
			Help:        "Log lines parsed into events",
			ConstLabels: labels,
		}),
		LogLinesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "esdiag_log_lines_dropped_total",
			Help:        "Log lines that did not parse into an event, oversized lines included",
			ConstLabels: labels,
		}),
		LogLinesOversize: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "esdiag_log_lines_oversized_total",
			Help:        "Log lines dropped for exceeding the line size limit",
			ConstLabels: labels,
		}),
		ClusterVerdict: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "esdiag_cluster_verdict",
			Help:        "Overall cluster verdict: 0 good, 1 degraded, 2 critical",
			ConstLabels: labels,
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "esdiag_run_duration_seconds",
			Help:        "Wall time spent assembling the report",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(r.Findings, r.AnalyzerFailures, r.LogLinesParsed, r.LogLinesDropped, r.LogLinesOversize, r.ClusterVerdict, r.RunDuration)
	return r
}

// ObserveSection counts the findings and log lines of one section, or the
// failure of its analyzer.
func (r *Recorder) ObserveSection(sec model.Section, failed bool) {
	if failed {
		r.AnalyzerFailures.WithLabelValues(sec.Name).Inc()
		return
	}
	for _, f := range sec.Findings {
		r.Findings.WithLabelValues(string(f.Topic), f.Severity.String()).Inc()
	}
	r.LogLinesParsed.Add(float64(sec.ParsedLines))
	r.LogLinesDropped.Add(float64(sec.DroppedLines))
	r.LogLinesOversize.Add(float64(sec.OversizedLines))
}

func (r *Recorder) SetVerdict(v model.Verdict) {
	r.ClusterVerdict.Set(float64(v))
}

func (r *Recorder) SetDuration(d time.Duration) {
	r.RunDuration.Set(d.Seconds())
}

// WriteFile writes everything g gathers to path in the text exposition
// format.
func WriteFile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}
