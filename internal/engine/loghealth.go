package engine

import (
	"k8s.io/klog/v2"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/i18n"
	"github.com/dm/esdiag/internal/logparse"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

// LogHealth is the accumulation and severity verdict over a logs directory.
// SeverityInfo means healthy.
type LogHealth struct {
	Missing     bool
	Severity    model.Severity
	Files       int
	Compressed  int
	TotalBytes  int64
	ActiveBytes int64
	Description string
	Details     []string
}

// Icon returns the status icon of the verdict.
func (h LogHealth) Icon() string {
	if h.Missing {
		return "⚠️"
	}
	switch h.Severity {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityWarning:
		return "🟡"
	default:
		return "✅"
	}
}

// logTotals counts files and bytes of a log listing.
func logTotals(files []store.LogFile) (compressed int, total, active int64) {
	for _, f := range files {
		total += f.Size
		if f.Compressed {
			compressed++
		} else {
			active += f.Size
		}
	}
	return compressed, total, active
}

// AssessLogHealth applies the log accumulation and severity rules in order.
// Rules marked as escalating only raise a healthy verdict to warning; every
// other matching rule replaces the verdict.
func AssessLogHealth(cat i18n.Catalog, files []store.LogFile, dirExists, sawError, sawWarn bool) LogHealth {
	if !dirExists {
		return LogHealth{Missing: true, Severity: model.SeverityWarning, Description: cat.T("loghealth.missing")}
	}
	h := LogHealth{Files: len(files), Severity: model.SeverityInfo, Description: cat.T("loghealth.good")}
	h.Compressed, h.TotalBytes, h.ActiveBytes = logTotals(files)
	set := func(sev model.Severity, key string) {
		h.Severity = sev
		h.Description = cat.T(key)
	}
	escalate := func(key string) {
		if h.Severity == model.SeverityInfo {
			set(model.SeverityWarning, key)
		}
	}
	detail := func(key string, args ...any) {
		h.Details = append(h.Details, cat.F(key, args...))
	}

	switch {
	case h.Files > logFilesCritical:
		set(model.SeverityCritical, "loghealth.too_many")
		detail("loghealth.detail.too_many", h.Files)
	case h.Files > logFilesWarn:
		set(model.SeverityWarning, "loghealth.many")
		detail("loghealth.detail.many", h.Files)
	}
	switch {
	case h.TotalBytes > logBytesCritical:
		set(model.SeverityCritical, "loghealth.too_large")
		detail("loghealth.detail.too_large", format.FormatBytes(h.TotalBytes))
	case h.TotalBytes > logBytesWarn:
		escalate("loghealth.large")
		detail("loghealth.detail.large", format.FormatBytes(h.TotalBytes))
	}
	if sawError {
		set(model.SeverityCritical, "loghealth.errors")
		detail("loghealth.detail.errors")
	}
	if sawWarn {
		escalate("loghealth.warnings")
		detail("loghealth.detail.warnings")
	}
	if h.Severity == model.SeverityInfo {
		h.Details = []string{
			cat.F("loghealth.detail.files", h.Files, h.Compressed),
			cat.F("loghealth.detail.size", format.FormatBytes(h.TotalBytes)),
			cat.T("loghealth.detail.clean"),
			cat.T("loghealth.detail.normal"),
		}
	}
	return h
}

// scanActive streams every active log file through e. fn returning false
// stops the whole scan. Files that fail to open or read are logged and
// skipped.
func scanActive(src Source, files []store.LogFile, e *logparse.Extractor, fn func(logparse.Event) bool) {
	stopped := false
	for _, f := range files {
		if !f.Active() || stopped {
			continue
		}
		rc, err := src.OpenLog(f.Name)
		if err != nil {
			klog.Warningf("skipping log file: %v", err)
			continue
		}
		err = e.Scan(rc, f.Name, func(ev logparse.Event) bool {
			if !fn(ev) {
				stopped = true
				return false
			}
			return true
		})
		rc.Close()
		if err != nil {
			klog.Warningf("log file %s read partially: %v", f.Name, err)
		}
	}
	klog.V(2).Infof("log scan: %d lines, %d matched, %d dropped, %d filtered",
		e.Stats().Lines, e.Stats().Matched, e.Stats().Dropped, e.Stats().Filtered)
}

// detectSeverities reports whether active logs hold ERROR/FATAL and WARN
// events, stopping as soon as both are seen.
func detectSeverities(src Source, files []store.LogFile, maxLine int) (sawError, sawWarn bool) {
	e := logparse.NewExtractor(
		logparse.WithLevels(logparse.LevelError, logparse.LevelFatal, logparse.LevelWarn),
		logparse.WithMaxLineBytes(maxLine),
	)
	scanActive(src, files, e, func(ev logparse.Event) bool {
		if ev.Level == logparse.LevelWarn {
			sawWarn = true
		} else {
			sawError = true
		}
		return !(sawError && sawWarn)
	})
	return sawError, sawWarn
}
