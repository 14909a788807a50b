package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dm/esdiag/internal/format"
	"github.com/dm/esdiag/internal/logparse"
	"github.com/dm/esdiag/internal/model"
	"github.com/dm/esdiag/internal/store"
)

const (
	maxListedLogFiles   = 10
	maxTypeRows         = 10
	maxDetailedErrors   = 3
	examplesPerType     = 3
	examplesShown       = 2
	errorExcerpt        = 200
	eventExcerpt        = 150
	highFrequencyCount  = 10
	maxHighFrequency    = 5
	eventsPerCategory   = 3
	maxCaseEntries      = 50
	maxCaseEvents       = 30
	caseTimestampLayout = "2006-01-02T15:04:05.000"
)

// Logs renders log file overview, error and warning analysis, accumulation
// and important events. Active logs are streamed; only bounded aggregates
// are retained.
type Logs struct {
	src  Source
	opts Options
}

func NewLogs(src Source, opts Options) *Logs {
	return &Logs{src: src, opts: opts}
}

func (l *Logs) Name() string { return NameLogAnalysis }

// typeStats aggregates the events of one error or warning type.
type typeStats struct {
	name     string
	count    int
	latest   time.Time
	examples *model.Window[logparse.Event]
}

// typeCounter counts events per type, keeping the latest timestamp and the
// most recent examples of each type.
type typeCounter struct {
	byType map[string]*typeStats
}

func newTypeCounter() *typeCounter {
	return &typeCounter{byType: map[string]*typeStats{}}
}

func (c *typeCounter) add(kind string, ev logparse.Event) {
	ts, ok := c.byType[kind]
	if !ok {
		ts = &typeStats{name: kind, examples: model.NewWindow[logparse.Event](examplesPerType)}
		c.byType[kind] = ts
	}
	ts.count++
	if ev.Timestamp.After(ts.latest) {
		ts.latest = ev.Timestamp
	}
	ts.examples.Push(ev)
}

// ranked returns the types by count descending, then by name.
func (c *typeCounter) ranked() []*typeStats {
	out := make([]*typeStats, 0, len(c.byType))
	for _, ts := range c.byType {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func (c *typeCounter) empty() bool { return len(c.byType) == 0 }

// recentEvents keeps the newest events of one category by timestamp.
type recentEvents struct {
	count  int
	newest []logparse.Event
}

func (r *recentEvents) add(ev logparse.Event) {
	r.count++
	i := sort.Search(len(r.newest), func(i int) bool { return r.newest[i].Timestamp.Before(ev.Timestamp) })
	if i >= eventsPerCategory {
		return
	}
	r.newest = append(r.newest, logparse.Event{})
	copy(r.newest[i+1:], r.newest[i:])
	r.newest[i] = ev
	if len(r.newest) > eventsPerCategory {
		r.newest = r.newest[:eventsPerCategory]
	}
}

// caseEvent is the case file form of one event.
type caseEvent struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

func toCaseEvent(ev logparse.Event) caseEvent {
	return caseEvent{Timestamp: ev.Timestamp.Format(caseTimestampLayout), Level: string(ev.Level), Message: ev.Message}
}

type caseLogFile struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Compressed bool   `json:"compressed"`
}

// logScan is everything retained from streaming the active logs.
type logScan struct {
	errors   *typeCounter
	warnings *typeCounter
	events   map[logparse.EventCategory]*recentEvents

	caseErrors, caseWarnings, caseEvents []caseEvent

	stats logparse.Stats
}

func (l *Logs) scan(files []store.LogFile) *logScan {
	s := &logScan{
		errors:       newTypeCounter(),
		warnings:     newTypeCounter(),
		events:       map[logparse.EventCategory]*recentEvents{},
		caseErrors:   []caseEvent{},
		caseWarnings: []caseEvent{},
		caseEvents:   []caseEvent{},
	}
	severities := logparse.NewExtractor(
		logparse.WithLevels(logparse.LevelError, logparse.LevelFatal, logparse.LevelWarn),
		logparse.WithMaxLineBytes(l.opts.maxLineBytes()),
	)
	scanActive(l.src, files, severities, func(ev logparse.Event) bool {
		if ev.Level == logparse.LevelWarn {
			s.warnings.add(string(logparse.ClassifyWarning(ev.Message)), ev)
			if len(s.caseWarnings) < maxCaseEntries {
				s.caseWarnings = append(s.caseWarnings, toCaseEvent(ev))
			}
			return true
		}
		s.errors.add(string(logparse.ClassifyError(ev.Message)), ev)
		if len(s.caseErrors) < maxCaseEntries {
			s.caseErrors = append(s.caseErrors, toCaseEvent(ev))
		}
		return true
	})

	important := logparse.NewExtractor(
		logparse.WithLineFilter(logparse.IsImportant),
		logparse.WithMaxLineBytes(l.opts.maxLineBytes()),
	)
	scanActive(l.src, files, important, func(ev logparse.Event) bool {
		cat := logparse.CategorizeEvent(ev.Message)
		r, ok := s.events[cat]
		if !ok {
			r = &recentEvents{}
			s.events[cat] = r
		}
		r.add(ev)
		if len(s.caseEvents) < maxCaseEvents {
			s.caseEvents = append(s.caseEvents, toCaseEvent(ev))
		}
		return true
	})

	// both passes read the same lines; the first one's counters describe them
	s.stats = severities.Stats()
	return s
}

func (l *Logs) Generate() (model.Section, error) {
	w := newWriter(l.opts)
	files, ok := l.src.LogFiles()

	var s *logScan
	if ok {
		s = l.scan(files)
	} else {
		s = &logScan{errors: newTypeCounter(), warnings: newTypeCounter(), events: map[logparse.EventCategory]*recentEvents{}}
	}

	logOverview(w, files, ok)
	errorAnalysis(w, s.errors)
	warningAnalysis(w, s.warnings)
	accumulation(w, files, ok)
	health := AssessLogHealth(w.cat, files, ok, !s.errors.empty(), !s.warnings.empty())
	if !health.Missing && health.Severity > model.SeverityInfo {
		w.add(model.Finding{
			Topic:    model.TopicLog,
			Severity: health.Severity,
			Title:    health.Description,
			Evidence: strings.Join(health.Details, "; "),
		})
	}
	importantEvents(w, s.events)
	if !ok {
		w.unavailable(model.TopicLog, store.LogsDir)
	}

	caseFiles := make([]caseLogFile, 0, len(files))
	for _, f := range files {
		caseFiles = append(caseFiles, caseLogFile{Name: f.Name, Size: f.Size, Compressed: f.Compressed})
	}
	cd := caseData{}
	for key, v := range map[string]any{
		"log_files":        caseFiles,
		"errors":           orEmpty(s.caseErrors),
		"warnings":         orEmpty(s.caseWarnings),
		"important_events": orEmpty(s.caseEvents),
	} {
		if err := cd.put(key, v); err != nil {
			return model.Section{}, err
		}
	}
	sec := w.section(l.Name(), cd)
	sec.ParsedLines = int64(s.stats.Matched)
	sec.DroppedLines = int64(s.stats.Dropped)
	sec.OversizedLines = int64(s.stats.Oversized)
	return sec, nil
}

func orEmpty(evs []caseEvent) []caseEvent {
	if evs == nil {
		return []caseEvent{}
	}
	return evs
}

func logOverview(w *writer, files []store.LogFile, ok bool) {
	w.h3("logs.overview")
	if !ok {
		w.para("logs.no_dir")
		return
	}
	if len(files) == 0 {
		w.para("logs.no_files")
		return
	}
	byTime := append([]store.LogFile(nil), files...)
	sort.SliceStable(byTime, func(i, j int) bool { return byTime[i].ModTime.After(byTime[j].ModTime) })
	_, total, _ := logTotals(files)
	latest := byTime[0]
	mtime := func(f store.LogFile) string { return f.ModTime.UTC().Format(format.TimeLayout) }

	w.h4("logs.stats")
	w.table(w.cat.T("col.file_stat"), w.cat.T("col.value"), w.cat.T("col.description"))
	w.row("**"+w.cat.T("logs.total_files")+"**", fmt.Sprint(len(files)), w.cat.T("logs.desc.total_files"))
	w.row("**"+w.cat.T("logs.total_size")+"**", format.FormatBytes(total), w.cat.T("logs.desc.total_size"))
	w.row("**"+w.cat.T("logs.latest_file")+"**", latest.Name, w.cat.T("logs.desc.latest_file"))
	w.row("**"+w.cat.T("logs.latest_time")+"**", mtime(latest), w.cat.T("logs.desc.latest_time"))
	w.blank()

	w.h4("logs.files")
	w.table(w.cat.T("col.file_name"), w.cat.T("col.size"), w.cat.T("col.modified"), w.cat.T("col.type"), w.cat.T("col.status"))
	for _, f := range byTime[:min(len(byTime), maxListedLogFiles)] {
		kind, icon := w.cat.T("logs.current"), "🟢"
		if f.Compressed {
			kind, icon = w.cat.T("logs.compressed"), "📦"
		}
		w.row(f.Name, format.FormatBytes(f.Size), mtime(f), kind, icon)
	}
	if len(byTime) > maxListedLogFiles {
		w.row("...", "...", "...", "...", "...")
		w.row("**"+w.cat.F("logs.files_total", len(byTime))+"**", "", "", "", "")
	}
	w.blank()
}

// excerpt cuts s to n runes and appends an ellipsis.
func excerpt(s string, n int) string {
	if r := []rune(s); len(r) > n {
		s = string(r[:n])
	}
	return s + "..."
}

func stamp(t time.Time) string {
	return t.Format(format.TimeLayout)
}

func errorAnalysis(w *writer, errs *typeCounter) {
	w.h3("logs.errors")
	if errs.empty() {
		w.para("logs.no_errors")
		return
	}
	ranked := errs.ranked()
	w.h4("logs.error_stats")
	w.table(w.cat.T("col.error_type"), w.cat.T("col.occurrences"), w.cat.T("col.latest"))
	for _, ts := range ranked[:min(len(ranked), maxTypeRows)] {
		w.row(ts.name, fmt.Sprint(ts.count), stamp(ts.latest))
		w.add(model.Finding{
			Topic:    model.TopicLog,
			Severity: model.SeverityCritical,
			Title:    "Error log entries",
			Evidence: fmt.Sprintf("%s: %d occurrences", ts.name, ts.count),
			Action:   "Review the error details and their root cause",
		})
	}
	w.blank()

	w.h4("logs.error_details")
	for _, ts := range ranked[:min(len(ranked), maxDetailedErrors)] {
		w.line(w.cat.F("logs.type_count", ts.name, ts.count))
		examples := ts.examples.Newest()
		for _, ev := range examples[:min(len(examples), examplesShown)] {
			w.bullet("%s: %s", stamp(ev.Timestamp), excerpt(ev.Message, errorExcerpt))
		}
		w.blank()
	}
}

func frequencyLabel(w *writer, f logparse.Frequency) string {
	switch f {
	case logparse.FrequencyHigh:
		return "🔴 " + w.cat.T("priority.high")
	case logparse.FrequencyMedium:
		return "🟡 " + w.cat.T("priority.medium")
	default:
		return "🟢 " + w.cat.T("priority.low")
	}
}

func warningSuggestion(w *writer, kind logparse.WarningType) string {
	switch kind {
	case logparse.WarningHeap:
		return w.cat.T("suggest.heap")
	case logparse.WarningDisk:
		return w.cat.T("suggest.disk")
	case logparse.WarningSlow:
		return w.cat.T("suggest.slow")
	case logparse.WarningConnection:
		return w.cat.T("suggest.connection")
	case logparse.WarningTimeout:
		return w.cat.T("suggest.timeout")
	default:
		return w.cat.T("suggest.default")
	}
}

func warningAnalysis(w *writer, warns *typeCounter) {
	w.h3("logs.warnings")
	if warns.empty() {
		w.para("logs.no_warnings")
		return
	}
	ranked := warns.ranked()
	w.h4("logs.warning_stats")
	w.table(w.cat.T("col.warning_type"), w.cat.T("col.occurrences"), w.cat.T("col.severity"), w.cat.T("col.latest"))
	for _, ts := range ranked[:min(len(ranked), maxTypeRows)] {
		w.row(ts.name, fmt.Sprint(ts.count), frequencyLabel(w, logparse.WarningFrequency(ts.count)), stamp(ts.latest))
	}
	w.blank()

	var frequent []*typeStats
	for _, ts := range ranked {
		if ts.count > highFrequencyCount {
			frequent = append(frequent, ts)
		}
	}
	if len(frequent) == 0 {
		return
	}
	w.h4("logs.high_frequency")
	w.para("logs.high_frequency_intro")
	for _, ts := range frequent[:min(len(frequent), maxHighFrequency)] {
		w.line(w.cat.F("logs.occurred", ts.name, ts.count))
		w.bullet("%s: %s", w.cat.T("logs.suggested_action"), warningSuggestion(w, logparse.WarningType(ts.name)))
		w.blank()
		sev := model.SeverityInfo
		if logparse.WarningFrequency(ts.count) != logparse.FrequencyLow {
			sev = model.SeverityWarning
		}
		w.add(model.Finding{
			Topic:    model.TopicLog,
			Severity: sev,
			Title:    "Frequent warnings",
			Evidence: fmt.Sprintf("%s: %d occurrences", ts.name, ts.count),
			Action:   warningSuggestion(w, logparse.WarningType(ts.name)),
		})
	}
}

// accumulationLevel rates file count and total size. It returns the
// catalog key of the level and its icon.
func accumulationLevel(files int, total int64) (string, string) {
	level := "normal"
	switch {
	case files > logFilesCritical:
		level = "excessive"
	case files > logFilesWarn:
		level = "many"
	}
	switch {
	case total > logBytesCritical:
		level = "excessive"
	case total > logBytesWarn && level == "normal":
		level = "moderate"
	}
	icons := map[string]string{"normal": "✅", "moderate": "🟡", "many": "🟡", "excessive": "🔴"}
	return "accumulation." + level, icons[level]
}

func accumulation(w *writer, files []store.LogFile, ok bool) {
	w.h3("logs.accumulation")
	if !ok {
		w.para("logs.no_dir_short")
		return
	}
	compressed, total, active := logTotals(files)
	levelKey, icon := accumulationLevel(len(files), total)
	activeIcon := "✅"
	if active > activeLogNoticable {
		activeIcon = "🟡"
	}
	w.h4("logs.accumulation_stats")
	w.table(w.cat.T("col.metric"), w.cat.T("col.value"), w.cat.T("col.status"))
	w.row("**"+w.cat.T("logs.total_files")+"**", fmt.Sprint(len(files)), icon)
	w.row("**"+w.cat.T("logs.compressed_files")+"**", fmt.Sprint(compressed), "✅")
	w.row("**"+w.cat.T("logs.current_size")+"**", format.FormatBytes(active), activeIcon)
	w.row("**"+w.cat.T("logs.total_size")+"**", format.FormatBytes(total), icon)
	w.row("**"+w.cat.T("logs.accumulation_status")+"**", w.cat.T(levelKey), icon)
	w.blank()

	type advice struct{ priority, key string }
	var recs []advice
	switch {
	case len(files) > logFilesCritical:
		recs = append(recs, advice{"high", "logs.advice.too_many"})
	case len(files) > logFilesWarn:
		recs = append(recs, advice{"medium", "logs.advice.many"})
	}
	switch {
	case total > logBytesCritical:
		recs = append(recs, advice{"high", "logs.advice.too_large"})
	case total > logBytesWarn:
		recs = append(recs, advice{"low", "logs.advice.large"})
	}
	if active > activeLogLarge {
		recs = append(recs, advice{"low", "logs.advice.current_large"})
	}
	if len(recs) == 0 {
		return
	}
	w.h4("logs.accumulation_advice")
	for i, r := range recs {
		w.linef("%d. **%s**: %s", i+1, priorityLabel(w, r.priority), w.cat.T(r.key))
	}
	w.blank()
}

func priorityLabel(w *writer, p string) string {
	icons := map[string]string{"high": "🔴", "medium": "🟡", "low": "🟢"}
	return icons[p] + " " + w.cat.F("priority.label", w.cat.T("priority."+p))
}

func importantEvents(w *writer, events map[logparse.EventCategory]*recentEvents) {
	w.h3("logs.events")
	if len(events) == 0 {
		w.para("logs.no_events")
		return
	}
	w.h4("logs.events_overview")
	for _, cat := range logparse.EventCategories {
		r, ok := events[cat]
		if !ok {
			continue
		}
		w.line(w.cat.F("logs.category_count", w.cat.T("event."+string(cat)), r.count))
		for _, ev := range r.newest {
			w.bullet("%s: %s", stamp(ev.Timestamp), excerpt(ev.Message, eventExcerpt))
		}
		w.blank()
	}
}
