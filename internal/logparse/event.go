// Package logparse turns Elasticsearch server log lines into typed events.
//
// Only the single-line form
//
//	[2024-03-01T10:15:30,123][WARN ][o.e.c.r.a.DiskThresholdMonitor] [es-1] high disk watermark exceeded
//
// is recognised. Stack trace continuation lines do not match and are dropped.
package logparse

import (
	"regexp"
	"strings"
	"time"
)

// Level is the severity column of a log line.
type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

// TimestampLayout is the timestamp column without its fraction. The comma
// separated fraction is required by Parse and accepted by time.Parse.
const TimestampLayout = "2006-01-02T15:04:05"

// Event is one parsed log line.
type Event struct {
	Timestamp  time.Time
	Level      Level
	Component  string
	Message    string
	SourceFile string
}

var reLine = regexp.MustCompile(`^\[([^\]]+)\]\[([^\]]+)\]\[([^\]]+)\]\s*(.+)`)

// Parse converts one line into an Event. It returns false for lines that do
// not follow the bracket grammar or whose timestamp does not parse.
func Parse(line, source string) (Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] != '[' {
		return Event{}, false
	}
	m := reLine.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}
	ts, ok := parseTimestamp(m[1])
	if !ok {
		return Event{}, false
	}
	return Event{
		Timestamp:  ts,
		Level:      Level(strings.TrimSpace(m[2])),
		Component:  strings.TrimSpace(m[3]),
		Message:    m[4],
		SourceFile: source,
	}, true
}

func parseTimestamp(s string) (time.Time, bool) {
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return time.Time{}, false
	}
	frac := s[comma+1:]
	if len(frac) == 0 || len(frac) > 9 {
		return time.Time{}, false
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return time.Time{}, false
		}
	}
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
