package logparse

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		wantLevel Level
		wantComp  string
		wantMsg   string
		wantTime  time.Time
	}{
		{
			name:      "padded level",
			line:      "[2024-03-01T10:15:30,123][WARN ][o.e.c.r.a.DiskThresholdMonitor] [es-1] high disk watermark [90%] exceeded",
			wantOK:    true,
			wantLevel: LevelWarn,
			wantComp:  "o.e.c.r.a.DiskThresholdMonitor",
			wantMsg:   "[es-1] high disk watermark [90%] exceeded",
			wantTime:  time.Date(2024, 3, 1, 10, 15, 30, 123_000_000, time.UTC),
		},
		{
			name:      "no space before message",
			line:      "[2024-03-01T10:15:30,5][ERROR][o.e.b.Bootstrap]boom",
			wantOK:    true,
			wantLevel: LevelError,
			wantComp:  "o.e.b.Bootstrap",
			wantMsg:   "boom",
			wantTime:  time.Date(2024, 3, 1, 10, 15, 30, 500_000_000, time.UTC),
		},
		{
			name:      "surrounding whitespace",
			line:      "  [2024-03-01T10:15:30,000][INFO ][o.e.n.Node] started  \r",
			wantOK:    true,
			wantLevel: LevelInfo,
			wantComp:  "o.e.n.Node",
			wantMsg:   "started",
			wantTime:  time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC),
		},
		{name: "stack trace line", line: "\tat org.elasticsearch.Foo.bar(Foo.java:42)"},
		{name: "caused by", line: "Caused by: java.io.IOException: broken pipe"},
		{name: "only two brackets", line: "[2024-03-01T10:15:30,123][WARN ] missing component"},
		{name: "period fraction", line: "[2024-03-01T10:15:30.123][WARN ][c] msg"},
		{name: "no fraction", line: "[2024-03-01T10:15:30][WARN ][c] msg"},
		{name: "timezone suffix", line: "[2024-03-01T10:15:30,123+0000][WARN ][c] msg"},
		{name: "bad date", line: "[2024-13-01T10:15:30,123][WARN ][c] msg"},
		{name: "empty message", line: "[2024-03-01T10:15:30,123][WARN ][c]   "},
		{name: "json log", line: `{"@timestamp":"2024-03-01T10:15:30.123Z","log.level":"WARN"}`},
		{name: "empty", line: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := Parse(tt.line, "es.log")
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, Event{}, ev)
				return
			}
			assert.Equal(t, tt.wantLevel, ev.Level)
			assert.Equal(t, tt.wantComp, ev.Component)
			assert.Equal(t, tt.wantMsg, ev.Message)
			assert.True(t, tt.wantTime.Equal(ev.Timestamp), "got %v", ev.Timestamp)
			assert.Equal(t, "es.log", ev.SourceFile)
		})
	}
}

const sampleLog = `[2024-03-01T10:00:00,001][INFO ][o.e.n.Node] [es-1] starting ...
[2024-03-01T10:00:01,002][WARN ][o.e.m.j.JvmGcMonitorService] [es-1] [gc][young][1][1] duration [1.2s], heap usage high
[2024-03-01T10:00:02,003][ERROR][o.e.b.ElasticsearchUncaughtExceptionHandler] [es-1] fatal error in thread
java.lang.OutOfMemoryError: Java heap space
	at java.base/java.util.Arrays.copyOf(Arrays.java:3537)

[2024-03-01T10:00:03,004][FATAL][o.e.b.Bootstrap] [es-1] node halted
[2024-03-01T10:00:04,005][WARN ][o.e.c.r.a.DiskThresholdMonitor] [es-1] high disk watermark exceeded
`

func collect(t *testing.T, e *Extractor, input string) []Event {
	t.Helper()
	var got []Event
	require.NoError(t, e.Scan(strings.NewReader(input), "es.log", func(ev Event) bool {
		got = append(got, ev)
		return true
	}))
	return got
}

func TestExtractor_LevelFilter(t *testing.T) {
	e := NewExtractor(WithLevels(LevelError, LevelFatal))
	got := collect(t, e, sampleLog)

	require.Len(t, got, 2)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, LevelFatal, got[1].Level)
	assert.Equal(t, "[es-1] node halted", got[1].Message)
	assert.Equal(t, StateDone, e.State())

	st := e.Stats()
	assert.Equal(t, 7, st.Lines, "blank line is not counted")
	assert.Equal(t, 5, st.Matched)
	assert.Equal(t, 2, st.Dropped, "stack trace lines are dropped")
	assert.Equal(t, 0, st.Oversized)
	assert.Equal(t, 3, st.Filtered)
}

func TestExtractor_AllLevelsKeepOrder(t *testing.T) {
	got := collect(t, NewExtractor(), sampleLog)
	levels := make([]Level, 0, len(got))
	for _, ev := range got {
		levels = append(levels, ev.Level)
	}
	assert.Equal(t, []Level{LevelInfo, LevelWarn, LevelError, LevelFatal, LevelWarn}, levels)
}

func TestExtractor_UnmatchedInputProducesNothing(t *testing.T) {
	input := "garbage\n\tat a.b.C(D.java:1)\n[not][a][timestamp] msg\n{\"json\":true}\n"
	e := NewExtractor()
	calls := 0
	require.NoError(t, e.Scan(strings.NewReader(input), "x.log", func(Event) bool {
		calls++
		return true
	}))
	assert.Zero(t, calls)
	assert.Equal(t, 4, e.Stats().Dropped)
}

func TestExtractor_StopEarly(t *testing.T) {
	e := NewExtractor(WithLevels(LevelWarn))
	calls := 0
	require.NoError(t, e.Scan(strings.NewReader(sampleLog), "es.log", func(Event) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateDone, e.State())
	assert.Equal(t, 2, e.Stats().Lines, "scan stops right after the first warning")
}

func TestExtractor_LineFilter(t *testing.T) {
	e := NewExtractor(WithLineFilter(IsImportant))
	got := collect(t, e, sampleLog)
	// "node halted" is the only line carrying a lower-case keyword
	require.Len(t, got, 1)
	assert.Equal(t, LevelFatal, got[0].Level)
}

func TestExtractor_OverlongLineDropped(t *testing.T) {
	long := "[2024-03-01T10:00:00,001][WARN ][c] " + strings.Repeat("x", 200)
	input := long + "\n[2024-03-01T10:00:01,001][WARN ][c] short\n"
	e := NewExtractor(WithMaxLineBytes(64))
	got := collect(t, e, input)
	require.Len(t, got, 1)
	assert.Equal(t, "short", got[0].Message)
	assert.Equal(t, 1, e.Stats().Dropped)
	assert.Equal(t, 1, e.Stats().Oversized)
}

func TestExtractor_NoTrailingNewline(t *testing.T) {
	got := collect(t, NewExtractor(), "[2024-03-01T10:00:01,001][WARN ][c] last")
	require.Len(t, got, 1)
	assert.Equal(t, "last", got[0].Message)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestExtractor_ReadError(t *testing.T) {
	e := NewExtractor()
	err := e.Scan(failingReader{}, "es.log", func(Event) bool { return true })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "es.log")
	assert.Equal(t, StateDone, e.State())
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorType
	}{
		{"NullPointerException while handling timeout", ErrorSystemException},
		{"nullpointerexception lower case", ErrorOther},
		{"request Timeout after connection reset", ErrorTimeout},
		{"Connection refused", ErrorConnection},
		{"failed allocation of shard", ErrorAllocation},
		{"shard [logs][0] failed", ErrorShard},
		{"something else", ErrorOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyError(tt.msg), tt.msg)
	}
}

func TestClassifyWarning(t *testing.T) {
	tests := []struct {
		msg  string
		want WarningType
	}{
		{"Heap usage above disk threshold", WarningHeap},
		{"high DISK watermark", WarningDisk},
		{"slow query took 5s, timeout soon", WarningSlow},
		{"connection lost", WarningConnection},
		{"timed out: timeout", WarningTimeout},
		{"deprecated setting", WarningOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyWarning(tt.msg), tt.msg)
	}
}

func TestWarningFrequency(t *testing.T) {
	assert.Equal(t, FrequencyLow, WarningFrequency(0))
	assert.Equal(t, FrequencyLow, WarningFrequency(20))
	assert.Equal(t, FrequencyMedium, WarningFrequency(21))
	assert.Equal(t, FrequencyMedium, WarningFrequency(100))
	assert.Equal(t, FrequencyHigh, WarningFrequency(101))
}

func TestCategorizeEvent(t *testing.T) {
	assert.Equal(t, EventClusterChange, CategorizeEvent("added {es-3}, term: 4"))
	assert.Equal(t, EventClusterChange, CategorizeEvent("elected-as-master"))
	assert.Equal(t, EventNode, CategorizeEvent("Node left"))
	assert.Equal(t, EventShard, CategorizeEvent("shard failed"))
	assert.Equal(t, EventPerformance, CategorizeEvent("took too long, timeout"))
	assert.Equal(t, EventOther, CategorizeEvent("recovery finished"))
}

func TestIsImportant(t *testing.T) {
	assert.True(t, IsImportant("[..][INFO ][o.e.c.s.ClusterApplierService] added"))
	assert.False(t, IsImportant("[..][INFO ][o.e.x.Foo] Exception"), "keywords are case-sensitive")
	assert.False(t, IsImportant("nothing here"))
}
