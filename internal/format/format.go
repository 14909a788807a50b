package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NA is rendered wherever a value is missing from the bundle.
const NA = "N/A"

// TimeLayout is used for every timestamp printed in a report.
const TimeLayout = "2006-01-02 15:04:05"

const (
	kb = int64(1024)
	mb = kb * 1024
	gb = mb * 1024
	tb = gb * 1024
	pb = tb * 1024
)

// FormatBytes formats a byte count into a human-readable string with 1 decimal place.
// Thresholds: <1KB → B, <1MB → KB, <1GB → MB, <1TB → GB, <1PB → TB, else PB.
func FormatBytes(bytes int64) string {
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	case bytes < gb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes < tb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	case bytes < pb:
		return fmt.Sprintf("%.1f TB", float64(bytes)/float64(tb))
	default:
		return fmt.Sprintf("%.1f PB", float64(bytes)/float64(pb))
	}
}

// FormatGiB renders bytes as gibibytes with one decimal, e.g. "60.0GB".
func FormatGiB(bytes int64) string {
	return fmt.Sprintf("%.1fGB", float64(bytes)/float64(gb))
}

// FormatLatency formats a latency value in milliseconds.
// Values >= 1000 ms are shown as seconds with 2 decimal places.
// Values < 1000 ms are shown as ms with 2 decimal places.
// Negative values return NA.
func FormatLatency(ms float64) string {
	if ms < 0 {
		return NA
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	}
	return fmt.Sprintf("%.2f ms", ms)
}

// FormatNumber formats an integer with comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatPercent formats a percentage with one decimal place.
// Example: 34.5 → "34.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatFloat formats f with one decimal place and comma-separated thousands.
func FormatFloat(f float64) string {
	formatted := fmt.Sprintf("%.1f", f)
	sign := ""
	if len(formatted) > 0 && formatted[0] == '-' {
		sign = "-"
		formatted = formatted[1:]
	}
	parts := strings.SplitN(formatted, ".", 2)
	intPart := insertCommas(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "." + parts[1]
	}
	return sign + intPart
}

// FormatMillis renders an epoch-milliseconds timestamp in UTC, or NA for
// zero and negative values.
func FormatMillis(ms int64) string {
	if ms <= 0 {
		return NA
	}
	return time.UnixMilli(ms).UTC().Format(TimeLayout)
}

// FormatISO re-renders an ISO-8601 timestamp with TimeLayout in UTC.
// Unparseable input is returned unchanged.
func FormatISO(s string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z0700", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(TimeLayout)
		}
	}
	return s
}

// OrNA returns s, or NA when s is empty.
func OrNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
