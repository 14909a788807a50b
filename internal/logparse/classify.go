package logparse

import "strings"

// ErrorType groups ERROR and FATAL messages.
type ErrorType string

const (
	ErrorSystemException ErrorType = "system-exception"
	ErrorTimeout         ErrorType = "timeout-error"
	ErrorConnection      ErrorType = "connection-error"
	ErrorAllocation      ErrorType = "allocation-error"
	ErrorShard           ErrorType = "shard-error"
	ErrorOther           ErrorType = "other-error"
)

// WarningType groups WARN messages.
type WarningType string

const (
	WarningHeap       WarningType = "heap-warning"
	WarningDisk       WarningType = "disk-warning"
	WarningSlow       WarningType = "slow-warning"
	WarningConnection WarningType = "connection-warning"
	WarningTimeout    WarningType = "timeout-warning"
	WarningOther      WarningType = "other-warning"
)

// Frequency rates how often a warning type occurred.
type Frequency string

const (
	FrequencyHigh   Frequency = "high"
	FrequencyMedium Frequency = "medium"
	FrequencyLow    Frequency = "low"
)

// EventCategory groups important events.
type EventCategory string

const (
	EventClusterChange EventCategory = "cluster-changes"
	EventNode          EventCategory = "node-events"
	EventShard         EventCategory = "shard-events"
	EventPerformance   EventCategory = "performance-issues"
	EventOther         EventCategory = "other"
)

// EventCategories lists the categories in report order.
var EventCategories = []EventCategory{EventClusterChange, EventNode, EventShard, EventPerformance, EventOther}

type keywordRule[T any] struct {
	keyword string
	result  T
}

// "Exception" is matched case-sensitively against the raw message; the
// remaining keywords against its lower-cased form.
var errorRules = []keywordRule[ErrorType]{
	{"timeout", ErrorTimeout},
	{"connection", ErrorConnection},
	{"allocation", ErrorAllocation},
	{"shard", ErrorShard},
}

var warningRules = []keywordRule[WarningType]{
	{"heap", WarningHeap},
	{"disk", WarningDisk},
	{"slow", WarningSlow},
	{"connection", WarningConnection},
	{"timeout", WarningTimeout},
}

// importantKeywords are matched case-sensitively against the whole line.
var importantKeywords = []string{
	"ClusterApplierService", "removed", "added", "master", "node",
	"shard", "allocation", "recovery", "timeout", "exception",
}

// ClassifyError returns the first matching error type.
func ClassifyError(msg string) ErrorType {
	if strings.Contains(msg, "Exception") {
		return ErrorSystemException
	}
	return firstMatch(strings.ToLower(msg), errorRules, ErrorOther)
}

// ClassifyWarning returns the first matching warning type.
func ClassifyWarning(msg string) WarningType {
	return firstMatch(strings.ToLower(msg), warningRules, WarningOther)
}

func firstMatch[T any](lower string, rules []keywordRule[T], fallback T) T {
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.result
		}
	}
	return fallback
}

// WarningFrequency rates a warning type by occurrence count.
func WarningFrequency(count int) Frequency {
	switch {
	case count > 100:
		return FrequencyHigh
	case count > 20:
		return FrequencyMedium
	default:
		return FrequencyLow
	}
}

// IsImportant reports whether a raw line mentions cluster, node or shard
// lifecycle keywords.
func IsImportant(line string) bool {
	for _, k := range importantKeywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}

// CategorizeEvent assigns an important event's message to a category.
func CategorizeEvent(msg string) EventCategory {
	lower := strings.ToLower(msg)
	switch {
	case containsAny(lower, "added", "removed", "master", "cluster"):
		return EventClusterChange
	case strings.Contains(lower, "node"):
		return EventNode
	case strings.Contains(lower, "shard"):
		return EventShard
	case containsAny(lower, "slow", "timeout", "performance"):
		return EventPerformance
	default:
		return EventOther
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
