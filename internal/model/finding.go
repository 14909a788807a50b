package model

import "fmt"

// Severity indicates how urgent a finding is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Topic names the part of the cluster a finding is about.
type Topic string

const (
	TopicCluster    Topic = "cluster"
	TopicNode       Topic = "node"
	TopicIndex      Topic = "index"
	TopicLog        Topic = "log"
	TopicAssessment Topic = "assessment"
)

// Finding is one observation produced by an analyzer.
type Finding struct {
	Topic    Topic
	Severity Severity
	Title    string
	Evidence string
	Action   string
}

// Verdict is the top-level health judgment of a cluster.
type Verdict int

const (
	VerdictGood Verdict = iota
	VerdictDegraded
	VerdictCritical
)

func (v Verdict) String() string {
	switch v {
	case VerdictGood:
		return "good"
	case VerdictDegraded:
		return "degraded"
	case VerdictCritical:
		return "critical"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Priority orders optimization recommendations. Lower values come first.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Recommendation is a prioritized optimization suggestion.
type Recommendation struct {
	Priority    Priority
	Category    string
	Title       string
	Description string
	Impact      string
	Action      string
	Timing      string
}

// Confirmation is a setting or condition that may be intentional and needs a
// human to confirm it.
type Confirmation struct {
	Item       string
	Current    string
	Reason     string
	Suggestion string
	Detail     []string
}
