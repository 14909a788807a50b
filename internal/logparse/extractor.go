package logparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLineBytes bounds the memory one line may use. Longer lines are
// consumed and dropped.
const DefaultMaxLineBytes = 1 << 20

// State is the extractor's position in its input.
type State int

const (
	// StateScanning reads lines and matches each one against the grammar
	// independently. There is no continuation state.
	StateScanning State = iota
	// StateDone is entered at end of input, on a read error, or when the
	// consumer asks to stop.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts what one or more Scan calls saw.
type Stats struct {
	Lines     int // non-empty lines read
	Matched   int // lines that parsed into an event
	Dropped   int // lines that did not parse, including overlong lines
	Oversized int // the part of Dropped over the line size limit
	Filtered  int // events discarded by the level or line filter
}

// Extractor streams log files line by line and hands matching events to a
// callback. It is not safe for concurrent use.
type Extractor struct {
	levels     map[Level]struct{}
	lineFilter func(string) bool
	maxLine    int
	state      State
	stats      Stats
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLevels keeps only events whose level is listed. Without it every level
// is kept.
func WithLevels(levels ...Level) Option {
	return func(e *Extractor) {
		e.levels = make(map[Level]struct{}, len(levels))
		for _, l := range levels {
			e.levels[l] = struct{}{}
		}
	}
}

// WithLineFilter skips raw lines for which keep returns false before they
// are parsed.
func WithLineFilter(keep func(line string) bool) Option {
	return func(e *Extractor) {
		e.lineFilter = keep
	}
}

// WithMaxLineBytes overrides DefaultMaxLineBytes. Values <= 0 are ignored.
func WithMaxLineBytes(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxLine = n
		}
	}
}

// NewExtractor returns an Extractor in StateScanning.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxLine: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the state the last Scan ended in.
func (e *Extractor) State() State {
	return e.state
}

// Stats returns counters accumulated over all Scan calls.
func (e *Extractor) Stats() Stats {
	return e.stats
}

// Scan reads r until EOF and calls fn for every event that passes the
// filters, in input order. fn returning false stops the scan without error.
func (e *Extractor) Scan(r io.Reader, source string, fn func(Event) bool) error {
	br := bufio.NewReaderSize(r, 64*1024)
	e.state = StateScanning
	for e.state == StateScanning {
		line, tooLong, err := e.readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			e.state = StateDone
			return fmt.Errorf("read %s: %w", source, err)
		}
		if len(line) > 0 || tooLong {
			if !e.step(line, tooLong, source, fn) {
				e.state = StateDone
			}
		}
		if errors.Is(err, io.EOF) {
			e.state = StateDone
		}
	}
	return nil
}

// step handles one line in StateScanning and reports whether to continue.
func (e *Extractor) step(line []byte, tooLong bool, source string, fn func(Event) bool) bool {
	e.stats.Lines++
	if tooLong {
		e.stats.Dropped++
		e.stats.Oversized++
		return true
	}
	s := string(line)
	if e.lineFilter != nil && !e.lineFilter(s) {
		e.stats.Filtered++
		return true
	}
	ev, ok := Parse(s, source)
	if !ok {
		e.stats.Dropped++
		return true
	}
	e.stats.Matched++
	if e.levels != nil {
		if _, keep := e.levels[ev.Level]; !keep {
			e.stats.Filtered++
			return true
		}
	}
	return fn(ev)
}

// readLine returns the next line without its terminator. A line longer than
// maxLine is consumed to its end and reported with tooLong set.
func (e *Extractor) readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if tooLong {
				return nil, true, rerr
			}
			return buf, false, rerr
		}
		if !tooLong {
			if len(buf)+len(chunk) > e.maxLine {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			if tooLong {
				return nil, true, nil
			}
			return buf, false, nil
		}
	}
}
