package tui

import "strings"

// Heading is one ATX heading of a report.
type Heading struct {
	Level int
	Title string
	Line  int // zero-based line in the Markdown source
}

type outlineState int

const (
	outsideTable outlineState = iota
	insideTable
	insideFence
)

// Outline lists the headings of md in order. A table runs from its first
// pipe row to the next blank line; lines in it are cells even when they
// start with '#'. Fenced code blocks are skipped too.
func Outline(md string) []Heading {
	var (
		out   []Heading
		state = outsideTable
	)
	for i, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(raw)
		switch state {
		case insideFence:
			if strings.HasPrefix(line, "```") {
				state = outsideTable
			}
		case insideTable:
			if line == "" {
				state = outsideTable
			}
		case outsideTable:
			switch {
			case strings.HasPrefix(line, "```"):
				state = insideFence
			case strings.HasPrefix(line, "|"):
				state = insideTable
			default:
				if h, ok := parseHeading(line); ok {
					h.Line = i
					out = append(out, h)
				}
			}
		}
	}
	return out
}

// parseHeading recognizes "# Title" through "###### Title".
func parseHeading(line string) (Heading, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return Heading{}, false
	}
	title := strings.TrimSpace(strings.TrimRight(line[level:], "#"))
	if title == "" {
		return Heading{}, false
	}
	return Heading{Level: level, Title: title}, true
}

// anchorLines maps every heading to the first rendered line at or after the
// previous anchor that contains its title. Headings that cannot be found keep
// the previous anchor.
func anchorLines(headings []Heading, rendered []string) []int {
	anchors := make([]int, len(headings))
	pos := 0
	for i, h := range headings {
		anchors[i] = pos
		for j := pos; j < len(rendered); j++ {
			if strings.Contains(rendered[j], h.Title) {
				anchors[i] = j
				pos = j
				break
			}
		}
	}
	return anchors
}
