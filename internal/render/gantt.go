// Package render formats timelines, metrics and events for people and tools.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpusched/internal/sched"
)

const (
	minCellWidth = 6
	idleLabel    = "-"
)

type segment struct {
	label      string
	start, end int
}

// segments fills the gaps between intervals with idle segments.
func segments(timeline []sched.Schedule) []segment {
	out := make([]segment, 0, len(timeline))
	at := 0
	for _, s := range timeline {
		if s.Start > at {
			out = append(out, segment{label: idleLabel, start: at, end: s.Start})
		}
		out = append(out, segment{label: s.ProcessName, start: s.Start, end: s.End()})
		at = s.End()
	}
	return out
}

// Gantt draws the timeline as one bar of cells with the tick of every
// boundary underneath. Idle time shows as "-".
func Gantt(w io.Writer, timeline []sched.Schedule) error {
	if len(timeline) == 0 {
		_, err := fmt.Fprintln(w, "(empty timeline)")
		return err
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	segs := segments(timeline)
	for _, seg := range segs {
		width := max(len(seg.label)+2, minCellWidth)
		bar.WriteString(center(seg.label, width))
		bar.WriteString("|")

		tick := strconv.Itoa(seg.start)
		ticks.WriteString(tick)
		ticks.WriteString(strings.Repeat(" ", max(width+1-len(tick), 1)))
	}
	ticks.WriteString(strconv.Itoa(segs[len(segs)-1].end))

	_, err := fmt.Fprintf(w, "%s\n%s\n", bar.String(), ticks.String())
	return err
}

// Title prints a heading framed by dashes.
func Title(w io.Writer, title string) error {
	rule := strings.Repeat("-", len(title)+4)
	_, err := fmt.Fprintf(w, "%s\n  %s\n%s\n", rule, title, rule)
	return err
}

// center pads str with spaces on both sides to the given width.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}
