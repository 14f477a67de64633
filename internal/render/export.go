package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cpusched/internal/sched"
	"cpusched/internal/stats"
)

// Report is the JSON document written for one scheduling run.
type Report struct {
	RunID    string           `json:"run_id"`
	Policy   string           `json:"policy"`
	Quantum  int              `json:"quantum,omitempty"`
	Timeline []sched.Schedule `json:"timeline"`
	Summary  stats.Summary    `json:"summary"`
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// TimelineCSV writes one row per interval.
func TimelineCSV(w io.Writer, timeline []sched.Schedule) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"process", "start", "duration", "end"})
	for _, s := range timeline {
		_ = cw.Write([]string{
			s.ProcessName,
			strconv.Itoa(s.Start),
			strconv.Itoa(s.Duration),
			strconv.Itoa(s.End()),
		})
	}
	cw.Flush()
	return cw.Error()
}

// EventLog writes simulation events as CSV rows tagged with a run id.
type EventLog struct {
	runID  string
	writer *csv.Writer
}

// NewEventLog writes the header row and returns a log ready for events.
func NewEventLog(w io.Writer, runID string) (*EventLog, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "tick", "event", "process", "remaining", "ticks"}); err != nil {
		return nil, err
	}
	return &EventLog{runID: runID, writer: cw}, nil
}

// Write appends one event.
func (l *EventLog) Write(ev sched.StatusEvent) error {
	return l.writer.Write([]string{
		l.runID,
		strconv.Itoa(ev.Tick),
		ev.Kind.String(),
		ev.Process,
		strconv.Itoa(ev.Remaining),
		strconv.Itoa(ev.Ticks),
	})
}

// Flush pushes buffered rows to the underlying writer.
func (l *EventLog) Flush() error {
	l.writer.Flush()
	return l.writer.Error()
}

// EventLine formats an event for a human reading the trace.
func EventLine(ev sched.StatusEvent) string {
	if ev.Kind == sched.StatusIdle {
		return fmt.Sprintf("Tick: %07d [%s] => CPU idle for %04d ticks",
			ev.Tick, center(ev.Kind.String(), 16), ev.Ticks)
	}
	return fmt.Sprintf("Tick: %07d [%s] => Process: %s, Remaining: %04d ticks, Ran: %04d ticks",
		ev.Tick,
		center(ev.Kind.String(), 16),
		ev.Process,
		ev.Remaining,
		ev.Ticks,
	)
}
