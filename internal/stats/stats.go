// Package stats derives per-process and aggregate metrics from a timeline.
package stats

import (
	"cpusched/internal/sched"
)

// ProcessStats describes how one process fared.
type ProcessStats struct {
	Name       string `json:"name"`
	Arrival    int    `json:"arrival"`
	Burst      int    `json:"burst"`
	Priority   int    `json:"priority"`
	FirstRun   int    `json:"first_run"`  // tick of the first interval
	Completion int    `json:"completion"` // tick right after the last interval
	Turnaround int    `json:"turnaround"` // completion - arrival
	Waiting    int    `json:"waiting"`    // turnaround - burst
	Response   int    `json:"response"`   // first run - arrival
}

// Summary aggregates a whole run.
type Summary struct {
	Processes       []ProcessStats `json:"processes"`
	AvgTurnaround   float64        `json:"avg_turnaround"`
	AvgWaiting      float64        `json:"avg_waiting"`
	AvgResponse     float64        `json:"avg_response"`
	Makespan        int            `json:"makespan"` // first arrival to last completion
	Busy            int            `json:"busy"`
	Utilization     float64        `json:"utilization"`
	Throughput      float64        `json:"throughput"` // finished processes per tick
	ContextSwitches int            `json:"context_switches"`
}

// Summarize computes metrics for the processes that appear in timeline, in
// the caller's order. Processes that never ran are left out.
func Summarize(processes []sched.Process, timeline []sched.Schedule) Summary {
	type span struct{ first, end int }
	spans := make(map[string]*span, len(processes))
	var sum Summary
	for _, s := range timeline {
		sp, ok := spans[s.ProcessName]
		if !ok {
			sp = &span{first: s.Start}
			spans[s.ProcessName] = sp
		}
		sp.end = s.End()
		sum.Busy += s.Duration
	}
	if len(timeline) > 1 {
		sum.ContextSwitches = len(timeline) - 1
	}

	firstArrival, lastEnd := 0, 0
	for _, p := range processes {
		sp, ok := spans[p.Name]
		if !ok {
			continue
		}
		st := ProcessStats{
			Name:       p.Name,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Priority:   p.Priority,
			FirstRun:   sp.first,
			Completion: sp.end,
			Turnaround: sp.end - p.Arrival,
			Waiting:    sp.end - p.Arrival - p.Burst,
			Response:   sp.first - p.Arrival,
		}
		if len(sum.Processes) == 0 || p.Arrival < firstArrival {
			firstArrival = p.Arrival
		}
		lastEnd = max(lastEnd, sp.end)
		sum.Processes = append(sum.Processes, st)

		sum.AvgTurnaround += float64(st.Turnaround)
		sum.AvgWaiting += float64(st.Waiting)
		sum.AvgResponse += float64(st.Response)
	}

	n := len(sum.Processes)
	if n == 0 {
		return sum
	}
	sum.AvgTurnaround /= float64(n)
	sum.AvgWaiting /= float64(n)
	sum.AvgResponse /= float64(n)

	sum.Makespan = lastEnd - firstArrival
	if sum.Makespan > 0 {
		sum.Utilization = float64(sum.Busy) / float64(sum.Makespan)
		sum.Throughput = float64(n) / float64(sum.Makespan)
	}
	return sum
}
