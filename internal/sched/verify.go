package sched

import (
	"errors"
	"fmt"
)

// VerifyTimeline checks a timeline produced for processes: every interval is
// positive and starts no earlier than its process arrived, intervals are
// ordered and disjoint, neighbours name different processes, and each process
// receives exactly its burst.
func VerifyTimeline(processes []Process, timeline []Schedule) error {
	byName := make(map[string]Process, len(processes))
	for _, p := range processes {
		byName[p.Name] = p
	}

	var errs []error
	served := make(map[string]int, len(processes))
	for i, s := range timeline {
		p, ok := byName[s.ProcessName]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("entry %d: unknown process %q", i, s.ProcessName))
			continue
		case s.Duration <= 0:
			errs = append(errs, fmt.Errorf("entry %d: non-positive duration %d", i, s.Duration))
		case s.Start < p.Arrival:
			errs = append(errs, fmt.Errorf("entry %d: %s starts at %d before arriving at %d", i, p.Name, s.Start, p.Arrival))
		}
		if i > 0 {
			prev := timeline[i-1]
			if s.Start < prev.End() {
				errs = append(errs, fmt.Errorf("entry %d: starts at %d inside previous interval ending at %d", i, s.Start, prev.End()))
			}
			if prev.ProcessName == s.ProcessName {
				errs = append(errs, fmt.Errorf("entry %d: %s not merged with previous entry", i, s.ProcessName))
			}
		}
		served[s.ProcessName] += s.Duration
	}

	for _, p := range processes {
		want := max(p.Burst, 0)
		if got := served[p.Name]; got != want {
			errs = append(errs, fmt.Errorf("%s: served %d ticks, burst is %d", p.Name, got, want))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeline, err)
	}
	return nil
}
