package sched

// Process is one schedulable unit of work handed to a policy.
type Process struct {
	Name     string `yaml:"name" json:"name"`
	Arrival  int    `yaml:"arrival" json:"arrival"`   // tick at which the process becomes eligible
	Burst    int    `yaml:"burst" json:"burst"`       // total service time still required
	Priority int    `yaml:"priority" json:"priority"` // lower value runs first (LPF only)
}

// Schedule is one contiguous interval of CPU time given to a process.
type Schedule struct {
	ProcessName string `json:"process"`
	Start       int    `json:"start"`
	Duration    int    `json:"duration"`
}

// End returns the tick right after the interval.
func (s Schedule) End() int { return s.Start + s.Duration }

// cloneProcesses copies the caller's slice so policies can burn down Burst
// without touching the caller's data.
func cloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// appendSlice adds an interval to the timeline, merging it into the last
// entry when the same process simply keeps the CPU.
func appendSlice(timeline []Schedule, name string, start, duration int) []Schedule {
	if n := len(timeline); n > 0 {
		last := &timeline[n-1]
		if last.ProcessName == name && last.End() == start {
			last.Duration += duration
			return timeline
		}
	}
	return append(timeline, Schedule{ProcessName: name, Start: start, Duration: duration})
}
