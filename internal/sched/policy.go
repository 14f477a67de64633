package sched

// Kind enumerates the scheduling policies.
type Kind int

const (
	KindFCFS Kind = iota
	KindLPFNonPreemptive
	KindLPFPreemptive
	KindSRTFNonPreemptive
	KindSRTFPreemptive
	KindRoundRobin
)

func (k Kind) String() string {
	switch k {
	case KindFCFS:
		return "First Come First Served"
	case KindLPFNonPreemptive:
		return "Lowest Priority First (non-preemptive)"
	case KindLPFPreemptive:
		return "Lowest Priority First (preemptive)"
	case KindSRTFNonPreemptive:
		return "Shortest Remaining Time First (non-preemptive)"
	case KindSRTFPreemptive:
		return "Shortest Remaining Time First (preemptive)"
	case KindRoundRobin:
		return "Round Robin"
	default:
		return "Unknown"
	}
}

// Policy turns a process set into a CPU timeline.
//
// Schedule never modifies processes. The quantum is only read by round-robin.
// On error the returned timeline is nil.
type Policy interface {
	Kind() Kind
	Schedule(processes []Process, quantum int) ([]Schedule, error)

	simulate(s *simulation, quantum int) error
}

// Trace runs p like Schedule does and reports every simulation event to sink.
func Trace(p Policy, processes []Process, quantum int, sink EventSink) ([]Schedule, error) {
	s := newSimulation(processes, sink)
	if err := p.simulate(s, quantum); err != nil {
		return nil, err
	}
	return s.timeline, nil
}

func byArrival(p *Process) int  { return p.Arrival }
func byPriority(p *Process) int { return p.Priority }
func byBurst(p *Process) int    { return p.Burst }

// FCFS runs processes to completion in arrival order.
func FCFS() Policy {
	return nonPreemptive{kind: KindFCFS, key: byArrival}
}

// LPFNonPreemptive runs the ready process with the lowest priority value to completion.
func LPFNonPreemptive() Policy {
	return nonPreemptive{kind: KindLPFNonPreemptive, key: byPriority}
}

// SRTFNonPreemptive runs the ready process with the least remaining burst to
// completion. Arrivals never interrupt it.
func SRTFNonPreemptive() Policy {
	return nonPreemptive{kind: KindSRTFNonPreemptive, key: byBurst}
}

// LPFPreemptive re-selects the lowest priority value on every tick.
func LPFPreemptive() Policy {
	return preemptive{kind: KindLPFPreemptive, key: byPriority}
}

// SRTFPreemptive re-selects the least remaining burst on every tick.
func SRTFPreemptive() Policy {
	return preemptive{kind: KindSRTFPreemptive, key: byBurst}
}

// RoundRobin rotates arrived processes through the CPU one quantum at a time.
func RoundRobin() Policy {
	return roundRobin{}
}
