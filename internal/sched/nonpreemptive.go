package sched

// nonPreemptive picks the best ready process and lets it run to completion.
type nonPreemptive struct {
	kind Kind
	key  func(p *Process) int
}

func (p nonPreemptive) Kind() Kind { return p.kind }

func (p nonPreemptive) Schedule(processes []Process, quantum int) ([]Schedule, error) {
	return Trace(p, processes, quantum, nil)
}

func (p nonPreemptive) simulate(s *simulation, _ int) error {
	ready := newReadySet(s.procs, p.key)
	for {
		s.admit(ready.Add)
		idx, ok := ready.Min()
		if !ok {
			if !s.idle() {
				return nil
			}
			continue
		}
		ready.Remove(idx)

		burst := s.procs[idx].Burst
		s.emit(StatusDispatch, idx, 0)
		s.run(idx, burst)
		s.emit(StatusFinish, idx, burst)
	}
}
