package sched

// preemptive re-selects the best ready process on every tick.
//
// Between two arrivals the selected process keeps winning: its key is either
// constant (priority) or shrinking (remaining burst). So instead of stepping
// one tick at a time the CPU is granted up to the next arrival, which yields
// the same timeline.
type preemptive struct {
	kind Kind
	key  func(p *Process) int
}

func (p preemptive) Kind() Kind { return p.kind }

func (p preemptive) Schedule(processes []Process, quantum int) ([]Schedule, error) {
	return Trace(p, processes, quantum, nil)
}

func (p preemptive) simulate(s *simulation, _ int) error {
	ready := newReadySet(s.procs, p.key)
	running, ran := -1, 0
	for {
		s.admit(ready.Add)
		idx, ok := ready.Min()
		if !ok {
			if !s.idle() {
				return nil
			}
			continue
		}

		if idx != running {
			if running >= 0 {
				s.emit(StatusPreempt, running, ran)
			}
			s.emit(StatusDispatch, idx, 0)
			running, ran = idx, 0
		}

		slice := s.procs[idx].Burst
		if at, ok := s.nextArrival(); ok && at-s.clock.Now() < slice {
			slice = at - s.clock.Now()
		}

		// the key may be the burst itself, so re-insert after running
		ready.Remove(idx)
		s.run(idx, slice)
		ran += slice
		if s.procs[idx].Burst > 0 {
			ready.Add(idx)
			continue
		}
		s.emit(StatusFinish, idx, ran)
		running = -1
	}
}
