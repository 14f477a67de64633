package sched

import "fmt"

// roundRobin serves arrived processes from a FIFO, one quantum at a time.
type roundRobin struct{}

func (roundRobin) Kind() Kind { return KindRoundRobin }

func (p roundRobin) Schedule(processes []Process, quantum int) ([]Schedule, error) {
	return Trace(p, processes, quantum, nil)
}

func (roundRobin) simulate(s *simulation, quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}

	queue := NewReadyQueue()
	for s.hasArrivals() || !queue.IsEmpty() {
		s.admit(queue.Enqueue)
		if queue.IsEmpty() {
			s.idle()
			continue
		}

		idx, err := queue.Dequeue()
		if err != nil {
			return err
		}
		slice := min(quantum, s.procs[idx].Burst)
		s.emit(StatusDispatch, idx, 0)
		s.run(idx, slice)

		// arrivals during the slice queue up ahead of the process that just ran
		s.admit(queue.Enqueue)
		if s.procs[idx].Burst > 0 {
			s.emit(StatusPreempt, idx, slice)
			queue.Enqueue(idx)
		} else {
			s.emit(StatusFinish, idx, slice)
		}
	}
	return nil
}
