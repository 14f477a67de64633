// internal/sched/scheduler.go

package sched

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// simulation holds the working state of one scheduling run.
type simulation struct {
	procs    []Process  // private copies in caller order; Burst is burned down here
	arrivals []int      // indices of processes with work to do, stable-sorted by arrival
	next     int        // first entry of arrivals not yet admitted
	clock    *TickClock // simulated time
	timeline []Schedule
	sink     EventSink
}

func newSimulation(processes []Process, sink EventSink) *simulation {
	procs := cloneProcesses(processes)

	// processes without work are finished before they start
	arrivals := make([]int, 0, len(procs))
	for i := range procs {
		if procs[i].Burst > 0 {
			arrivals = append(arrivals, i)
		}
	}
	sort.SliceStable(arrivals, func(a, b int) bool {
		return procs[arrivals[a]].Arrival < procs[arrivals[b]].Arrival
	})

	return &simulation{
		procs:    procs,
		arrivals: arrivals,
		clock:    NewTickClock(0),
		timeline: make([]Schedule, 0, len(arrivals)),
		sink:     sink,
	}
}

// admit hands every process that has arrived by now to add, in arrival order.
func (s *simulation) admit(add func(idx int)) {
	for s.next < len(s.arrivals) {
		idx := s.arrivals[s.next]
		if s.procs[idx].Arrival > s.clock.Now() {
			return
		}
		s.next++
		s.emit(StatusEnqueue, idx, 0)
		add(idx)
	}
}

// hasArrivals reports whether some process has not been admitted yet.
func (s *simulation) hasArrivals() bool { return s.next < len(s.arrivals) }

// nextArrival returns the arrival tick of the next process to be admitted.
func (s *simulation) nextArrival() (int, bool) {
	if !s.hasArrivals() {
		return 0, false
	}
	return s.procs[s.arrivals[s.next]].Arrival, true
}

// idle leaves the CPU unused until the next arrival. It returns false when
// nothing is left to arrive.
func (s *simulation) idle() bool {
	at, ok := s.nextArrival()
	if !ok {
		return false
	}
	start := s.clock.Now()
	if moved := s.clock.AdvanceTo(at); moved > 0 {
		s.emitAt(start, StatusIdle, -1, moved)
	}
	return true
}

// run gives the CPU to procs[idx] for the given number of ticks.
func (s *simulation) run(idx, ticks int) {
	p := &s.procs[idx]
	s.timeline = appendSlice(s.timeline, p.Name, s.clock.Now(), ticks)
	p.Burst -= ticks
	s.clock.Advance(ticks)
}

func (s *simulation) emit(kind StatusKind, idx, ticks int) {
	s.emitAt(s.clock.Now(), kind, idx, ticks)
}

func (s *simulation) emitAt(tick int, kind StatusKind, idx, ticks int) {
	if s.sink == nil {
		return
	}
	ev := StatusEvent{Tick: tick, Kind: kind, Ticks: ticks}
	if idx >= 0 {
		ev.Process = s.procs[idx].Name
		ev.Remaining = s.procs[idx].Burst
	}
	s.sink(ev)
}

// readySet keeps arrived processes ordered by a policy key. Ties go to the
// process listed first by the caller, the same answer a linear minimum scan
// over the ready processes would give.
type readySet struct {
	rbt   *redblacktree.Tree // red-black tree ordered by key and input index
	procs []Process
	key   func(p *Process) int
}

func newReadySet(procs []Process, key func(p *Process) int) *readySet {
	return &readySet{
		rbt:   redblacktree.NewWith(cmp),
		procs: procs,
		key:   key,
	}
}

// Add inserts procs[idx] under its current key.
func (r *readySet) Add(idx int) {
	r.rbt.Put(r.nodeKey(idx), idx)
}

// Remove drops procs[idx]. It must be called before the key field changes.
func (r *readySet) Remove(idx int) {
	r.rbt.Remove(r.nodeKey(idx))
}

// Min returns the best ready process without removing it.
func (r *readySet) Min() (int, bool) {
	node := r.rbt.Left()
	if node == nil {
		return 0, false
	}
	return node.Value.(int), true
}

func (r *readySet) Empty() bool { return r.rbt.Empty() }

func (r *readySet) nodeKey(idx int) nodeKey {
	return nodeKey{key: r.key(&r.procs[idx]), idx: idx}
}

// nodeKey is used as a key in the red-black tree.
type nodeKey struct {
	key int
	idx int
}

// nodeKey implements the Comparable interface for red-black tree ordering.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.key < kb.key:
		return -1
	case ka.key > kb.key:
		return 1
	case ka.idx < kb.idx:
		return -1
	case ka.idx > kb.idx:
		return 1
	default:
		return 0
	}
}
