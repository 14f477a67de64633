// internal/sched/schedulerEvent.go

package sched

// StatusKind represents the type of simulation event
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusEnqueue
	StatusDispatch
	StatusPreempt
	StatusFinish
)

// StatusEvent is emitted on key actions of a simulation run.
type StatusEvent struct {
	Tick      int        // simulated tick at which the event happened
	Kind      StatusKind // what happened
	Process   string     // empty for idle events
	Remaining int        // burst left after the event
	Ticks     int        // length of the idle gap or of the slice just run
}

// EventSink receives events in the order they happen. A nil sink drops them.
type EventSink func(StatusEvent)

func (sk StatusKind) String() string {
	switch sk {
	case StatusIdle:
		return "Idle"
	case StatusEnqueue:
		return "Enqueued"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}
