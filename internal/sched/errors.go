package sched

import "errors"

var (
	// ErrEmptyQueue is returned by ReadyQueue when dequeuing or peeking an empty queue.
	ErrEmptyQueue = errors.New("ready queue is empty")

	// ErrInvalidQuantum is returned by round-robin when the quantum is not positive.
	ErrInvalidQuantum = errors.New("quantum must be positive")

	// ErrUnknownPolicyKey is returned when a registry lookup misses.
	ErrUnknownPolicyKey = errors.New("unknown policy key")

	// ErrInvalidTimeline is returned by VerifyTimeline.
	ErrInvalidTimeline = errors.New("invalid timeline")
)
