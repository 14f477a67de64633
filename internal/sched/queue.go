package sched

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// ReadyQueue is the FIFO of arrived, unfinished processes used by round-robin.
// Items are indices into the simulation's working process slice.
type ReadyQueue struct {
	q *linkedlistqueue.Queue
}

// NewReadyQueue returns an empty queue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{q: linkedlistqueue.New()}
}

// Enqueue appends an item at the tail.
func (rq *ReadyQueue) Enqueue(item int) {
	rq.q.Enqueue(item)
}

// Dequeue removes and returns the earliest enqueued item.
func (rq *ReadyQueue) Dequeue() (int, error) {
	v, ok := rq.q.Dequeue()
	if !ok {
		return 0, ErrEmptyQueue
	}
	return v.(int), nil
}

// Peek returns the earliest enqueued item without removing it.
func (rq *ReadyQueue) Peek() (int, error) {
	v, ok := rq.q.Peek()
	if !ok {
		return 0, ErrEmptyQueue
	}
	return v.(int), nil
}

func (rq *ReadyQueue) IsEmpty() bool { return rq.q.Empty() }

func (rq *ReadyQueue) Size() int { return rq.q.Size() }
