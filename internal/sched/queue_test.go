package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyQueue_FIFOOrder(t *testing.T) {
	q := NewReadyQueue()
	assert.True(t, q.IsEmpty())

	for _, v := range []int{3, 1, 2} {
		q.Enqueue(v)
	}
	assert.Equal(t, 3, q.Size())

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, head)
	assert.Equal(t, 3, q.Size(), "peek must not remove")

	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestReadyQueue_Empty(t *testing.T) {
	q := NewReadyQueue()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	q.Enqueue(7)
	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 0, q.Size())
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(0)
	c.Advance(3)
	assert.Equal(t, 3, c.Now())

	c.Advance(-2)
	assert.Equal(t, 3, c.Now())

	assert.Equal(t, 0, c.AdvanceTo(1))
	assert.Equal(t, 3, c.Now())

	assert.Equal(t, 4, c.AdvanceTo(7))
	assert.Equal(t, 7, c.Now())
}
