package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPolicies() []Policy {
	return []Policy{
		FCFS(),
		LPFNonPreemptive(),
		LPFPreemptive(),
		SRTFNonPreemptive(),
		SRTFPreemptive(),
		RoundRobin(),
	}
}

func TestFCFS_RunsInArrivalOrder(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 3},
		{Name: "B", Arrival: 1, Burst: 2},
	}

	got, err := FCFS().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 3},
		{ProcessName: "B", Start: 3, Duration: 2},
	}, got)
}

func TestFCFS_UnsortedInputAndGap(t *testing.T) {
	procs := []Process{
		{Name: "B", Arrival: 2, Burst: 1},
		{Name: "A", Arrival: 0, Burst: 1},
	}

	got, err := FCFS().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 1},
		{ProcessName: "B", Start: 2, Duration: 1},
	}, got)
}

func TestFCFS_TieGoesToInputOrder(t *testing.T) {
	procs := []Process{
		{Name: "B", Arrival: 0, Burst: 1},
		{Name: "A", Arrival: 0, Burst: 1},
	}

	got, err := FCFS().Schedule(procs, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ProcessName)
	assert.Equal(t, "A", got[1].ProcessName)
}

func TestLPFNonPreemptive(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 3, Priority: 3},
		{Name: "B", Arrival: 1, Burst: 2, Priority: 1},
		{Name: "C", Arrival: 1, Burst: 1, Priority: 2},
	}

	got, err := LPFNonPreemptive().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 3},
		{ProcessName: "B", Start: 3, Duration: 2},
		{ProcessName: "C", Start: 5, Duration: 1},
	}, got)
}

func TestSRTFNonPreemptive_PicksShortest(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 5},
		{Name: "B", Arrival: 0, Burst: 2},
	}

	got, err := SRTFNonPreemptive().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "B", Start: 0, Duration: 2},
		{ProcessName: "A", Start: 2, Duration: 5},
	}, got)
}

func TestSRTFNonPreemptive_DoesNotPreempt(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 5},
		{Name: "B", Arrival: 1, Burst: 1},
	}

	got, err := SRTFNonPreemptive().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 5},
		{ProcessName: "B", Start: 5, Duration: 1},
	}, got)
}

func TestLPFPreemptive_Preempts(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 4, Priority: 2},
		{Name: "B", Arrival: 2, Burst: 2, Priority: 1},
	}

	got, err := LPFPreemptive().Schedule(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 2},
		{ProcessName: "B", Start: 2, Duration: 2},
		{ProcessName: "A", Start: 4, Duration: 2},
	}, got)
}

func TestSRTFPreemptive(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 5},
		{Name: "B", Arrival: 1, Burst: 2},
		{Name: "C", Arrival: 2, Burst: 1},
	}

	got, err := SRTFPreemptive().Schedule(procs, 0)
	require.NoError(t, err)
	// at tick 2 B and C both need one tick; B is listed first
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 1},
		{ProcessName: "B", Start: 1, Duration: 2},
		{ProcessName: "C", Start: 3, Duration: 1},
		{ProcessName: "A", Start: 4, Duration: 4},
	}, got)
}

func TestRoundRobin_Rotates(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 4},
		{Name: "B", Arrival: 0, Burst: 4},
	}

	got, err := RoundRobin().Schedule(procs, 2)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 2},
		{ProcessName: "B", Start: 2, Duration: 2},
		{ProcessName: "A", Start: 4, Duration: 2},
		{ProcessName: "B", Start: 6, Duration: 2},
	}, got)
}

func TestRoundRobin_ArrivalsQueueAheadOfExpiredProcess(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 3},
		{Name: "B", Arrival: 1, Burst: 2},
	}

	got, err := RoundRobin().Schedule(procs, 2)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{
		{ProcessName: "A", Start: 0, Duration: 2},
		{ProcessName: "B", Start: 2, Duration: 2},
		{ProcessName: "A", Start: 4, Duration: 1},
	}, got)
}

func TestRoundRobin_MergesConsecutiveSlices(t *testing.T) {
	procs := []Process{{Name: "A", Arrival: 0, Burst: 5}}

	got, err := RoundRobin().Schedule(procs, 2)
	require.NoError(t, err)
	assert.Equal(t, []Schedule{{ProcessName: "A", Start: 0, Duration: 5}}, got)
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	procs := []Process{{Name: "A", Arrival: 0, Burst: 2}}

	for _, q := range []int{0, -1} {
		got, err := RoundRobin().Schedule(procs, q)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
		assert.Nil(t, got)
	}
}

func TestQuantumIgnoredOutsideRoundRobin(t *testing.T) {
	procs := []Process{{Name: "A", Arrival: 0, Burst: 2}}

	for _, p := range allPolicies()[:5] {
		_, err := p.Schedule(procs, -5)
		assert.NoError(t, err, p.Kind().String())
	}
}

func TestIdleUntilFirstArrival(t *testing.T) {
	procs := []Process{{Name: "late", Arrival: 5, Burst: 3}}

	for _, p := range allPolicies() {
		got, err := p.Schedule(procs, 2)
		require.NoError(t, err)
		assert.Equal(t, []Schedule{{ProcessName: "late", Start: 5, Duration: 3}}, got, p.Kind().String())
	}
}

func TestZeroBurstIsSkipped(t *testing.T) {
	procs := []Process{
		{Name: "done", Arrival: 0, Burst: 0},
		{Name: "work", Arrival: 0, Burst: 2},
	}

	for _, p := range allPolicies() {
		got, err := p.Schedule(procs, 1)
		require.NoError(t, err)
		assert.Equal(t, []Schedule{{ProcessName: "work", Start: 0, Duration: 2}}, got, p.Kind().String())
	}
}

func TestEmptyInput(t *testing.T) {
	for _, p := range allPolicies() {
		got, err := p.Schedule(nil, 1)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 4, Priority: 2},
		{Name: "B", Arrival: 1, Burst: 3, Priority: 1},
		{Name: "C", Arrival: 2, Burst: 1, Priority: 3},
	}
	want := cloneProcesses(procs)

	for _, p := range allPolicies() {
		_, err := p.Schedule(procs, 2)
		require.NoError(t, err)
		assert.Equal(t, want, procs, p.Kind().String())
	}
}

func TestTrace_LPFPreemptiveEvents(t *testing.T) {
	procs := []Process{
		{Name: "A", Arrival: 0, Burst: 4, Priority: 2},
		{Name: "B", Arrival: 2, Burst: 2, Priority: 1},
	}

	var events []StatusEvent
	got, err := Trace(LPFPreemptive(), procs, 0, func(ev StatusEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	assert.Equal(t, []StatusEvent{
		{Tick: 0, Kind: StatusEnqueue, Process: "A", Remaining: 4},
		{Tick: 0, Kind: StatusDispatch, Process: "A", Remaining: 4},
		{Tick: 2, Kind: StatusEnqueue, Process: "B", Remaining: 2},
		{Tick: 2, Kind: StatusPreempt, Process: "A", Remaining: 2, Ticks: 2},
		{Tick: 2, Kind: StatusDispatch, Process: "B", Remaining: 2},
		{Tick: 4, Kind: StatusFinish, Process: "B", Remaining: 0, Ticks: 2},
		{Tick: 4, Kind: StatusDispatch, Process: "A", Remaining: 2},
		{Tick: 6, Kind: StatusFinish, Process: "A", Remaining: 0, Ticks: 2},
	}, events)
}

func TestTrace_IdleEvent(t *testing.T) {
	procs := []Process{{Name: "late", Arrival: 5, Burst: 3}}

	var kinds []StatusKind
	var idle StatusEvent
	_, err := Trace(FCFS(), procs, 0, func(ev StatusEvent) {
		kinds = append(kinds, ev.Kind)
		if ev.Kind == StatusIdle {
			idle = ev
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []StatusKind{StatusIdle, StatusEnqueue, StatusDispatch, StatusFinish}, kinds)
	assert.Equal(t, StatusEvent{Tick: 0, Kind: StatusIdle, Ticks: 5}, idle)
}

func TestTrace_RoundRobinInvalidQuantumEmitsNothing(t *testing.T) {
	called := false
	_, err := Trace(RoundRobin(), []Process{{Name: "A", Burst: 1}}, 0, func(StatusEvent) { called = true })
	assert.ErrorIs(t, err, ErrInvalidQuantum)
	assert.False(t, called)
}

func TestStatusKindString(t *testing.T) {
	assert.Equal(t, "Dispatch", StatusDispatch.String())
	assert.Equal(t, "Enqueued", StatusEnqueue.String())
	assert.Equal(t, "Unknown", StatusKind(42).String())
}
