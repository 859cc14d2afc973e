package moderation

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFiresExactlyOnce(t *testing.T) {
	sched := NewScheduler()

	fired := make(chan struct{})
	var count atomic.Int32
	sched.Schedule(10*time.Millisecond, func() {
		count.Add(1)
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reversal did not fire")
	}

	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Fatalf("expected exactly one firing, got %d", got)
	}
	if got := sched.Pending(); got != 0 {
		t.Fatalf("expected no pending reversals after firing, got %d", got)
	}
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	sched := NewScheduler()

	var count atomic.Int32
	handle := sched.Schedule(20*time.Millisecond, func() {
		count.Add(1)
	})
	sched.Cancel(handle)

	time.Sleep(100 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Fatalf("cancelled reversal fired %d time(s)", got)
	}
	if got := sched.Pending(); got != 0 {
		t.Fatalf("expected no pending reversals after cancel, got %d", got)
	}
}

func TestSchedulerCancelTwiceIsHarmless(t *testing.T) {
	sched := NewScheduler()

	handle := sched.Schedule(time.Hour, func() {})
	sched.Cancel(handle)
	sched.Cancel(handle)

	if got := sched.Pending(); got != 0 {
		t.Fatalf("expected no pending reversals, got %d", got)
	}
}

func TestSchedulerReversalsAreIndependent(t *testing.T) {
	sched := NewScheduler()

	slow := sched.Schedule(time.Hour, func() {})
	fast := make(chan struct{})
	sched.Schedule(10*time.Millisecond, func() {
		close(fast)
	})

	select {
	case <-fast:
	case <-time.After(2 * time.Second):
		t.Fatal("fast reversal was blocked by a pending slow one")
	}

	if got := sched.Pending(); got != 1 {
		t.Fatalf("expected one remaining reversal, got %d", got)
	}
	sched.Cancel(slow)
}
