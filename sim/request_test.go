package sim

import "testing"

func TestRequest_WorkingTick_DecrementsBothCounters(t *testing.T) {
	// GIVEN a request with 3 work ticks and 5 timeout ticks
	r := NewRequest(3, 5)

	// WHEN one working tick passes
	r.WorkingTick()

	// THEN both counters decreased by one
	if r.WorkTicks != 2 {
		t.Errorf("WorkTicks: got %d, want 2", r.WorkTicks)
	}
	if r.TimeoutTicks != 4 {
		t.Errorf("TimeoutTicks: got %d, want 4", r.TimeoutTicks)
	}
}

func TestRequest_WaitingTick_OnlyAgesTimeout(t *testing.T) {
	// GIVEN a queued request
	r := NewRequest(3, 5)

	// WHEN one waiting tick passes
	r.WaitingTick()

	// THEN only the timeout counter moved
	if r.WorkTicks != 3 {
		t.Errorf("WaitingTick touched WorkTicks: got %d, want 3", r.WorkTicks)
	}
	if r.TimeoutTicks != 4 {
		t.Errorf("TimeoutTicks: got %d, want 4", r.TimeoutTicks)
	}
}

func TestRequest_CountersSaturateAtZero(t *testing.T) {
	// GIVEN a request already at zero on both counters
	r := NewRequest(0, 0)

	// WHEN further ticks pass in both states
	r.WaitingTick()
	r.WorkingTick()
	r.WorkingTick()

	// THEN neither counter underflows
	if r.WorkTicks != 0 {
		t.Errorf("WorkTicks underflowed: got %d", r.WorkTicks)
	}
	if r.TimeoutTicks != 0 {
		t.Errorf("TimeoutTicks underflowed: got %d", r.TimeoutTicks)
	}
}

func TestRequest_CountersNeverIncrease(t *testing.T) {
	// GIVEN a fresh request
	r := NewRequest(10, 20)

	prevWork, prevTimeout := r.WorkTicks, r.TimeoutTicks
	for i := 0; i < 30; i++ {
		if i%2 == 0 {
			r.WaitingTick()
		} else {
			r.WorkingTick()
		}
		if r.WorkTicks > prevWork || r.WorkTicks < 0 {
			t.Fatalf("WorkTicks not monotone non-increasing: %d -> %d", prevWork, r.WorkTicks)
		}
		if r.TimeoutTicks > prevTimeout || r.TimeoutTicks < 0 {
			t.Fatalf("TimeoutTicks not monotone non-increasing: %d -> %d", prevTimeout, r.TimeoutTicks)
		}
		prevWork, prevTimeout = r.WorkTicks, r.TimeoutTicks
	}
}

func TestRequest_ZeroWorkIsImmediatelyDone(t *testing.T) {
	// A negative latency draw is clamped to zero work before construction;
	// such a request is complete without ever being worked on.
	r := NewRequest(0, 100)
	if !r.Done() {
		t.Error("request with zero work should be Done")
	}
	if r.TimedOut() {
		t.Error("request with remaining timeout should not be TimedOut")
	}
}

func TestRequest_NewClampsNegativeInputs(t *testing.T) {
	r := NewRequest(-3, -7)
	if r.WorkTicks != 0 || r.TimeoutTicks != 0 {
		t.Errorf("negative inputs not clamped: work=%d timeout=%d", r.WorkTicks, r.TimeoutTicks)
	}
}

func TestRequest_TimedOutAtZero(t *testing.T) {
	// GIVEN a request with a 2-tick deadline
	r := NewRequest(5, 2)

	// WHEN it waits out its deadline in the queue
	r.WaitingTick()
	if r.TimedOut() {
		t.Error("TimedOut before the deadline elapsed")
	}
	r.WaitingTick()

	// THEN the deadline has passed but the request is still serviceable
	if !r.TimedOut() {
		t.Error("TimedOut not reported at zero timeout ticks")
	}
	if r.Done() {
		t.Error("timed-out request should still have work remaining")
	}
}
