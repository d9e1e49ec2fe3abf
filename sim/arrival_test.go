package sim

import "testing"

func drainTick(a *ArrivalProcess) int {
	a.Accrue()
	n := 0
	for a.TakeOne() {
		n++
	}
	return n
}

func TestArrivalProcess_WholeRateEmitsWholeRequests(t *testing.T) {
	// GIVEN a rate of exactly 3 per tick
	a := NewArrivalProcess(3, &fixedSampler{normal: 3})

	// WHEN several ticks pass
	for tick := 0; tick < 5; tick++ {
		if got := drainTick(a); got != 3 {
			t.Fatalf("tick %d: got %d arrivals, want 3", tick, got)
		}
	}
}

func TestArrivalProcess_FractionsCompoundAcrossTicks(t *testing.T) {
	// GIVEN a fractional draw of 0.6 per tick
	a := NewArrivalProcess(0.6, &fixedSampler{normal: 0.6})

	// WHEN ten ticks pass
	total := 0
	for tick := 0; tick < 10; tick++ {
		total += drainTick(a)
	}

	// THEN six requests arrived in total: a positive backlog emits a request
	// immediately and carries the overdraft forward, so no fraction is lost
	if total != 6 {
		t.Errorf("total arrivals: got %d, want 6", total)
	}
}

func TestArrivalProcess_NegativeDrawSuppressesArrivals(t *testing.T) {
	// GIVEN a negative draw followed by positive ones
	a := NewArrivalProcess(1, &scriptSampler{normals: []float64{-2, 1, 1, 1}})

	// WHEN four ticks pass
	counts := make([]int, 0, 4)
	for tick := 0; tick < 4; tick++ {
		counts = append(counts, drainTick(a))
	}

	// THEN the debt is paid back before any request is emitted
	want := []int{0, 0, 0, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("tick %d: got %d arrivals, want %d (counts %v)", i, counts[i], want[i], counts)
		}
	}
}

func TestArrivalProcess_ReinjectAddsExactlyOne(t *testing.T) {
	// GIVEN an idle arrival process
	a := NewArrivalProcess(1, nullSampler{})

	// WHEN a retry is re-injected
	a.Reinject()

	// THEN exactly one request can be taken
	if !a.TakeOne() {
		t.Fatal("re-injected request not available")
	}
	if a.TakeOne() {
		t.Error("re-injection produced more than one request")
	}
	if a.Backlog() != 0 {
		t.Errorf("backlog after drain: got %v, want 0", a.Backlog())
	}
}

func TestArrivalProcess_TakeOneRequiresPositiveBacklog(t *testing.T) {
	a := NewArrivalProcess(1, nullSampler{})
	a.Accrue() // draws 0
	if a.TakeOne() {
		t.Error("TakeOne emitted a request from an empty backlog")
	}
}
