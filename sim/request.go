// Defines the Request struct that models a single unit of work in the simulation.
// Tracks remaining processing ticks and remaining ticks until the client-side deadline.

package sim

import "fmt"

// Request models a single request's lifecycle in the simulation.
// Both counters only ever decrease and saturate at zero:
// - WorkTicks counts down to completion while a worker processes the request.
// - TimeoutTicks counts down to the client deadline, whether queued or running.
//
// A request whose timeout counter hits zero is not evicted anywhere; timeout is
// only observed when a worker finishes the request (lazy detection). This is
// the worst case for a synchronous queueing system: the client already gave up,
// but the server spent capacity finishing the work anyway.
type Request struct {
	WorkTicks    int64 // remaining processing ticks; zero means complete
	TimeoutTicks int64 // remaining ticks until the deadline; zero means timed out
}

// NewRequest creates a request with the given processing cost and timeout.
// It is possible (but unlikely, given the sampling distribution) for a request
// to cost more ticks than its timeout allows even without any queueing delay.
func NewRequest(work, timeout int64) *Request {
	if work < 0 {
		work = 0
	}
	if timeout < 0 {
		timeout = 0
	}
	return &Request{WorkTicks: work, TimeoutTicks: timeout}
}

// WaitingTick records one tick spent in the queue: the request moves closer to
// its deadline but makes no progress toward completion.
func (r *Request) WaitingTick() {
	if r.TimeoutTicks > 0 {
		r.TimeoutTicks--
	}
}

// WorkingTick records one tick spent on a worker: the request moves closer to
// both its deadline and completion.
func (r *Request) WorkingTick() {
	if r.TimeoutTicks > 0 {
		r.TimeoutTicks--
	}
	if r.WorkTicks > 0 {
		r.WorkTicks--
	}
}

// Done reports whether the request has no processing ticks left.
func (r *Request) Done() bool {
	return r.WorkTicks == 0
}

// TimedOut reports whether the request's deadline has passed.
func (r *Request) TimedOut() bool {
	return r.TimeoutTicks == 0
}

func (r *Request) String() string {
	return fmt.Sprintf("Request(work=%d, timeout=%d)", r.WorkTicks, r.TimeoutTicks)
}
