// Implements the Worker, a single unit of simulated processing capacity.

package sim

// Worker holds at most one in-flight request. A nil current request means the
// worker is idle. The idle/busy transition is the whole state machine: Assign
// moves it to busy, a completing Tick moves it back to idle.
type Worker struct {
	current *Request
}

// NewWorker creates an idle worker.
func NewWorker() *Worker {
	return &Worker{}
}

// Idle reports whether the worker has no request in flight.
func (w *Worker) Idle() bool {
	return w.current == nil
}

// Assign hands a request directly to an idle worker. Assignment happens in
// the admission phase, so the request receives its first working tick in the
// same engine tick, during the worker phase.
func (w *Worker) Assign(r *Request) {
	if w.current != nil {
		panic("Assign: worker already holds a request")
	}
	w.current = r
}

// Current returns the in-flight request, or nil if the worker is idle.
func (w *Worker) Current() *Request {
	return w.current
}

// Tick advances the worker by one tick. A busy worker spends the tick on its
// request; if that finishes the request, the request is returned and the
// worker is idle for the next tick (it does not pull new work this tick).
// An idle worker instead pulls the next request from the queue, performing no
// work on it yet: the request already aged while queued, so it is not ticked
// here either.
//
// Returns the finished request, or nil if nothing completed this tick.
func (w *Worker) Tick(q *RequestQueue) *Request {
	if w.current != nil {
		w.current.WorkingTick()
		if w.current.Done() {
			finished := w.current
			w.current = nil
			return finished
		}
		return nil
	}

	w.current = q.Pop()
	return nil
}
