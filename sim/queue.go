// Implements the bounded RequestQueue, which holds all requests waiting for a
// free worker. Requests are enqueued on arrival when every worker is busy.

package sim

import (
	"fmt"
	"strings"
)

// RequestQueue is a bounded buffer of requests waiting to be dispatched to a
// worker. Insertion always happens at the back; the configured discipline
// decides which end Pop removes from (FIFO pops the front, LIFO the back).
//
// The queue never exceeds its capacity: Offer reports whether the request was
// admitted, and the caller decides what a rejection means.
type RequestQueue struct {
	items      []*Request
	capacity   int
	discipline Discipline
}

// NewRequestQueue creates an empty queue with the given capacity and
// discipline. A capacity of zero is legal and rejects every Offer.
func NewRequestQueue(capacity int, discipline Discipline) *RequestQueue {
	return &RequestQueue{
		items:      make([]*Request, 0, capacity),
		capacity:   capacity,
		discipline: discipline,
	}
}

// Offer appends a request at the back of the queue if there is spare capacity.
// Returns false when the queue is full; the request is not retained.
func (q *RequestQueue) Offer(r *Request) bool {
	if r == nil {
		panic("Offer: request must not be nil")
	}
	if len(q.items) >= q.capacity {
		return false
	}
	q.items = append(q.items, r)
	return true
}

// Pop removes and returns the next request per the configured discipline.
// Returns nil if the queue is empty.
func (q *RequestQueue) Pop() *Request {
	if len(q.items) == 0 {
		return nil
	}
	if q.discipline == DisciplineLIFO {
		r := q.items[len(q.items)-1]
		q.items = q.items[:len(q.items)-1]
		return r
	}
	r := q.items[0]
	q.items = q.items[1:]
	return r
}

// Age records one tick of queueing delay on every waiting request. Requests
// whose timeout counter reaches zero stay in the queue and remain serviceable;
// their expiry is only observed at completion.
func (q *RequestQueue) Age() {
	for _, r := range q.items {
		r.WaitingTick()
	}
}

// Len returns the number of waiting requests.
func (q *RequestQueue) Len() int {
	return len(q.items)
}

// Cap returns the queue capacity.
func (q *RequestQueue) Cap() int {
	return q.capacity
}

func (q *RequestQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, r := range q.items {
		sb.WriteString(fmt.Sprint(r))
		if i < len(q.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
