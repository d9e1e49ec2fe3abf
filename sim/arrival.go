// Implements the arrival process: converts a continuous arrival rate into a
// discrete number of new requests per tick without losing fractional demand.

package sim

// ArrivalProcess accumulates fractional arrival demand across ticks. Each tick
// contributes one draw from Normal(rate, rate/4); whole requests are then
// extracted one at a time while the backlog stays positive. Fractions carry
// over, so the long-run arrival average matches the configured rate even for
// rates well below one request per tick.
//
// The backlog may go negative when a draw does, which simply suppresses
// arrivals until later draws pay the debt back. A retry re-injection adds
// exactly 1.0, making a failed request eligible for re-admission.
type ArrivalProcess struct {
	rate    float64
	backlog float64
	sampler Sampler
}

// NewArrivalProcess creates an arrival process with the given mean rate.
func NewArrivalProcess(rate float64, sampler Sampler) *ArrivalProcess {
	return &ArrivalProcess{rate: rate, sampler: sampler}
}

// Accrue adds one tick's worth of arrival demand to the backlog.
func (a *ArrivalProcess) Accrue() {
	a.backlog += a.sampler.Normal(a.rate, a.rate/4)
}

// TakeOne extracts one whole request from the backlog. Returns false when the
// remaining backlog is not positive, ending the admission pass for this tick.
func (a *ArrivalProcess) TakeOne() bool {
	if a.backlog <= 0 {
		return false
	}
	a.backlog -= 1.0
	return true
}

// Reinject adds one whole request back into the backlog. Called when a failed
// request wins its retry trial.
func (a *ArrivalProcess) Reinject() {
	a.backlog += 1.0
}

// Backlog returns the current fractional backlog.
func (a *ArrivalProcess) Backlog() float64 {
	return a.backlog
}
