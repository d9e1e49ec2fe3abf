// Implements request cost sampling, including the optional latency spike.

package sim

// spikeMultiplier inflates the sampled cost of requests created while the
// spike window is open.
const spikeMultiplier = 10

// LatencyModel samples the processing cost of each new request from
// Normal(mean, mean/4). The distribution is unbounded below, so negative
// draws are clamped to exactly zero ticks of work.
//
// The latency distribution isn't really normal (a normal can go negative).
// A log-normal might be a better fit here.
//
// When spike simulation is enabled, the first spikeBudget requests created
// during the run each cost 10x their sampled latency. The window is consumed
// per created request, independent of tick boundaries: under high arrival
// rates it closes in far fewer ticks than its sizing suggests.
type LatencyModel struct {
	mean        float64
	spikeBudget int64
	sampler     Sampler
}

// NewLatencyModel creates a latency model with the given mean cost and spike
// window. A spikeBudget of zero disables the spike.
func NewLatencyModel(mean float64, spikeBudget int64, sampler Sampler) *LatencyModel {
	return &LatencyModel{mean: mean, spikeBudget: spikeBudget, sampler: sampler}
}

// SampleCost draws the processing cost in ticks for one new request,
// consuming one unit of the spike window if it is still open.
func (lm *LatencyModel) SampleCost() int64 {
	cost := lm.sampler.Normal(lm.mean, lm.mean/4)
	if cost < 0 {
		cost = 0
	}
	if lm.spikeBudget > 0 {
		lm.spikeBudget--
		cost *= spikeMultiplier
	}
	return int64(cost)
}

// SpikeRemaining returns how many more requests will be inflated.
func (lm *LatencyModel) SpikeRemaining() int64 {
	return lm.spikeBudget
}
