package sim

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemArrival is the RNG subsystem for the arrival process.
	SubsystemArrival = "arrival"

	// SubsystemLatency is the RNG subsystem for request cost sampling.
	SubsystemLatency = "latency"

	// SubsystemRetry is the RNG subsystem for retry trials.
	SubsystemRetry = "retry"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated random sources per
// subsystem, so that e.g. drawing more latency samples never perturbs the
// arrival stream.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]rand.Source
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]rand.Source),
	}
}

// ForSubsystem returns a deterministically-seeded source for the named
// subsystem. The same subsystem name always returns the same source instance
// (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) rand.Source {
	if src, ok := p.subsystems[name]; ok {
		return src
	}

	derivedSeed := uint64(p.key) ^ fnv1a64(name)
	src := rand.NewSource(derivedSeed)
	p.subsystems[name] = src
	return src
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// === Sampler ===

// Sampler is the random-sampling capability the engine consumes: normal draws
// for arrivals and latencies, Bernoulli trials for retries. Tests substitute
// scripted implementations to assert exact sequences of outcomes.
type Sampler interface {
	// Normal draws from a normal distribution with the given mean and
	// standard deviation. The raw draw is returned unclamped; negative
	// values are meaningful to some callers.
	Normal(mean, stddev float64) float64

	// Bernoulli performs one trial that succeeds with probability p.
	Bernoulli(p float64) bool
}

// DistSampler implements Sampler on gonum's distuv distributions over a
// deterministic source, typically obtained from PartitionedRNG.ForSubsystem.
type DistSampler struct {
	src rand.Source
}

// NewDistSampler creates a Sampler drawing from the given source.
func NewDistSampler(src rand.Source) *DistSampler {
	return &DistSampler{src: src}
}

func (d *DistSampler) Normal(mean, stddev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: d.src}.Rand()
}

func (d *DistSampler) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: d.src}.Rand() == 1
}
