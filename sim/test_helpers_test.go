package sim

// Scripted Sampler implementations shared across engine tests. They let tests
// assert exact admission and retry outcomes instead of statistical ones.

// fixedSampler returns the same normal draw and trial outcome every call.
type fixedSampler struct {
	normal float64
	trial  bool
}

func (f *fixedSampler) Normal(mean, stddev float64) float64 { return f.normal }
func (f *fixedSampler) Bernoulli(p float64) bool            { return f.trial }

// scriptSampler replays a fixed sequence of normal draws and trial outcomes.
// Once a sequence is exhausted, the zero draw / false trial is returned.
type scriptSampler struct {
	normals []float64
	trials  []bool
	ni, ti  int
}

func (s *scriptSampler) Normal(mean, stddev float64) float64 {
	if s.ni >= len(s.normals) {
		return 0
	}
	v := s.normals[s.ni]
	s.ni++
	return v
}

func (s *scriptSampler) Bernoulli(p float64) bool {
	if s.ti >= len(s.trials) {
		return false
	}
	v := s.trials[s.ti]
	s.ti++
	return v
}

// nullSampler draws nothing useful: zero and false. Handy to pin down which
// phases consume randomness.
type nullSampler struct{}

func (nullSampler) Normal(mean, stddev float64) float64 { return 0 }
func (nullSampler) Bernoulli(p float64) bool            { return false }

// testConfig returns a small valid configuration that individual tests tweak.
func testConfig() Config {
	return Config{
		ArrivalRate:      1,
		Workers:          1,
		Timeout:          100,
		MeanLatency:      5,
		SimulationTicks:  1000,
		QueueSize:        10,
		Discipline:       DisciplineFIFO,
		RetryProbability: 0,
	}
}
