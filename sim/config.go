package sim

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Discipline selects which end of the queue Pop removes from.
type Discipline int

const (
	DisciplineFIFO Discipline = iota // pop the front (oldest request first)
	DisciplineLIFO                   // pop the back (newest request first)
)

// String returns the string representation of Discipline.
func (d Discipline) String() string {
	switch d {
	case DisciplineFIFO:
		return "fifo"
	case DisciplineLIFO:
		return "lifo"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// ParseDiscipline parses a string into a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	switch s {
	case "fifo":
		return DisciplineFIFO, nil
	case "lifo":
		return DisciplineLIFO, nil
	default:
		return DisciplineFIFO, fmt.Errorf("invalid discipline: %s (must be 'fifo' or 'lifo')", s)
	}
}

// MarshalYAML implements yaml.Marshaler for Discipline.
func (d Discipline) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Discipline.
func (d *Discipline) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDiscipline(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Config groups every parameter of one simulation run. All fields describe
// simulated behavior; none of them touch wall-clock time.
type Config struct {
	// ArrivalRate is the mean number of new requests per tick. Arrivals are
	// drawn from Normal(ArrivalRate, ArrivalRate/4) each tick and compounded
	// through a fractional accumulator.
	ArrivalRate float64

	// Workers is the number of simulated workers in the pool.
	Workers int

	// Timeout is the per-request deadline in ticks. For a meaningful
	// simulation this should be larger than MeanLatency.
	Timeout int64

	// MeanLatency is the mean processing cost of a request in ticks. Costs
	// are drawn from Normal(MeanLatency, MeanLatency/4), floored at zero.
	MeanLatency float64

	// SimulationTicks is the total number of ticks to run.
	SimulationTicks int64

	// QueueSize bounds the number of requests waiting for a worker.
	QueueSize int

	// Discipline selects FIFO or LIFO service order for the queue.
	Discipline Discipline

	// SimulateSpike inflates the processing cost of the first
	// SimulationTicks/1000 requests by 10x, modeling a short latency
	// regression. The window is counted in created requests, not ticks.
	SimulateSpike bool

	// RetryProbability is the chance a failed request is re-submitted as a
	// fresh arrival. Values near 1 produce retry storms under congestion.
	RetryProbability float64
}

// Validate checks the configuration before any simulation state is built.
// A non-nil error means the run must not start.
func (c Config) Validate() error {
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate must be greater than 0, got %v", c.ArrivalRate)
	}
	if c.MeanLatency <= 0 {
		return fmt.Errorf("mean latency must be greater than 0, got %v", c.MeanLatency)
	}
	if c.RetryProbability < 0 || c.RetryProbability > 1 {
		return fmt.Errorf("retry probability must be between 0 and 1, got %v", c.RetryProbability)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %d", c.Timeout)
	}
	if c.SimulationTicks < 0 {
		return fmt.Errorf("simulation ticks must not be negative, got %d", c.SimulationTicks)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue size must not be negative, got %d", c.QueueSize)
	}
	return nil
}
