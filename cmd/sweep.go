package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/congestion-sim/congestion-sim/sim"
)

var sweepConfigPath string

// SweepConfig is the YAML schema for a parameter sweep: a list of named
// scenarios, each a full simulation configuration.
type SweepConfig struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one entry of a sweep file. Omitted fields take the same
// defaults as the run subcommand's flags.
type Scenario struct {
	Name             string         `yaml:"name"`
	Seed             int64          `yaml:"seed"`
	ArrivalRate      float64        `yaml:"arrival_rate"`
	Workers          int            `yaml:"workers"`
	Timeout          int64          `yaml:"timeout"`
	MeanLatency      float64        `yaml:"mean_latency"`
	SimulationTime   int64          `yaml:"simulation_time"`
	QueueSize        int            `yaml:"queue_size"`
	Discipline       sim.Discipline `yaml:"discipline"`
	SimulateSpike    bool           `yaml:"simulate_spike"`
	RetryProbability float64        `yaml:"retry_probability"`
}

// defaultScenario mirrors the run subcommand's flag defaults.
func defaultScenario() Scenario {
	return Scenario{
		Seed:             42,
		Workers:          10,
		Timeout:          1000,
		MeanLatency:      50,
		SimulationTime:   1000000,
		QueueSize:        1000,
		Discipline:       sim.DisciplineFIFO,
		RetryProbability: 0.5,
	}
}

// UnmarshalYAML fills defaults before decoding, so sweep files only need to
// spell out the parameters they vary.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type rawScenario Scenario
	raw := rawScenario(defaultScenario())
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Scenario(raw)
	return nil
}

// Config converts the scenario into a simulation Config.
func (s Scenario) Config() sim.Config {
	return sim.Config{
		ArrivalRate:      s.ArrivalRate,
		Workers:          s.Workers,
		Timeout:          s.Timeout,
		MeanLatency:      s.MeanLatency,
		SimulationTicks:  s.SimulationTime,
		QueueSize:        s.QueueSize,
		Discipline:       s.Discipline,
		SimulateSpike:    s.SimulateSpike,
		RetryProbability: s.RetryProbability,
	}
}

// LoadSweepConfig loads and validates a sweep file.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sweep file: %w", err)
	}

	var cfg SweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sweep file: %w", err)
	}

	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("sweep file defines no scenarios")
	}
	for i, sc := range cfg.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
		if err := sc.Config().Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	return &cfg, nil
}

// sweepCmd runs every scenario of a YAML sweep file sequentially in-process
// and prints one result line per scenario.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a YAML-defined set of simulation scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := LoadSweepConfig(sweepConfigPath)
		if err != nil {
			logrus.Fatalf("Invalid sweep configuration: %v", err)
		}

		for _, sc := range cfg.Scenarios {
			logrus.Infof("Running scenario %s (seed=%d)", sc.Name, sc.Seed)
			s := sim.NewSimulator(sc.Config(), sim.NewSimulationKey(sc.Seed))
			metrics := s.Run()
			fmt.Printf("%s: %s\n", sc.Name, metrics.Summary())
		}
	},
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepConfigPath, "config", "c", "", "Path to the YAML sweep file")
	sweepCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	if err := sweepCmd.MarkFlagRequired("config"); err != nil {
		logrus.Fatalf("failed to mark flag required: %v", err)
	}
}
