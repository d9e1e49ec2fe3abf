package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/congestion-sim/congestion-sim/sim"
)

var (
	// CLI flags for the simulation parameters
	seed             int64   // Seed for all random sampling
	logLevel         string  // Log verbosity level
	arrivalRate      float64 // Mean new requests per tick
	workers          int     // Number of simulated workers
	timeout          int64   // Request timeout in ticks
	meanLatency      float64 // Mean request processing cost in ticks
	simulationTime   int64   // Number of ticks to run
	queueSize        int     // Wait queue capacity
	lifo             bool    // LIFO instead of FIFO queue
	simulateSpike    bool    // Temporary 10x latency spike at the start of the run
	retryProbability float64 // Probability a failed request is retried
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "congestion-sim",
	Short: "Discrete-tick simulator of congestion collapse in a bounded queueing system",
}

// buildConfig assembles the simulation Config from CLI flags.
func buildConfig() sim.Config {
	discipline := sim.DisciplineFIFO
	if lifo {
		discipline = sim.DisciplineLIFO
	}
	return sim.Config{
		ArrivalRate:      arrivalRate,
		Workers:          workers,
		Timeout:          timeout,
		MeanLatency:      meanLatency,
		SimulationTicks:  simulationTime,
		QueueSize:        queueSize,
		Discipline:       discipline,
		SimulateSpike:    simulateSpike,
		RetryProbability: retryProbability,
	}
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig()
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: rate=%v workers=%d queue=%d (%s) timeout=%d ticks=%d retry=%v spike=%v seed=%d",
			cfg.ArrivalRate, cfg.Workers, cfg.QueueSize, cfg.Discipline, cfg.Timeout,
			cfg.SimulationTicks, cfg.RetryProbability, cfg.SimulateSpike, seed)

		startTime := time.Now()

		s := sim.NewSimulator(cfg, sim.NewSimulationKey(seed))
		metrics := s.Run()
		metrics.Log()

		fmt.Println(metrics.Summary())

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random sampling")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().Float64VarP(&arrivalRate, "arrival-rate", "r", 0, "Rate at which new requests arrive per tick, must be >0")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 10, "Number of workers to simulate")
	runCmd.Flags().Int64VarP(&timeout, "timeout", "t", 1000, "Ticks before a request is considered timed out and failed; should exceed the mean latency")
	runCmd.Flags().Float64Var(&meanLatency, "mean-latency", 50, "Mean request processing latency in ticks, must be >0")
	runCmd.Flags().Int64Var(&simulationTime, "simulation-time", 1000000, "Number of ticks to run this simulation")
	runCmd.Flags().IntVarP(&queueSize, "queue-size", "q", 1000, "Size of the request queue")
	runCmd.Flags().BoolVar(&lifo, "lifo", false, "Use LIFO instead of FIFO queue")
	runCmd.Flags().BoolVar(&simulateSpike, "simulate-spike", false, "Simulate a temporary spike in request processing latency (this tends to trigger the congestion collapse)")
	runCmd.Flags().Float64Var(&retryProbability, "retry-probability", 0.5, "Probability a failed request will be retried, between 0 and 1 inclusive")

	if err := runCmd.MarkFlagRequired("arrival-rate"); err != nil {
		logrus.Fatalf("failed to mark flag required: %v", err)
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
