// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// progressInterval controls how often the run loop emits a debug progress line.
const progressInterval = 100000

// Simulator is the core object that holds simulation time, system state, and
// the tick loop. One tick is: age the queue, admit arrivals, advance workers.
//
// All state for a run lives here; nothing is process-global, so multiple
// simulators can run independently in one process (parameter sweeps) and a
// single tick can be exercised in isolation by tests.
type Simulator struct {
	Config Config
	Clock  int64
	// Queue holds requests waiting for a free worker.
	Queue *RequestQueue
	// Workers is the fixed pool, always scanned in index order so runs with
	// the same key are reproducible.
	Workers  []*Worker
	Arrivals *ArrivalProcess
	Latency  *LatencyModel
	Metrics  *Metrics

	retries Sampler
}

// NewSimulator builds a simulator for cfg, deriving isolated random streams
// for arrivals, latency sampling, and retry trials from the given key.
// cfg must already be validated.
func NewSimulator(cfg Config, key SimulationKey) *Simulator {
	rng := NewPartitionedRNG(key)
	return newSimulator(cfg,
		NewDistSampler(rng.ForSubsystem(SubsystemArrival)),
		NewDistSampler(rng.ForSubsystem(SubsystemLatency)),
		NewDistSampler(rng.ForSubsystem(SubsystemRetry)))
}

// newSimulator wires explicit samplers; tests use it to script outcomes.
func newSimulator(cfg Config, arrival, latency, retry Sampler) *Simulator {
	var spikeBudget int64
	if cfg.SimulateSpike {
		spikeBudget = cfg.SimulationTicks / 1000
	}

	workers := make([]*Worker, cfg.Workers)
	for i := range workers {
		workers[i] = NewWorker()
	}

	return &Simulator{
		Config:   cfg,
		Clock:    0,
		Queue:    NewRequestQueue(cfg.QueueSize, cfg.Discipline),
		Workers:  workers,
		Arrivals: NewArrivalProcess(cfg.ArrivalRate, arrival),
		Latency:  NewLatencyModel(cfg.MeanLatency, spikeBudget, latency),
		Metrics:  NewMetrics(),
		retries:  retry,
	}
}

// Run executes the configured number of ticks and returns the final metrics.
func (s *Simulator) Run() *Metrics {
	for t := int64(0); t < s.Config.SimulationTicks; t++ {
		s.Tick()
		if s.Clock%progressInterval == 0 {
			logrus.Debugf("tick %d: queued=%d failed=%d/%d backlog=%.2f",
				s.Clock, s.Queue.Len(), s.Metrics.FailedRequests, s.Metrics.TotalRequests, s.Arrivals.Backlog())
		}
	}
	return s.Metrics
}

// Tick advances the simulation by one tick. Ordering is fixed: queued
// requests age first, then new arrivals are admitted, then every worker
// advances in index order.
func (s *Simulator) Tick() {
	s.Queue.Age()
	s.admitArrivals()
	s.advanceWorkers()
	s.Clock++
}

// admitArrivals accrues one tick of arrival demand and drains whole requests
// through the admission policy: idle worker first, then queue, else failure.
// A retried admission failure re-enters the backlog immediately, so it is
// reprocessed within this same pass.
func (s *Simulator) admitArrivals() {
	s.Arrivals.Accrue()

	for s.Arrivals.TakeOne() {
		s.Metrics.TotalRequests++
		req := NewRequest(s.Latency.SampleCost(), s.Config.Timeout)

		if w := s.idleWorker(); w != nil {
			// Direct dispatch bypasses the queue entirely.
			w.Assign(req)
			continue
		}
		if s.Queue.Offer(req) {
			if s.Queue.Len() > s.Metrics.PeakQueueLen {
				s.Metrics.PeakQueueLen = s.Queue.Len()
			}
			continue
		}

		// Queue full and all workers busy. This request is failed.
		s.Metrics.AdmissionRejections++
		s.recordFailure()
	}
}

// advanceWorkers spends one tick on every worker in index order. A completion
// whose timeout counter already reached zero is a failure even though the
// work finished: the client went away while the server was still processing.
func (s *Simulator) advanceWorkers() {
	for _, w := range s.Workers {
		finished := w.Tick(s.Queue)
		if finished == nil {
			continue
		}
		s.Metrics.CompletedRequests++
		if finished.TimedOut() {
			s.Metrics.TimedOutCompletions++
			s.recordFailure()
		}
	}
}

// recordFailure counts one failure and runs its retry trial. A won trial puts
// one whole request back into the arrival backlog; for completion-time
// failures that backlog is drained on a later tick's admission pass.
func (s *Simulator) recordFailure() {
	s.Metrics.FailedRequests++
	if s.retries.Bernoulli(s.Config.RetryProbability) {
		s.Metrics.RetriesInjected++
		s.Arrivals.Reinject()
	}
}

// idleWorker returns the lowest-indexed idle worker, or nil if all are busy.
func (s *Simulator) idleWorker() *Worker {
	for _, w := range s.Workers {
		if w.Idle() {
			return w
		}
	}
	return nil
}
