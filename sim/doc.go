// Package sim provides the core discrete-tick engine for the congestion
// collapse simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - request.go: the saturating work/timeout counters and lazy timeout detection
//   - queue.go: the bounded FIFO/LIFO wait queue and per-tick aging
//   - simulator.go: the tick loop, admission policy, and retry feedback
//
// # Tick Anatomy
//
// Each tick runs three phases in a fixed order:
//  1. Queue aging: every waiting request moves one tick closer to its deadline.
//  2. Arrival admission: the fractional backlog (arrival.go) is drained through
//     the admission policy; each new request gets a sampled cost
//     (latency_model.go). Queue-full rejections fail immediately and may retry
//     within the same pass.
//  3. Worker advance: workers (worker.go) progress their in-flight request or
//     pull the next one from the queue. Completions past their deadline count
//     as failures and may retry on a later tick.
//
// Execution is single-threaded and deterministic for a given SimulationKey:
// randomness enters only through the Sampler interface (rng.go), backed by
// per-subsystem seeded streams.
package sim
