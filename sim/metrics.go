// Tracks simulation-wide counters for final reporting.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Metrics aggregates statistics about the simulation for final reporting.
// All counters are monotonically non-decreasing over a run.
type Metrics struct {
	TotalRequests       int64 // requests created, including retries
	FailedRequests      int64 // admission rejections + timed-out completions
	CompletedRequests   int64 // requests that finished their work
	AdmissionRejections int64 // requests rejected with queue full and all workers busy
	TimedOutCompletions int64 // requests that finished work after their deadline
	RetriesInjected     int64 // failures re-submitted as fresh arrivals
	PeakQueueLen        int   // max queue occupancy observed
}

// NewMetrics creates an empty metrics set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// FailureRate returns the failed fraction of all requests as a percentage.
// A run that processed no requests reports 0, not NaN.
func (m *Metrics) FailureRate() float64 {
	if m.TotalRequests == 0 {
		return 0
	}
	return float64(m.FailedRequests) / float64(m.TotalRequests) * 100
}

// Summary returns the single result line of a run.
func (m *Metrics) Summary() string {
	return fmt.Sprintf("Failure rate: %.2f%%", m.FailureRate())
}

// Log reports the detailed counters at info level. The stdout contract stays
// with Summary; this is operator-facing detail only.
func (m *Metrics) Log() {
	logrus.Infof("Total requests       : %d", m.TotalRequests)
	logrus.Infof("Completed requests   : %d", m.CompletedRequests)
	logrus.Infof("Failed requests      : %d", m.FailedRequests)
	logrus.Infof("  admission rejections : %d", m.AdmissionRejections)
	logrus.Infof("  timed-out completions: %d", m.TimedOutCompletions)
	logrus.Infof("Retries injected     : %d", m.RetriesInjected)
	logrus.Infof("Peak queue length    : %d", m.PeakQueueLen)
}
