package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AttestMetrics holds all Prometheus metrics for the attest module
type AttestMetrics struct {
	Accepted prometheus.Counter
	Rejected prometheus.Counter
}

var (
	attestMetricsOnce     sync.Once
	attestMetricsInstance *AttestMetrics
)

func NewAttestMetrics() *AttestMetrics {
	attestMetricsOnce.Do(func() {
		attestMetricsInstance = &AttestMetrics{
			Accepted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "attest",
				Name:      "attestations_accepted_total",
				Help:      "Total accepted solvency attestations",
			}),
			Rejected: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "attest",
				Name:      "attestations_rejected_total",
				Help:      "Total rejected solvency attestations",
			}),
		}
	})
	return attestMetricsInstance
}

func (m *AttestMetrics) RecordAcceptance() {
	if m == nil {
		return
	}
	m.Accepted.Inc()
}

func (m *AttestMetrics) RecordRejection() {
	if m == nil {
		return
	}
	m.Rejected.Inc()
}
