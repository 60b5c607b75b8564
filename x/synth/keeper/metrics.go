package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SynthMetrics holds all Prometheus metrics for the synth module
type SynthMetrics struct {
	Mints   prometheus.Counter
	Redeems prometheus.Counter
}

var (
	synthMetricsOnce     sync.Once
	synthMetricsInstance *SynthMetrics
)

func NewSynthMetrics() *SynthMetrics {
	synthMetricsOnce.Do(func() {
		synthMetricsInstance = &SynthMetrics{
			Mints: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "synth",
				Name:      "mints_total",
				Help:      "Total successful synthetic mints",
			}),
			Redeems: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "synth",
				Name:      "redeems_total",
				Help:      "Total successful synthetic redeems",
			}),
		}
	})
	return synthMetricsInstance
}

func (m *SynthMetrics) RecordMint() {
	if m == nil {
		return
	}
	m.Mints.Inc()
}

func (m *SynthMetrics) RecordRedeem() {
	if m == nil {
		return
	}
	m.Redeems.Inc()
}
