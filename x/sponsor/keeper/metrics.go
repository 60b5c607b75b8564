package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SponsorMetrics holds all Prometheus metrics for the sponsor module
type SponsorMetrics struct {
	Sponsorships prometheus.Counter
	Fundings     prometheus.Counter
}

var (
	sponsorMetricsOnce     sync.Once
	sponsorMetricsInstance *SponsorMetrics
)

func NewSponsorMetrics() *SponsorMetrics {
	sponsorMetricsOnce.Do(func() {
		sponsorMetricsInstance = &SponsorMetrics{
			Sponsorships: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "sponsor",
				Name:      "sponsorships_total",
				Help:      "Total sponsored gas settlements",
			}),
			Fundings: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "sponsor",
				Name:      "reserve_fundings_total",
				Help:      "Total reserve funding operations",
			}),
		}
	})
	return sponsorMetricsInstance
}

func (m *SponsorMetrics) RecordSponsorship() {
	if m == nil {
		return
	}
	m.Sponsorships.Inc()
}

func (m *SponsorMetrics) RecordFunding() {
	if m == nil {
		return
	}
	m.Fundings.Inc()
}
