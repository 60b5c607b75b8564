package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	PriceUpdates    prometheus.Counter
	PriceRejections *prometheus.CounterVec
	ReferencePrice  prometheus.Gauge
}

var (
	oracleMetricsOnce     sync.Once
	oracleMetricsInstance *OracleMetrics
)

// NewOracleMetrics creates the oracle metrics singleton. Registration is
// process-wide, so repeated keeper construction reuses the same collectors.
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetricsInstance = &OracleMetrics{
			PriceUpdates: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "oracle",
				Name:      "price_updates_total",
				Help:      "Total accepted reference price updates",
			}),
			PriceRejections: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "oracle",
				Name:      "price_rejections_total",
				Help:      "Rejected price submissions by reason",
			}, []string{"reason"}),
			ReferencePrice: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "synthia",
				Subsystem: "oracle",
				Name:      "reference_price",
				Help:      "Current reference price in whole units",
			}),
		}
	})
	return oracleMetricsInstance
}
