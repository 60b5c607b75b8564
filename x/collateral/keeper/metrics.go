package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CollateralMetrics holds all Prometheus metrics for the collateral module
type CollateralMetrics struct {
	Deposits  prometheus.Counter
	Withdraws prometheus.Counter
}

var (
	collateralMetricsOnce     sync.Once
	collateralMetricsInstance *CollateralMetrics
)

func NewCollateralMetrics() *CollateralMetrics {
	collateralMetricsOnce.Do(func() {
		collateralMetricsInstance = &CollateralMetrics{
			Deposits: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "collateral",
				Name:      "deposits_total",
				Help:      "Total ledger deposits",
			}),
			Withdraws: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "synthia",
				Subsystem: "collateral",
				Name:      "withdraws_total",
				Help:      "Total ledger withdrawals",
			}),
		}
	})
	return collateralMetricsInstance
}

func (m *CollateralMetrics) RecordDeposit() {
	if m == nil {
		return
	}
	m.Deposits.Inc()
}

func (m *CollateralMetrics) RecordWithdraw() {
	if m == nil {
		return
	}
	m.Withdraws.Inc()
}
