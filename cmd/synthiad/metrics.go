package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var nodeUp = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "synthia_node_up",
		Help: "Set to 1 while the synthiad metrics endpoint is serving",
	},
	[]string{"version"},
)

// StartPrometheusServer serves the synthia_* metrics on /metrics. The SDK's
// built-in telemetry listener is separate; this port carries the counters the
// protocol keepers register (oracle pushes, ledger flows, mints, swaps) plus
// the health-check metrics.
func StartPrometheusServer(port int) {
	nodeUp.WithLabelValues(getVersion()).Set(1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Startup failures (port in use, bad address) are logged, not fatal:
		// the node itself keeps running without the scrape endpoint.
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("synthiad metrics server error: %v\n", err)
		}
	}()
}
