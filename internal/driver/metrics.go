package driver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	driverPrometheusMetrics sync.Once

	driverChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cobs",
			Subsystem: "oracle",
			Name:      "checks_total",
			Help:      "Number of inputs compared, by comparison and verdict.",
		},
		[]string{"comparison", "verdict"})

	driverInputSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cobs",
			Subsystem: "oracle",
			Name:      "input_size_bytes",
			Help:      "Size of inputs compared, in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		},
		[]string{"comparison"})
)

func registerMetrics() {
	driverPrometheusMetrics.Do(func() {
		prometheus.MustRegister(driverChecksTotal)
		prometheus.MustRegister(driverInputSizeBytes)
	})
}
