package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckoutsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "checkouts_total",
		Help:      "Total number of checkout calls by outcome.",
	}, []string{"status"})

	PointsEarnedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "points_earned_total",
		Help:      "Total loyalty points awarded across all checkouts.",
	})

	CheckoutDurationMS = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "loyalty",
		Name:      "checkout_duration_ms",
		Help:      "Checkout latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})
)

func init() {
	prometheus.MustRegister(CheckoutsTotal, PointsEarnedTotal, CheckoutDurationMS)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
