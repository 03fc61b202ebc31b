// Package metrics instruments an orderbook.Orderbook with Prometheus
// counters, gauges, and histograms, trimmed from the teacher's
// metrics/prometheus.go down to the subsystems an in-memory matching core
// actually produces: orders, depth, and trades. Everything PerpDEX-specific
// (positions, liquidations, insurance fund, funding, oracle, websocket,
// API, chain) has no SPEC_FULL counterpart and is dropped (see DESIGN.md).
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds every orderbook metric.
type Collector struct {
	OrdersInserted *prometheus.CounterVec
	OrdersRejected *prometheus.CounterVec
	OrdersResting  *prometheus.GaugeVec

	TradesTotal  *prometheus.CounterVec
	TradedVolume *prometheus.CounterVec

	MatchLatency *prometheus.HistogramVec
}

// GetCollector returns the process-wide singleton collector, registering
// its metrics with the default Prometheus registry on first use.
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
		collector.registerAll()
	})
	return collector
}

func newCollector() *Collector {
	c := &Collector{}

	c.OrdersInserted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderbook",
			Subsystem: "orders",
			Name:      "inserted_total",
			Help:      "Total number of orders inserted into a book.",
		},
		[]string{"side", "engine"},
	)

	c.OrdersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderbook",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of order insertions rejected because the key was already resting.",
		},
		[]string{"side"},
	)

	c.OrdersResting = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "orderbook",
			Subsystem: "orders",
			Name:      "resting",
			Help:      "Current number of resting orders on a side.",
		},
		[]string{"side", "engine"},
	)

	c.TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderbook",
			Subsystem: "trades",
			Name:      "total",
			Help:      "Total number of trades produced by resolve_matches.",
		},
		[]string{"engine"},
	)

	c.TradedVolume = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderbook",
			Subsystem: "trades",
			Name:      "volume_total",
			Help:      "Total traded volume.",
		},
		[]string{"engine"},
	)

	c.MatchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orderbook",
			Subsystem: "matching",
			Name:      "latency_seconds",
			Help:      "Time spent in a single resolve_matches call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	return c
}

func (c *Collector) registerAll() {
	prometheus.MustRegister(c.OrdersInserted)
	prometheus.MustRegister(c.OrdersRejected)
	prometheus.MustRegister(c.OrdersResting)
	prometheus.MustRegister(c.TradesTotal)
	prometheus.MustRegister(c.TradedVolume)
	prometheus.MustRegister(c.MatchLatency)
}

// RecordInsert records a successful order insertion.
func (c *Collector) RecordInsert(side, engine string) {
	c.OrdersInserted.WithLabelValues(side, engine).Inc()
}

// RecordReject records an insertion rejected for a key already resting.
func (c *Collector) RecordReject(side string) {
	c.OrdersRejected.WithLabelValues(side).Inc()
}

// SetResting sets the current resting-order gauge for a side.
func (c *Collector) SetResting(side, engine string, n int) {
	c.OrdersResting.WithLabelValues(side, engine).Set(float64(n))
}

// RecordTrades records a batch of trades produced by one resolve_matches
// call, along with the call's wall-clock duration.
func (c *Collector) RecordTrades(engine string, count int, volume float64, latencySeconds float64) {
	c.TradesTotal.WithLabelValues(engine).Add(float64(count))
	c.TradedVolume.WithLabelValues(engine).Add(volume)
	c.MatchLatency.WithLabelValues(engine).Observe(latencySeconds)
}

// Handler exposes the default Prometheus registry over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
