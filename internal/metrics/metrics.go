// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const promNamespace = "showbook"

var (
	httpLabels    = []string{"method", "route", "status"}
	httpHistogram = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: promNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "duration of HTTP requests",
		Buckets:   prom.DefBuckets,
	}, httpLabels)
	httpRequests = prom.NewCounterVec(prom.CounterOpts{
		Namespace: promNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status",
	}, httpLabels)

	writeLabels = []string{"entity", "action", "outcome"}
	writes      = prom.NewCounterVec(prom.CounterOpts{
		Namespace: promNamespace,
		Subsystem: "directory",
		Name:      "writes_total",
		Help:      "create, update and delete attempts on the directory",
	}, writeLabels)

	seeds = prom.NewCounter(prom.CounterOpts{
		Namespace: promNamespace,
		Subsystem: "directory",
		Name:      "seed_loads_total",
		Help:      "times the default rows were loaded into an empty directory",
	})
)

func init() {
	prom.MustRegister(httpHistogram)
	prom.MustRegister(httpRequests)
	prom.MustRegister(writes)
	prom.MustRegister(seeds)
}

// ObserveRequest records one finished HTTP request. route is the chi pattern,
// not the raw path, to keep label cardinality bounded.
func ObserveRequest(method, route string, status int, d time.Duration) {
	labels := []string{method, route, strconv.Itoa(status)}
	httpHistogram.WithLabelValues(labels...).Observe(d.Seconds())
	httpRequests.WithLabelValues(labels...).Inc()
}

// RecordWrite counts a write attempt. outcome is "ok" when err is nil.
func RecordWrite(entity, action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	writes.WithLabelValues(entity, action, outcome).Inc()
}

func RecordSeed() {
	seeds.Inc()
}
