// Package metrics exposes scan activity as Prometheus metrics. The Recorder
// is a scan.Observer; hook it up to a scanner and serve its handler to get
// per-run counters and durations on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sweep/scan"
)

const namespace = "sweep"

// Recorder aggregates scan reports into Prometheus collectors backed by a
// private registry.
type Recorder struct {
	registry     *prometheus.Registry
	scansTotal   prometheus.Counter
	scanDuration prometheus.Histogram
	probesTotal  *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		scansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Total number of completed scan runs.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall clock duration of scan runs.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		probesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Total number of probes by resulting state.",
		}, []string{"state"}),
	}

	r.registry.MustRegister(
		r.scansTotal,
		r.scanDuration,
		r.probesTotal,
		collectors.NewGoCollector(),
	)

	return r
}

// Update implements scan.Observer.
func (r *Recorder) Update(report scan.Report) error {
	r.scansTotal.Inc()
	r.scanDuration.Observe(report.Elapsed().Seconds())
	for _, result := range report.Results {
		r.probesTotal.WithLabelValues(result.State.String()).Inc()
	}
	return nil
}

// Handler serves the recorder's registry in the Prometheus exposition
// format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve blocks, exposing /metrics on the given address.
func (r *Recorder) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: time.Second * 10,
	}
	return server.ListenAndServe()
}
