package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/frcutil/drivekit/core/metrics"
)

// PromSink records profile evaluation runs in Prometheus metrics.
type PromSink struct {
	evaluations prometheus.Counter
	duration    prometheus.Histogram
	points      prometheus.Gauge
}

// NewPromSink registers evaluation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "profile_evaluations_total",
		Help: "Total number of profile evaluation runs",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "profile_evaluation_seconds",
		Help:    "Wall time of a profile evaluation run",
		Buckets: prometheus.DefBuckets,
	})
	points := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "profile_points_last",
		Help: "Number of path samples in the most recent evaluation",
	})

	if err := reg.Register(evaluations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			evaluations = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(points); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			points = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{evaluations: evaluations, duration: duration, points: points}, nil
}

// RecordEvaluation counts the run and observes its duration and size.
func (s *PromSink) RecordEvaluation(res coremetrics.EvaluationResult) error {
	s.evaluations.Inc()
	s.duration.Observe(res.Elapsed.Seconds())
	s.points.Set(float64(res.Points))
	return nil
}

// StartPromServer exposes /metrics on the given port and blocks.
func StartPromServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
