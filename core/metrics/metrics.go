// Package metrics defines the sink contract for reporting profile
// evaluation runs. Concrete sinks live in infra/metrics.
package metrics

import "time"

// EvaluationResult describes one completed envelope evaluation run.
type EvaluationResult struct {
	RunID   string
	Points  int
	Elapsed time.Duration
}

// Sink receives evaluation results for recording.
type Sink interface {
	RecordEvaluation(EvaluationResult) error
}

// NopSink discards all results.
type NopSink struct{}

func (NopSink) RecordEvaluation(EvaluationResult) error { return nil }

// Config selects and configures the metrics backend.
type Config struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	PrometheusPort    int  `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == 0 {
		c.PrometheusPort = 9091
	}
}
