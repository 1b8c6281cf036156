package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/frcutil/drivekit/core/metrics"
)

func TestPromSinkRecordsEvaluations(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	err = sink.RecordEvaluation(coremetrics.EvaluationResult{
		RunID:   "run-1",
		Points:  42,
		Elapsed: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.evaluations))
	assert.Equal(t, 42.0, testutil.ToFloat64(sink.points))
}

func TestPromSinkReregistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	// A second sink on the same registry reuses the existing collectors.
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordEvaluation(coremetrics.EvaluationResult{Points: 1}))
	require.NoError(t, second.RecordEvaluation(coremetrics.EvaluationResult{Points: 1}))
	assert.Equal(t, 2.0, testutil.ToFloat64(first.evaluations))
}
