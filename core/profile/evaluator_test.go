package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frcutil/drivekit/core/constraint"
	"github.com/frcutil/drivekit/core/geometry"
	"github.com/frcutil/drivekit/core/metrics"
)

type stubConstraint struct {
	maxVel float64
	accel  constraint.MinMax
}

func (s stubConstraint) MaxVelocity(geometry.Pose2d, float64, float64) float64 {
	return s.maxVel
}

func (s stubConstraint) MinMaxAcceleration(geometry.Pose2d, float64, float64) constraint.MinMax {
	return s.accel
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

type captureSink struct {
	last  metrics.EvaluationResult
	calls int
}

func (c *captureSink) RecordEvaluation(r metrics.EvaluationResult) error {
	c.last = r
	c.calls++
	return nil
}

func TestNewEvaluatorValidation(t *testing.T) {
	_, err := NewEvaluator(nil, nopLogger{}, nil)
	assert.Error(t, err)
	_, err = NewEvaluator([]constraint.Constraint{stubConstraint{}}, nil, nil)
	assert.Error(t, err)
	_, err = NewEvaluator([]constraint.Constraint{stubConstraint{}}, nopLogger{}, nil)
	assert.NoError(t, err)
}

func TestEvaluateIntersectsConstraints(t *testing.T) {
	constraints := []constraint.Constraint{
		stubConstraint{maxVel: 3, accel: constraint.MinMax{Min: -2, Max: 4}},
		stubConstraint{maxVel: 5, accel: constraint.MinMax{Min: -1, Max: 6}},
	}
	eval, err := NewEvaluator(constraints, nopLogger{}, nil)
	require.NoError(t, err)

	samples := []Sample{
		{Curvature: 0.5, Velocity: 2},
		{Curvature: 0, Velocity: 1},
	}
	res := eval.Evaluate(samples)
	require.Len(t, res.Points, 2)
	for _, p := range res.Points {
		assert.Equal(t, 3.0, p.MaxVelocity)
		assert.Equal(t, constraint.MinMax{Min: -1, Max: 4}, p.Acceleration)
	}
}

func TestEvaluateReportsToSink(t *testing.T) {
	sink := &captureSink{}
	eval, err := NewEvaluator([]constraint.Constraint{stubConstraint{maxVel: 1}}, nopLogger{}, sink)
	require.NoError(t, err)

	res := eval.Evaluate([]Sample{{}, {}, {}})
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, 3, sink.last.Points)
	assert.Equal(t, res.RunID, sink.last.RunID)
	assert.NotEmpty(t, res.RunID)

	second := eval.Evaluate(nil)
	assert.NotEqual(t, res.RunID, second.RunID)
	assert.Empty(t, second.Points)
}
