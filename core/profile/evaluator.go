// Package profile evaluates constraint envelopes along a planned path. It
// performs the per-sample fold a trajectory generator runs while shrinking a
// motion profile: every active constraint is queried at every sample and the
// results intersected. Time-parameterization of the resulting envelope is
// left to the generator.
package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/frcutil/drivekit/core/constraint"
	"github.com/frcutil/drivekit/core/geometry"
	"github.com/frcutil/drivekit/core/logger"
	"github.com/frcutil/drivekit/core/metrics"
)

// Sample is one point of a planned path: where the robot is, how sharply the
// path bends there and how fast the candidate profile traverses it.
type Sample struct {
	Pose      geometry.Pose2d `json:"pose"`
	Curvature float64         `json:"curvature"` // rad/m, positive is a left turn
	Velocity  float64         `json:"velocity"`  // m/s, signed
}

// PointEnvelope is the intersected feasible envelope at one sample.
type PointEnvelope struct {
	MaxVelocity  float64           `json:"max_velocity"`
	Acceleration constraint.MinMax `json:"acceleration"`
}

// Result is the outcome of evaluating all constraints over a path.
type Result struct {
	RunID   string
	Points  []PointEnvelope
	Elapsed time.Duration
}

// Evaluator folds a fixed set of constraints over path samples.
type Evaluator struct {
	constraints []constraint.Constraint
	log         logger.Logger
	sink        metrics.Sink
}

// NewEvaluator builds an evaluator. At least one constraint and a logger are
// required; a nil sink falls back to the no-op sink.
func NewEvaluator(constraints []constraint.Constraint, log logger.Logger, sink metrics.Sink) (*Evaluator, error) {
	if len(constraints) == 0 {
		return nil, fmt.Errorf("profile evaluator: at least one constraint required")
	}
	if log == nil {
		return nil, fmt.Errorf("profile evaluator: logger must not be nil")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Evaluator{constraints: constraints, log: log, sink: sink}, nil
}

// Evaluate computes the feasible envelope at every sample. The velocity
// envelope is the minimum of all constraint velocity bounds; the acceleration
// envelope is the intersection of all constraint acceleration ranges.
func (e *Evaluator) Evaluate(samples []Sample) Result {
	start := time.Now()
	runID := uuid.NewString()

	points := make([]PointEnvelope, len(samples))
	velocityBounds := make([]float64, len(e.constraints))
	for i, s := range samples {
		acceleration := constraint.Unlimited()
		for j, c := range e.constraints {
			velocityBounds[j] = c.MaxVelocity(s.Pose, s.Curvature, s.Velocity)
			acceleration = acceleration.Intersect(c.MinMaxAcceleration(s.Pose, s.Curvature, s.Velocity))
		}
		points[i] = PointEnvelope{
			MaxVelocity:  floats.Min(velocityBounds),
			Acceleration: acceleration,
		}
	}

	elapsed := time.Since(start)
	e.log.Debugw("profile evaluated", map[string]any{
		"run_id":  runID,
		"points":  len(points),
		"elapsed": elapsed.String(),
	})
	if err := e.sink.RecordEvaluation(metrics.EvaluationResult{RunID: runID, Points: len(samples), Elapsed: elapsed}); err != nil {
		e.log.Warnf("record evaluation: %v", err)
	}
	return Result{RunID: runID, Points: points, Elapsed: elapsed}
}
