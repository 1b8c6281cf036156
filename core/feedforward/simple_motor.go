// Package feedforward models permanent-magnet DC motor dynamics for
// trajectory constraint evaluation.
package feedforward

import "fmt"

// SimpleMotorFeedforward relates wheel motion to motor voltage as
//
//	voltage = kS*sgn(v) + kV*v + kA*a
//
// where kS overcomes static friction (volts), kV is the velocity gain
// (V*s/m) and kA the acceleration gain (V*s^2/m). Inverted, it answers how
// much acceleration a voltage budget leaves at a given speed.
type SimpleMotorFeedforward struct {
	kS float64
	kV float64
	kA float64
}

// NewSimpleMotorFeedforward builds a feedforward from characterization
// gains. kA must be positive: the achievable-acceleration inversions divide
// by it. kV must be non-negative.
func NewSimpleMotorFeedforward(kS, kV, kA float64) (SimpleMotorFeedforward, error) {
	if kV < 0 {
		return SimpleMotorFeedforward{}, fmt.Errorf("velocity gain must be non-negative, got %v", kV)
	}
	if kA <= 0 {
		return SimpleMotorFeedforward{}, fmt.Errorf("acceleration gain must be positive, got %v", kA)
	}
	return SimpleMotorFeedforward{kS: kS, kV: kV, kA: kA}, nil
}

// Calculate returns the voltage required to sustain the given velocity and
// acceleration.
func (f SimpleMotorFeedforward) Calculate(velocity, acceleration float64) float64 {
	return f.kS*sign(velocity) + f.kV*velocity + f.kA*acceleration
}

// MaxAchievableAcceleration returns the largest acceleration the motor can
// produce at the given velocity without the required voltage exceeding
// maxVoltage.
func (f SimpleMotorFeedforward) MaxAchievableAcceleration(maxVoltage, velocity float64) float64 {
	return (maxVoltage - f.kS*sign(velocity) - f.kV*velocity) / f.kA
}

// MinAchievableAcceleration returns the most negative acceleration reachable
// at the given velocity within the voltage budget.
func (f SimpleMotorFeedforward) MinAchievableAcceleration(maxVoltage, velocity float64) float64 {
	return f.MaxAchievableAcceleration(-maxVoltage, velocity)
}

// MaxAchievableVelocity returns the top speed sustainable at the given
// acceleration within the voltage budget. Assumes forward motion, so the
// static term opposes the budget.
func (f SimpleMotorFeedforward) MaxAchievableVelocity(maxVoltage, acceleration float64) float64 {
	return (maxVoltage - f.kS - f.kA*acceleration) / f.kV
}

// MinAchievableVelocity returns the most negative sustainable speed at the
// given acceleration within the voltage budget.
func (f SimpleMotorFeedforward) MinAchievableVelocity(maxVoltage, acceleration float64) float64 {
	return (-maxVoltage + f.kS - f.kA*acceleration) / f.kV
}

// sign maps exactly zero to 0, not +-1. The constraint math depends on that
// tie-break to disable the turning geometry correction at a dead stop.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
