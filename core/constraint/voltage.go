package constraint

import (
	"fmt"
	"math"

	"github.com/frcutil/drivekit/core/geometry"
	"github.com/frcutil/drivekit/core/kinematics"
)

// DifferentialDriveVoltageConstraint caps the acceleration profile so that
// neither drive wheel is ever asked for more than a fixed voltage while
// following the trajectory. It holds no state beyond its construction
// parameters and is safe for concurrent evaluation as long as the injected
// collaborators are themselves read-only.
type DifferentialDriveVoltageConstraint struct {
	feedforward Feedforward
	kinematics  DriveKinematics
	maxVoltage  float64
}

// NewDifferentialDriveVoltageConstraint builds the constraint from a motor
// feedforward, a drivetrain kinematics model and a voltage budget in volts.
// The budget should sit somewhat below the nominal battery voltage to leave
// headroom for voltage sag under load. It is deliberately not validated: a
// zero or negative budget flows through to degenerate bounds, which is the
// caller's problem to avoid.
func NewDifferentialDriveVoltageConstraint(feedforward Feedforward, drive DriveKinematics, maxVoltage float64) (*DifferentialDriveVoltageConstraint, error) {
	if feedforward == nil {
		return nil, fmt.Errorf("differential drive voltage constraint: feedforward must not be nil")
	}
	if drive == nil {
		return nil, fmt.Errorf("differential drive voltage constraint: kinematics must not be nil")
	}
	return &DifferentialDriveVoltageConstraint{
		feedforward: feedforward,
		kinematics:  drive,
		maxVoltage:  maxVoltage,
	}, nil
}

// MaxVelocity never limits velocity; the voltage budget only restricts
// acceleration. The profile's top speed is left to the other constraints.
func (c *DifferentialDriveVoltageConstraint) MaxVelocity(geometry.Pose2d, float64, float64) float64 {
	return math.Inf(1)
}

// MinMaxAcceleration returns the chassis acceleration range achievable
// without either wheel exceeding the voltage budget.
func (c *DifferentialDriveVoltageConstraint) MinMaxAcceleration(_ geometry.Pose2d, curvature, velocity float64) MinMax {
	wheelSpeeds := c.kinematics.ToWheelSpeeds(kinematics.ChassisSpeeds{
		Vx:    velocity,
		Omega: velocity * curvature,
	})

	maxWheelSpeed := math.Max(wheelSpeeds.Left, wheelSpeeds.Right)
	minWheelSpeed := math.Min(wheelSpeeds.Left, wheelSpeeds.Right)

	maxWheelAcceleration := c.feedforward.MaxAchievableAcceleration(c.maxVoltage, maxWheelSpeed)
	minWheelAcceleration := c.feedforward.MinAchievableAcceleration(c.maxVoltage, minWheelSpeed)

	// The chassis turns on radius 1/|curvature|. The outer wheel runs on a
	// radius larger by half the track width T, so with
	// aChassis/radius = aOuter/(radius + T/2) the chassis bound becomes
	// aOuter / (1 + |curvature|*T/2); the inner wheel likewise with the sign
	// of the T/2 term reversed.
	//
	// The sign(velocity) factor picks which wheel sits on the outside of the
	// turn: moving forward, the max-acceleration bound belongs to the outer
	// wheel; moving backward, to the inner one. sign(0) is 0, so a stopped
	// chassis skips the turning geometry correction entirely.
	trackWidth := c.kinematics.TrackWidth()
	maxChassisAcceleration := maxWheelAcceleration /
		(1 + trackWidth*math.Abs(curvature)*sign(velocity)/2)
	minChassisAcceleration := minWheelAcceleration /
		(1 - trackWidth*math.Abs(curvature)*sign(velocity)/2)

	// When the center of the turn falls inside the wheelbase, the inner
	// wheel rolls opposite to the chassis heading and its bound changes
	// sign.
	if trackWidth/2 > 1/math.Abs(curvature) {
		if velocity > 0 {
			minChassisAcceleration = -minChassisAcceleration
		} else {
			maxChassisAcceleration = -maxChassisAcceleration
		}
	}

	return MinMax{Min: minChassisAcceleration, Max: maxChassisAcceleration}
}

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
