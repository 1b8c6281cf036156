// Package constraint defines the trajectory constraint contract and the
// differential drive voltage constraint. A path generator evaluates every
// active constraint at every path sample and intersects the results to shrink
// the velocity and acceleration profile until all constraints hold.
package constraint

import (
	"math"

	"github.com/frcutil/drivekit/core/geometry"
	"github.com/frcutil/drivekit/core/kinematics"
)

// MinMax bounds the chassis acceleration at a single path point in m/s^2.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Unlimited returns a MinMax that constrains nothing.
func Unlimited() MinMax {
	return MinMax{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Intersect returns the tightest bounds satisfying both m and other.
func (m MinMax) Intersect(other MinMax) MinMax {
	return MinMax{
		Min: math.Max(m.Min, other.Min),
		Max: math.Min(m.Max, other.Max),
	}
}

// Constraint restricts the motion profile of a trajectory at a single path
// sample. Implementations must be side-effect free: a generator calls them
// from its sweep loops, possibly concurrently.
type Constraint interface {
	// MaxVelocity returns the highest forward chassis velocity in m/s
	// permitted at the given pose, signed path curvature (rad/m, positive
	// is a left turn) and candidate velocity. Constraints that only limit
	// acceleration return +Inf.
	MaxVelocity(pose geometry.Pose2d, curvature, velocity float64) float64

	// MinMaxAcceleration returns the feasible chassis acceleration range in
	// m/s^2 at the given pose, curvature and candidate velocity.
	MinMaxAcceleration(pose geometry.Pose2d, curvature, velocity float64) MinMax
}

// Feedforward converts a voltage budget into achievable wheel accelerations
// at a given wheel speed.
type Feedforward interface {
	MaxAchievableAcceleration(maxVoltage, velocity float64) float64
	MinAchievableAcceleration(maxVoltage, velocity float64) float64
}

// DriveKinematics maps chassis speeds onto the wheels of a drivetrain with a
// fixed track width.
type DriveKinematics interface {
	ToWheelSpeeds(speeds kinematics.ChassisSpeeds) kinematics.WheelSpeeds
	TrackWidth() float64
}
