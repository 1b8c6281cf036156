package kinematics

import "fmt"

// DifferentialDriveKinematics maps chassis speeds onto the two wheels of a
// differential drivetrain and back. The track width is fixed at construction.
type DifferentialDriveKinematics struct {
	trackWidth float64
}

// NewDifferentialDriveKinematics builds a kinematics model for the given
// track width in metres, the lateral distance between the wheel contact
// points. The width must be positive.
func NewDifferentialDriveKinematics(trackWidthMeters float64) (DifferentialDriveKinematics, error) {
	if trackWidthMeters <= 0 {
		return DifferentialDriveKinematics{}, fmt.Errorf("track width must be positive, got %v", trackWidthMeters)
	}
	return DifferentialDriveKinematics{trackWidth: trackWidthMeters}, nil
}

// TrackWidth returns the track width in metres.
func (k DifferentialDriveKinematics) TrackWidth() float64 {
	return k.trackWidth
}

// ToWheelSpeeds converts chassis speeds to individual wheel speeds. While
// turning, the wheel on the outside of the turn runs faster than the chassis
// and the inner wheel slower, each by half the track width times the angular
// rate. Vy is ignored; the drivetrain cannot move sideways.
func (k DifferentialDriveKinematics) ToWheelSpeeds(speeds ChassisSpeeds) WheelSpeeds {
	return WheelSpeeds{
		Left:  speeds.Vx - k.trackWidth/2*speeds.Omega,
		Right: speeds.Vx + k.trackWidth/2*speeds.Omega,
	}
}

// ToChassisSpeeds is the inverse of ToWheelSpeeds.
func (k DifferentialDriveKinematics) ToChassisSpeeds(speeds WheelSpeeds) ChassisSpeeds {
	return ChassisSpeeds{
		Vx:    (speeds.Left + speeds.Right) / 2,
		Omega: (speeds.Right - speeds.Left) / k.trackWidth,
	}
}
