// Package kinematics converts between chassis-frame and wheel-frame motion
// for a differential drivetrain with a fixed track width.
package kinematics

// ChassisSpeeds is the robot-frame velocity.
type ChassisSpeeds struct {
	Vx    float64 `json:"vx"`    // forward speed, m/s, signed
	Vy    float64 `json:"vy"`    // lateral speed, m/s; always 0 for a differential drive
	Omega float64 `json:"omega"` // angular rate, rad/s, positive counter-clockwise
}

// WheelSpeeds holds the signed ground speeds of the left and right wheels in m/s.
type WheelSpeeds struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}
