package kinematics

import "fmt"

// MecanumDriveMotorVoltages groups the four motor voltages of a mecanum
// drivetrain. Plain data; consumers apply the values to their controllers.
type MecanumDriveMotorVoltages struct {
	FrontLeft  float64 `json:"front_left"`
	FrontRight float64 `json:"front_right"`
	RearLeft   float64 `json:"rear_left"`
	RearRight  float64 `json:"rear_right"`
}

func (v MecanumDriveMotorVoltages) String() string {
	return fmt.Sprintf("MecanumDriveMotorVoltages(Front Left: %.2f V, Front Right: %.2f V, Rear Left: %.2f V, Rear Right: %.2f V)",
		v.FrontLeft, v.FrontRight, v.RearLeft, v.RearRight)
}
