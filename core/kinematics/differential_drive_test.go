package kinematics

import (
	"math"
	"testing"
)

func TestNewDifferentialDriveKinematicsRejectsBadTrackWidth(t *testing.T) {
	for _, w := range []float64{0, -0.6} {
		if _, err := NewDifferentialDriveKinematics(w); err == nil {
			t.Errorf("expected error for track width %v", w)
		}
	}
}

func TestToWheelSpeedsStraightLine(t *testing.T) {
	k, err := NewDifferentialDriveKinematics(0.6)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	ws := k.ToWheelSpeeds(ChassisSpeeds{Vx: 2})
	if ws.Left != 2 || ws.Right != 2 {
		t.Errorf("got (%v, %v), want both wheels at 2", ws.Left, ws.Right)
	}
}

func TestToWheelSpeedsTurning(t *testing.T) {
	k, err := NewDifferentialDriveKinematics(0.6)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	// Left turn: omega = vx * curvature = 2 * 0.5 = 1 rad/s, so the right
	// (outer) wheel gains 0.3 m/s and the left loses it.
	ws := k.ToWheelSpeeds(ChassisSpeeds{Vx: 2, Omega: 1})
	if math.Abs(ws.Left-1.7) > 1e-12 || math.Abs(ws.Right-2.3) > 1e-12 {
		t.Errorf("got (%v, %v), want (1.7, 2.3)", ws.Left, ws.Right)
	}
}

func TestChassisWheelRoundTrip(t *testing.T) {
	k, err := NewDifferentialDriveKinematics(0.55)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	orig := ChassisSpeeds{Vx: -1.2, Omega: 0.8}
	got := k.ToChassisSpeeds(k.ToWheelSpeeds(orig))
	if math.Abs(got.Vx-orig.Vx) > 1e-12 || math.Abs(got.Omega-orig.Omega) > 1e-12 {
		t.Errorf("round trip changed speeds: got %+v, want %+v", got, orig)
	}
}

func TestMecanumDriveMotorVoltagesString(t *testing.T) {
	v := MecanumDriveMotorVoltages{FrontLeft: 1.5, FrontRight: -2, RearLeft: 0, RearRight: 12}
	want := "MecanumDriveMotorVoltages(Front Left: 1.50 V, Front Right: -2.00 V, Rear Left: 0.00 V, Rear Right: 12.00 V)"
	if got := v.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
