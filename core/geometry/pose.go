// Package geometry provides the 2D pose types carried through the
// constraint contract. The constraint math never inspects them; path
// generators attach them so downstream consumers can correlate envelopes
// with positions.
package geometry

import "math"

// Translation2d is a displacement in the field frame, metres.
type Translation2d struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the straight-line distance to other.
func (t Translation2d) Distance(other Translation2d) float64 {
	return math.Hypot(other.X-t.X, other.Y-t.Y)
}

// Rotation2d is a heading angle.
type Rotation2d struct {
	Radians float64 `json:"radians"`
}

// Degrees returns the angle in degrees.
func (r Rotation2d) Degrees() float64 {
	return r.Radians * 180 / math.Pi
}

// Pose2d is a 2D position combined with a heading.
type Pose2d struct {
	Translation Translation2d `json:"translation"`
	Rotation    Rotation2d    `json:"rotation"`
}

// NewPose2d builds a pose from field coordinates and a heading in radians.
func NewPose2d(x, y, heading float64) Pose2d {
	return Pose2d{
		Translation: Translation2d{X: x, Y: y},
		Rotation:    Rotation2d{Radians: heading},
	}
}
