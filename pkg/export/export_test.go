package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/frcutil/drivekit/core/constraint"
	"github.com/frcutil/drivekit/core/profile"
)

var points = []profile.PointEnvelope{
	{MaxVelocity: 3.5, Acceleration: constraint.MinMax{Min: -2, Max: 4}},
	{MaxVelocity: 2, Acceleration: constraint.MinMax{Min: -1.5, Max: 1.5}},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, points); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded []profile.PointEnvelope
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != points[0] {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, points); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "max_velocity,min_acceleration,max_acceleration" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "3.5,-2,4" {
		t.Errorf("row: %q", lines[1])
	}
}
