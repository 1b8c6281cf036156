// Package export writes evaluated constraint envelopes to JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/frcutil/drivekit/core/profile"
)

// WriteJSON writes the envelopes to w in JSON format.
func WriteJSON(w io.Writer, points []profile.PointEnvelope) error {
	enc := json.NewEncoder(w)
	return enc.Encode(points)
}

// WriteCSV writes the envelopes to w in CSV format, one row per path sample.
func WriteCSV(w io.Writer, points []profile.PointEnvelope) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"max_velocity", "min_acceleration", "max_acceleration"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.MaxVelocity, 'f', -1, 64),
			strconv.FormatFloat(p.Acceleration.Min, 'f', -1, 64),
			strconv.FormatFloat(p.Acceleration.Max, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
