package services

import (
	"fmt"
	"math"

	"transect-offset-service/internal/domain"
)

// SensorCoordinates converts GPS transect coordinates to the
// coordinates of a sensor mounted at the given body-frame offsets.
//
// The body-frame offset vector (+Inline forward along the heading,
// +Lateral 90 degrees counter-clockwise from it) is rotated into the
// global frame by the estimated heading at each point and added to the
// GPS fix. The output has the same length as the input; entries are
// undefined (NaN pair) wherever no heading could be estimated.
func SensorCoordinates(points []domain.Point, off domain.Offsets) ([]domain.SensorPoint, error) {
	headings, err := PlatformHeadings(points)
	if err != nil {
		return nil, fmt.Errorf("sensor coordinates: %w", err)
	}

	out := make([]domain.SensorPoint, len(points))
	for i, p := range points {
		theta := headings[i]
		if math.IsNaN(theta) {
			out[i] = domain.Undefined()
			continue
		}
		sin, cos := math.Sincos(theta)
		out[i] = domain.SensorPoint{
			X: p.X + off.Inline*cos - off.Lateral*sin,
			Y: p.Y + off.Inline*sin + off.Lateral*cos,
		}
	}

	return out, nil
}

// Corrections pairs each GPS fix with its derived sensor coordinate.
func Corrections(points []domain.Point, off domain.Offsets) ([]domain.Correction, error) {
	sensor, err := SensorCoordinates(points, off)
	if err != nil {
		return nil, err
	}

	corrections := make([]domain.Correction, len(points))
	for i, p := range points {
		corrections[i] = domain.Correction{GPS: p, Sensor: sensor[i]}
	}

	return corrections, nil
}
