package domain

import "math"

// Planar survey coordinate (e.g., projected easting/northing).
// Units are whatever the input uses; no conversion is performed.
type Point struct {
	X float64
	Y float64
}

// Sensor offsets in the platform body frame, in the same units as the
// transect coordinates. Inline is positive in the direction of travel,
// Lateral is positive to the left facing forward.
type Offsets struct {
	Inline  float64
	Lateral float64
}

// Derived sensor coordinate. NaN components mark points where no
// heading could be estimated (transect endpoints, degenerate geometry).
type SensorPoint struct {
	X float64
	Y float64
}

// Defined reports whether both components are finite.
func (p SensorPoint) Defined() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Undefined returns the sentinel sensor point used where no heading
// estimate exists.
func Undefined() SensorPoint {
	return SensorPoint{X: math.NaN(), Y: math.NaN()}
}
