package services

import (
	"errors"
	"math"

	"transect-offset-service/internal/domain"
)

// Returned when a transect is too short for any heading to be
// estimated: every point needs both a predecessor and a successor.
var ErrInsufficientData = errors.New("transect must contain at least 3 points")

// PlatformHeadings estimates the platform heading at each GPS fix.
//
// The heading at an interior point is the circular average of the
// bearings of the two adjacent traverse legs, each bearing weighted by
// the length of its own leg (a longer leg is stronger evidence of the
// instantaneous direction of travel). The average is formed by summing
// the weighted bearing unit vectors and taking the angle of the
// resultant, so bearings straddling the +-pi boundary average
// correctly; a scalar average of the two angles would not.
//
// A leg's bearing unit vector scaled by its own length is exactly the
// leg's displacement vector, so the resultant is computed as the sum
// of the two displacements. This keeps exactly opposed legs of equal
// length cancelling to a true zero instead of trigonometric roundoff.
//
// Headings are standard planar angles in radians, counter-clockwise
// from the +x axis, in (-pi, pi]. The first and last entries are NaN
// since those points lack a predecessor or successor. A zero resultant
// (coincident neighbors, exactly opposed legs of equal length) yields
// NaN for that point only, as does any non-finite coordinate in the
// point's neighborhood. A zero-length leg simply contributes zero
// weight.
func PlatformHeadings(points []domain.Point) ([]float64, error) {
	if len(points) < 3 {
		return nil, ErrInsufficientData
	}

	headings := make([]float64, len(points))
	headings[0] = math.NaN()
	headings[len(points)-1] = math.NaN()

	for i := 1; i < len(points)-1; i++ {
		inX := points[i].X - points[i-1].X
		inY := points[i].Y - points[i-1].Y
		outX := points[i+1].X - points[i].X
		outY := points[i+1].Y - points[i].Y

		sumX := inX + outX
		sumY := inY + outY

		if sumX == 0 && sumY == 0 {
			headings[i] = math.NaN()
			continue
		}
		headings[i] = math.Atan2(sumY, sumX)
	}

	return headings, nil
}

// Bearing returns the direction of the leg from a to b as a standard
// planar angle in radians.
func Bearing(a, b domain.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// LegLength returns the Euclidean length of the leg from a to b.
func LegLength(a, b domain.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
