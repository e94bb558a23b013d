package domain

import "time"

// Pairs an original GPS fix with its derived sensor coordinate.
type Correction struct {
	GPS    Point
	Sensor SensorPoint
}

// Represents one persisted correction run: a transect, the offsets it
// was corrected with, and the resulting paired coordinates.
// It is immutable result data and contains no side effects.
type Survey struct {
	ID          int64
	Name        string
	Offsets     Offsets
	CreatedAt   time.Time
	Corrections []Correction
}
