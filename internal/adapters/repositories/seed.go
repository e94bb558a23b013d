package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"transect-offset-service/internal/domain"
)

// One transect in a seed file: raw GPS points plus the offsets they
// should be corrected with.
type SurveySeed struct {
	Name          string       `json:"name"`
	InlineOffset  float64      `json:"inline_offset"`
	LateralOffset float64      `json:"lateral_offset"`
	Points        [][2]float64 `json:"points"`
}

// Offsets returns the seed's offsets as a domain value.
func (s SurveySeed) Offsets() domain.Offsets {
	return domain.Offsets{Inline: s.InlineOffset, Lateral: s.LateralOffset}
}

// Transect returns the seed's raw GPS points as domain values.
func (s SurveySeed) Transect() []domain.Point {
	points := make([]domain.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = domain.Point{X: p[0], Y: p[1]}
	}
	return points
}

// LoadSeeds reads and validates survey seed data from a JSON file.
func LoadSeeds(jsonPath string) ([]SurveySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", jsonPath, err)
	}

	var seeds []SurveySeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("load seeds: parse json: %w", err)
	}

	for i, s := range seeds {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("load seeds: survey at index %d: name cannot be empty", i)
		}
		if len(s.Points) < 3 {
			return nil, fmt.Errorf("load seeds: survey %q: need at least 3 points, got %d", s.Name, len(s.Points))
		}
	}

	return seeds, nil
}
