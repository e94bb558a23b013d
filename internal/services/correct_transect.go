package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/ports"
)

type CorrectTransectRequest struct {
	Name    string
	Points  []domain.Point
	Offsets domain.Offsets
	Save    bool
}

// CorrectTransect computes sensor coordinates for a transect and,
// when requested, persists the run as a named survey.
//
// The computation itself is pure; the repository is touched only on
// the save path. The returned survey carries the assigned ID after a
// successful save and zero otherwise.
func CorrectTransect(
	ctx context.Context,
	req CorrectTransectRequest,
	repo ports.SurveyRepository,
) (*domain.Survey, error) {
	corrections, err := Corrections(req.Points, req.Offsets)
	if err != nil {
		return nil, fmt.Errorf("correct transect: %w", err)
	}

	survey := &domain.Survey{
		Name:        req.Name,
		Offsets:     req.Offsets,
		CreatedAt:   time.Now().UTC(),
		Corrections: corrections,
	}

	if !req.Save {
		return survey, nil
	}

	if repo == nil {
		return nil, errors.New("correct transect: save requested but no repository configured")
	}

	id, err := repo.SaveSurvey(ctx, survey)
	if err != nil {
		return nil, fmt.Errorf("correct transect: save survey %q: %w", req.Name, err)
	}
	survey.ID = id

	return survey, nil
}
