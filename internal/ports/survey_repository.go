package ports

import (
	"context"
	"errors"

	"transect-offset-service/internal/domain"
)

// Returned by repositories when a requested survey does not exist.
var ErrSurveyNotFound = errors.New("survey not found")

// Port: a boundary for persisting and retrieving survey correction runs.
type SurveyRepository interface {
	// Persist a survey and its corrections, returning the new survey ID.
	SaveSurvey(ctx context.Context, survey *domain.Survey) (int64, error)
	// Retrieve one survey including its corrections.
	GetSurvey(ctx context.Context, id int64) (*domain.Survey, error)
	// List stored surveys without their point data.
	ListSurveys(ctx context.Context) ([]*domain.Survey, error)
}
