package repositories

import (
	"context"
	"fmt"
	"sort"

	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/ports"
)

// In-memory SurveyRepository for tests and local experimentation.
type MockSurveyRepository struct {
	nextID  int64
	surveys map[int64]*domain.Survey
}

func NewMockSurveyRepository() *MockSurveyRepository {
	return &MockSurveyRepository{nextID: 1, surveys: make(map[int64]*domain.Survey)}
}

func (m *MockSurveyRepository) SaveSurvey(ctx context.Context, survey *domain.Survey) (int64, error) {
	id := m.nextID
	m.nextID++

	stored := *survey
	stored.ID = id
	m.surveys[id] = &stored
	return id, nil
}

func (m *MockSurveyRepository) GetSurvey(ctx context.Context, id int64) (*domain.Survey, error) {
	s, ok := m.surveys[id]
	if !ok {
		return nil, fmt.Errorf("mock repository: id=%d: %w", id, ports.ErrSurveyNotFound)
	}
	return s, nil
}

func (m *MockSurveyRepository) ListSurveys(ctx context.Context) ([]*domain.Survey, error) {
	out := make([]*domain.Survey, 0, len(m.surveys))
	for _, s := range m.surveys {
		summary := *s
		summary.Corrections = nil
		out = append(out, &summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
