package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"transect-offset-service/internal/adapters/repositories"
	"transect-offset-service/internal/api/dto"
	"transect-offset-service/internal/domain"
)

func seededSurveyHandler(t *testing.T) (*SurveyHandler, int64) {
	t.Helper()

	repo := repositories.NewMockSurveyRepository()
	id, err := repo.SaveSurvey(context.Background(), &domain.Survey{
		Name:      "gamma",
		Offsets:   domain.Offsets{Inline: -0.5, Lateral: -1.5},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Corrections: []domain.Correction{
			{GPS: domain.Point{X: 0, Y: 0}, Sensor: domain.Undefined()},
			{GPS: domain.Point{X: 1, Y: 0}, Sensor: domain.SensorPoint{X: 0.5, Y: 1.5}},
			{GPS: domain.Point{X: 2, Y: 0}, Sensor: domain.Undefined()},
		},
	})
	if err != nil {
		t.Fatalf("seed mock repository: %v", err)
	}
	return &SurveyHandler{Repo: repo}, id
}

func TestSurveyHandlerList(t *testing.T) {
	h, _ := seededSurveyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/surveys", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ListSurveysResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Surveys) != 1 {
		t.Fatalf("listed %d surveys, want 1", len(res.Surveys))
	}
	if res.Surveys[0].Name != "gamma" {
		t.Errorf("name = %q, want %q", res.Surveys[0].Name, "gamma")
	}
	if len(res.Surveys[0].Points) != 0 {
		t.Errorf("listing carried %d points, want none", len(res.Surveys[0].Points))
	}
}

func TestSurveyHandlerGet(t *testing.T) {
	h, id := seededSurveyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/surveys?id="+strconv.FormatInt(id, 10), nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.SurveyResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.SurveyID != id {
		t.Errorf("survey_id = %d, want %d", res.SurveyID, id)
	}
	if len(res.Points) != 3 {
		t.Fatalf("detail has %d points, want 3", len(res.Points))
	}
	if res.Points[0].XSens != nil {
		t.Error("endpoint sensor coordinate must be null")
	}
	if res.Points[1].XSens == nil {
		t.Error("interior sensor coordinate must be set")
	}
}

func TestSurveyHandlerNotFound(t *testing.T) {
	h, _ := seededSurveyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/surveys?id=999", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSurveyHandlerBadID(t *testing.T) {
	h, _ := seededSurveyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/surveys?id=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSurveyHandlerMethodNotAllowed(t *testing.T) {
	h, _ := seededSurveyHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/surveys", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
