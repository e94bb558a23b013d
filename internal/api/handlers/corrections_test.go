package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transect-offset-service/internal/adapters/repositories"
	"transect-offset-service/internal/api/dto"
)

func postCorrection(t *testing.T, h *CorrectionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/corrections", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Correct(rec, req)
	return rec
}

func TestCorrectionHandler(t *testing.T) {
	h := &CorrectionHandler{Repo: repositories.NewMockSurveyRepository()}

	body := `{
		"inline_offset": 1,
		"points": [[0,0],[1,0],[2,1]]
	}`
	rec := postCorrection(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.CorrectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Points) != 3 {
		t.Fatalf("response has %d points, want 3", len(res.Points))
	}
	if res.Points[0].XSens != nil || res.Points[2].XSens != nil {
		t.Error("endpoint sensor coordinates must be null")
	}
	if res.Points[1].XSens == nil || res.Points[1].YSens == nil {
		t.Fatal("interior sensor coordinates must be set")
	}
	if math.Abs(*res.Points[1].XSens-1.8944271909999159) > 1e-9 {
		t.Errorf("xsens = %v, want 1.8944271909999159", *res.Points[1].XSens)
	}
	if res.SurveyID != 0 {
		t.Errorf("survey_id = %d, want 0 when save not requested", res.SurveyID)
	}
}

func TestCorrectionHandlerSaves(t *testing.T) {
	repo := repositories.NewMockSurveyRepository()
	h := &CorrectionHandler{Repo: repo}

	body := `{
		"name": "field-7",
		"lateral_offset": 0.5,
		"points": [[0,0],[1,1],[2,2]],
		"save": true
	}`
	rec := postCorrection(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.CorrectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.SurveyID == 0 {
		t.Fatal("survey_id = 0, want assigned ID after save")
	}
}

func TestCorrectionHandlerRejects(t *testing.T) {
	h := &CorrectionHandler{Repo: repositories.NewMockSurveyRepository()}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"too few points", `{"points": [[0,0],[1,0]]}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown field", `{"points": [[0,0],[1,0],[2,0]], "bogus": 1}`, http.StatusBadRequest},
		{"save without name", `{"points": [[0,0],[1,0],[2,0]], "save": true}`, http.StatusBadRequest},
		{"two json objects", `{"points": [[0,0],[1,0],[2,0]]}{}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postCorrection(t, h, tc.body)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestCorrectionHandlerMethodNotAllowed(t *testing.T) {
	h := &CorrectionHandler{Repo: repositories.NewMockSurveyRepository()}

	req := httptest.NewRequest(http.MethodGet, "/corrections", nil)
	rec := httptest.NewRecorder()
	h.Correct(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
