package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"transect-offset-service/internal/api/dto"
	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/ports"
)

// SurveyHandler exposes read-only survey retrieval endpoints.
type SurveyHandler struct {
	Repo ports.SurveyRepository
}

// List serves GET /surveys. With an id query parameter it returns one
// survey including its corrections; without, a summary listing.
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if rawID := r.URL.Query().Get("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "id must be an integer")
			return
		}
		h.get(w, r, id)
		return
	}

	surveys, err := h.Repo.ListSurveys(r.Context())
	if err != nil {
		log.Printf("list surveys failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSurveysResponse{Surveys: make([]dto.SurveyResponse, 0, len(surveys))}
	for _, s := range surveys {
		res.Surveys = append(res.Surveys, surveyResponse(s, false))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SurveyHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	survey, err := h.Repo.GetSurvey(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrSurveyNotFound) {
			writeError(w, r, http.StatusNotFound, "survey not found")
			return
		}
		log.Printf("get survey failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, surveyResponse(survey, true))
}

func surveyResponse(s *domain.Survey, includePoints bool) dto.SurveyResponse {
	res := dto.SurveyResponse{
		SurveyID:      s.ID,
		Name:          s.Name,
		InlineOffset:  s.Offsets.Inline,
		LateralOffset: s.Offsets.Lateral,
		CreatedAt:     s.CreatedAt,
	}
	if includePoints {
		res.Points = correctionPoints(s.Corrections)
	}
	return res
}
