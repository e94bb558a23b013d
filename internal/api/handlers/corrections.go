package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"transect-offset-service/internal/api/dto"
	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/ports"
	"transect-offset-service/internal/services"
)

type CorrectionHandler struct {
	Repo ports.SurveyRepository
}

// Correct converts a posted GPS transect to sensor coordinates and,
// when requested, persists the run as a named survey.
func (h *CorrectionHandler) Correct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CorrectionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Points) < 3 {
		writeError(w, r, http.StatusBadRequest, "at least 3 points are required to estimate headings")
		return
	}
	if req.Save && strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required when save is set")
		return
	}

	points := make([]domain.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = domain.Point{X: p[0], Y: p[1]}
	}

	svcReq := services.CorrectTransectRequest{
		Name:    strings.TrimSpace(req.Name),
		Points:  points,
		Offsets: domain.Offsets{Inline: req.InlineOffset, Lateral: req.LateralOffset},
		Save:    req.Save,
	}

	survey, err := services.CorrectTransect(r.Context(), svcReq, h.Repo)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			writeError(w, r, http.StatusBadRequest, "at least 3 points are required to estimate headings")
			return
		}
		log.Printf("correct transect failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CorrectionResponse{
		SurveyID:      survey.ID,
		Name:          survey.Name,
		InlineOffset:  survey.Offsets.Inline,
		LateralOffset: survey.Offsets.Lateral,
		Points:        correctionPoints(survey.Corrections),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func correctionPoints(corrections []domain.Correction) []dto.CorrectionPointResponse {
	out := make([]dto.CorrectionPointResponse, 0, len(corrections))
	for _, c := range corrections {
		p := dto.CorrectionPointResponse{XGPS: c.GPS.X, YGPS: c.GPS.Y}
		if c.Sensor.Defined() {
			x, y := c.Sensor.X, c.Sensor.Y
			p.XSens, p.YSens = &x, &y
		}
		out = append(out, p)
	}
	return out
}
