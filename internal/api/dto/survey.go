package dto

import "time"

type SurveyResponse struct {
	SurveyID      int64                     `json:"survey_id"`
	Name          string                    `json:"name"`
	InlineOffset  float64                   `json:"inline_offset"`
	LateralOffset float64                   `json:"lateral_offset"`
	CreatedAt     time.Time                 `json:"created_at"`
	Points        []CorrectionPointResponse `json:"points,omitempty"`
}

type ListSurveysResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
}
