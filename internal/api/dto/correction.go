package dto

type CorrectionRequest struct {
	Name          string       `json:"name"`
	InlineOffset  float64      `json:"inline_offset"`
	LateralOffset float64      `json:"lateral_offset"`
	Points        [][2]float64 `json:"points"`
	Save          bool         `json:"save"`
}

// Undefined sensor coordinates are null: NaN is not representable in
// JSON, so boundary and degenerate points carry nil pointers.
type CorrectionPointResponse struct {
	XGPS  float64  `json:"xgps"`
	YGPS  float64  `json:"ygps"`
	XSens *float64 `json:"xsens"`
	YSens *float64 `json:"ysens"`
}

type CorrectionResponse struct {
	SurveyID      int64                     `json:"survey_id,omitempty"`
	Name          string                    `json:"name,omitempty"`
	InlineOffset  float64                   `json:"inline_offset"`
	LateralOffset float64                   `json:"lateral_offset"`
	Points        []CorrectionPointResponse `json:"points"`
}
