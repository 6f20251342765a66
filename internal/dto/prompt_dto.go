package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type PromptRequest struct {
	Prompt    string     `json:"prompt" validate:"required"`
	SessionId *uuid.UUID `json:"session_id"`
}

// ChatResponse is the outward envelope for one conversational turn. Body is
// the handler output: a tagged object whose payload shape varies by type.
type ChatResponse struct {
	ResponseBody       json.RawMessage `json:"response_body"`
	SessionId          uuid.UUID       `json:"session_id"`
	SessionTitle       string          `json:"session_title"`
	FocusedDatasetName string          `json:"focused_dataset_name,omitempty"`
}

// QueryPlanResponse exposes the planner extraction for debugging.
type QueryPlanResponse struct {
	MajorCategory  string   `json:"major_category"`
	Keywords       []string `json:"keywords"`
	SearchYear     *int     `json:"search_year"`
	ProviderAgency string   `json:"provider_agency"`
	HasDateFilter  bool     `json:"has_date_filter"`
	Limit          int      `json:"limit"`
}
