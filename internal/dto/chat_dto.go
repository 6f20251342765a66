package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Role      string          `json:"role"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId    uuid.UUID             `json:"session_id"`
	SessionTitle string                `json:"session_title"`
	Messages     []ChatMessageResponse `json:"messages"`
}

type ChatSessionSummaryResponse struct {
	SessionId    uuid.UUID `json:"session_id"`
	SessionTitle string    `json:"session_title"`
	CreatedAt    time.Time `json:"created_at"`
}
