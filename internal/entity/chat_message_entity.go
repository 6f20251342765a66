package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	UserEmail     string
	Role          string // constant.ChatMessageRoleUser / constant.ChatMessageRoleModel
	Content       string // user prompt, or the JSON-encoded response envelope
	CreatedAt     time.Time
}
