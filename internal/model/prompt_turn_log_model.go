package model

import (
	"time"

	"github.com/google/uuid"
)

// PromptTurnLog is the analytics record written by the consumer service,
// one row per processed prompt turn.
type PromptTurnLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail     string    `gorm:"type:text;not null"`
	HandlerName   string    `gorm:"type:text;not null"`
	ResponseType  string    `gorm:"type:text;not null"`
	MajorCategory string    `gorm:"type:text"`
	Keywords      string    `gorm:"type:text"` // comma-joined extracted keywords
	ResultCount   int       `gorm:"not null;default:0"`
	ElapsedMs     int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PromptTurnLog) TableName() string {
	return "prompt_turn_logs"
}
