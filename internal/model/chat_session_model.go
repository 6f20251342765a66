package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail       string    `gorm:"type:text;not null;index:idx_chat_sessions_user_email_created_at"`
	Title           string    `gorm:"type:text;not null"`
	FocusedDataName string    `gorm:"type:text"`
	Version         int64     `gorm:"not null;default:0"` // optimistic lock counter
	CreatedAt       time.Time `gorm:"autoCreateTime;index:idx_chat_sessions_user_email_created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
