package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession carries the per-conversation state. FocusedDataName is the
// only field the prompt pipeline mutates: it names the dataset currently
// "in context" and decides which handler claims the next prompt.
type ChatSession struct {
	Id              uuid.UUID
	UserEmail       string
	Title           string
	FocusedDataName string // empty = no dataset in focus
	Version         int64  // optimistic lock counter, bumped on every save
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
