package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicPromptTurnRecorded carries one processed conversational turn to the
// analytics consumer.
const TopicPromptTurnRecorded = "PROMPT_TURN_RECORDED"

// PromptTurnRecorded is published after every dispatched prompt, regardless
// of which handler claimed it.
type PromptTurnRecorded struct {
	ChatSessionId uuid.UUID `json:"chatSessionId"`
	UserEmail     string    `json:"userEmail"`
	HandlerName   string    `json:"handlerName"`
	ResponseType  string    `json:"responseType"`
	MajorCategory string    `json:"majorCategory"`
	Keywords      []string  `json:"keywords"`
	ResultCount   int       `json:"resultCount"`
	ElapsedMs     int64     `json:"elapsedMs"`
	OccurredAt    time.Time `json:"occurredAt"`
}
