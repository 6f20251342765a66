package contract

import (
	"context"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// Update persists the session using the optimistic Version counter:
	// the write only succeeds when the stored Version matches the one the
	// session was loaded with. ErrStaleSession signals a lost update.
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
}
