package implementation

import (
	"context"

	"oda-chatbot-be/internal/model"

	"gorm.io/gorm"
)

// PromptTurnLogRepository persists analytics rows written by the consumer
// service. Kept as a direct GORM repository: the analytics path is
// append-only and never participates in a unit of work.
type PromptTurnLogRepository struct {
	db *gorm.DB
}

func NewPromptTurnLogRepository(db *gorm.DB) *PromptTurnLogRepository {
	return &PromptTurnLogRepository{db: db}
}

func (r *PromptTurnLogRepository) Create(ctx context.Context, log *model.PromptTurnLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
