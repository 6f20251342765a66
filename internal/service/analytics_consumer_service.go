package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"oda-chatbot-be/internal/model"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/internal/repository/implementation"
	"oda-chatbot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAnalyticsConsumerService interface {
	Consume(ctx context.Context) error
}

// analyticsConsumerService drains turn events off the in-process bus and
// persists them as analytics rows, off the request path.
type analyticsConsumerService struct {
	pubSub  *gochannel.GoChannel
	logRepo *implementation.PromptTurnLogRepository
	log     logger.ILogger
}

func NewAnalyticsConsumerService(
	pubSub *gochannel.GoChannel,
	logRepo *implementation.PromptTurnLogRepository,
	log logger.ILogger,
) IAnalyticsConsumerService {
	return &analyticsConsumerService{
		pubSub:  pubSub,
		logRepo: logRepo,
		log:     log,
	}
}

func (cs *analyticsConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicPromptTurnRecorded)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *analyticsConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.PromptTurnRecorded
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("analytics", "failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become valid, drop them
		return
	}

	row := &model.PromptTurnLog{
		ChatSessionId: event.ChatSessionId,
		UserEmail:     event.UserEmail,
		HandlerName:   event.HandlerName,
		ResponseType:  event.ResponseType,
		MajorCategory: event.MajorCategory,
		Keywords:      strings.Join(event.Keywords, ","),
		ResultCount:   event.ResultCount,
		ElapsedMs:     event.ElapsedMs,
		CreatedAt:     event.OccurredAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := cs.logRepo.Create(ctx, row); err != nil {
		cs.log.Error("analytics", "failed to persist turn log", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	msg.Ack()
}
