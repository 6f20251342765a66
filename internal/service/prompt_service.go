package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"oda-chatbot-be/internal/constant"
	"oda-chatbot-be/internal/dto"
	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/internal/repository/specification"
	"oda-chatbot-be/internal/repository/unitofwork"
	"oda-chatbot-be/pkg/events"
	"oda-chatbot-be/pkg/prompt"
	"oda-chatbot-be/pkg/queryplan"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ErrSessionNotFound signals a client-supplied session id with no stored
// session. Unlike search misses this is a caller error, not a chat reply.
var ErrSessionNotFound = errors.New("chat session not found")

type IPromptService interface {
	ProcessPrompt(ctx context.Context, userEmail string, req *dto.PromptRequest) (*dto.ChatResponse, error)
	GetChatHistory(ctx context.Context, userEmail string) ([]*dto.ChatHistoryResponse, error)
	GetSessions(ctx context.Context, userEmail string) ([]*dto.ChatSessionSummaryResponse, error)
	DeleteSession(ctx context.Context, userEmail string, sessionId uuid.UUID) error
	CreateQueryPlan(promptText string) *dto.QueryPlanResponse
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
	router     *prompt.Router
	pubSub     *gochannel.GoChannel
	log        logger.ILogger
}

func NewPromptService(
	uowFactory unitofwork.RepositoryFactory,
	router *prompt.Router,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IPromptService {
	return &promptService{
		uowFactory: uowFactory,
		router:     router,
		pubSub:     pubSub,
		log:        log,
	}
}

func (s *promptService) ProcessPrompt(ctx context.Context, userEmail string, req *dto.PromptRequest) (*dto.ChatResponse, error) {
	started := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Load or lazily create the session.
	session, err := s.loadOrCreateSession(ctx, uow, userEmail, req)
	if err != nil {
		return nil, err
	}

	// 2. Route the prompt through the handler chain.
	result := s.router.Dispatch(ctx, prompt.Request{
		Prompt:          req.Prompt,
		FocusedDataName: session.FocusedDataName,
	})

	// 3. Explicitly persist the state transition the handler requested.
	if result.Focus.Apply && result.Focus.Name != session.FocusedDataName {
		session.FocusedDataName = result.Focus.Name
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}

	responseBody, err := json.Marshal(result.Response)
	if err != nil {
		return nil, err
	}

	// 4. Append both turns to the conversation history. History is
	// auxiliary: a failed write is logged, not surfaced to the user.
	s.saveMessages(ctx, uow, session, userEmail, req.Prompt, responseBody)

	// 5. Hand the turn to the analytics consumer.
	s.publishTurn(session, userEmail, req.Prompt, result, time.Since(started))

	return &dto.ChatResponse{
		ResponseBody:       responseBody,
		SessionId:          session.Id,
		SessionTitle:       session.Title,
		FocusedDatasetName: session.FocusedDataName,
	}, nil
}

func (s *promptService) loadOrCreateSession(ctx context.Context, uow unitofwork.UnitOfWork, userEmail string, req *dto.PromptRequest) (*entity.ChatSession, error) {
	if req.SessionId == nil {
		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserEmail: userEmail,
			Title:     sessionTitle(req.Prompt),
			CreatedAt: time.Now(),
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: *req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserEmail != userEmail {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func sessionTitle(promptText string) string {
	runes := []rune(promptText)
	if len(runes) > constant.SessionTitleMaxLen {
		return string(runes[:constant.SessionTitleMaxLen]) + "..."
	}
	return promptText
}

func (s *promptService) saveMessages(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, userEmail, promptText string, responseBody []byte) {
	now := time.Now()
	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		UserEmail:     userEmail,
		Role:          constant.ChatMessageRoleUser,
		Content:       promptText,
		CreatedAt:     now,
	}
	modelMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		UserEmail:     userEmail,
		Role:          constant.ChatMessageRoleModel,
		Content:       string(responseBody),
		CreatedAt:     now,
	}
	for _, msg := range []*entity.ChatMessage{userMessage, modelMessage} {
		if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
			s.log.Error("prompt_service", "failed to save chat message", map[string]interface{}{
				"sessionId": session.Id.String(),
				"role":      msg.Role,
				"error":     err.Error(),
			})
		}
	}
}

func (s *promptService) publishTurn(session *entity.ChatSession, userEmail, promptText string, result prompt.Result, elapsed time.Duration) {
	plan := queryplan.CreatePlan(promptText)
	resultCount := 0
	if lines, ok := result.Response.Payload.([]string); ok {
		resultCount = len(lines)
	}

	event := events.PromptTurnRecorded{
		ChatSessionId: session.Id,
		UserEmail:     userEmail,
		HandlerName:   result.Handler,
		ResponseType:  result.Response.Type,
		MajorCategory: plan.MajorCategory,
		Keywords:      plan.Keywords,
		ResultCount:   resultCount,
		ElapsedMs:     elapsed.Milliseconds(),
		OccurredAt:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("prompt_service", "failed to marshal turn event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.pubSub.Publish(events.TopicPromptTurnRecorded, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.log.Warn("prompt_service", "failed to publish turn event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *promptService) GetChatHistory(ctx context.Context, userEmail string) ([]*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserEmail{Email: userEmail},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	histories := make([]*dto.ChatHistoryResponse, 0, len(sessions))
	for _, session := range sessions {
		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		if err != nil {
			return nil, err
		}

		messageDtos := make([]dto.ChatMessageResponse, 0, len(messages))
		for _, msg := range messages {
			messageDtos = append(messageDtos, dto.ChatMessageResponse{
				Role:      msg.Role,
				Content:   messageContent(msg),
				CreatedAt: msg.CreatedAt,
			})
		}
		histories = append(histories, &dto.ChatHistoryResponse{
			SessionId:    session.Id,
			SessionTitle: session.Title,
			Messages:     messageDtos,
		})
	}
	return histories, nil
}

// messageContent keeps stored model envelopes as raw JSON and wraps plain
// user text into a JSON string.
func messageContent(msg *entity.ChatMessage) json.RawMessage {
	if msg.Role == constant.ChatMessageRoleModel && json.Valid([]byte(msg.Content)) {
		return json.RawMessage(msg.Content)
	}
	encoded, err := json.Marshal(msg.Content)
	if err != nil {
		return json.RawMessage(`""`)
	}
	return encoded
}

func (s *promptService) GetSessions(ctx context.Context, userEmail string) ([]*dto.ChatSessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserEmail{Email: userEmail},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.ChatSessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, &dto.ChatSessionSummaryResponse{
			SessionId:    session.Id,
			SessionTitle: session.Title,
			CreatedAt:    session.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *promptService) DeleteSession(ctx context.Context, userEmail string, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil || session.UserEmail != userEmail {
		return ErrSessionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *promptService) CreateQueryPlan(promptText string) *dto.QueryPlanResponse {
	plan := queryplan.CreatePlan(promptText)
	return &dto.QueryPlanResponse{
		MajorCategory:  plan.MajorCategory,
		Keywords:       plan.Keywords,
		SearchYear:     plan.SearchYear,
		ProviderAgency: plan.ProviderAgency,
		HasDateFilter:  plan.HasDateFilter,
		Limit:          plan.Limit,
	}
}
