package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oda-chatbot-be/internal/constant"
	"oda-chatbot-be/internal/dto"
	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/repository/contract"
	"oda-chatbot-be/internal/repository/implementation"
	"oda-chatbot-be/internal/repository/specification"
	"oda-chatbot-be/internal/repository/unitofwork"
	"oda-chatbot-be/pkg/prompt"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// --- in-memory repositories ---

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.ChatSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.ChatSession{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	copied := *session
	r.sessions[session.Id] = &copied
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	stored, ok := r.sessions[session.Id]
	if !ok || stored.Version != session.Version {
		return implementation.ErrStaleSession
	}
	session.Version++
	copied := *session
	r.sessions[session.Id] = &copied
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if stored, found := r.sessions[byID.ID]; found {
				copied := *stored
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var email string
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByUserEmail); ok {
			email = byEmail.Email
		}
	}
	var out []*entity.ChatSession
	for _, stored := range r.sessions {
		if email == "" || stored.UserEmail == email {
			copied := *stored
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var sessionId uuid.UUID
	for _, spec := range specs {
		if bySession, ok := spec.(specification.ByChatSessionID); ok {
			sessionId = bySession.ChatSessionID
		}
	}
	var out []*entity.ChatMessage
	for _, msg := range r.messages {
		if sessionId == uuid.Nil || msg.ChatSessionId == sessionId {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	var kept []*entity.ChatMessage
	for _, msg := range r.messages {
		if msg.ChatSessionId != sessionId {
			kept = append(kept, msg)
		}
	}
	r.messages = kept
	return nil
}

type fakeUow struct {
	sessions *fakeSessionRepo
	messages *fakeMessageRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) CatalogRepository() contract.CatalogRepository         { return nil }
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository { return u.sessions }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return u.messages }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// --- scripted handlers ---

type scriptedHandler struct {
	name    string
	matches func(prompt, focused string) bool
	result  prompt.Result
}

func (h scriptedHandler) Name() string { return h.name }
func (h scriptedHandler) CanHandle(promptText, focusedDataName string) bool {
	return h.matches(promptText, focusedDataName)
}
func (h scriptedHandler) Handle(ctx context.Context, req prompt.Request) prompt.Result {
	return h.result
}

func newService(router *prompt.Router) (IPromptService, *fakeUow) {
	uow := &fakeUow{sessions: newFakeSessionRepo(), messages: &fakeMessageRepo{}}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewPromptService(&fakeFactory{uow: uow}, router, pubSub, nopLogger{})
	return svc, uow
}

func echoRouter(result prompt.Result) *prompt.Router {
	return prompt.NewRouter(nopLogger{}, scriptedHandler{
		name:    "scripted",
		matches: func(string, string) bool { return true },
		result:  result,
	})
}

func TestProcessPrompt_CreatesSessionLazily(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))

	longPrompt := "아주 긴 프롬프트입니다 삼십 글자를 넘기기 위해 계속 이어서 씁니다"
	res, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{Prompt: longPrompt})

	require.NoError(t, err)
	require.Len(t, uow.sessions.sessions, 1)
	assert.NotEqual(t, uuid.Nil, res.SessionId)
	assert.LessOrEqual(t, len([]rune(res.SessionTitle)), constant.SessionTitleMaxLen+3)
	assert.Contains(t, res.SessionTitle, "...")

	require.Len(t, uow.messages.messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, uow.messages.messages[0].Role)
	assert.Equal(t, longPrompt, uow.messages.messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleModel, uow.messages.messages[1].Role)
	assert.True(t, json.Valid([]byte(uow.messages.messages[1].Content)))
}

func TestProcessPrompt_UnknownSessionIsClientError(t *testing.T) {
	svc, _ := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))

	missing := uuid.New()
	_, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{
		Prompt:    "아무말",
		SessionId: &missing,
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProcessPrompt_ForeignSessionIsClientError(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))
	other := &entity.ChatSession{Id: uuid.New(), UserEmail: "other@example.com", Title: "남의 세션"}
	require.NoError(t, uow.sessions.Create(context.Background(), other))

	_, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{
		Prompt:    "아무말",
		SessionId: &other.Id,
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProcessPrompt_PersistsFocusTransition(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{
		Response: prompt.LinesResponse("검색 결과"),
		Focus:    prompt.SetFocus("서울시 주차장 현황"),
	}))

	res, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{Prompt: "주차장"})

	require.NoError(t, err)
	assert.Equal(t, "서울시 주차장 현황", res.FocusedDatasetName)

	stored := uow.sessions.sessions[res.SessionId]
	require.NotNil(t, stored)
	assert.Equal(t, "서울시 주차장 현황", stored.FocusedDataName)
	assert.Equal(t, int64(1), stored.Version, "focus change must bump the optimistic version")
}

func TestProcessPrompt_ClearsFocusOnReset(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{
		Response: prompt.LinesResponse("초기화"),
		Focus:    prompt.ClearFocus(),
	}))

	session := &entity.ChatSession{
		Id:              uuid.New(),
		UserEmail:       "user@example.com",
		Title:           "기존 세션",
		FocusedDataName: "집중된 데이터",
	}
	require.NoError(t, uow.sessions.Create(context.Background(), session))

	res, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{
		Prompt:    "다른 데이터 조회",
		SessionId: &session.Id,
	})

	require.NoError(t, err)
	assert.Empty(t, res.FocusedDatasetName)
	assert.Empty(t, uow.sessions.sessions[session.Id].FocusedDataName)
}

func TestProcessPrompt_UnchangedFocusSkipsSessionWrite(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("도움말")}))

	session := &entity.ChatSession{
		Id:              uuid.New(),
		UserEmail:       "user@example.com",
		Title:           "기존 세션",
		FocusedDataName: "집중된 데이터",
		Version:         3,
	}
	require.NoError(t, uow.sessions.Create(context.Background(), session))

	_, err := svc.ProcessPrompt(context.Background(), "user@example.com", &dto.PromptRequest{
		Prompt:    "/도움말",
		SessionId: &session.Id,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), uow.sessions.sessions[session.Id].Version)
}

func TestDeleteSession_RemovesSessionAndMessages(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))

	session := &entity.ChatSession{Id: uuid.New(), UserEmail: "user@example.com", Title: "세션"}
	require.NoError(t, uow.sessions.Create(context.Background(), session))
	require.NoError(t, uow.messages.Create(context.Background(), &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		UserEmail:     "user@example.com",
		Role:          constant.ChatMessageRoleUser,
		Content:       "질문",
		CreatedAt:     time.Now(),
	}))

	require.NoError(t, svc.DeleteSession(context.Background(), "user@example.com", session.Id))
	assert.Empty(t, uow.sessions.sessions)
	assert.Empty(t, uow.messages.messages)
}

func TestDeleteSession_ForeignSessionRejected(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))
	session := &entity.ChatSession{Id: uuid.New(), UserEmail: "other@example.com", Title: "남의 세션"}
	require.NoError(t, uow.sessions.Create(context.Background(), session))

	err := svc.DeleteSession(context.Background(), "user@example.com", session.Id)

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Len(t, uow.sessions.sessions, 1)
}

func TestGetChatHistory_WrapsPlainTextAndKeepsEnvelopes(t *testing.T) {
	svc, uow := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))

	session := &entity.ChatSession{Id: uuid.New(), UserEmail: "user@example.com", Title: "세션"}
	require.NoError(t, uow.sessions.Create(context.Background(), session))
	require.NoError(t, uow.messages.Create(context.Background(), &entity.ChatMessage{
		Id: uuid.New(), ChatSessionId: session.Id, UserEmail: "user@example.com",
		Role: constant.ChatMessageRoleUser, Content: "서울 교통 데이터", CreatedAt: time.Now(),
	}))
	require.NoError(t, uow.messages.Create(context.Background(), &entity.ChatMessage{
		Id: uuid.New(), ChatSessionId: session.Id, UserEmail: "user@example.com",
		Role: constant.ChatMessageRoleModel, Content: `{"type":"lines","payload":["결과"]}`, CreatedAt: time.Now(),
	}))

	histories, err := svc.GetChatHistory(context.Background(), "user@example.com")

	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Len(t, histories[0].Messages, 2)
	assert.JSONEq(t, `"서울 교통 데이터"`, string(histories[0].Messages[0].Content))
	assert.JSONEq(t, `{"type":"lines","payload":["결과"]}`, string(histories[0].Messages[1].Content))
}

func TestCreateQueryPlan_ExposesExtraction(t *testing.T) {
	svc, _ := newService(echoRouter(prompt.Result{Response: prompt.LinesResponse("ok")}))

	plan := svc.CreateQueryPlan("서울 교통 데이터 5개")

	require.NotNil(t, plan)
	assert.Equal(t, "교통및물류", plan.MajorCategory)
	assert.Equal(t, 5, plan.Limit)
	require.NotEmpty(t, plan.Keywords)
	assert.Equal(t, "서울", plan.Keywords[0])
}
