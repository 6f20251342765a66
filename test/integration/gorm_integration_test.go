package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/repository/specification"
	"oda-chatbot-be/internal/repository/unitofwork"
	"oda-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.CatalogRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Catalog Repository", func(t *testing.T) {
		records, err := uow.CatalogRepository().FindByProviderContains(context.Background(), "서울")
		assert.NoError(t, err)
		t.Logf("Catalog records providing for 서울: %d", len(records))
	})

	t.Run("Check Transactional Session Delete", func(t *testing.T) {
		ctx := context.Background()
		email := "test-integration-" + uuid.New().String() + "@example.com"

		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserEmail: email,
			Title:     "통합 테스트 세션",
		}
		err := uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		message := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			UserEmail:     email,
			Role:          "user",
			Content:       "서울 교통 데이터",
		}
		err = uow.ChatMessageRepository().Create(ctx, message)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.ChatMessageRepository().DeleteBySessionId(ctx, session.Id)
		assert.NoError(t, err)
		err = uow.ChatSessionRepository().Delete(ctx, session.Id)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		gone, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		assert.NoError(t, err)
		assert.Nil(t, gone)

		t.Log("Successfully deleted Session with Messages in Transaction")
	})

	t.Run("Check Optimistic Lock", func(t *testing.T) {
		ctx := context.Background()
		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserEmail: "test-integration-" + uuid.New().String() + "@example.com",
			Title:     "버전 충돌 세션",
		}
		err := uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)
		defer uow.ChatSessionRepository().Delete(ctx, session.Id)

		fresh := *session
		fresh.FocusedDataName = "첫 번째 저장"
		err = uow.ChatSessionRepository().Update(ctx, &fresh)
		assert.NoError(t, err)

		stale := *session // still carries the original version
		stale.FocusedDataName = "두 번째 저장"
		err = uow.ChatSessionRepository().Update(ctx, &stale)
		assert.Error(t, err, "stale version must be rejected")
	})
}
