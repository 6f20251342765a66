package bootstrap

import (
	"context"
	"log"
	"time"

	"oda-chatbot-be/internal/config"
	"oda-chatbot-be/internal/controller"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/internal/repository/implementation"
	"oda-chatbot-be/internal/repository/unitofwork"
	"oda-chatbot-be/internal/service"
	"oda-chatbot-be/pkg/aimodel"
	"oda-chatbot-be/pkg/catalog"
	"oda-chatbot-be/pkg/prompt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PromptController controller.IPromptController
	ChatController   controller.IChatController

	// Background Services (Exposed for main.go to run)
	AnalyticsConsumerService service.IAnalyticsConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Catalog search pipeline
	catalogRepo := implementation.NewCachedCatalogRepository(implementation.NewCatalogRepository(db))
	searchEngine := catalog.NewEngine(catalogRepo, sysLogger)

	// 5. AI recommendation client, Redis-cached. The model service is slow
	// and its answers are stable per dataset.
	var modelClient aimodel.Client = aimodel.NewHTTPClient(
		cfg.Ai.BaseURL,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	modelClient = aimodel.NewCachedClient(
		modelClient,
		rdb,
		time.Duration(cfg.Ai.CacheTTLHours)*time.Hour,
		sysLogger,
	)

	// 6. Handler chain. Order is the dispatch priority: first match wins.
	router := prompt.NewRouter(sysLogger,
		prompt.NewLinkHandler(catalogRepo),
		prompt.NewHelpHandler(),
		prompt.NewNewSearchHandler(),
		prompt.NewDetailHandler(catalogRepo, sysLogger),
		prompt.NewDataCheckHandler(catalogRepo),
		prompt.NewUtilizationHandler(catalogRepo, modelClient, sysLogger),
		prompt.NewGeneralSearchHandler(searchEngine, sysLogger),
	)

	// 7. Services
	promptService := service.NewPromptService(uowFactory, router, pubSub, sysLogger)
	analyticsConsumer := service.NewAnalyticsConsumerService(
		pubSub,
		implementation.NewPromptTurnLogRepository(db),
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		PromptController: controller.NewPromptController(promptService),
		ChatController:   controller.NewChatController(promptService),

		AnalyticsConsumerService: analyticsConsumer,
	}
}
