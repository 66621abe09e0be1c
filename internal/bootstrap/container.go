package bootstrap

import (
	"context"
	"log"

	"ai-shopping-be/internal/config"
	"ai-shopping-be/internal/controller"
	"ai-shopping-be/internal/pkg/logger"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/internal/repository/implementation"
	"ai-shopping-be/internal/repository/memory"
	"ai-shopping-be/internal/service"
	"ai-shopping-be/pkg/embedding"
	"ai-shopping-be/pkg/llm/factory"
	"ai-shopping-be/pkg/research/category"
	"ai-shopping-be/pkg/research/explain"
	"ai-shopping-be/pkg/research/intent"
	"ai-shopping-be/pkg/research/rank"
	"ai-shopping-be/pkg/research/search"
	"ai-shopping-be/pkg/research/survey"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ResearchController controller.IResearchController
	ProductController  controller.IProductController
	CategoryController controller.ICategoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, "")
		log.Printf("[INFO] Using Embedding Provider: OPENAI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Session Store
	var sessionStore contract.SessionStore
	if cfg.Session.Store == "redis" {
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
		sessionStore = implementation.NewRedisSessionStore(rdb, cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = memory.NewSessionRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 5. Repositories
	productRepo := implementation.NewProductRepository(db)
	categoryRepo := implementation.NewCategoryRepository(db)
	historyRepo := implementation.NewSearchHistoryRepository(db)

	// 6. Research Pipeline Components
	surveyGenerator := survey.NewGenerator(llmProvider, sessionStore, sysLogger)
	intentAnalyzer := intent.NewAnalyzer(llmProvider, sysLogger)
	categoryResolver := category.NewResolver(categoryRepo, sysLogger)
	searchEngine := search.NewEngine(embeddingProvider, productRepo, cfg.Research.SearchLimit, sysLogger)
	fuser := rank.NewFuser(cfg.Research.VectorWeight, cfg.Research.MinSimilarity, cfg.Research.TopK)
	explainer := explain.NewExplainer(llmProvider, sysLogger)

	// 7. Services
	publisherService := service.NewPublisherService(cfg.Keys.SearchTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.SearchTopic, historyRepo, sysLogger)

	researchService := service.NewResearchService(
		sessionStore,
		surveyGenerator,
		intentAnalyzer,
		categoryResolver,
		searchEngine,
		fuser,
		explainer,
		publisherService,
		sysLogger,
	)
	productService := service.NewProductService(productRepo, categoryResolver)
	categoryService := service.NewCategoryService(categoryRepo)
	historyService := service.NewSearchHistoryService(historyRepo)

	// 8. Controllers
	return &Container{
		ResearchController: controller.NewResearchController(researchService, historyService),
		ProductController:  controller.NewProductController(productService),
		CategoryController: controller.NewCategoryController(categoryService),
		ConsumerService:    consumerService,
	}
}
