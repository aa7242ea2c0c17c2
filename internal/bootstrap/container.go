package bootstrap

import (
	"context"
	"log"
	"time"

	"zaman-assistant-be/internal/config"
	"zaman-assistant-be/internal/constant"
	"zaman-assistant-be/internal/content"
	"zaman-assistant-be/internal/controller"
	"zaman-assistant-be/internal/pkg/logger"
	"zaman-assistant-be/internal/repository/contract"
	"zaman-assistant-be/internal/repository/implementation"
	"zaman-assistant-be/internal/repository/memory"
	"zaman-assistant-be/internal/repository/redisstore"
	"zaman-assistant-be/internal/service"
	embeddingopenai "zaman-assistant-be/pkg/embedding/openai"
	"zaman-assistant-be/pkg/events"
	llmopenai "zaman-assistant-be/pkg/llm/openai"
	"zaman-assistant-be/pkg/rag/retriever"

	pkgnats "zaman-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the whole assistant. db may be nil; every
// dependent component then runs in its degraded mode.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Static content is loaded once; missing files become placeholders.
	staticContent := content.LoadStatic(cfg.Content, sysLogger)

	// Upstream providers
	embeddingProvider := embeddingopenai.NewOpenAIProvider(
		cfg.Upstream.BaseURL,
		cfg.Upstream.APIKey,
		cfg.Upstream.EmbeddingModel,
	)
	llmProvider := llmopenai.NewOpenAIProvider(
		cfg.Upstream.BaseURL,
		cfg.Upstream.APIKey,
		cfg.Upstream.LLMModel,
	)
	log.Printf("[INFO] Using upstream hub %s (llm=%s, embeddings=%s)",
		cfg.Upstream.BaseURL, cfg.Upstream.LLMModel, cfg.Upstream.EmbeddingModel)

	// Session store: memory by default, redis when configured and alive.
	var sessionStore contract.SessionStore = memory.NewSessionRepository()
	if cfg.App.SessionBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Redis unavailable (%v), falling back to in-memory sessions", err)
		} else {
			sessionStore = redisstore.NewSessionRepository(rdb, time.Hour)
			log.Printf("[INFO] Using Redis session store")
		}
	}

	// Knowledge base (vector index). nil db keeps the retriever in
	// sentinel mode, matching the degrade policy.
	var knowledgeRepo contract.KnowledgeRepository
	var searcher retriever.DocumentSearcher
	if db != nil {
		knowledgeRepo = implementation.NewKnowledgeRepository(db)
		searcher = knowledgeRepo
	}
	docRetriever := retriever.New(searcher, constant.RetrievalTopK)

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (best effort)
	var eventPublisher events.Publisher
	natsPub, err := pkgnats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}

	publisherService := service.NewPublisherService(cfg.Content.KnowledgeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Content.KnowledgeTopic,
		knowledgeRepo,
		embeddingProvider,
		sysLogger,
	)

	assistantService := service.NewAssistantService(
		sessionStore,
		embeddingProvider,
		docRetriever,
		llmProvider,
		eventPublisher,
		staticContent,
		cfg.Upstream.Temperature,
		cfg.Upstream.MaxTokens,
		sysLogger,
	)

	analysisService := service.NewAnalysisService(
		assistantService,
		staticContent.ClientProfile,
		cfg.Content.TransactionsPath,
		sysLogger,
	)

	return &Container{
		AssistantController: controller.NewAssistantController(
			assistantService,
			analysisService,
			publisherService,
			db,
		),
		ConsumerService: consumerService,
	}
}
