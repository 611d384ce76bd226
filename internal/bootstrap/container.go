package bootstrap

import (
	"log"
	"time"

	"project-nexus-be/internal/config"
	"project-nexus-be/internal/controller"
	"project-nexus-be/internal/pkg/logger"
	"project-nexus-be/internal/repository/memory"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/internal/service"
	"project-nexus-be/pkg/content"
	"project-nexus-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ContextController   controller.IContextController
	InsightController   controller.IInsightController
	ProductController   controller.IProductController
	CartController      controller.ICartController
	AssistantController controller.IAssistantController
	AdminController     controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
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

	// 3. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
		cfg.Ai.HuggingFaceToken,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Remote sentiment falls back to the offline lexicon when the token is
	// missing or HuggingFace is unreachable.
	scorer := content.NewFallbackScorer(
		content.NewHFSentimentScorer(cfg.Ai.HuggingFaceToken, "", cfg.Ai.SentimentModel),
		content.NewLexiconScorer(),
	)
	jokes := content.NewJokeAPIProvider(cfg.Ai.JokeAPIURL)
	images := content.NewHFImageGenerator(cfg.Ai.HuggingFaceToken, "", cfg.Ai.ImageModel)

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.SessionTTLMins) * time.Minute)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, service.InteractionsTopic, uowFactory)

	sessionService := service.NewSessionService(sessionRepo, publisherService)
	authService := service.NewAuthService(uowFactory, sessionRepo, publisherService, cfg.Auth.JWTSecret, cfg.Auth.MaxLoginRetries)
	insightService := service.NewInsightService(uowFactory, sessionService)
	productService := service.NewProductService(uowFactory, publisherService)
	cartService := service.NewCartService(uowFactory, sessionService, publisherService)
	assistantService := service.NewAssistantService(
		llmProvider,
		scorer,
		jokes,
		images,
		sessionService,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		ContextController:   controller.NewContextController(sessionService),
		InsightController:   controller.NewInsightController(insightService),
		ProductController:   controller.NewProductController(productService),
		CartController:      controller.NewCartController(cartService),
		AssistantController: controller.NewAssistantController(assistantService),
		AdminController:     controller.NewAdminController(sysLogger),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}

// llmBaseURL keeps ollama pointed at its own daemon while huggingface uses
// the router default unless overridden.
func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.LLMBaseURL
}
