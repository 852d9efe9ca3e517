package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/adapters/event"
	httpAdapter "github.com/opabeer/portfolio-api/adapters/http"
	"github.com/opabeer/portfolio-api/adapters/llm"
	"github.com/opabeer/portfolio-api/adapters/persistence"
	"github.com/opabeer/portfolio-api/internal/application/service"
	authUC "github.com/opabeer/portfolio-api/internal/application/usecase/auth"
	chatUC "github.com/opabeer/portfolio-api/internal/application/usecase/chat"
	contentUC "github.com/opabeer/portfolio-api/internal/application/usecase/content"
	"github.com/opabeer/portfolio-api/internal/config"
	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
	"github.com/opabeer/portfolio-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Portfolio API Server...")

	ctx := context.Background()

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Warn("tracing disabled", zap.Error(err))
		} else {
			defer tp.Shutdown(ctx)
		}
	}

	// Persistent store
	st, cleanup := newStore(cfg, appLogger)
	defer cleanup()

	// Content repository
	repo := contentUC.NewRepository(ctx, st, appLogger)

	// Content events: every replace is published for the backup worker.
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Warn("content events disabled", zap.Error(err))
		} else {
			defer kafkaClient.Close()
			repo.Subscribe(func(portfolio.Document) {
				if err := kafkaClient.PublishContentUpdated(context.Background()); err != nil {
					appLogger.Warn("failed to publish content event", zap.Error(err))
				}
			})
		}
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	var llmSvc service.LLMService
	if svc, err := llm.NewOpenAIAdapter(cfg, appLogger); err != nil {
		// The chat usecase degrades to its fixed offline message.
		appLogger.Warn("LLM adapter unavailable", zap.Error(err))
	} else {
		llmSvc = svc
	}

	// Use Cases
	gate := authUC.NewGate(st, jwtSvc, cfg.Auth.DefaultPassword, appLogger)
	editUseCase := contentUC.NewEditUseCase(repo, appLogger)
	importUseCase := contentUC.NewImportUseCase(repo, appLogger)
	chatUseCase := chatUC.NewChatUseCase(repo, llmSvc, appLogger)

	// HTTP Handlers
	portfolioHandler := httpAdapter.NewPortfolioHandler(repo)
	chatHandler := httpAdapter.NewChatHandler(chatUseCase)
	authHandler := httpAdapter.NewAuthHandler(gate)
	contentHandler := httpAdapter.NewContentHandler(editUseCase, importUseCase)

	router := httpAdapter.NewRouter(portfolioHandler, chatHandler, authHandler, contentHandler, jwtSvc, gate, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}

func newStore(cfg config.Config, appLogger logger.Logger) (store.Store, func()) {
	switch cfg.Store.Backend {
	case "redis":
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		return persistence.NewRedisStore(redisClient), func() { redisClient.Close() }
	case "postgres":
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		return persistence.NewPostgresStore(dbPool), func() { dbPool.Close() }
	case "memory":
		appLogger.Warn("using in-memory store, edits will not survive restarts")
		return persistence.NewMemoryStore(), func() {}
	default:
		appLogger.Fatal("unknown store backend: "+cfg.Store.Backend, nil)
		return nil, nil
	}
}
