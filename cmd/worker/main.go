package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/adapters/event"
	"github.com/opabeer/portfolio-api/adapters/media_storage"
	"github.com/opabeer/portfolio-api/adapters/persistence"
	backupUC "github.com/opabeer/portfolio-api/internal/application/usecase/backup"
	"github.com/opabeer/portfolio-api/internal/config"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// The worker listens for content events and uploads a JSON snapshot of the
// persisted document after every change.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Backup Worker...")

	st, cleanup := newStore(cfg, appLogger)
	defer cleanup()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	backupUseCase := backupUC.NewBackupUseCase(st, uploader, appLogger)

	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "portfolio-backup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err)
			commitMessage(contentConsumer, msg, appLogger)
			continue
		}

		appLogger.Info("Processing content event",
			zap.String("event_id", payload.EventID),
			zap.String("event_type", payload.EventType),
		)

		backupUseCase.Execute(ctx)
		commitMessage(contentConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, appLogger logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("Failed to commit message", err)
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
	default:
		appLogger.Fatal("worker needs a durable store backend, got: "+cfg.Store.Backend, nil)
		return nil, nil
	}
}
