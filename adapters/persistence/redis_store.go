package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/opabeer/portfolio-api/internal/config"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) store.Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) LoadDocument(ctx context.Context) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, store.KeyDocument).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return raw, nil
}

func (s *redisStore) SaveDocument(ctx context.Context, raw []byte) error {
	if err := s.rdb.Set(ctx, store.KeyDocument, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *redisStore) ClearDocument(ctx context.Context) error {
	if err := s.rdb.Del(ctx, store.KeyDocument).Err(); err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

func (s *redisStore) LoadCredential(ctx context.Context) (string, error) {
	secret, err := s.rdb.Get(ctx, store.KeyCredential).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return secret, nil
}

func (s *redisStore) SaveCredential(ctx context.Context, secret string) error {
	if err := s.rdb.Set(ctx, store.KeyCredential, secret, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *redisStore) LoadSessionFlag(ctx context.Context) (bool, error) {
	flag, err := s.rdb.Get(ctx, store.KeySession).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load session flag: %w", err)
	}
	return flag == "true", nil
}

func (s *redisStore) SetSessionFlag(ctx context.Context, active bool) error {
	var err error
	if active {
		err = s.rdb.Set(ctx, store.KeySession, "true", 0).Err()
	} else {
		err = s.rdb.Del(ctx, store.KeySession).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to set session flag: %w", err)
	}
	return nil
}
