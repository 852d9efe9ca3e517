package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opabeer/portfolio-api/internal/config"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// postgresStore keeps the three entries as rows of a single kv table.
type postgresStore struct {
	db *pgxpool.Pool
}

var psqlState = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresStore(db *pgxpool.Pool) store.Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlState.
		Select("value").
		From("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build select for %q: %w", key, err)
	}

	var value string
	err = s.db.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *postgresStore) set(ctx context.Context, key, value string) error {
	query, args, err := psqlState.
		Insert("app_state").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert for %q: %w", key, err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *postgresStore) del(ctx context.Context, key string) error {
	query, args, err := psqlState.
		Delete("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete for %q: %w", key, err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *postgresStore) LoadDocument(ctx context.Context) ([]byte, error) {
	value, ok, err := s.get(ctx, store.KeyDocument)
	if err != nil || !ok {
		return nil, err
	}
	return []byte(value), nil
}

func (s *postgresStore) SaveDocument(ctx context.Context, raw []byte) error {
	return s.set(ctx, store.KeyDocument, string(raw))
}

func (s *postgresStore) ClearDocument(ctx context.Context) error {
	return s.del(ctx, store.KeyDocument)
}

func (s *postgresStore) LoadCredential(ctx context.Context) (string, error) {
	value, _, err := s.get(ctx, store.KeyCredential)
	return value, err
}

func (s *postgresStore) SaveCredential(ctx context.Context, secret string) error {
	return s.set(ctx, store.KeyCredential, secret)
}

func (s *postgresStore) LoadSessionFlag(ctx context.Context) (bool, error) {
	value, ok, err := s.get(ctx, store.KeySession)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}

func (s *postgresStore) SetSessionFlag(ctx context.Context, active bool) error {
	if active {
		return s.set(ctx, store.KeySession, "true")
	}
	return s.del(ctx, store.KeySession)
}
