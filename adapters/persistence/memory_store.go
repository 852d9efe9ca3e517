package persistence

import (
	"context"
	"sync"

	"github.com/opabeer/portfolio-api/internal/domain/store"
)

// MemoryStore keeps the three entries in process memory. It is the default
// backend for local development and the store used by unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStore) delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

func (s *MemoryStore) LoadDocument(ctx context.Context) ([]byte, error) {
	v, ok := s.get(store.KeyDocument)
	if !ok {
		return nil, nil
	}
	return []byte(v), nil
}

func (s *MemoryStore) SaveDocument(ctx context.Context, raw []byte) error {
	s.set(store.KeyDocument, string(raw))
	return nil
}

func (s *MemoryStore) ClearDocument(ctx context.Context) error {
	s.delete(store.KeyDocument)
	return nil
}

func (s *MemoryStore) LoadCredential(ctx context.Context) (string, error) {
	v, _ := s.get(store.KeyCredential)
	return v, nil
}

func (s *MemoryStore) SaveCredential(ctx context.Context, secret string) error {
	s.set(store.KeyCredential, secret)
	return nil
}

func (s *MemoryStore) LoadSessionFlag(ctx context.Context) (bool, error) {
	v, ok := s.get(store.KeySession)
	return ok && v == "true", nil
}

func (s *MemoryStore) SetSessionFlag(ctx context.Context, active bool) error {
	if active {
		s.set(store.KeySession, "true")
	} else {
		s.delete(store.KeySession)
	}
	return nil
}
