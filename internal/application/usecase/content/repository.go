package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

var ErrConfirmationRequired = errors.New("confirmation required")

// Subscriber receives the new document after every successful replace.
// Notification is synchronous, in registration order; each subscriber gets
// its own clone.
type Subscriber func(portfolio.Document)

// Repository owns the in-memory portfolio document. It loads persisted
// data merged over the built-in defaults, persists the full serialization
// on every mutation and broadcasts the new document to subscribers. Gin
// handlers share one instance, so access goes through a lock.
type Repository struct {
	mu          sync.RWMutex
	doc         portfolio.Document
	overridden  bool
	store       store.Store
	subscribers []Subscriber
	logger      logger.Logger
}

func NewRepository(ctx context.Context, st store.Store, log logger.Logger) *Repository {
	r := &Repository{store: st, logger: log}

	raw, err := st.LoadDocument(ctx)
	if err != nil {
		// Storage being unavailable is not fatal: serve the defaults.
		log.Warn("failed to load persisted document, starting from defaults", zap.Error(err))
		raw = nil
	}

	doc, err := portfolio.MergeWithDefaults(raw)
	if err != nil {
		log.Warn("persisted document is not valid JSON, starting from defaults", zap.Error(err))
	}
	r.doc = doc
	r.overridden = raw != nil && err == nil

	return r
}

// Get returns a deep clone of the current document.
func (r *Repository) Get() portfolio.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Clone()
}

// Overridden reports whether persisted data has replaced the defaults.
func (r *Repository) Overridden() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overridden
}

// Replace swaps in a whole new document, persists it and notifies
// subscribers.
func (r *Repository) Replace(ctx context.Context, doc portfolio.Document) {
	r.mu.Lock()
	r.doc = doc.Clone()
	r.overridden = true
	r.persistLocked(ctx)
	r.mu.Unlock()

	r.notify(doc)
}

// Update applies fn to a clone of the current document and, when fn
// succeeds, swaps the result in. Read-modify-write edits go through here so
// concurrent requests cannot interleave.
func (r *Repository) Update(ctx context.Context, fn func(*portfolio.Document) error) error {
	r.mu.Lock()
	next := r.doc.Clone()
	if err := fn(&next); err != nil {
		r.mu.Unlock()
		return err
	}
	r.doc = next
	r.overridden = true
	r.persistLocked(ctx)
	r.mu.Unlock()

	r.notify(next)
	return nil
}

// Reset restores the built-in defaults and clears the persisted override.
// It refuses to act without explicit confirmation.
func (r *Repository) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	defaults := portfolio.Defaults()

	r.mu.Lock()
	r.doc = defaults
	r.overridden = false
	if err := r.store.ClearDocument(ctx); err != nil {
		r.logger.Warn("failed to clear persisted document", zap.Error(err))
	}
	r.mu.Unlock()

	r.notify(defaults)
	return nil
}

// Subscribe registers an observer. Not safe to call once requests are being
// served; wiring happens at startup.
func (r *Repository) Subscribe(fn Subscriber) {
	r.subscribers = append(r.subscribers, fn)
}

func (r *Repository) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(r.doc)
	if err != nil {
		r.logger.Error("failed to serialize document", err)
		return
	}
	if err := r.store.SaveDocument(ctx, raw); err != nil {
		r.logger.Warn("failed to persist document", zap.Error(err))
	}
}

func (r *Repository) notify(doc portfolio.Document) {
	for _, fn := range r.subscribers {
		fn(doc.Clone())
	}
}
