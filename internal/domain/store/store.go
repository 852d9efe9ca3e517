package store

import "context"

// Fixed keys for the three persisted entries.
const (
	KeyDocument   = "portfolio:data"
	KeyCredential = "portfolio:password"
	KeySession    = "portfolio:session"
)

// Store persists the serialized portfolio document, the shared admin
// credential and the session flag. Absent entries are not errors:
// LoadDocument returns (nil, nil) and LoadCredential ("", nil). Callers
// treat store errors as soft failures — a load failure means "no persisted
// data", a save failure is logged and swallowed.
type Store interface {
	LoadDocument(ctx context.Context) ([]byte, error)
	SaveDocument(ctx context.Context, raw []byte) error
	ClearDocument(ctx context.Context) error

	LoadCredential(ctx context.Context) (string, error)
	SaveCredential(ctx context.Context, secret string) error

	LoadSessionFlag(ctx context.Context) (bool, error)
	SetSessionFlag(ctx context.Context, active bool) error
}
