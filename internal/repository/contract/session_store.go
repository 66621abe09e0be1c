package contract

import (
	"context"

	"ai-shopping-be/pkg/store"
)

// SessionStore is a key-value store with TTL for in-flight search sessions.
// Entries are written once at creation and read-only afterward; expiry is
// unconditional, so Get on an expired id behaves like a miss.
type SessionStore interface {
	Save(ctx context.Context, session *store.SearchSession) error
	Get(ctx context.Context, sessionId string) (*store.SearchSession, bool, error)
}
