package ports

import (
	"context"

	"github.com/3-14mpa/AITO/internal/domain"
)

// ConversationHistoryStore is the append-only log shared by meetings and the
// reflection pipeline. List returns messages in insertion order.
type ConversationHistoryStore interface {
	Append(ctx context.Context, msg domain.Message) (domain.Message, error)
	List(ctx context.Context, sessionID string) ([]domain.Message, error)
}

type SessionHit struct {
	SessionID string
	Hits      int
}

// MemorySearcher finds the sessions whose messages mention a query, most
// relevant first.
type MemorySearcher interface {
	SearchSessions(ctx context.Context, query string, limit int) ([]SessionHit, error)
}
