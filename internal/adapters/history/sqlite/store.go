package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS message_store (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_message_store_session ON message_store(session_id, id);`

// Store is the append-only conversation log backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

var (
	_ ports.ConversationHistoryStore = (*Store)(nil)
	_ ports.MemorySearcher           = (*Store)(nil)
)

func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// meetings append from their own goroutines; one writer connection
	// avoids SQLITE_BUSY between them
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA busy_timeout=5000;"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, errors.Join(fmt.Errorf("configure history database: %w", err), db.Close())
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, errors.Join(fmt.Errorf("create history schema: %w", err), db.Close())
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if strings.TrimSpace(msg.SessionID) == "" {
		return domain.Message{}, errors.New("append message: session id is required")
	}

	raw, err := encodeMessage(msg)
	if err != nil {
		return domain.Message{}, err
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO message_store (session_id, message) VALUES (?, ?)`, msg.SessionID, string(raw))
	if err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Message{}, fmt.Errorf("read message id: %w", err)
	}

	msg.ID = id
	return msg, nil
}

func (s *Store) List(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, message FROM message_store WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg, err := decodeMessage(id, sessionID, []byte(raw))
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session %s: %w", sessionID, err)
	}

	return messages, nil
}

// SearchSessions ranks sessions by how many of their messages mention any
// keyword of query.
func (s *Store) SearchSessions(ctx context.Context, query string, limit int) ([]ports.SessionHit, error) {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	conditions := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)+1)
	for _, term := range terms {
		conditions = append(conditions, `json_extract(message, '$.data.content') LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(term)+"%")
	}
	args = append(args, limit)

	stmt := `SELECT session_id, COUNT(*) AS hits FROM message_store
		WHERE ` + strings.Join(conditions, " OR ") + `
		GROUP BY session_id
		ORDER BY hits DESC, MAX(id) DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("search sessions: %w", err)
	}
	defer rows.Close()

	var hits []ports.SessionHit
	for rows.Next() {
		var hit ports.SessionHit
		if err := rows.Scan(&hit.SessionID, &hit.Hits); err != nil {
			return nil, fmt.Errorf("scan session hit: %w", err)
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session hits: %w", err)
	}

	return hits, nil
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
