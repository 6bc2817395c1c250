package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "aito_chat_history.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStoreAppendAndListPreservesOrderAndFields(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, domain.Message{
		SessionID: "aito_shared_log",
		Speaker:   "user",
		Role:      domain.RoleUser,
		Content:   "Plan the migration.",
		Timestamp: "2026-03-04T09:00:00Z",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = store.Append(ctx, domain.Message{
		SessionID: "aito_shared_log",
		Speaker:   "ATOM1",
		Role:      domain.RoleAssistant,
		Content:   "Looked it up.",
		Timestamp: "2026-03-04T09:01:00Z",
		MeetingID: "m-1",
		ToolCalls: []domain.ToolCall{{Name: "search_memory", Args: map[string]any{"query": "migration"}}},
	})
	require.NoError(t, err)

	_, err = store.Append(ctx, domain.Message{SessionID: "other", Speaker: "user", Role: domain.RoleUser, Content: "elsewhere"})
	require.NoError(t, err)

	messages, err := store.List(ctx, "aito_shared_log")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, first, messages[0])
	second := messages[1]
	assert.Equal(t, domain.PersonaID("ATOM1"), second.Speaker)
	assert.Equal(t, domain.RoleAssistant, second.Role)
	assert.Equal(t, "m-1", second.MeetingID)
	require.Len(t, second.ToolCalls, 1)
	assert.Equal(t, "migration", second.ToolCalls[0].Args["query"])
}

func TestStoreListUnknownSessionIsEmpty(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	messages, err := store.List(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestStoreAppendRequiresSession(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	_, err := store.Append(context.Background(), domain.Message{Content: "orphan"})
	require.Error(t, err)
}

func TestStoreReadsLegacyRows(t *testing.T) {
	t.Parallel()

	store, path := openTestStore(t)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`INSERT INTO message_store (session_id, message) VALUES (?, ?), (?, ?)`,
		"aito_shared_log", `{"type":"human","data":{"content":"Hello","name":"user","additional_kwargs":{"timestamp":"2026-03-04T08:00:00.123456+00:00"}}}`,
		"aito_shared_log", `{"type":"ai","data":{"content":"Hi","name":"ATOM2","additional_kwargs":{},"tool_calls":[{"name":"search_memory","args":{"query":"x"},"id":"c1"}]}}`,
	)
	require.NoError(t, err)

	messages, err := store.List(context.Background(), "aito_shared_log")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, domain.RoleUser, messages[0].Role)
	_, err = messages[0].Time()
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.Equal(t, "search_memory", messages[1].ToolCalls[0].Name)
}

func TestStoreSearchSessionsRanksByHits(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()

	for _, msg := range []domain.Message{
		{SessionID: "cache", Speaker: "user", Role: domain.RoleUser, Content: "Redis cache eviction?"},
		{SessionID: "cache", Speaker: "ATOM1", Role: domain.RoleAssistant, Content: "Use an LRU cache."},
		{SessionID: "deploy", Speaker: "user", Role: domain.RoleUser, Content: "Deploy after the cache warmup."},
		{SessionID: "other", Speaker: "user", Role: domain.RoleUser, Content: "Lunch?"},
		{SessionID: "pct", Speaker: "user", Role: domain.RoleUser, Content: "100% sure"},
	} {
		_, err := store.Append(ctx, msg)
		require.NoError(t, err)
	}

	hits, err := store.SearchSessions(ctx, "cache", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "cache", hits[0].SessionID)
	assert.Equal(t, 2, hits[0].Hits)
	assert.Equal(t, "deploy", hits[1].SessionID)

	hits, err = store.SearchSessions(ctx, "%", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "pct", hits[0].SessionID)

	hits, err = store.SearchSessions(ctx, "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStoreConcurrentAppends(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Append(ctx, domain.Message{SessionID: "s", Speaker: "ATOM1", Role: domain.RoleAssistant, Content: string(rune('a' + i))})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	messages, err := store.List(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, messages, 20)
}
