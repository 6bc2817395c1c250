package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
)

// ToolRegistry maps capability names to tools. Personas only reach the
// tools named in their allow-list.
type ToolRegistry struct {
	tools map[string]ports.Tool
	names []string
}

func NewToolRegistry(tools ...ports.Tool) (*ToolRegistry, error) {
	registry := &ToolRegistry{tools: make(map[string]ports.Tool, len(tools))}
	for _, tool := range tools {
		name := tool.Name()
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("register tool: name is required")
		}
		if _, ok := registry.tools[name]; ok {
			return nil, fmt.Errorf("register tool %s: already registered", name)
		}
		registry.tools[name] = tool
		registry.names = append(registry.names, name)
	}

	return registry, nil
}

func (r *ToolRegistry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *ToolRegistry) Lookup(name string) (ports.Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Specs resolves the persona's allow-list into tool specs. A name that is
// not registered is a configuration error.
func (r *ToolRegistry) Specs(persona domain.Persona) ([]ports.ToolSpec, error) {
	specs := make([]ports.ToolSpec, 0, len(persona.Tools))
	for _, name := range persona.Tools {
		tool, ok := r.tools[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s allows %q", domain.ErrToolNotFound, persona.ID, name)
		}
		specs = append(specs, ports.ToolSpec{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}

	return specs, nil
}

func (r *ToolRegistry) Dispatch(ctx context.Context, persona domain.Persona, call domain.ToolCall) (string, error) {
	if !persona.AllowsTool(call.Name) {
		return "", fmt.Errorf("%w: %s requested %q", domain.ErrToolNotAllowed, persona.ID, call.Name)
	}

	tool, ok := r.tools[call.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrToolNotFound, call.Name)
	}

	return tool.Invoke(ctx, call.Args)
}

const (
	MemorySearchToolName = "search_memory"
	memorySearchLimit    = 5
	userDisplayName      = "You"
)

// MemorySearchTool finds the session most relevant to a query and returns
// its full reconstructed transcript.
type MemorySearchTool struct {
	searcher ports.MemorySearcher
	history  ports.ConversationHistoryStore
	userID   domain.PersonaID
}

func NewMemorySearchTool(searcher ports.MemorySearcher, history ports.ConversationHistoryStore, userID domain.PersonaID) *MemorySearchTool {
	return &MemorySearchTool{searcher: searcher, history: history, userID: userID}
}

func (t *MemorySearchTool) Name() string {
	return MemorySearchToolName
}

func (t *MemorySearchTool) Description() string {
	return "Searches the whole AITO memory for relevant past conversations and returns the most relevant one in full."
}

func (t *MemorySearchTool) Parameters() *ports.Schema {
	return &ports.Schema{
		Type: ports.SchemaObject,
		Properties: map[string]*ports.Schema{
			"query": {Type: ports.SchemaString, Description: "Keywords to look for."},
		},
		Required: []string{"query"},
	}
}

func (t *MemorySearchTool) Invoke(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("search memory: query is required")
	}

	return t.Search(ctx, query)
}

func (t *MemorySearchTool) Search(ctx context.Context, query string) (string, error) {
	hits, err := t.searcher.SearchSessions(ctx, query, memorySearchLimit)
	if err != nil {
		return "", fmt.Errorf("search sessions: %w", err)
	}
	if len(hits) == 0 {
		return "No relevant information was found in memory.", nil
	}

	sessionID := hits[0].SessionID
	messages, err := t.history.List(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: load session %s: %w", domain.ErrHistoryUnavailable, sessionID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The search found conversation %q the most relevant. Full reconstructed conversation:\n\n---\n", sessionID)
	for _, msg := range messages {
		fmt.Fprintf(&b, "%s: %s\n", t.displaySpeaker(msg), msg.Content)
	}
	b.WriteString("---")
	return b.String(), nil
}

func (t *MemorySearchTool) displaySpeaker(msg domain.Message) string {
	switch {
	case msg.Speaker == t.userID || (msg.Speaker == "" && msg.Role == domain.RoleUser):
		return userDisplayName
	case msg.Speaker == "":
		return "unknown"
	default:
		return string(msg.Speaker)
	}
}
