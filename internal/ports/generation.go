package ports

import (
	"context"

	"github.com/3-14mpa/AITO/internal/domain"
)

type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// StructuredGenerator returns a JSON document conforming to schema. Callers
// decode and validate it themselves.
type StructuredGenerator interface {
	GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, schema *Schema) ([]byte, error)
}

type ToolSpec struct {
	Name        string
	Description string
	Parameters  *Schema
}

// ToolExchange pairs a tool call requested by the model with the output it
// produced, so the next completion can see it.
type ToolExchange struct {
	Call   domain.ToolCall
	Result string
}

type AgentRequest struct {
	Model string
	// Speaker is the persona the completion is written for. History
	// messages by the same speaker are the model's own earlier turns.
	Speaker      domain.PersonaID
	SystemPrompt string
	History      []domain.Message
	Tools        []ToolSpec
	Exchanges    []ToolExchange
}

type AgentResponse struct {
	Content   string
	ToolCalls []domain.ToolCall
}

func (r AgentResponse) WantsTools() bool {
	return len(r.ToolCalls) > 0
}

type AgentCompleter interface {
	Complete(ctx context.Context, req AgentRequest) (AgentResponse, error)
}
