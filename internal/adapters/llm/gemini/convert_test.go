package gemini

import (
	"testing"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenaiSchemaConvertsNestedSchema(t *testing.T) {
	t.Parallel()

	schema := &ports.Schema{
		Type:     ports.SchemaObject,
		Required: []string{"overall_result"},
		Properties: map[string]*ports.Schema{
			"overall_result": {Type: ports.SchemaString, Enum: []string{"VALIDATED", "CONSISTENCY_ERROR"}},
			"tags":           {Type: ports.SchemaArray, Items: &ports.Schema{Type: ports.SchemaString}},
		},
	}

	want := &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"overall_result"},
		Enum:     []string{},
		Properties: map[string]*genai.Schema{
			"overall_result": {Type: genai.TypeString, Enum: []string{"VALIDATED", "CONSISTENCY_ERROR"}, Required: []string{}},
			"tags": {
				Type:     genai.TypeArray,
				Required: []string{},
				Enum:     []string{},
				Items:    &genai.Schema{Type: genai.TypeString, Required: []string{}, Enum: []string{}},
			},
		},
	}

	got := toGenaiSchema(schema)
	assert.Equal(t, normalizeSchema(want), normalizeSchema(got))
	assert.Nil(t, toGenaiSchema(nil))
}

// normalizeSchema drops the empty slices so nil and empty compare equal.
func normalizeSchema(schema *genai.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}
	out := *schema
	if len(out.Required) == 0 {
		out.Required = nil
	}
	if len(out.Enum) == 0 {
		out.Enum = nil
	}
	out.Items = normalizeSchema(out.Items)
	if out.Properties != nil {
		props := make(map[string]*genai.Schema, len(out.Properties))
		for name, prop := range out.Properties {
			props[name] = normalizeSchema(prop)
		}
		out.Properties = props
	}
	return &out
}

func TestToGenaiTools(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toGenaiTools(nil))

	tools := toGenaiTools([]ports.ToolSpec{{
		Name:        "search_memory",
		Description: "Search the shared memory.",
		Parameters: &ports.Schema{
			Type:       ports.SchemaObject,
			Properties: map[string]*ports.Schema{"query": {Type: ports.SchemaString}},
			Required:   []string{"query"},
		},
	}})

	require.Len(t, tools, 1)
	require.Len(t, tools[0].FunctionDeclarations, 1)
	declaration := tools[0].FunctionDeclarations[0]
	assert.Equal(t, "search_memory", declaration.Name)
	assert.Equal(t, genai.TypeObject, declaration.Parameters.Type)
	assert.Equal(t, genai.TypeString, declaration.Parameters.Properties["query"].Type)
}

func TestAgentContentsSeesHistoryFromTheSpeaker(t *testing.T) {
	t.Parallel()

	req := ports.AgentRequest{
		Speaker: "ATOM1",
		History: []domain.Message{
			{Speaker: "user", Role: domain.RoleUser, Content: "Plan the release."},
			{Speaker: domain.ModeratorID, Role: domain.RoleModerator, Content: "ATOMOD: Next speaker: ATOM1"},
			{Speaker: "ATOM1", Role: domain.RoleAssistant, Content: "Earlier answer."},
			{Speaker: "ATOM5", Role: domain.RoleAssistant, Content: ""},
		},
		Exchanges: []ports.ToolExchange{{
			Call:   domain.ToolCall{Name: "search_memory", Args: map[string]any{"query": "release"}},
			Result: "nothing found",
		}},
	}

	contents := agentContents(req)
	require.Len(t, contents, 5)

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, "user: Plan the release.", contents[0].Parts[0].Text)
	assert.Equal(t, "ATOMOD: ATOMOD: Next speaker: ATOM1", contents[1].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), contents[2].Role)
	assert.Equal(t, "Earlier answer.", contents[2].Parts[0].Text)

	call := contents[3].Parts[0].FunctionCall
	require.NotNil(t, call)
	assert.Equal(t, string(genai.RoleModel), contents[3].Role)
	assert.Equal(t, "search_memory", call.Name)
	assert.Equal(t, map[string]any{"query": "release"}, call.Args)

	response := contents[4].Parts[0].FunctionResponse
	require.NotNil(t, response)
	assert.Equal(t, string(genai.RoleUser), contents[4].Role)
	assert.Equal(t, map[string]any{"output": "nothing found"}, response.Response)
}

func TestAgentContentsNeverEmpty(t *testing.T) {
	t.Parallel()

	contents := agentContents(ports.AgentRequest{Speaker: "ATOM1"})
	require.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
}

func TestFromResponseCollectsTextAndCalls(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: string(genai.RoleModel),
				Parts: []*genai.Part{
					{Text: " Let me check. "},
					{FunctionCall: &genai.FunctionCall{Name: "search_memory", Args: map[string]any{"query": "budget"}}},
				},
			},
		}},
	}

	got := fromResponse(resp)
	assert.Equal(t, "Let me check.", got.Content)
	assert.Equal(t, []domain.ToolCall{{Name: "search_memory", Args: map[string]any{"query": "budget"}}}, got.ToolCalls)
	assert.True(t, got.WantsTools())

	assert.Equal(t, ports.AgentResponse{}, fromResponse(nil))
}

func TestSystemInstructionOmittedWhenBlank(t *testing.T) {
	t.Parallel()

	assert.Nil(t, systemInstruction("  "))
	require.NotNil(t, systemInstruction("be brief"))
}
