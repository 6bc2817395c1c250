package gemini

import (
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"google.golang.org/genai"
)

const toolOutputKey = "output"

func systemInstruction(prompt string) *genai.Content {
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	return genai.NewContentFromText(prompt, genai.RoleUser)
}

func userContents(prompt string) []*genai.Content {
	return []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
}

func toGenaiType(t ports.SchemaType) genai.Type {
	switch t {
	case ports.SchemaObject:
		return genai.TypeObject
	case ports.SchemaString:
		return genai.TypeString
	case ports.SchemaInteger:
		return genai.TypeInteger
	case ports.SchemaNumber:
		return genai.TypeNumber
	case ports.SchemaBoolean:
		return genai.TypeBoolean
	case ports.SchemaArray:
		return genai.TypeArray
	default:
		return genai.TypeUnspecified
	}
}

func toGenaiSchema(schema *ports.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenaiType(schema.Type),
		Description: schema.Description,
		Required:    append([]string(nil), schema.Required...),
		Enum:        append([]string(nil), schema.Enum...),
		Items:       toGenaiSchema(schema.Items),
	}
	if len(schema.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, property := range schema.Properties {
			out.Properties[name] = toGenaiSchema(property)
		}
	}
	return out
}

func toGenaiTools(specs []ports.ToolSpec) []*genai.Tool {
	if len(specs) == 0 {
		return nil
	}

	declarations := make([]*genai.FunctionDeclaration, 0, len(specs))
	for _, spec := range specs {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  toGenaiSchema(spec.Parameters),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: declarations}}
}

// agentContents lays the meeting minutes out as a conversation seen from
// req.Speaker: its own earlier turns are model turns, everyone else speaks
// as the user with a speaker label.
func agentContents(req ports.AgentRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+2*len(req.Exchanges))
	for _, msg := range req.History {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		if req.Speaker != "" && msg.Speaker == req.Speaker {
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
			continue
		}
		contents = append(contents, genai.NewContentFromText(labelled(msg), genai.RoleUser))
	}
	if len(contents) == 0 {
		contents = append(contents, genai.NewContentFromText("(the conversation is empty)", genai.RoleUser))
	}

	for _, exchange := range req.Exchanges {
		contents = append(contents,
			&genai.Content{
				Role: string(genai.RoleModel),
				Parts: []*genai.Part{{FunctionCall: &genai.FunctionCall{
					Name: exchange.Call.Name,
					Args: copyArgs(exchange.Call.Args),
				}}},
			},
			&genai.Content{
				Role: string(genai.RoleUser),
				Parts: []*genai.Part{{FunctionResponse: &genai.FunctionResponse{
					Name:     exchange.Call.Name,
					Response: map[string]any{toolOutputKey: exchange.Result},
				}}},
			},
		)
	}

	return contents
}

func labelled(msg domain.Message) string {
	speaker := string(msg.Speaker)
	if speaker == "" {
		speaker = string(msg.Role)
	}
	return fmt.Sprintf("%s: %s", speaker, msg.Content)
}

func fromResponse(resp *genai.GenerateContentResponse) ports.AgentResponse {
	if resp == nil {
		return ports.AgentResponse{}
	}

	out := ports.AgentResponse{Content: strings.TrimSpace(resp.Text())}
	for _, call := range resp.FunctionCalls() {
		if call == nil {
			continue
		}
		out.ToolCalls = append(out.ToolCalls, domain.ToolCall{Name: call.Name, Args: copyArgs(call.Args)})
	}
	return out
}

func copyArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	copied := make(map[string]any, len(args))
	for key, value := range args {
		copied[key] = value
	}
	return copied
}
