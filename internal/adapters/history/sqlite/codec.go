package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/3-14mpa/AITO/internal/domain"
)

// Rows use the chat-history layout: one JSON document per message with a
// type tag and a data payload, so existing history databases stay readable.
type storedMessage struct {
	Type string     `json:"type"`
	Data storedData `json:"data"`
}

type storedData struct {
	Content          string           `json:"content"`
	Name             string           `json:"name,omitempty"`
	AdditionalKwargs storedKwargs     `json:"additional_kwargs"`
	ToolCalls        []storedToolCall `json:"tool_calls,omitempty"`
}

type storedKwargs struct {
	Timestamp string `json:"timestamp,omitempty"`
	MeetingID string `json:"meeting_id,omitempty"`
	Role      string `json:"role,omitempty"`
}

type storedToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

const (
	typeHuman = "human"
	typeAI    = "ai"
	typeTool  = "tool"
)

func encodeMessage(msg domain.Message) ([]byte, error) {
	stored := storedMessage{
		Type: messageType(msg.Role),
		Data: storedData{
			Content: msg.Content,
			Name:    string(msg.Speaker),
			AdditionalKwargs: storedKwargs{
				Timestamp: msg.Timestamp,
				MeetingID: msg.MeetingID,
				Role:      string(msg.Role),
			},
		},
	}
	for _, call := range msg.ToolCalls {
		stored.Data.ToolCalls = append(stored.Data.ToolCalls, storedToolCall{Name: call.Name, Args: call.Args})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return raw, nil
}

func decodeMessage(id int64, sessionID string, raw []byte) (domain.Message, error) {
	var stored storedMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.Message{}, fmt.Errorf("decode message %d: %w", id, err)
	}

	role := domain.MessageRole(stored.Data.AdditionalKwargs.Role)
	if role == "" {
		role = roleFromType(stored.Type)
	}

	msg := domain.Message{
		ID:        id,
		SessionID: sessionID,
		Speaker:   domain.PersonaID(stored.Data.Name),
		Role:      role,
		Content:   stored.Data.Content,
		Timestamp: stored.Data.AdditionalKwargs.Timestamp,
		MeetingID: stored.Data.AdditionalKwargs.MeetingID,
	}
	for _, call := range stored.Data.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{Name: call.Name, Args: call.Args})
	}
	return msg, nil
}

func messageType(role domain.MessageRole) string {
	switch role {
	case domain.RoleUser:
		return typeHuman
	case domain.RoleTool:
		return typeTool
	default:
		return typeAI
	}
}

func roleFromType(t string) domain.MessageRole {
	switch t {
	case typeHuman:
		return domain.RoleUser
	case typeTool:
		return domain.RoleTool
	default:
		return domain.RoleAssistant
	}
}
