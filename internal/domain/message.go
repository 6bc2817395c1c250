package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleModerator MessageRole = "moderator"
	RoleTool      MessageRole = "tool"
	RoleError     MessageRole = "error"
)

var errEmptyTimestamp = errors.New("timestamp is empty")

// naive ISO-8601 layouts written without a zone; they are read as UTC.
var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type Message struct {
	ID        int64       `json:"id,omitempty"`
	SessionID string      `json:"session_id"`
	Speaker   PersonaID   `json:"speaker"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	// Timestamp is kept as the raw ISO-8601 text found in the store metadata.
	Timestamp string     `json:"timestamp"`
	MeetingID string     `json:"meeting_id,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Time parses the message timestamp and returns it in UTC.
func (m Message) Time() (time.Time, error) {
	raw := strings.TrimSpace(m.Timestamp)
	if raw == "" {
		return time.Time{}, errEmptyTimestamp
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed.UTC(), nil
	}
	for _, layout := range naiveTimestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported format", raw)
}

func (m Message) ToolUsageLogs() []ToolUsageLog {
	if len(m.ToolCalls) == 0 {
		return []ToolUsageLog{}
	}

	logs := make([]ToolUsageLog, 0, len(m.ToolCalls))
	for _, call := range m.ToolCalls {
		input := make(map[string]any, len(call.Args))
		for key, value := range call.Args {
			input[key] = value
		}
		logs = append(logs, ToolUsageLog{ToolName: call.Name, ToolInput: input})
	}
	return logs
}
