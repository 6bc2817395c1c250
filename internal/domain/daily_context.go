package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const emptyTranscript = "No relevant interactions took place on this day."

type ToolUsageLog struct {
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
}

type Interaction struct {
	Message   Message         `json:"message"`
	ToolLogs  []ToolUsageLog  `json:"tool_logs"`
	Resonance ResonanceVector `json:"resonance_vector"`
}

// DailyContext is everything one reflection cycle knows about a single day.
// It is rebuilt for every run and never persisted.
type DailyContext struct {
	Date         string        `json:"date"`
	PersonaID    PersonaID     `json:"persona_id"`
	Interactions []Interaction `json:"interactions"`
}

func (c DailyContext) IsEmpty() bool {
	return len(c.Interactions) == 0
}

// BuildDailyContext keeps the messages whose timestamp falls on the target UTC
// calendar date, in source order. Resonance is scored against the unfiltered
// sequence. Messages with unreadable timestamps are skipped; the number skipped
// is returned for logging.
func BuildDailyContext(personaID PersonaID, messages []Message, target time.Time, reactors ReactorSet) (DailyContext, int) {
	date := target.UTC().Format(DateLayout)
	interactions := make([]Interaction, 0)
	skipped := 0

	for i, msg := range messages {
		at, err := msg.Time()
		if err != nil {
			skipped++
			continue
		}
		if at.Format(DateLayout) != date {
			continue
		}

		interactions = append(interactions, Interaction{
			Message:   msg,
			ToolLogs:  msg.ToolUsageLogs(),
			Resonance: ScoreResonance(i, messages, reactors),
		})
	}

	return DailyContext{
		Date:         date,
		PersonaID:    personaID,
		Interactions: interactions,
	}, skipped
}

// Transcript renders the context as the flat text handed to generators.
func (c DailyContext) Transcript() string {
	if c.IsEmpty() {
		return emptyTranscript
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Interactions on %s:\n\n", c.Date)
	for i, interaction := range c.Interactions {
		msg := interaction.Message
		speaker := string(msg.Speaker)
		if speaker == "" {
			speaker = "unknown"
		}

		fmt.Fprintf(&b, "--- Message #%d ---\n", i+1)
		fmt.Fprintf(&b, "Speaker: %s\n", speaker)
		fmt.Fprintf(&b, "Content: %s\n", msg.Content)
		if len(interaction.ToolLogs) > 0 {
			names := make([]string, 0, len(interaction.ToolLogs))
			for _, log := range interaction.ToolLogs {
				names = append(names, log.ToolName)
			}
			fmt.Fprintf(&b, "Tools used: %s\n", strings.Join(names, ", "))
		}
		if r := interaction.Resonance; r.Total() > 0 {
			fmt.Fprintf(&b, "Resonance: analytical=%d creative=%d critical=%d\n", r.Analytical, r.Creative, r.Critical)
		}
		b.WriteString("\n")
	}

	return b.String()
}
