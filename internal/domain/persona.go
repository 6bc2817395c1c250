package domain

import (
	"fmt"
	"strings"
)

type PersonaID string

const (
	// ModeratorID speaks for the orchestrator itself in meeting transcripts.
	ModeratorID PersonaID = "ATOMOD"
	// ModeratorErrorID tags the single terminal message of a failed meeting.
	ModeratorErrorID PersonaID = "ATOMOD_ERROR"
)

type Persona struct {
	ID              PersonaID
	Personality     string
	Model           string
	MeetingEligible bool
	// Tools is the allow-list of capability names the persona may invoke.
	Tools []string
}

func (p Persona) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("persona id is required")
	}
	if p.ID == ModeratorID || p.ID == ModeratorErrorID {
		return fmt.Errorf("persona id %q is reserved", p.ID)
	}
	if strings.TrimSpace(p.Model) == "" {
		return fmt.Errorf("persona %s: model is required", p.ID)
	}

	return nil
}

func (p Persona) AllowsTool(name string) bool {
	for _, tool := range p.Tools {
		if tool == name {
			return true
		}
	}
	return false
}

// ReactorSet names the three personas whose reactions feed resonance scoring.
type ReactorSet struct {
	Analytical PersonaID
	Creative   PersonaID
	Critical   PersonaID
}

func DefaultReactorSet() ReactorSet {
	return ReactorSet{
		Analytical: "ATOM1",
		Creative:   "ATOM2",
		Critical:   "ATOM5",
	}
}

// PromptSet holds the shared prompt templates personas are rendered with.
type PromptSet struct {
	TeamSimulationTemplate string
	GroundingInstructions  string
}

const DefaultTeamSimulationTemplate = `You are {{.ActiveRole}}, one member of the AITO team of AI personas working with the user.
Your personality: {{.Personality}}

You are taking part in a moderated meeting. Speak only as {{.ActiveRole}}, build on what the others said, and keep your contribution focused on the task.

{{.GroundingInstructions}}`

const DefaultGroundingInstructions = `Ground every claim in the conversation or in what your tools return. When you need earlier context, search the shared memory instead of guessing. Say so plainly when you do not know something.`

func DefaultPromptSet() PromptSet {
	return PromptSet{
		TeamSimulationTemplate: DefaultTeamSimulationTemplate,
		GroundingInstructions:  DefaultGroundingInstructions,
	}
}
