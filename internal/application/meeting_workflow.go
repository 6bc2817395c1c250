package application

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/3-14mpa/AITO/internal/domain"
)

type transition func(ctx context.Context, state *domain.MeetingState) (domain.MeetingStep, error)

// meetingWorkflow is the compiled state graph shared by every meeting of an
// orchestrator. It holds no per-meeting state.
type meetingWorkflow struct {
	entry        domain.MeetingStep
	nodes        map[domain.MeetingStep]transition
	systemPrompt *template.Template
}

type systemPromptData struct {
	ActiveRole            domain.PersonaID
	Personality           string
	GroundingInstructions string
}

func (o *MeetingOrchestrator) buildWorkflow() (*meetingWorkflow, error) {
	o.builds.Add(1)

	source := o.cfg.Prompts.TeamSimulationTemplate
	if strings.TrimSpace(source) == "" {
		source = domain.DefaultTeamSimulationTemplate
	}
	tmpl, err := template.New("team_simulation").Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: parse team simulation template: %w", domain.ErrConfiguration, err)
	}

	o.logger.Debug("meeting workflow compiled")
	return &meetingWorkflow{
		entry: domain.StepSelectSpeaker,
		nodes: map[domain.MeetingStep]transition{
			domain.StepSelectSpeaker: o.selectSpeaker,
			domain.StepAgentTurn:     o.agentTurn,
		},
		systemPrompt: tmpl,
	}, nil
}

// run drives the state machine until END. limit bounds the number of
// transitions so a faulty node can never loop forever.
func (w *meetingWorkflow) run(ctx context.Context, state *domain.MeetingState, limit int) error {
	step := w.entry
	for transitions := 0; step != domain.StepEnd; transitions++ {
		if transitions >= limit {
			return fmt.Errorf("meeting exceeded %d transitions", limit)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		node, ok := w.nodes[step]
		if !ok {
			return fmt.Errorf("no transition for step %s", step)
		}

		next, err := node(ctx, state)
		if err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(string(step)), err)
		}
		step = next
	}

	return nil
}

func (w *meetingWorkflow) renderSystemPrompt(persona domain.Persona, grounding string) (string, error) {
	if strings.TrimSpace(grounding) == "" {
		grounding = domain.DefaultGroundingInstructions
	}

	var b strings.Builder
	err := w.systemPrompt.Execute(&b, systemPromptData{
		ActiveRole:            persona.ID,
		Personality:           persona.Personality,
		GroundingInstructions: grounding,
	})
	if err != nil {
		return "", fmt.Errorf("%w: render system prompt for %s: %w", domain.ErrConfiguration, persona.ID, err)
	}

	return b.String(), nil
}
