package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const DefaultMaxToolIterations = 3

var DefaultMeetingParticipants = []domain.PersonaID{"ATOM1", "ATOM5"}

type MeetingConfig struct {
	Participants      []domain.PersonaID
	MaxRounds         int
	MaxToolIterations int
	Prompts           domain.PromptSet
}

func (c MeetingConfig) withDefaults() MeetingConfig {
	if len(c.Participants) == 0 {
		c.Participants = DefaultMeetingParticipants
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = domain.DefaultMaxRounds
	}
	if c.MaxToolIterations <= 0 {
		c.MaxToolIterations = DefaultMaxToolIterations
	}
	c.Participants = append([]domain.PersonaID(nil), c.Participants...)
	return c
}

type MeetingOrchestrator struct {
	personas  ports.PersonaRegistry
	completer ports.AgentCompleter
	history   ports.ConversationHistoryStore
	publisher ports.Publisher
	tools     *ToolRegistry
	clock     ports.Clock
	cfg       MeetingConfig
	logger    *zap.Logger

	workflow func() (*meetingWorkflow, error)
	builds   atomic.Int64
	running  sync.WaitGroup
}

func NewMeetingOrchestrator(
	personas ports.PersonaRegistry,
	completer ports.AgentCompleter,
	history ports.ConversationHistoryStore,
	publisher ports.Publisher,
	tools *ToolRegistry,
	clock ports.Clock,
	cfg MeetingConfig,
	opts ...Option,
) *MeetingOrchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if tools == nil {
		tools = &ToolRegistry{tools: map[string]ports.Tool{}}
	}

	o := applyOptions(opts)
	orchestrator := &MeetingOrchestrator{
		personas:  personas,
		completer: completer,
		history:   history,
		publisher: publisher,
		tools:     tools,
		clock:     clock,
		cfg:       cfg.withDefaults(),
		logger:    o.logger,
	}
	orchestrator.workflow = sync.OnceValues(orchestrator.buildWorkflow)
	return orchestrator
}

type MeetingResult struct {
	MeetingID string
	Task      string
	Turns     int
	Messages  []domain.Message
}

// MeetingHandle tracks a meeting running in the background.
type MeetingHandle struct {
	ID string

	done   chan struct{}
	result MeetingResult
	err    error
}

func (h *MeetingHandle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the meeting ends or ctx is done.
func (h *MeetingHandle) Wait(ctx context.Context) (MeetingResult, error) {
	select {
	case <-h.done:
		return h.result, h.err
	case <-ctx.Done():
		return MeetingResult{}, ctx.Err()
	}
}

// StartMeeting validates the participants and runs the meeting on its own
// goroutine. ctx governs the lifetime of the whole meeting.
func (o *MeetingOrchestrator) StartMeeting(ctx context.Context, cmd StartMeetingCommand) (*MeetingHandle, error) {
	participants := cmd.Participants
	if len(participants) == 0 {
		participants = o.cfg.Participants
	}
	if strings.TrimSpace(cmd.SessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrConfiguration)
	}
	if err := o.validateParticipants(ctx, participants); err != nil {
		return nil, err
	}

	initiator := cmd.InitiatedBy
	if initiator == "" {
		initiator = "user"
	}

	meetingID := uuid.NewString()
	seed := domain.Message{
		SessionID: cmd.SessionID,
		Speaker:   initiator,
		Role:      domain.RoleUser,
		Content:   cmd.Task,
		MeetingID: meetingID,
		Timestamp: domain.FormatTimestamp(o.clock.Now()),
	}
	state, err := domain.NewMeetingState(meetingID, cmd.SessionID, cmd.Task, participants, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	handle := &MeetingHandle{ID: meetingID, done: make(chan struct{})}
	o.running.Add(1)
	go func() {
		defer o.running.Done()
		defer close(handle.done)
		handle.result, handle.err = o.run(ctx, &state)
	}()

	return handle, nil
}

// Wait blocks until every meeting started by this orchestrator has ended.
func (o *MeetingOrchestrator) Wait() {
	o.running.Wait()
}

func (o *MeetingOrchestrator) validateParticipants(ctx context.Context, participants []domain.PersonaID) error {
	var errs []error
	for _, id := range participants {
		persona, err := o.personas.Persona(ctx, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("participant %s: %w", id, err))
			continue
		}
		if !persona.MeetingEligible {
			errs = append(errs, fmt.Errorf("participant %s: %w", id, domain.ErrPersonaNotEligible))
		}
	}

	return errors.Join(errs...)
}

func (o *MeetingOrchestrator) run(ctx context.Context, state *domain.MeetingState) (MeetingResult, error) {
	ctx, span := tracer.Start(ctx, "meeting.run", trace.WithAttributes(
		attribute.String("meeting_id", state.MeetingID),
		attribute.Int("participants", len(state.Participants)),
	))
	defer span.End()

	logger := o.logger.With(zap.String("meeting_id", state.MeetingID))
	logger.Info("meeting started", zap.String("task", state.TaskDescription))

	err := o.runWorkflow(ctx, state)
	if err != nil {
		err = fmt.Errorf("%w: meeting %s: %w", domain.ErrOrchestrationFailure, state.MeetingID, err)
		recordSpanError(span, err)
		logger.Error("meeting aborted", zap.Error(err))
		o.reportFailure(context.WithoutCancel(ctx), state, err)
		return o.result(state), err
	}

	finished := domain.Message{
		Speaker: domain.ModeratorID,
		Role:    domain.RoleModerator,
		Content: fmt.Sprintf("ATOMOD REPORT: the discussion of the task %q has finished.", state.TaskDescription),
	}
	if err := o.record(ctx, state, finished); err != nil {
		err = fmt.Errorf("%w: meeting %s: %w", domain.ErrOrchestrationFailure, state.MeetingID, err)
		recordSpanError(span, err)
		return o.result(state), err
	}

	logger.Info("meeting finished", zap.Int("turns", state.ParticipantMessageCount()))
	return o.result(state), nil
}

func (o *MeetingOrchestrator) runWorkflow(ctx context.Context, state *domain.MeetingState) error {
	workflow, err := o.workflow()
	if err != nil {
		return fmt.Errorf("compile workflow: %w", err)
	}

	seed, err := o.history.Append(ctx, state.Messages[0])
	if err != nil {
		return fmt.Errorf("%w: persist task: %w", domain.ErrHistoryUnavailable, err)
	}
	state.Messages[0] = seed

	limit := 2*o.cfg.MaxRounds*len(state.Participants) + 1
	return workflow.run(ctx, state, limit)
}

func (o *MeetingOrchestrator) result(state *domain.MeetingState) MeetingResult {
	return MeetingResult{
		MeetingID: state.MeetingID,
		Task:      state.TaskDescription,
		Turns:     state.ParticipantMessageCount(),
		Messages:  append([]domain.Message(nil), state.Messages...),
	}
}

func (o *MeetingOrchestrator) reportFailure(ctx context.Context, state *domain.MeetingState, cause error) {
	failure := domain.Message{
		Speaker: domain.ModeratorErrorID,
		Role:    domain.RoleError,
		Content: fmt.Sprintf("ATOMOD ERROR: the meeting was aborted while working on the task: %v", cause),
	}
	if err := o.record(ctx, state, failure); err != nil {
		o.logger.Error("record meeting failure", zap.String("meeting_id", state.MeetingID), zap.Error(err))
	}
}

func (o *MeetingOrchestrator) selectSpeaker(_ context.Context, state *domain.MeetingState) (domain.MeetingStep, error) {
	step := state.SelectSpeaker(o.cfg.MaxRounds)
	o.logger.Debug("speaker selected",
		zap.String("meeting_id", state.MeetingID),
		zap.String("next_speaker", string(state.NextSpeaker)),
		zap.Int("round", state.CurrentRound),
	)
	return step, nil
}

func (o *MeetingOrchestrator) agentTurn(ctx context.Context, state *domain.MeetingState) (domain.MeetingStep, error) {
	speaker := state.NextSpeaker
	ctx, span := tracer.Start(ctx, "meeting.turn", trace.WithAttributes(
		attribute.String("meeting_id", state.MeetingID),
		attribute.String("persona", string(speaker)),
		attribute.Int("round", state.CurrentRound),
	))
	defer span.End()

	announcement := domain.Message{
		Speaker: domain.ModeratorID,
		Role:    domain.RoleModerator,
		Content: fmt.Sprintf("ATOMOD: Next speaker: %s (round %d). Please share your contribution.", speaker, state.CurrentRound),
	}
	if err := o.record(ctx, state, announcement); err != nil {
		recordSpanError(span, err)
		return "", err
	}

	persona, err := o.personas.Persona(ctx, speaker)
	if err != nil {
		recordSpanError(span, err)
		return "", fmt.Errorf("load persona %s: %w", speaker, err)
	}

	response, err := o.complete(ctx, state, persona)
	if err != nil {
		recordSpanError(span, err)
		return "", err
	}
	if err := o.record(ctx, state, response); err != nil {
		recordSpanError(span, err)
		return "", err
	}

	return domain.StepSelectSpeaker, nil
}

// complete asks the persona for its contribution, serving tool requests in a
// bounded loop. After MaxToolIterations rounds of tool use the persona must
// answer without tools.
func (o *MeetingOrchestrator) complete(ctx context.Context, state *domain.MeetingState, persona domain.Persona) (domain.Message, error) {
	workflow, err := o.workflow()
	if err != nil {
		return domain.Message{}, fmt.Errorf("compile workflow: %w", err)
	}

	systemPrompt, err := workflow.renderSystemPrompt(persona, o.cfg.Prompts.GroundingInstructions)
	if err != nil {
		return domain.Message{}, err
	}
	specs, err := o.tools.Specs(persona)
	if err != nil {
		return domain.Message{}, err
	}

	req := ports.AgentRequest{
		Model:        persona.Model,
		Speaker:      persona.ID,
		SystemPrompt: systemPrompt,
		History:      append([]domain.Message(nil), state.Messages...),
		Tools:        specs,
	}

	var calls []domain.ToolCall
	for iteration := 0; ; iteration++ {
		if iteration == o.cfg.MaxToolIterations {
			req.Tools = nil
		}

		resp, err := o.completer.Complete(ctx, req)
		if err != nil {
			return domain.Message{}, fmt.Errorf("%w: %s completion: %w", domain.ErrGenerationFailure, persona.ID, err)
		}

		if !resp.WantsTools() {
			if strings.TrimSpace(resp.Content) == "" {
				return domain.Message{}, fmt.Errorf("%w: %s returned an empty response", domain.ErrGenerationFailure, persona.ID)
			}
			return domain.Message{
				Speaker:   persona.ID,
				Role:      domain.RoleAssistant,
				Content:   resp.Content,
				ToolCalls: calls,
			}, nil
		}
		if iteration >= o.cfg.MaxToolIterations {
			return domain.Message{}, fmt.Errorf("%w: %s kept requesting tools after %d iterations", domain.ErrGenerationFailure, persona.ID, o.cfg.MaxToolIterations)
		}

		for _, call := range resp.ToolCalls {
			result, err := o.tools.Dispatch(ctx, persona, call)
			if err != nil {
				if errors.Is(err, domain.ErrConfiguration) {
					return domain.Message{}, err
				}
				o.logger.Warn("tool invocation failed",
					zap.String("meeting_id", state.MeetingID),
					zap.String("tool", call.Name),
					zap.Error(err),
				)
				result = fmt.Sprintf("tool error: %v", err)
			}
			calls = append(calls, call)
			req.Exchanges = append(req.Exchanges, ports.ToolExchange{Call: call, Result: result})
		}
	}
}

// record stamps, persists and publishes a meeting message, then appends it to
// the minutes. Publishing is best effort.
func (o *MeetingOrchestrator) record(ctx context.Context, state *domain.MeetingState, msg domain.Message) error {
	msg.SessionID = state.SessionID
	msg.MeetingID = state.MeetingID
	msg.Timestamp = domain.FormatTimestamp(o.clock.Now())

	stored, err := o.history.Append(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: persist %s message: %w", domain.ErrHistoryUnavailable, msg.Speaker, err)
	}

	if o.publisher != nil {
		if err := o.publisher.Publish(ctx, stored); err != nil {
			o.logger.Warn("publish meeting message",
				zap.String("meeting_id", state.MeetingID),
				zap.String("speaker", string(stored.Speaker)),
				zap.Error(err),
			)
		}
	}

	state.Append(stored)
	return nil
}
