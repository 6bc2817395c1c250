package application

import (
	"context"
	"fmt"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type DailyContextBuilder struct {
	history  ports.ConversationHistoryStore
	clock    ports.Clock
	reactors domain.ReactorSet
	logger   *zap.Logger
}

func NewDailyContextBuilder(history ports.ConversationHistoryStore, clock ports.Clock, reactors domain.ReactorSet, opts ...Option) *DailyContextBuilder {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	o := applyOptions(opts)
	return &DailyContextBuilder{
		history:  history,
		clock:    clock,
		reactors: reactors,
		logger:   o.logger,
	}
}

// Build loads the session log and keeps the interactions of the UTC calendar
// day daysAgo days before now.
func (b *DailyContextBuilder) Build(ctx context.Context, personaID domain.PersonaID, sessionID string, daysAgo int) (domain.DailyContext, error) {
	if daysAgo < 0 {
		return domain.DailyContext{}, fmt.Errorf("days ago must not be negative: %d", daysAgo)
	}

	ctx, span := tracer.Start(ctx, "reflection.daily_context", trace.WithAttributes(
		attribute.String("persona", string(personaID)),
		attribute.String("session", sessionID),
		attribute.Int("days_ago", daysAgo),
	))
	defer span.End()

	messages, err := b.history.List(ctx, sessionID)
	if err != nil {
		err = fmt.Errorf("%w: load session %s: %w", domain.ErrHistoryUnavailable, sessionID, err)
		recordSpanError(span, err)
		return domain.DailyContext{}, err
	}

	target := b.clock.Now().UTC().AddDate(0, 0, -daysAgo)
	daily, skipped := domain.BuildDailyContext(personaID, messages, target, b.reactors)
	if skipped > 0 {
		b.logger.Debug("skipped messages with unreadable timestamps",
			zap.String("session", sessionID),
			zap.Int("skipped", skipped),
		)
	}

	span.SetAttributes(attribute.Int("interactions", len(daily.Interactions)))
	return daily, nil
}
