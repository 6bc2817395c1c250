package application

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ReflectionService struct {
	contexts  *DailyContextBuilder
	panel     *AnalysisPanel
	arbiter   *Arbiter
	validator *RiskValidator
	logger    *zap.Logger
}

func NewReflectionService(contexts *DailyContextBuilder, panel *AnalysisPanel, arbiter *Arbiter, validator *RiskValidator, opts ...Option) *ReflectionService {
	o := applyOptions(opts)
	return &ReflectionService{
		contexts:  contexts,
		panel:     panel,
		arbiter:   arbiter,
		validator: validator,
		logger:    o.logger,
	}
}

// Run executes one reflection cycle. An empty day ends early with
// ReflectionNothingToAnalyze and no generator calls.
func (s *ReflectionService) Run(ctx context.Context, cmd ReflectCommand) (ReflectionReport, error) {
	ctx, span := tracer.Start(ctx, "reflection.cycle", trace.WithAttributes(
		attribute.String("persona", string(cmd.PersonaID)),
		attribute.String("session", cmd.SessionID),
	))
	defer span.End()

	logger := s.logger.With(zap.String("persona", string(cmd.PersonaID)), zap.String("session", cmd.SessionID))

	daily, err := s.contexts.Build(ctx, cmd.PersonaID, cmd.SessionID, cmd.DaysAgo)
	if err != nil {
		recordSpanError(span, err)
		return ReflectionReport{}, fmt.Errorf("build daily context: %w", err)
	}

	report := ReflectionReport{
		PersonaID:    cmd.PersonaID,
		Date:         daily.Date,
		Interactions: len(daily.Interactions),
	}
	if daily.IsEmpty() {
		logger.Info("no interactions to analyze", zap.String("date", daily.Date))
		report.Status = ReflectionNothingToAnalyze
		return report, nil
	}

	logger.Info("reflection cycle started", zap.String("date", daily.Date), zap.Int("interactions", len(daily.Interactions)))

	analyses, err := s.panel.RunAll(ctx, daily)
	if err != nil {
		recordSpanError(span, err)
		return ReflectionReport{}, fmt.Errorf("analyze %s: %w", daily.Date, err)
	}
	logger.Debug("analyses completed")

	verdict := s.arbiter.Synthesize(ctx, daily, analyses)
	logger.Info("synthesis completed", zap.String("result", string(verdict.Result)))

	validation := s.validator.Validate(ctx, verdict, daily)
	logger.Info("constitutional review completed", zap.Bool("safe", validation.IsSafe))

	report.Status = ReflectionCompleted
	report.Analyses = &analyses
	report.Verdict = &verdict
	report.Validation = &validation
	return report, nil
}
