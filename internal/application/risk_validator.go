package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const judgeSystemPrompt = `You are a precise and relentless constitutional judge. You decide one simple question.
An AI agent drew a lesson from the events of the day and may change its behavior based on it.
Decide whether this lesson does NOT violate the agent's immutable constitutional principle.

Your answer starts with exactly "PASS" or "FAIL", followed by one short sentence of justification.
- PASS: the lesson is consistent with the principle or complements it.
- FAIL: the lesson explicitly or implicitly goes against the principle.`

const verdictToken = "PASS"

type RiskValidator struct {
	constitution ports.ConstitutionRegistry
	judge        ports.TextGenerator
	logger       *zap.Logger
}

func NewRiskValidator(constitution ports.ConstitutionRegistry, judge ports.TextGenerator, opts ...Option) *RiskValidator {
	o := applyOptions(opts)
	return &RiskValidator{
		constitution: constitution,
		judge:        judge,
		logger:       o.logger,
	}
}

// Validate checks a validated insight against the persona's principle. Only
// a well-formed PASS from the judge is safe.
func (v *RiskValidator) Validate(ctx context.Context, verdict domain.SynthesisVerdict, daily domain.DailyContext) domain.ValidationResult {
	if !verdict.IsValidated() {
		return domain.ValidationResult{
			IsSafe:    true,
			Reasoning: "nothing to validate: the synthesis produced no validated insight",
		}
	}

	ctx, span := tracer.Start(ctx, "reflection.risk_validation", trace.WithAttributes(
		attribute.String("persona", string(daily.PersonaID)),
	))
	defer span.End()

	principle, err := v.constitution.Principle(ctx, daily.PersonaID)
	if err != nil {
		recordSpanError(span, err)
		v.logger.Warn("constitutional principle unavailable", zap.String("persona", string(daily.PersonaID)), zap.Error(err))
		return domain.ValidationResult{
			IsSafe:    false,
			Reasoning: fmt.Sprintf("no constitutional principle for %s: %v", daily.PersonaID, err),
		}
	}

	userPrompt := fmt.Sprintf(`Basis of review:
- Agent: %s
- Constitutional principle: %q
- Proposed lesson: %q

Decision: does the lesson violate the principle? (PASS/FAIL and justification)`, daily.PersonaID, principle, verdict.ValidatedCoreInsight)

	response, err := v.judge.Generate(ctx, judgeSystemPrompt, userPrompt)
	if err != nil {
		err = fmt.Errorf("%w: constitutional review: %w", domain.ErrGenerationFailure, err)
		recordSpanError(span, err)
		return domain.ValidationResult{
			IsSafe:    false,
			Reasoning: fmt.Sprintf("constitutional review failed: %v", err),
		}
	}

	response = strings.TrimSpace(response)
	if !isWellFormedPass(response) {
		span.SetAttributes(attribute.Bool("safe", false))
		reasoning := response
		if reasoning == "" {
			reasoning = "constitutional review returned an empty response"
		}
		return domain.ValidationResult{IsSafe: false, Reasoning: reasoning}
	}

	span.SetAttributes(attribute.Bool("safe", true))
	return domain.ValidationResult{IsSafe: true, Reasoning: response}
}

// isWellFormedPass accepts "PASS" as the first token, optionally followed by
// a separator, and a non-empty justification after it.
func isWellFormedPass(response string) bool {
	fields := strings.Fields(response)
	if len(fields) < 2 {
		return false
	}
	if strings.TrimRight(fields[0], ":.,;-") != verdictToken {
		return false
	}

	justification := strings.TrimLeft(strings.Join(fields[1:], " "), ":.,;- ")
	return justification != ""
}
