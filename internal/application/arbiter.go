package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const arbiterSystemPrompt = `You are the Arbiter, a system-level validation engine. Run the three-step Consistency Audit Protocol on the analyses and the raw data you receive, and answer in the predefined JSON format.

Consistency Audit Protocol v1.0:
1. Contradiction-Analysis: look for direct logical contradictions between the three analyses.
2. Derivation-Audit: check that the conclusions of the analyses can be logically derived from the original data.
3. Omission-Analysis: compare the analyses with the original data and identify every critically important piece of information they left out.

Final output:
- If all three steps pass, overall_result is "VALIDATED" and validated_core_insight holds the one-sentence lesson of the day. Do not include an error_report.
- If any step finds a problem, overall_result is "CONSISTENCY_ERROR", validated_core_insight is omitted, error_report.failed_step names the failing step exactly as written above, and every phase gets a status (PASS, FAIL or UNKNOWN) with details. The failed phase's details MUST describe the violation concretely; for an Omission-Analysis failure they must list the omitted significant events.

Answer with the JSON object only.`

func phaseSchema(description string) *ports.Schema {
	return &ports.Schema{
		Type:        ports.SchemaObject,
		Description: description,
		Properties: map[string]*ports.Schema{
			"status": {
				Type: ports.SchemaString,
				Enum: []string{string(domain.PhasePass), string(domain.PhaseFail), string(domain.PhaseUnknown)},
			},
			"details": {Type: ports.SchemaString},
		},
		Required: []string{"status", "details"},
	}
}

// VerdictSchema is the response schema the arbiter asks the generator to honor.
func VerdictSchema() *ports.Schema {
	return &ports.Schema{
		Type: ports.SchemaObject,
		Properties: map[string]*ports.Schema{
			"overall_result": {
				Type:        ports.SchemaString,
				Description: "Result of the audit.",
				Enum:        []string{string(domain.VerdictValidated), string(domain.VerdictConsistencyError)},
			},
			"validated_core_insight": {
				Type:        ports.SchemaString,
				Description: "One-sentence validated lesson of the day. Only for VALIDATED.",
			},
			"error_report": {
				Type:        ports.SchemaObject,
				Description: "Detailed error report. Only for CONSISTENCY_ERROR.",
				Properties: map[string]*ports.Schema{
					"failed_step": {
						Type: ports.SchemaString,
						Enum: []string{domain.StepContradictionAnalysis, domain.StepDerivationAudit, domain.StepOmissionAnalysis},
					},
					"contradiction_analysis": phaseSchema("Result of the contradiction analysis."),
					"derivation_audit":       phaseSchema("Result of the derivation audit."),
					"omission_analysis":      phaseSchema("Result of the omission analysis."),
				},
				Required: []string{"failed_step", "contradiction_analysis", "derivation_audit", "omission_analysis"},
			},
		},
		Required: []string{"overall_result"},
	}
}

type Arbiter struct {
	generator ports.StructuredGenerator
	logger    *zap.Logger
}

func NewArbiter(generator ports.StructuredGenerator, opts ...Option) *Arbiter {
	o := applyOptions(opts)
	return &Arbiter{generator: generator, logger: o.logger}
}

// Synthesize audits the analyses against the raw day. It never returns an
// error: every failure becomes a critical-failure verdict.
func (a *Arbiter) Synthesize(ctx context.Context, daily domain.DailyContext, analyses AnalysisSet) domain.SynthesisVerdict {
	ctx, span := tracer.Start(ctx, "reflection.synthesis", trace.WithAttributes(
		attribute.String("persona", string(daily.PersonaID)),
		attribute.String("date", daily.Date),
	))
	defer span.End()

	verdict, err := a.audit(ctx, daily, analyses)
	if err != nil {
		recordSpanError(span, err)
		a.logger.Warn("synthesis audit failed", zap.String("date", daily.Date), zap.Error(err))
		return domain.CriticalFailureVerdict(err)
	}

	span.SetAttributes(attribute.String("result", string(verdict.Result)))
	return verdict
}

func (a *Arbiter) audit(ctx context.Context, daily domain.DailyContext, analyses AnalysisSet) (domain.SynthesisVerdict, error) {
	raw, err := a.generator.GenerateStructured(ctx, arbiterSystemPrompt, evidencePackage(daily, analyses), VerdictSchema())
	if err != nil {
		return domain.SynthesisVerdict{}, fmt.Errorf("%w: generate verdict: %w", domain.ErrGenerationFailure, err)
	}

	var verdict domain.SynthesisVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return domain.SynthesisVerdict{}, fmt.Errorf("%w: decode verdict: %w", domain.ErrGenerationFailure, err)
	}
	if verdict.ErrorReport != nil && verdict.ErrorReport.FailedStep == domain.StepCriticalFailure {
		return domain.SynthesisVerdict{}, fmt.Errorf("%w: %w: failed step %s is reserved", domain.ErrGenerationFailure, domain.ErrInvalidVerdict, domain.StepCriticalFailure)
	}
	if err := verdict.Validate(); err != nil {
		return domain.SynthesisVerdict{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
	}

	return verdict, nil
}

func evidencePackage(daily domain.DailyContext, analyses AnalysisSet) string {
	var b strings.Builder
	b.WriteString("ORIGINAL RAW DATA (for the omission analysis):\n")
	b.WriteString(daily.Transcript())
	b.WriteString("\n--- ANALYSES ---\n")
	fmt.Fprintf(&b, "1. FACTUAL ANALYSIS (ATOM1): %s\n", analyses.Factual)
	fmt.Fprintf(&b, "2. THEMATIC ANALYSIS (ATOM2): %s\n", analyses.Thematic)
	fmt.Fprintf(&b, "3. SYNTHESIZING ANALYSIS (ATOM3): %s\n", analyses.Insight)
	return b.String()
}
