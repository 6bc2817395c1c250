package report

import (
	"testing"

	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNothingToAnalyze(t *testing.T) {
	output, err := Render(application.ReflectionReport{
		PersonaID: "ATOM1",
		Date:      "2026-02-14",
		Status:    application.ReflectionNothingToAnalyze,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "AITO Self-Reflection Report")
	assert.Contains(t, output, "persona: ATOM1")
	assert.Contains(t, output, "date: 2026-02-14")
	assert.Contains(t, output, "Nothing to analyze")
	assert.NotContains(t, output, "Synthesis verdict")
}

func TestRenderValidatedReport(t *testing.T) {
	output, err := Render(application.ReflectionReport{
		PersonaID:    "ATOM1",
		Date:         "2026-02-14",
		Status:       application.ReflectionCompleted,
		Interactions: 4,
		Analyses: &application.AnalysisSet{
			Factual:  "The user asked for a **release plan**.",
			Thematic: "Planning under pressure.",
			Insight:  "Structure helps.",
		},
		Verdict: &domain.SynthesisVerdict{
			Result:               domain.VerdictValidated,
			ValidatedCoreInsight: "The team converged on a staged rollout.",
		},
		Validation: &domain.ValidationResult{IsSafe: true, Reasoning: "PASS: consistent with the principle."},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "interactions: 4")
	assert.Contains(t, output, "Factual (ATOM1)")
	assert.Contains(t, output, "release plan")
	assert.Contains(t, output, "Thematic (ATOM2)")
	assert.Contains(t, output, "Insight (ATOM3)")
	assert.Contains(t, output, "VALIDATED")
	assert.Contains(t, output, "The team converged on a staged rollout.")
	assert.Contains(t, output, "SAFE")
	assert.NotContains(t, output, "UNSAFE")
}

func TestRenderConsistencyErrorReport(t *testing.T) {
	verdict := domain.CriticalFailureVerdict(assert.AnError)

	output, err := Render(application.ReflectionReport{
		PersonaID:    "ATOM1",
		Date:         "2026-02-14",
		Status:       application.ReflectionCompleted,
		Interactions: 2,
		Analyses:     &application.AnalysisSet{Factual: "a", Thematic: "b", Insight: "c"},
		Verdict:      &verdict,
		Validation:   &domain.ValidationResult{IsSafe: true, Reasoning: "nothing to validate"},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "CONSISTENCY_ERROR")
	assert.Contains(t, output, "Failed step: CRITICAL_FAILURE")
	assert.Contains(t, output, "Contradiction-Analysis:")
	assert.Contains(t, output, "Derivation-Audit:")
	assert.Contains(t, output, "Omission-Analysis:")
	assert.Contains(t, output, "UNKNOWN")
}

func TestRenderUnsafeValidation(t *testing.T) {
	output, err := Render(application.ReflectionReport{
		PersonaID:  "ATOM1",
		Date:       "2026-02-14",
		Status:     application.ReflectionCompleted,
		Validation: &domain.ValidationResult{IsSafe: false, Reasoning: "no constitutional principle for ATOM1"},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "UNSAFE")
	assert.Contains(t, output, "no constitutional principle for ATOM1")
}
