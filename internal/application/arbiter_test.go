package application

import (
	"context"
	"errors"
	"testing"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"github.com/3-14mpa/AITO/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArbiterReturnsValidatedVerdict(t *testing.T) {
	generator := mocks.NewMockStructuredGenerator(t)
	arbiter := NewArbiter(generator)
	analyses := AnalysisSet{Factual: "F", Thematic: "T", Insight: "I"}

	generator.EXPECT().
		GenerateStructured(mockAnyContext(), arbiterSystemPrompt, mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, "FACTUAL ANALYSIS (ATOM1): F") &&
				assert.Contains(t, prompt, "keyed by chunk hash")
		}), mock.AnythingOfType("*ports.Schema")).
		Return([]byte(`{"overall_result":"VALIDATED","validated_core_insight":"Caching decisions need an owner.","error_report":null}`), nil)

	verdict := arbiter.Synthesize(context.Background(), sampleDailyContext(), analyses)

	require.NoError(t, verdict.Validate())
	assert.True(t, verdict.IsValidated())
	assert.Equal(t, "Caching decisions need an owner.", verdict.ValidatedCoreInsight)
	assert.Nil(t, verdict.ErrorReport)
}

func TestArbiterReturnsConsistencyError(t *testing.T) {
	generator := mocks.NewMockStructuredGenerator(t)
	arbiter := NewArbiter(generator)

	generator.EXPECT().GenerateStructured(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).Return([]byte(`{
		"overall_result": "CONSISTENCY_ERROR",
		"error_report": {
			"failed_step": "Omission-Analysis",
			"contradiction_analysis": {"status": "PASS", "details": "no contradictions"},
			"derivation_audit": {"status": "PASS", "details": "derivable"},
			"omission_analysis": {"status": "FAIL", "details": "the failed deploy at 14:00 is missing"}
		}
	}`), nil)

	verdict := arbiter.Synthesize(context.Background(), sampleDailyContext(), AnalysisSet{})

	require.NoError(t, verdict.Validate())
	assert.Equal(t, domain.VerdictConsistencyError, verdict.Result)
	require.NotNil(t, verdict.ErrorReport)
	assert.Equal(t, domain.StepOmissionAnalysis, verdict.ErrorReport.FailedStep)
}

func TestArbiterMapsFailuresToCriticalFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		err  error
	}{
		{name: "capability error", err: errors.New("deadline exceeded")},
		{name: "not json", raw: []byte("I think it is fine")},
		{name: "schema violation", raw: []byte(`{"overall_result":"VALIDATED"}`)},
		{name: "failed phase without details", raw: []byte(`{"overall_result":"CONSISTENCY_ERROR","error_report":{"failed_step":"Derivation-Audit","contradiction_analysis":{"status":"PASS","details":"ok"},"derivation_audit":{"status":"FAIL","details":"N/A"},"omission_analysis":{"status":"PASS","details":"ok"}}}`)},
		{name: "generator-authored critical failure", raw: []byte(`{"overall_result":"CONSISTENCY_ERROR","error_report":{"failed_step":"CRITICAL_FAILURE","contradiction_analysis":{"status":"PASS","details":""},"derivation_audit":{"status":"PASS","details":""},"omission_analysis":{"status":"PASS","details":""}}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := mocks.NewMockStructuredGenerator(t)
			arbiter := NewArbiter(generator)
			generator.EXPECT().GenerateStructured(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).Return(tt.raw, tt.err)

			verdict := arbiter.Synthesize(context.Background(), sampleDailyContext(), AnalysisSet{})

			require.NoError(t, verdict.Validate())
			assert.False(t, verdict.IsValidated())
			require.NotNil(t, verdict.ErrorReport)
			assert.Equal(t, domain.StepCriticalFailure, verdict.ErrorReport.FailedStep)
			for _, finding := range []domain.PhaseFinding{verdict.ErrorReport.ContradictionAnalysis, verdict.ErrorReport.DerivationAudit, verdict.ErrorReport.OmissionAnalysis} {
				assert.Equal(t, domain.PhaseUnknown, finding.Status)
				assert.Contains(t, finding.Details, "critical failure")
				assert.Contains(t, finding.Details, "generation failure")
			}
		})
	}
}

func TestVerdictSchemaRequiresResult(t *testing.T) {
	schema := VerdictSchema()

	assert.Equal(t, ports.SchemaObject, schema.Type)
	assert.Equal(t, []string{"overall_result"}, schema.Required)
	assert.ElementsMatch(t, []string{"VALIDATED", "CONSISTENCY_ERROR"}, schema.Properties["overall_result"].Enum)
	assert.Len(t, schema.Properties["error_report"].Required, 4)
}
