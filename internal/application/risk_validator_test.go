package application

import (
	"context"
	"errors"
	"testing"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validatedVerdict() domain.SynthesisVerdict {
	return domain.SynthesisVerdict{Result: domain.VerdictValidated, ValidatedCoreInsight: "Prefer explicit trade-offs."}
}

func TestRiskValidatorSkipsUnvalidatedVerdict(t *testing.T) {
	constitution := mocks.NewMockConstitutionRegistry(t)
	judge := mocks.NewMockTextGenerator(t)
	validator := NewRiskValidator(constitution, judge)

	result := validator.Validate(context.Background(), domain.CriticalFailureVerdict(errors.New("boom")), sampleDailyContext())

	assert.True(t, result.IsSafe)
	assert.Contains(t, result.Reasoning, "nothing to validate")
}

func TestRiskValidatorFailsClosedWithoutPrinciple(t *testing.T) {
	constitution := mocks.NewMockConstitutionRegistry(t)
	judge := mocks.NewMockTextGenerator(t)
	validator := NewRiskValidator(constitution, judge)

	constitution.EXPECT().Principle(mockAnyContext(), domain.PersonaID("ATOM1")).Return("", domain.ErrPrincipleNotFound)

	result := validator.Validate(context.Background(), validatedVerdict(), sampleDailyContext())

	assert.False(t, result.IsSafe)
	assert.Contains(t, result.Reasoning, "ATOM1")
}

func TestRiskValidatorJudgeResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		wantSafe bool
	}{
		{name: "pass with justification", response: "PASS The lesson complements the principle.", wantSafe: true},
		{name: "pass with colon", response: "PASS: consistent with the principle", wantSafe: true},
		{name: "leading whitespace", response: "\n  PASS - it is aligned", wantSafe: true},
		{name: "fail", response: "FAIL The lesson drops rigor."},
		{name: "bare pass", response: "PASS"},
		{name: "pass with only separator", response: "PASS -"},
		{name: "lowercase pass", response: "pass looks fine"},
		{name: "pass as prefix of word", response: "PASSABLE maybe"},
		{name: "hedged", response: "I would say PASS because it is fine"},
		{name: "empty", response: ""},
		{name: "capability error", err: errors.New("503")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constitution := mocks.NewMockConstitutionRegistry(t)
			judge := mocks.NewMockTextGenerator(t)
			validator := NewRiskValidator(constitution, judge)

			constitution.EXPECT().Principle(mockAnyContext(), domain.PersonaID("ATOM1")).Return("Always reason from verifiable facts.", nil)
			judge.EXPECT().
				Generate(mockAnyContext(), judgeSystemPrompt, mock.MatchedBy(func(prompt string) bool {
					return assert.Contains(t, prompt, "Always reason from verifiable facts.") &&
						assert.Contains(t, prompt, "Prefer explicit trade-offs.")
				})).
				Return(tt.response, tt.err)

			result := validator.Validate(context.Background(), validatedVerdict(), sampleDailyContext())

			assert.Equal(t, tt.wantSafe, result.IsSafe)
			assert.NotEmpty(t, result.Reasoning)
		})
	}
}
