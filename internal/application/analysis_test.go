package application

import (
	"context"
	"errors"
	"testing"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDailyContext() domain.DailyContext {
	return domain.DailyContext{
		Date:      "2026-03-04",
		PersonaID: "ATOM1",
		Interactions: []domain.Interaction{
			{Message: domain.Message{Speaker: "user", Content: "Can we cache the embeddings?"}},
			{Message: domain.Message{Speaker: "ATOM1", Content: "Yes, keyed by chunk hash."}},
		},
	}
}

func TestAnalystSendsLensPromptAndTranscript(t *testing.T) {
	generator := mocks.NewMockTextGenerator(t)
	analyst := NewAnalyst(LensThematic, generator)
	daily := sampleDailyContext()

	generator.EXPECT().
		Generate(mockAnyContext(), lensPrompts[LensThematic], mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, "2026-03-04") && assert.Contains(t, prompt, "keyed by chunk hash")
		})).
		Return("A calm, constructive day.", nil)

	text, err := analyst.Analyze(context.Background(), daily)
	require.NoError(t, err)
	assert.Equal(t, "A calm, constructive day.", text)
}

func TestAnalystTreatsBlankTextAsFailure(t *testing.T) {
	generator := mocks.NewMockTextGenerator(t)
	analyst := NewAnalyst(LensFactual, generator)

	generator.EXPECT().Generate(mockAnyContext(), mock.Anything, mock.Anything).Return("  \n", nil)

	_, err := analyst.Analyze(context.Background(), sampleDailyContext())
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
}

func TestAnalystRejectsUnknownLens(t *testing.T) {
	analyst := NewAnalyst(Lens("astrological"), mocks.NewMockTextGenerator(t))

	_, err := analyst.Analyze(context.Background(), sampleDailyContext())
	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestAnalysisPanelRunAll(t *testing.T) {
	factual := mocks.NewMockTextGenerator(t)
	thematic := mocks.NewMockTextGenerator(t)
	insight := mocks.NewMockTextGenerator(t)
	panel := NewAnalysisPanel(factual, thematic, insight)

	factual.EXPECT().Generate(mockAnyContext(), lensPrompts[LensFactual], mock.Anything).Return("facts", nil)
	thematic.EXPECT().Generate(mockAnyContext(), lensPrompts[LensThematic], mock.Anything).Return("themes", nil)
	insight.EXPECT().Generate(mockAnyContext(), lensPrompts[LensInsight], mock.Anything).Return("insight", nil)

	set, err := panel.RunAll(context.Background(), sampleDailyContext())
	require.NoError(t, err)
	assert.Equal(t, AnalysisSet{Factual: "facts", Thematic: "themes", Insight: "insight"}, set)
}

func TestAnalysisPanelFailsWhenOneLensFails(t *testing.T) {
	factual := mocks.NewMockTextGenerator(t)
	thematic := mocks.NewMockTextGenerator(t)
	insight := mocks.NewMockTextGenerator(t)
	panel := NewAnalysisPanel(factual, thematic, insight)
	genErr := errors.New("quota exceeded")

	factual.EXPECT().Generate(mockAnyContext(), mock.Anything, mock.Anything).Return("facts", nil).Maybe()
	thematic.EXPECT().Generate(mockAnyContext(), mock.Anything, mock.Anything).Return("", genErr)
	insight.EXPECT().Generate(mockAnyContext(), mock.Anything, mock.Anything).Return("insight", nil).Maybe()

	set, err := panel.RunAll(context.Background(), sampleDailyContext())
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
	require.ErrorIs(t, err, genErr)
	assert.Equal(t, AnalysisSet{}, set)
}
