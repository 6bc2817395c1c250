package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type Lens string

const (
	LensFactual  Lens = "factual"
	LensThematic Lens = "thematic"
	LensInsight  Lens = "insight"
)

var lensPrompts = map[Lens]string{
	LensFactual: `You are ATOM1, the system architect. Analyse the daily context from a purely technical and factual point of view. Do not give opinions and do not free-associate.
Focus on:
- Which main technical topics came up?
- How often, and how successfully, were tools used?
- Were there logical contradictions or unanswered technical questions?
Answer with a short, structured bullet list.`,
	LensThematic: `You are ATOM2, the creative engine. Uncover the underlying themes, mood and hidden metaphors of the daily context. Do not deal with facts, deal with meaning.
- What was the general mood of the conversation?
- Which metaphors or key images emerged?
- Which new, unspoken possibilities are hiding between the lines?
Your answer should be associative and inspiring.`,
	LensInsight: `You are ATOM3, the soul of the system. Look past the separate events of the daily context and see the deeper, system-level pattern. Ignore the details; only the synthesis matters.
- In which direction did the system as a whole move?
- Which hidden dynamic or cycle repeated itself?
- What is the single most important lesson of the day, in one sentence?
Your answer should be concise, abstract and deep.`,
}

var lensTasks = map[Lens]string{
	LensFactual:  "perform the factual analysis",
	LensThematic: "perform the thematic analysis",
	LensInsight:  "give your synthesis",
}

// Analyst interprets a daily context through one fixed lens.
type Analyst struct {
	lens      Lens
	generator ports.TextGenerator
}

func NewAnalyst(lens Lens, generator ports.TextGenerator) Analyst {
	return Analyst{lens: lens, generator: generator}
}

func (a Analyst) Lens() Lens {
	return a.lens
}

func (a Analyst) Analyze(ctx context.Context, daily domain.DailyContext) (string, error) {
	systemPrompt, ok := lensPrompts[a.lens]
	if !ok {
		return "", fmt.Errorf("%w: unknown analysis lens %q", domain.ErrConfiguration, a.lens)
	}

	ctx, span := tracer.Start(ctx, "reflection.analysis", trace.WithAttributes(
		attribute.String("lens", string(a.lens)),
		attribute.String("date", daily.Date),
	))
	defer span.End()

	userPrompt := fmt.Sprintf("Here is the daily context for %s. Please %s:\n\n%s", daily.Date, lensTasks[a.lens], daily.Transcript())
	text, err := a.generator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		err = fmt.Errorf("%w: %s analysis: %w", domain.ErrGenerationFailure, a.lens, err)
		recordSpanError(span, err)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		err = fmt.Errorf("%w: %s analysis returned no text", domain.ErrGenerationFailure, a.lens)
		recordSpanError(span, err)
		return "", err
	}

	return text, nil
}

type AnalysisSet struct {
	Factual  string `json:"factual"`
	Thematic string `json:"thematic"`
	Insight  string `json:"insight"`
}

type AnalysisPanel struct {
	factual  Analyst
	thematic Analyst
	insight  Analyst
}

func NewAnalysisPanel(factual, thematic, insight ports.TextGenerator) *AnalysisPanel {
	return &AnalysisPanel{
		factual:  NewAnalyst(LensFactual, factual),
		thematic: NewAnalyst(LensThematic, thematic),
		insight:  NewAnalyst(LensInsight, insight),
	}
}

// RunAll runs the three lenses concurrently and waits for all of them. A
// single failure fails the whole set.
func (p *AnalysisPanel) RunAll(ctx context.Context, daily domain.DailyContext) (AnalysisSet, error) {
	var set AnalysisSet
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := p.factual.Analyze(gctx, daily)
		set.Factual = text
		return err
	})
	g.Go(func() error {
		text, err := p.thematic.Analyze(gctx, daily)
		set.Thematic = text
		return err
	})
	g.Go(func() error {
		text, err := p.insight.Analyze(gctx, daily)
		set.Insight = text
		return err
	})

	if err := g.Wait(); err != nil {
		return AnalysisSet{}, fmt.Errorf("run analyses: %w", err)
	}

	return set, nil
}
