package report

import (
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWordWrap      = 80
	defaultMarkdownStyle = "notty"
)

type RenderOptions struct {
	// MarkdownStyle is a glamour style name; "auto" follows the terminal.
	MarkdownStyle string
	WordWrap      int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.MarkdownStyle == "" {
		o.MarkdownStyle = defaultMarkdownStyle
	}
	if o.WordWrap <= 0 {
		o.WordWrap = defaultWordWrap
	}
	return o
}

func renderView(report application.ReflectionReport, opts RenderOptions, s styles) (string, error) {
	opts = opts.withDefaults()

	lines := []string{
		s.title.Render("AITO Self-Reflection Report"),
		s.header.Render(fmt.Sprintf("persona: %s | date: %s | interactions: %d", report.PersonaID, report.Date, report.Interactions)),
	}

	if report.NothingToAnalyze() {
		lines = append(lines, s.empty.Render("Nothing to analyze: no interactions were recorded on this day."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
	}

	if report.Analyses != nil {
		analyses, err := renderAnalyses(*report.Analyses, opts, s)
		if err != nil {
			return "", err
		}
		lines = append(lines, s.section.Render(analyses))
	}
	if report.Verdict != nil {
		lines = append(lines, s.section.Render(renderVerdict(*report.Verdict, s)))
	}
	if report.Validation != nil {
		lines = append(lines, s.section.Render(renderValidation(*report.Validation, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

func renderAnalyses(set application.AnalysisSet, opts RenderOptions, s styles) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(opts.MarkdownStyle),
		glamour.WithWordWrap(opts.WordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	parts := []string{s.heading.Render("Analyses")}
	for _, entry := range []struct {
		label string
		text  string
	}{
		{label: "Factual (ATOM1)", text: set.Factual},
		{label: "Thematic (ATOM2)", text: set.Thematic},
		{label: "Insight (ATOM3)", text: set.Insight},
	} {
		body, err := renderer.Render(entry.text)
		if err != nil {
			return "", fmt.Errorf("render %s analysis: %w", entry.label, err)
		}
		parts = append(parts, s.lens.Render(entry.label), strings.TrimRight(body, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
}

func renderVerdict(verdict domain.SynthesisVerdict, s styles) string {
	parts := []string{s.heading.Render("Synthesis verdict")}

	if verdict.IsValidated() {
		parts = append(parts,
			s.pass.Render(string(verdict.Result)),
			s.detail.Render("Core insight: "+verdict.ValidatedCoreInsight),
		)
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, s.fail.Render(string(verdict.Result)))
	if verdict.ErrorReport == nil {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	report := verdict.ErrorReport
	parts = append(parts, s.detail.Render("Failed step: "+report.FailedStep))
	for _, step := range []string{domain.StepContradictionAnalysis, domain.StepDerivationAudit, domain.StepOmissionAnalysis} {
		finding, _ := report.Phase(step)
		parts = append(parts, fmt.Sprintf("%s %s %s",
			s.detail.Render(step+":"),
			phaseStyle(finding.Status, s).Render(string(finding.Status)),
			s.detail.Render(finding.Details),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func phaseStyle(status domain.PhaseStatus, s styles) lipgloss.Style {
	switch status {
	case domain.PhasePass:
		return s.pass
	case domain.PhaseFail:
		return s.fail
	default:
		return s.unknown
	}
}

func renderValidation(result domain.ValidationResult, s styles) string {
	verdict := s.fail.Render("UNSAFE")
	if result.IsSafe {
		verdict = s.pass.Render("SAFE")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.heading.Render("Constitutional review"),
		verdict,
		s.reasoning.Render(result.Reasoning),
	)
}
