package application

import "github.com/3-14mpa/AITO/internal/domain"

type ReflectionStatus string

const (
	ReflectionCompleted        ReflectionStatus = "completed"
	ReflectionNothingToAnalyze ReflectionStatus = "nothing_to_analyze"
)

// ReflectionReport is what the human reviewer sees at the end of a cycle.
type ReflectionReport struct {
	PersonaID    domain.PersonaID         `json:"persona_id"`
	Date         string                   `json:"date"`
	Status       ReflectionStatus         `json:"status"`
	Interactions int                      `json:"interactions"`
	Analyses     *AnalysisSet             `json:"analyses,omitempty"`
	Verdict      *domain.SynthesisVerdict `json:"verdict,omitempty"`
	Validation   *domain.ValidationResult `json:"validation,omitempty"`
}

func (r ReflectionReport) NothingToAnalyze() bool {
	return r.Status == ReflectionNothingToAnalyze
}
