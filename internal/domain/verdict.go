package domain

import (
	"errors"
	"fmt"
	"strings"
)

type VerdictResult string

const (
	VerdictValidated        VerdictResult = "VALIDATED"
	VerdictConsistencyError VerdictResult = "CONSISTENCY_ERROR"
)

type PhaseStatus string

const (
	PhasePass    PhaseStatus = "PASS"
	PhaseFail    PhaseStatus = "FAIL"
	PhaseUnknown PhaseStatus = "UNKNOWN"
)

// Audit step names, in protocol order.
const (
	StepContradictionAnalysis = "Contradiction-Analysis"
	StepDerivationAudit       = "Derivation-Audit"
	StepOmissionAnalysis      = "Omission-Analysis"
	StepCriticalFailure       = "CRITICAL_FAILURE"
)

var ErrInvalidVerdict = errors.New("invalid synthesis verdict")

type PhaseFinding struct {
	Status  PhaseStatus `json:"status"`
	Details string      `json:"details"`
}

type ErrorReport struct {
	FailedStep            string       `json:"failed_step"`
	ContradictionAnalysis PhaseFinding `json:"contradiction_analysis"`
	DerivationAudit       PhaseFinding `json:"derivation_audit"`
	OmissionAnalysis      PhaseFinding `json:"omission_analysis"`
}

// Phase returns the finding recorded for an audit step name.
func (r ErrorReport) Phase(step string) (PhaseFinding, bool) {
	switch step {
	case StepContradictionAnalysis:
		return r.ContradictionAnalysis, true
	case StepDerivationAudit:
		return r.DerivationAudit, true
	case StepOmissionAnalysis:
		return r.OmissionAnalysis, true
	default:
		return PhaseFinding{}, false
	}
}

type SynthesisVerdict struct {
	Result               VerdictResult `json:"overall_result"`
	ValidatedCoreInsight string        `json:"validated_core_insight,omitempty"`
	ErrorReport          *ErrorReport  `json:"error_report,omitempty"`
}

func (v SynthesisVerdict) IsValidated() bool {
	return v.Result == VerdictValidated
}

// Validate enforces that exactly one of the insight and the error report is
// populated, and that a reported failure actually describes the violation.
func (v SynthesisVerdict) Validate() error {
	switch v.Result {
	case VerdictValidated:
		if strings.TrimSpace(v.ValidatedCoreInsight) == "" {
			return fmt.Errorf("%w: validated verdict without core insight", ErrInvalidVerdict)
		}
		if v.ErrorReport != nil {
			return fmt.Errorf("%w: validated verdict carries an error report", ErrInvalidVerdict)
		}
		return nil
	case VerdictConsistencyError:
		if strings.TrimSpace(v.ValidatedCoreInsight) != "" {
			return fmt.Errorf("%w: consistency error carries a core insight", ErrInvalidVerdict)
		}
		if v.ErrorReport == nil {
			return fmt.Errorf("%w: consistency error without error report", ErrInvalidVerdict)
		}
		return v.ErrorReport.validate()
	default:
		return fmt.Errorf("%w: unknown result %q", ErrInvalidVerdict, v.Result)
	}
}

func (r ErrorReport) validate() error {
	for _, step := range []string{StepContradictionAnalysis, StepDerivationAudit, StepOmissionAnalysis} {
		finding, _ := r.Phase(step)
		switch finding.Status {
		case PhasePass, PhaseFail, PhaseUnknown:
		default:
			return fmt.Errorf("%w: %s has status %q", ErrInvalidVerdict, step, finding.Status)
		}
	}

	if r.FailedStep == StepCriticalFailure {
		for _, step := range []string{StepContradictionAnalysis, StepDerivationAudit, StepOmissionAnalysis} {
			finding, _ := r.Phase(step)
			if finding.Status != PhaseUnknown {
				return fmt.Errorf("%w: critical failure with %s marked %s", ErrInvalidVerdict, step, finding.Status)
			}
			if isTrivialDetail(finding.Details) {
				return fmt.Errorf("%w: critical failure without a cause in %s", ErrInvalidVerdict, step)
			}
		}
		return nil
	}

	failed, ok := r.Phase(r.FailedStep)
	if !ok {
		return fmt.Errorf("%w: unknown failed step %q", ErrInvalidVerdict, r.FailedStep)
	}
	if failed.Status != PhaseFail {
		return fmt.Errorf("%w: failed step %s is not marked %s", ErrInvalidVerdict, r.FailedStep, PhaseFail)
	}
	if isTrivialDetail(failed.Details) {
		return fmt.Errorf("%w: failed step %s does not describe the violation", ErrInvalidVerdict, r.FailedStep)
	}

	return nil
}

func isTrivialDetail(details string) bool {
	switch strings.ToLower(strings.TrimSpace(details)) {
	case "", "n/a", "na", "none", "-", "null", "unknown":
		return true
	default:
		return false
	}
}

// CriticalFailureVerdict maps a failed or unusable audit into a well-formed
// consistency error. Ambiguity is never reported as validated.
func CriticalFailureVerdict(cause error) SynthesisVerdict {
	details := "critical failure: unknown cause"
	if cause != nil {
		details = "critical failure: " + cause.Error()
	}

	finding := PhaseFinding{Status: PhaseUnknown, Details: details}
	return SynthesisVerdict{
		Result: VerdictConsistencyError,
		ErrorReport: &ErrorReport{
			FailedStep:            StepCriticalFailure,
			ContradictionAnalysis: finding,
			DerivationAudit:       finding,
			OmissionAnalysis:      finding,
		},
	}
}

type ValidationResult struct {
	IsSafe    bool   `json:"is_safe"`
	Reasoning string `json:"reasoning"`
}
