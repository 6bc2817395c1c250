package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks missing or inconsistent persona/constitution
	// configuration. Callers fail closed on it.
	ErrConfiguration = errors.New("configuration error")

	ErrPersonaNotFound    = fmt.Errorf("%w: persona not found", ErrConfiguration)
	ErrPersonaNotEligible = fmt.Errorf("%w: persona not eligible for meetings", ErrConfiguration)
	ErrPrincipleNotFound  = fmt.Errorf("%w: constitutional principle not found", ErrConfiguration)
	ErrToolNotFound       = fmt.Errorf("%w: tool not found", ErrConfiguration)
	ErrToolNotAllowed     = fmt.Errorf("%w: tool not allowed for persona", ErrConfiguration)

	ErrGenerationFailure    = errors.New("generation failure")
	ErrOrchestrationFailure = errors.New("orchestration failure")
	ErrHistoryUnavailable   = errors.New("conversation history unavailable")
	ErrSecretNotFound       = errors.New("secret not found")
)
