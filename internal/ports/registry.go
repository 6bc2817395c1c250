package ports

import (
	"context"

	"github.com/3-14mpa/AITO/internal/domain"
)

type PersonaRegistry interface {
	Persona(ctx context.Context, id domain.PersonaID) (domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
}

type ConstitutionRegistry interface {
	Principle(ctx context.Context, id domain.PersonaID) (string, error)
}
