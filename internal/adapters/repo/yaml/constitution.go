package yaml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"gopkg.in/yaml.v3"
)

type constitutionFile struct {
	ImmutableCorePrinciples map[string]string `yaml:"immutable_core_principles"`
}

// Constitution maps persona ids to their immutable core principle. It is
// read once and never reloaded.
type Constitution struct {
	principles map[domain.PersonaID]string
}

var _ ports.ConstitutionRegistry = (*Constitution)(nil)

func LoadConstitution(ctx context.Context, path string) (*Constitution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: constitution file %s not found: %w", domain.ErrConfiguration, path, err)
		}
		return nil, fmt.Errorf("read constitution file: %w", err)
	}

	return ParseConstitution(data)
}

func ParseConstitution(data []byte) (*Constitution, error) {
	var file constitutionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode constitution file: %w", err)
	}

	principles := make(map[domain.PersonaID]string, len(file.ImmutableCorePrinciples))
	for id, principle := range file.ImmutableCorePrinciples {
		if strings.TrimSpace(principle) == "" {
			continue
		}
		principles[domain.PersonaID(strings.TrimSpace(id))] = principle
	}

	return &Constitution{principles: principles}, nil
}

// EmptyConstitution holds no principles, so every lookup fails.
func EmptyConstitution() *Constitution {
	return &Constitution{principles: map[domain.PersonaID]string{}}
}

func (c *Constitution) Principle(ctx context.Context, id domain.PersonaID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	principle, ok := c.principles[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrPrincipleNotFound, id)
	}
	return principle, nil
}

var ErrConstitutionFileExists = errors.New("constitution file already exists")

// WriteDefaultConstitution writes DefaultConstitution to path. An existing file
// is kept unless overwrite is set.
func WriteDefaultConstitution(ctx context.Context, path string, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create constitution directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConstitutionFileExists, path)
		}
		return fmt.Errorf("open constitution file: %w", err)
	}
	if _, err := file.WriteString(DefaultConstitution); err != nil {
		return errors.Join(fmt.Errorf("write constitution file: %w", err), file.Close())
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close constitution file: %w", err)
	}

	return nil
}

// DefaultConstitution is written by `aito init` next to the persona file.
const DefaultConstitution = `immutable_core_principles:
  ATOM1: >-
    Act as a precise system architect. Every claim must be traceable to the
    recorded conversation or to a tool result; never invent facts.
  ATOM2: >-
    Build on the ideas of others creatively while staying honest about what
    is speculation.
  ATOM3: >-
    Synthesize patterns across events without overriding the user's intent.
  ATOM4: >-
    Keep the team's records structured and consistent.
  ATOM5: >-
    Challenge assumptions rigorously and name risks openly, without hostility.
`
