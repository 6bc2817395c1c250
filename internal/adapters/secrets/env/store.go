package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
)

// ErrReadOnly is returned by Put and Delete; the environment is never written.
var ErrReadOnly = errors.New("environment secret store is read-only")

type lookupFunc func(name string) (string, bool)

// Store resolves secret keys from environment variables. A key such as
// "aito/gemini/api_key" is read from AITO_GEMINI_API_KEY, then from any
// aliases registered for it.
type Store struct {
	lookup  lookupFunc
	aliases map[string][]string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(aliases map[string][]string) *Store {
	copied := make(map[string][]string, len(aliases))
	for key, names := range aliases {
		copied[key] = append([]string(nil), names...)
	}

	return &Store{lookup: os.LookupEnv, aliases: copied}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	names := s.variablesFor(key)
	for _, name := range names {
		if value, ok := s.lookup(name); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
	}

	return "", fmt.Errorf("env secret %q (%s): %w", key, strings.Join(names, ", "), domain.ErrSecretNotFound)
}

func (s *Store) Put(ctx context.Context, key string, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("put %q: %w", key, ErrReadOnly)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("delete %q: %w", key, ErrReadOnly)
}

func (s *Store) variablesFor(key string) []string {
	names := []string{VariableName(key)}
	return append(names, s.aliases[key]...)
}

// VariableName derives the environment variable for a secret key.
func VariableName(key string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(key) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
