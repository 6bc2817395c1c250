package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/3-14mpa/AITO/internal/adapters/secrets/env"
	filestore "github.com/3-14mpa/AITO/internal/adapters/secrets/file"
	passstore "github.com/3-14mpa/AITO/internal/adapters/secrets/pass"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
)

// Store consults its backends in order. Reads return the first hit; writes
// go to the first backend that accepts them.
type Store struct {
	stores []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoStores = errors.New("secret store chain is empty")

func NewStore(stores ...ports.SecretStore) *Store {
	store, err := NewStoreChecked(stores...)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(stores ...ports.SecretStore) (*Store, error) {
	if len(stores) == 0 {
		return nil, errNoStores
	}
	for i, store := range stores {
		if store == nil {
			return nil, fmt.Errorf("secret store %d is nil", i)
		}
	}

	return &Store{stores: append([]ports.SecretStore(nil), stores...)}, nil
}

// NewDefault is the chain the CLI uses: environment, then pass, then files
// under fileRoot.
func NewDefault(fileRoot string, envAliases map[string][]string) *Store {
	return NewStore(envstore.NewStore(envAliases), passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, store := range s.stores {
		value, err := store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldSkipFallback(err) {
			return "", err
		}
		errs = append(errs, err)
	}

	if allNotFound(errs) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, store := range s.stores {
		err := store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldSkipFallback(err) {
			return err
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

// Delete removes the key from every writable backend so a stale copy cannot
// shadow a later Put.
func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	deleted := false
	for _, store := range s.stores {
		err := store.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if shouldSkipFallback(err) {
			return err
		}
		if errors.Is(err, envstore.ErrReadOnly) || errors.Is(err, passstore.ErrUnavailable) {
			continue
		}
		errs = append(errs, err)
	}

	if deleted && len(errs) == 0 {
		return nil
	}
	if len(errs) == 0 {
		return fmt.Errorf("delete secret %q: no writable backend", key)
	}
	return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func allNotFound(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, domain.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
			return false
		}
	}
	return true
}
