package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	envstore "github.com/3-14mpa/AITO/internal/adapters/secrets/env"
	"github.com/3-14mpa/AITO/internal/domain"
	portmocks "github.com/3-14mpa/AITO/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const geminiKey = "aito/gemini/api_key"

func notFound(backend string) error {
	return fmt.Errorf("%s: %w", backend, domain.ErrSecretNotFound)
}

func TestNewStoreCheckedRejectsEmptyAndNil(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked()
	require.Error(t, err)

	_, err = NewStoreChecked(portmocks.NewMockSecretStore(t), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "secret store 1 is nil")
}

func TestStoreGetUsesFirstBackendThatHasTheKey(t *testing.T) {
	t.Parallel()

	env := portmocks.NewMockSecretStore(t)
	pass := portmocks.NewMockSecretStore(t)
	file := portmocks.NewMockSecretStore(t)
	store := NewStore(env, pass, file)

	env.EXPECT().Get(mock.Anything, geminiKey).Return("", notFound("env")).Once()
	pass.EXPECT().Get(mock.Anything, geminiKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), geminiKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetAllMissingIsSecretNotFound(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockSecretStore(t)
	second := portmocks.NewMockSecretStore(t)
	store := NewStore(first, second)

	first.EXPECT().Get(mock.Anything, geminiKey).Return("", notFound("env")).Once()
	second.EXPECT().Get(mock.Anything, geminiKey).Return("", notFound("file")).Once()

	_, err := store.Get(context.Background(), geminiKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBackendsFail(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockSecretStore(t)
	second := portmocks.NewMockSecretStore(t)
	store := NewStore(first, second)

	first.EXPECT().Get(mock.Anything, geminiKey).Return("", errors.New("pass failed")).Once()
	second.EXPECT().Get(mock.Anything, geminiKey).Return("", notFound("file")).Once()

	_, err := store.Get(context.Background(), geminiKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file")
}

func TestStorePutSkipsReadOnlyBackend(t *testing.T) {
	t.Parallel()

	env := portmocks.NewMockSecretStore(t)
	pass := portmocks.NewMockSecretStore(t)
	file := portmocks.NewMockSecretStore(t)
	store := NewStore(env, pass, file)

	env.EXPECT().Put(mock.Anything, geminiKey, "secret").Return(envstore.ErrReadOnly).Once()
	pass.EXPECT().Put(mock.Anything, geminiKey, "secret").Return(errors.New("pass failed")).Once()
	file.EXPECT().Put(mock.Anything, geminiKey, "secret").Return(nil).Once()

	err := store.Put(context.Background(), geminiKey, "secret")
	require.NoError(t, err)
}

func TestStorePutStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockSecretStore(t)
	second := portmocks.NewMockSecretStore(t)
	store := NewStore(first, second)

	first.EXPECT().Put(mock.Anything, geminiKey, "secret").Return(nil).Once()

	err := store.Put(context.Background(), geminiKey, "secret")
	require.NoError(t, err)
}

func TestStoreDeleteClearsEveryWritableBackend(t *testing.T) {
	t.Parallel()

	env := portmocks.NewMockSecretStore(t)
	pass := portmocks.NewMockSecretStore(t)
	file := portmocks.NewMockSecretStore(t)
	store := NewStore(env, pass, file)

	env.EXPECT().Delete(mock.Anything, geminiKey).Return(envstore.ErrReadOnly).Once()
	pass.EXPECT().Delete(mock.Anything, geminiKey).Return(nil).Once()
	file.EXPECT().Delete(mock.Anything, geminiKey).Return(nil).Once()

	err := store.Delete(context.Background(), geminiKey)
	require.NoError(t, err)
}

func TestStoreDeleteReportsBackendFailure(t *testing.T) {
	t.Parallel()

	pass := portmocks.NewMockSecretStore(t)
	file := portmocks.NewMockSecretStore(t)
	store := NewStore(pass, file)

	pass.EXPECT().Delete(mock.Anything, geminiKey).Return(nil).Once()
	file.EXPECT().Delete(mock.Anything, geminiKey).Return(errors.New("disk full")).Once()

	err := store.Delete(context.Background(), geminiKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockSecretStore(t)
	second := portmocks.NewMockSecretStore(t)
	store := NewStore(first, second)

	first.EXPECT().Get(mock.Anything, geminiKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), geminiKey)
	require.ErrorIs(t, err, context.Canceled)
}
