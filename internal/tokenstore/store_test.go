package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"property-portal/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tokens.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, exists := store.Load(model.RoleCustomer)
	require.False(t, exists)

	store.Save(model.RoleCustomer, "customer-token")
	store.Save(model.RoleAdmin, "admin-token")

	got, exists := store.Load(model.RoleCustomer)
	require.True(t, exists)
	require.Equal(t, "customer-token", got)

	// Roles are separate namespaces.
	got, exists = store.Load(model.RoleAdmin)
	require.True(t, exists)
	require.Equal(t, "admin-token", got)

	store.Clear(model.RoleCustomer)
	_, exists = store.Load(model.RoleCustomer)
	require.False(t, exists)

	got, exists = store.Load(model.RoleAdmin)
	require.True(t, exists)
	require.Equal(t, "admin-token", got)
}

func TestStoreUnknownRole(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	store.Save("editor", "token")

	_, exists := store.Load("editor")
	require.False(t, exists)
}

func TestStoreCorruptedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := New(path)
	_, exists := store.Load(model.RoleCustomer)
	require.False(t, exists)

	// A save over the corrupted file recovers it.
	store.Save(model.RoleCustomer, "fresh")
	got, exists := store.Load(model.RoleCustomer)
	require.True(t, exists)
	require.Equal(t, "fresh", got)
}

func TestStoreUnwritablePathDoesNotPanic(t *testing.T) {
	t.Parallel()

	store := New(filepath.Join(string(os.DevNull), "nope", "tokens.json"))
	require.NotPanics(t, func() {
		store.Save(model.RoleCustomer, "token")
		store.Clear(model.RoleCustomer)
	})

	_, exists := store.Load(model.RoleCustomer)
	require.False(t, exists)
}
