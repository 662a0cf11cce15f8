package session

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"property-portal/internal/event"
	"property-portal/internal/favorites"
	"property-portal/internal/model"
	"property-portal/internal/tokenstore"
	"property-portal/pkg/apierror"
)

type fakeRemote struct {
	mu         sync.Mutex
	ids        []int64
	fetchErr   error
	fetchCalls int
	// When set, Favorites blocks until the channel is closed.
	block chan struct{}
}

func (f *fakeRemote) Favorites(ctx context.Context, token string) ([]int64, error) {
	f.mu.Lock()
	f.fetchCalls++
	block := f.block
	ids := append([]int64(nil), f.ids...)
	err := f.fetchErr
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	return ids, err
}

func (f *fakeRemote) AddFavorite(ctx context.Context, token string, propertyID int64) error {
	return nil
}

func (f *fakeRemote) RemoveFavorite(ctx context.Context, token string, propertyID int64) error {
	return nil
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func newTestController(t *testing.T, remote *fakeRemote) (*Controller, *favorites.Synchronizer, *tokenstore.Store) {
	t.Helper()

	store := tokenstore.New(filepath.Join(t.TempDir(), "tokens.json"))
	favs := favorites.New(remote)
	return NewController(store, favs, event.NewBus()), favs, store
}

func TestControllerLogin(t *testing.T) {
	t.Parallel()

	t.Run("populates the session and loads favorites", func(t *testing.T) {
		remote := &fakeRemote{ids: []int64{3, 7}}
		controller, favs, store := newTestController(t, remote)

		tokenString := signedToken(t, 42, "somchai", model.RoleCustomer, time.Now().Add(time.Hour))
		require.NoError(t, controller.Login(context.Background(), tokenString))

		user, ok := controller.User()
		require.True(t, ok)
		require.Equal(t, model.RoleCustomer, user.Role)
		require.Equal(t, "somchai", user.Username)

		stored, exists := store.Load(model.RoleCustomer)
		require.True(t, exists)
		require.Equal(t, tokenString, stored)

		require.Eventually(t, func() bool {
			return favs.Len() == 2
		}, time.Second, 5*time.Millisecond)
		require.Equal(t, []int64{3, 7}, favs.IDs())
	})

	t.Run("rejects an admin token", func(t *testing.T) {
		controller, favs, store := newTestController(t, &fakeRemote{ids: []int64{1}})

		err := controller.Login(context.Background(), signedToken(t, 7, "boss", model.RoleAdmin, time.Now().Add(time.Hour)))
		require.ErrorIs(t, err, model.ErrRoleMismatch)

		_, ok := controller.User()
		require.False(t, ok)
		_, exists := store.Load(model.RoleCustomer)
		require.False(t, exists)
		require.Zero(t, favs.Len())
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		controller, _, _ := newTestController(t, &fakeRemote{})

		err := controller.Login(context.Background(), "nonsense")
		require.ErrorIs(t, err, model.ErrTokenMalformed)

		_, ok := controller.User()
		require.False(t, ok)
	})

	t.Run("login survives a failed favorites fetch", func(t *testing.T) {
		remote := &fakeRemote{fetchErr: apierror.FromStatus(http.StatusInternalServerError)}
		controller, favs, _ := newTestController(t, remote)

		tokenString := signedToken(t, 42, "somchai", model.RoleCustomer, time.Now().Add(time.Hour))
		require.NoError(t, controller.Login(context.Background(), tokenString))

		require.Eventually(t, func() bool {
			return remote.calls() > 0
		}, time.Second, 5*time.Millisecond)

		// Login is not rolled back; the set just stays empty.
		_, ok := controller.User()
		require.True(t, ok)
		require.Zero(t, favs.Len())
	})
}

func TestControllerLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears session, token, and favorites", func(t *testing.T) {
		remote := &fakeRemote{ids: []int64{5}}
		controller, favs, store := newTestController(t, remote)

		tokenString := signedToken(t, 42, "somchai", model.RoleCustomer, time.Now().Add(time.Hour))
		require.NoError(t, controller.Login(context.Background(), tokenString))
		require.Eventually(t, func() bool { return favs.Len() == 1 }, time.Second, 5*time.Millisecond)

		controller.Logout()

		_, ok := controller.User()
		require.False(t, ok)
		_, exists := store.Load(model.RoleCustomer)
		require.False(t, exists)
		require.Zero(t, favs.Len())
	})

	t.Run("is idempotent when already logged out", func(t *testing.T) {
		controller, favs, _ := newTestController(t, &fakeRemote{})

		require.NotPanics(t, func() {
			controller.Logout()
			controller.Logout()
		})

		_, ok := controller.User()
		require.False(t, ok)
		require.Zero(t, favs.Len())
	})

	t.Run("a late reconcile cannot repopulate a logged-out session", func(t *testing.T) {
		remote := &fakeRemote{ids: []int64{3, 7}, block: make(chan struct{})}
		controller, favs, _ := newTestController(t, remote)

		tokenString := signedToken(t, 42, "somchai", model.RoleCustomer, time.Now().Add(time.Hour))
		require.NoError(t, controller.Login(context.Background(), tokenString))

		// Log out while the favorites fetch is still in flight, then
		// let the stale result arrive.
		require.Eventually(t, func() bool { return remote.calls() > 0 }, time.Second, 5*time.Millisecond)
		controller.Logout()
		close(remote.block)

		require.Never(t, func() bool {
			return favs.Len() != 0
		}, 100*time.Millisecond, 10*time.Millisecond)
	})
}

func TestControllerRestore(t *testing.T) {
	t.Parallel()

	t.Run("revives a stored customer session", func(t *testing.T) {
		remote := &fakeRemote{ids: []int64{9}}
		controller, favs, store := newTestController(t, remote)

		store.Save(model.RoleCustomer, signedToken(t, 42, "somchai", model.RoleCustomer, time.Now().Add(time.Hour)))

		require.True(t, controller.IsLoading())
		controller.Restore(context.Background())
		require.False(t, controller.IsLoading())

		user, ok := controller.User()
		require.True(t, ok)
		require.Equal(t, "somchai", user.Username)
		require.Eventually(t, func() bool { return favs.Has(9) }, time.Second, 5*time.Millisecond)
	})

	t.Run("clears an admin token found in the customer slot", func(t *testing.T) {
		controller, _, store := newTestController(t, &fakeRemote{})

		store.Save(model.RoleCustomer, signedToken(t, 7, "boss", model.RoleAdmin, time.Now().Add(time.Hour)))
		controller.Restore(context.Background())

		require.False(t, controller.IsLoading())
		_, ok := controller.User()
		require.False(t, ok)
		_, exists := store.Load(model.RoleCustomer)
		require.False(t, exists)
	})

	t.Run("clears a malformed stored token", func(t *testing.T) {
		controller, _, store := newTestController(t, &fakeRemote{})

		store.Save(model.RoleCustomer, "rotten")
		controller.Restore(context.Background())

		require.False(t, controller.IsLoading())
		_, ok := controller.User()
		require.False(t, ok)
		_, exists := store.Load(model.RoleCustomer)
		require.False(t, exists)
	})

	t.Run("no stored token leaves a clean logged-out state", func(t *testing.T) {
		controller, _, _ := newTestController(t, &fakeRemote{})

		controller.Restore(context.Background())

		require.False(t, controller.IsLoading())
		_, ok := controller.User()
		require.False(t, ok)
	})
}
