// Package session owns "who is logged in": the customer session
// controller and the admin area guard. Both read and write tokens only
// through the token store, and both treat locally decoded claims as a
// routing convenience, never as an authorization boundary.
package session

import (
	"context"
	"log/slog"
	"sync"

	"property-portal/internal/event"
	"property-portal/internal/favorites"
	"property-portal/internal/model"
	"property-portal/internal/token"
	"property-portal/internal/tokenstore"
)

// Controller is the single source of truth for the customer session.
// It is the only writer; readers observe through User/IsLoading or by
// subscribing to the event bus.
type Controller struct {
	store     *tokenstore.Store
	favorites *favorites.Synchronizer
	bus       event.Bus

	mu       sync.RWMutex
	user     model.DecodedUser
	loggedIn bool
	loading  bool
}

func NewController(store *tokenstore.Store, favs *favorites.Synchronizer, bus event.Bus) *Controller {
	return &Controller{
		store:     store,
		favorites: favs,
		bus:       bus,
		loading:   true,
	}
}

// User returns the current decoded user, false when logged out.
func (c *Controller) User() (model.DecodedUser, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.user, c.loggedIn
}

// IsLoading is true only until the initial Restore completes.
func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loading
}

// Token returns the raw token backing the current session.
func (c *Controller) Token() (string, bool) {
	if _, ok := c.User(); !ok {
		return "", false
	}

	return c.store.Load(model.RoleCustomer)
}

// Login installs a freshly issued customer token. Tokens that fail to
// decode or carry any other role are rejected without touching the
// current state; an admin token must never populate the customer
// session. On success the favorites reconcile runs in the background,
// so the user is logged in before favorites resolve.
func (c *Controller) Login(ctx context.Context, tokenString string) error {
	user, err := token.Decode(tokenString)
	if err != nil {
		slog.Error("login token failed to decode", "error", err)
		return err
	}

	if user.Role != model.RoleCustomer {
		slog.Warn("rejected login with non-customer token", "role", user.Role)
		return model.ErrRoleMismatch
	}

	c.store.Save(model.RoleCustomer, tokenString)

	c.mu.Lock()
	c.user = user
	c.loggedIn = true
	c.mu.Unlock()

	c.favorites.Bind(tokenString)
	go c.favorites.Reconcile(ctx)

	c.bus.Publish(event.Event{Type: event.TypeSessionStarted, User: user})
	return nil
}

// Logout clears the session. It is always locally effective and
// idempotent: no network call is involved, and calling it while logged
// out is a no-op.
func (c *Controller) Logout() {
	c.store.Clear(model.RoleCustomer)

	c.mu.Lock()
	wasLoggedIn := c.loggedIn
	user := c.user
	c.user = model.DecodedUser{}
	c.loggedIn = false
	c.mu.Unlock()

	// Unbind empties the set and invalidates in-flight reconciles so a
	// late fetch result cannot repopulate a logged-out session.
	c.favorites.Unbind()

	if wasLoggedIn {
		c.bus.Publish(event.Event{Type: event.TypeSessionEnded, User: user})
	}
}

// Restore runs once at startup: it revives a persisted customer session
// if the stored token still decodes to a customer. Whatever happens,
// IsLoading flips to false and no error escapes; the worst case is an
// absent user.
func (c *Controller) Restore(ctx context.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("session restore panicked", "panic", recovered)
		}

		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	tokenString, exists := c.store.Load(model.RoleCustomer)
	if !exists {
		return
	}

	user, err := token.Decode(tokenString)
	if err != nil {
		slog.Warn("stored customer token invalid, clearing", "error", err)
		c.store.Clear(model.RoleCustomer)
		return
	}

	if user.Role != model.RoleCustomer {
		// An admin token leaked into the customer slot; drop it.
		c.store.Clear(model.RoleCustomer)
		return
	}

	c.mu.Lock()
	c.user = user
	c.loggedIn = true
	c.mu.Unlock()

	c.favorites.Bind(tokenString)
	go c.favorites.Reconcile(ctx)

	c.bus.Publish(event.Event{Type: event.TypeSessionRestored, User: user})
}
