package session

import (
	"time"

	"property-portal/internal/model"
	"property-portal/internal/token"
	"property-portal/internal/tokenstore"
)

// GuardState is the terminal outcome of an admin-area check. The guard
// starts in Checking and always ends in Authorized or Redirecting;
// guarded content must not render before Authorized is reached.
type GuardState int

const (
	Checking GuardState = iota
	Authorized
	Redirecting
)

func (s GuardState) String() string {
	switch s {
	case Authorized:
		return "authorized"
	case Redirecting:
		return "redirecting"
	default:
		return "checking"
	}
}

// GuardResult carries the terminal state plus, when authorized, the
// decoded admin identity, and otherwise the login surface to send the
// caller to. The guard never performs the redirect itself.
type GuardResult struct {
	State      GuardState
	User       model.DecodedUser
	RedirectTo string
}

// Guard gates access to the admin area. The check runs once per call;
// it does not poll for expiry afterwards.
type Guard struct {
	store     *tokenstore.Store
	loginPath string
	now       func() time.Time
}

func NewGuard(store *tokenstore.Store, loginPath string) *Guard {
	if loginPath == "" {
		loginPath = "/login"
	}

	return &Guard{
		store:     store,
		loginPath: loginPath,
		now:       time.Now,
	}
}

// Check validates presence, decodability, role, and local expiry of the
// stored admin token. Every failure clears the stored token and
// resolves to Redirecting; malformed, mismatched, and expired tokens
// are all treated identically as "no valid session".
func (g *Guard) Check() GuardResult {
	redirect := GuardResult{State: Redirecting, RedirectTo: g.loginPath}

	tokenString, exists := g.store.Load(model.RoleAdmin)
	if !exists {
		return redirect
	}

	user, err := token.Decode(tokenString)
	if err != nil {
		g.store.Clear(model.RoleAdmin)
		return redirect
	}

	if user.Role != model.RoleAdmin {
		g.store.Clear(model.RoleAdmin)
		return redirect
	}

	if user.Expired(g.now().Unix()) {
		g.store.Clear(model.RoleAdmin)
		return redirect
	}

	return GuardResult{State: Authorized, User: user}
}

// AdminLogin stores a freshly issued admin token after the same checks
// the guard applies, so a customer token can never open the admin area.
func (g *Guard) AdminLogin(tokenString string) error {
	user, err := token.Decode(tokenString)
	if err != nil {
		return err
	}

	if user.Role != model.RoleAdmin {
		return model.ErrRoleMismatch
	}

	if user.Expired(g.now().Unix()) {
		return model.ErrTokenExpired
	}

	g.store.Save(model.RoleAdmin, tokenString)
	return nil
}

// AdminLogout drops the stored admin token.
func (g *Guard) AdminLogout() {
	g.store.Clear(model.RoleAdmin)
}
