package model

// Role values carried in session tokens. The upstream API is the
// authority on authorization; these only drive client-side routing.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// DecodedUser is the payload extracted from a session token. It is
// recomputed from the raw token on every load and never persisted on
// its own.
type DecodedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	// Exp is the unix expiry claim; HasExp distinguishes a token
	// without the claim from one carrying a literal zero.
	Exp    int64 `json:"exp"`
	HasExp bool  `json:"-"`
}

// Expired reports whether the token carried an exp claim strictly in
// the past relative to now (unix seconds). Tokens without the claim
// never expire locally.
func (u DecodedUser) Expired(now int64) bool {
	return u.HasExp && u.Exp < now
}

// User is an account row as the admin user list returns it.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserProfile is the customer's own account view.
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
