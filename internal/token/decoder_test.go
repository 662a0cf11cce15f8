package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"property-portal/internal/model"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes a customer token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		tokenString := signedToken(t, jwt.MapClaims{
			"id":       float64(42),
			"username": "somchai",
			"role":     "customer",
			"exp":      float64(exp),
		})

		user, err := Decode(tokenString)
		require.NoError(t, err)
		require.Equal(t, int64(42), user.ID)
		require.Equal(t, "somchai", user.Username)
		require.Equal(t, model.RoleCustomer, user.Role)
		require.Equal(t, exp, user.Exp)
		require.True(t, user.HasExp)
	})

	t.Run("a literal zero exp is still an expiry", func(t *testing.T) {
		tokenString := signedToken(t, jwt.MapClaims{
			"id":       float64(1),
			"username": "x",
			"role":     "customer",
			"exp":      float64(0),
		})

		user, err := Decode(tokenString)
		require.NoError(t, err)
		require.True(t, user.HasExp)
		require.True(t, user.Expired(time.Now().Unix()))
	})

	t.Run("exp is optional", func(t *testing.T) {
		tokenString := signedToken(t, jwt.MapClaims{
			"id":       float64(1),
			"username": "admin",
			"role":     "admin",
		})

		user, err := Decode(tokenString)
		require.NoError(t, err)
		require.Zero(t, user.Exp)
		require.False(t, user.HasExp)
		require.False(t, user.Expired(time.Now().Unix()))
	})

	t.Run("malformed input never yields a partial user", func(t *testing.T) {
		malformed := []string{
			"",
			"   ",
			"not-a-token",
			"one.two",
			"a.b.c.d",
			"aGVhZGVy.bm90LWpzb24.c2ln",
			signedToken(t, jwt.MapClaims{"username": "x", "role": "customer"}),          // missing id
			signedToken(t, jwt.MapClaims{"id": float64(1), "role": "customer"}),         // missing username
			signedToken(t, jwt.MapClaims{"id": float64(1), "username": "x"}),            // missing role
			signedToken(t, jwt.MapClaims{"id": "1", "username": "x", "role": "admin"}),  // id not numeric
			signedToken(t, jwt.MapClaims{"id": float64(1), "username": "x", "role": "customer", "exp": "soon"}),
		}

		for _, input := range malformed {
			user, err := Decode(input)
			require.ErrorIs(t, err, model.ErrTokenMalformed, "input %q", input)
			require.Equal(t, model.DecodedUser{}, user, "input %q", input)
		}
	})
}

func TestDecodedUserExpired(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	require.True(t, model.DecodedUser{Exp: now - 1, HasExp: true}.Expired(now))
	require.True(t, model.DecodedUser{Exp: 0, HasExp: true}.Expired(now))
	require.False(t, model.DecodedUser{Exp: now, HasExp: true}.Expired(now))
	require.False(t, model.DecodedUser{Exp: now + 60, HasExp: true}.Expired(now))
	require.False(t, model.DecodedUser{}.Expired(now))
}
