// Package token decodes session token payloads without verifying the
// signature. Verification is the upstream API's job; the decoded claims
// are only trusted for client-side routing, never for authorization.
package token

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"property-portal/internal/model"
)

// Decode extracts the identity claims from a signed token string. Any
// malformed input fails with model.ErrTokenMalformed; a nil error
// guarantees a fully populated user. Expiry is not checked here.
func Decode(tokenString string) (model.DecodedUser, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return model.DecodedUser{}, model.ErrTokenMalformed
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return model.DecodedUser{}, model.ErrTokenMalformed
	}

	user := model.DecodedUser{}

	id, ok := claims["id"].(float64)
	if !ok {
		return model.DecodedUser{}, model.ErrTokenMalformed
	}
	user.ID = int64(id)

	user.Username, ok = claims["username"].(string)
	if !ok || user.Username == "" {
		return model.DecodedUser{}, model.ErrTokenMalformed
	}

	user.Role, ok = claims["role"].(string)
	if !ok || user.Role == "" {
		return model.DecodedUser{}, model.ErrTokenMalformed
	}

	// exp is optional; when present it must be numeric. Presence is
	// tracked separately so a literal zero still counts as an expiry.
	if raw, present := claims["exp"]; present {
		exp, numeric := raw.(float64)
		if !numeric {
			return model.DecodedUser{}, model.ErrTokenMalformed
		}
		user.Exp = int64(exp)
		user.HasExp = true
	}

	return user, nil
}
