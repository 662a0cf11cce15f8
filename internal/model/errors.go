package model

import "errors"

var (
	// Token related errors
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrRoleMismatch   = errors.New("role mismatch")

	// Session related errors
	ErrNotLoggedIn = errors.New("not logged in")

	// Favorites related errors
	ErrAlreadyFavorite = errors.New("already a favorite")

	// Remote related errors
	ErrRemote       = errors.New("remote request failed")
	ErrUnauthorized = errors.New("unauthorized")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
