// Package service implements the business operations behind the HTTP
// handlers: the authentication session/token lifecycle and journal entry
// creation with analysis fan-out.
package service

import "errors"

// Authentication failures surfaced to handlers.  Each maps to a 4xx
// response; infrastructure faults are returned as ordinary wrapped errors
// and become generic 500s.  The messages do not reveal which sub-check
// failed.
var (
	// ErrEmailTaken is returned by Register when the address already has an
	// account, whether caught by the lookup or by the duplicate-key race.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken covers a bad signature, wrong token type, a
	// missing or inactive session, and a superseded (rotated-away) token.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrInvalidAccessToken is the access-token analogue.
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrSessionExpired is returned when the session row itself has outlived
	// its expiry; the session is invalidated as a side effect.
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionInactive is returned by CurrentUser when the token names a
	// session that has been logged out.
	ErrSessionInactive = errors.New("session is no longer active")

	// ErrUserInactive is returned when the account behind a valid token is
	// missing or deactivated.
	ErrUserInactive = errors.New("user not found or inactive")
)
