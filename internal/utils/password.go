package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptDigest reports a stored password hash that bcrypt cannot parse.
// It is kept distinct from a plain mismatch so storage corruption surfaces as
// a server fault instead of looking like one more failed login attempt.
var ErrCorruptDigest = errors.New("corrupt password digest")

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash and a plain password.  The comparison
// is constant-time within bcrypt itself.  A malformed hash yields
// ErrCorruptDigest rather than false.
func VerifyPassword(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrCorruptDigest
	}
}
