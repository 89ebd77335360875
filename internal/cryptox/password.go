// Package cryptox wraps the password-hashing primitive used by the
// identity store: bcrypt with a configurable work factor.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way hash of password with the given
// bcrypt cost. The returned digest embeds the salt and cost, so no extra
// bookkeeping is required to verify it later.
func HashPassword(password []byte, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches digest. The comparison
// is constant-time. A mismatch is an ordinary false, not an error; an
// error means the digest itself is unusable.
func CheckPassword(password []byte, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), password)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
