// Package password wraps bcrypt hashing of login secrets. The digest is
// self-describing (algorithm version, cost, and salt travel inside it), so a
// future cost change is picked up transparently at verify time.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Hash produces a salted one-way digest of plain. Cost values outside the
// bcrypt range fall back to the library default.
func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches digest using the salt and cost encoded
// in the digest itself. The comparison is constant-time. A malformed or
// truncated digest verifies false rather than surfacing an error: a corrupted
// stored hash must fail closed, not crash the request.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
