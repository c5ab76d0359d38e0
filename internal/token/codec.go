// Package token encodes and decodes the signed bearer tokens that prove a
// completed login. Tokens are stateless: validity is derived purely from the
// HMAC signature and the expiry claim, nothing is persisted.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSignature = errors.New("token signature is invalid")
	ErrExpired   = errors.New("token is expired")
	ErrMalformed = errors.New("token is malformed")
)

// Claims is the decoded assertion carried by a bearer token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Codec signs and verifies tokens with a single process-wide secret and a
// fixed HS256 algorithm. It performs no I/O and holds no mutable state, so a
// single instance is safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue mints a compact signed token asserting subject until now+ttl.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return t.SignedString(c.secret)
}

// Decode verifies tokenString and returns its claims. Failures collapse into
// exactly one of ErrSignature, ErrExpired, or ErrMalformed; a structurally
// valid token with an empty subject counts as malformed.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	default:
		return nil, ErrMalformed
	}

	if claims.Subject == "" {
		return nil, ErrMalformed
	}

	out := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
