package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// Claims is the subset of the access token's payload the client reads
// back after a restart. The signature is not verified here; the server
// rejects tampered tokens on the next request anyway, this is only used
// to branch the UI before any network call.
type Claims struct {
	Subject   string
	Role      domain.Role
	ExpiresAt time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseClaims decodes a stored token without verifying it. A token that
// does not parse is treated the same as no token at all.
func ParseClaims(token string) (*Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return nil, err
	}
	c := &Claims{Subject: tc.Subject}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	if r, err := domain.ParseRole(tc.Role); err == nil {
		c.Role = r
	}
	return c, nil
}

// Expired reports whether a stored token has passed its expiry claim.
// Tokens without an exp claim are assumed live.
func Expired(token string, now time.Time) bool {
	c, err := ParseClaims(token)
	if err != nil {
		return true
	}
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
