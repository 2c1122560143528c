package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	// A fresh store over the same directory sees the persisted token.
	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", s2.Token())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())

	s3, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Empty(t, s3.Token())
}

func TestFileStore_ClearWhenNeverSet(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Clear())
}

func signedToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "17", "role": role}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestParseClaims_RecoversRoleWithoutVerification(t *testing.T) {
	tok := signedToken(t, "interviewee", time.Now().Add(2*time.Hour))

	c, err := ParseClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, "17", c.Subject)
	assert.Equal(t, domain.RoleInterviewee, c.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), c.ExpiresAt, time.Minute)
}

func TestParseClaims_UnknownRoleLeftEmpty(t *testing.T) {
	tok := signedToken(t, "superuser", time.Time{})

	c, err := ParseClaims(tok)
	require.NoError(t, err)
	assert.Empty(t, c.Role)
}

func TestParseClaims_Garbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, Expired(signedToken(t, "recruiter", now.Add(time.Hour)), now))
	assert.True(t, Expired(signedToken(t, "recruiter", now.Add(-time.Hour)), now))
	// No exp claim: assumed live.
	assert.False(t, Expired(signedToken(t, "recruiter", time.Time{}), now))
	// Unparseable token: treated as expired.
	assert.True(t, Expired("junk", now))
}
