package store

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/session"
)

func TestLogin_Success(t *testing.T) {
	sess := session.NewMemStore("")
	s := New(&stubAPI{
		login: func(_ context.Context, u, p string) (*api.LoginResult, error) {
			assert.Equal(t, "alice", u)
			return &api.LoginResult{Token: "tok-1", Role: domain.RoleRecruiter}, nil
		},
	}, sess)

	require.NoError(t, s.Login(context.Background(), "alice", "pw"))

	auth := s.Snapshot().Auth
	assert.Equal(t, StatusSucceeded, auth.Status)
	assert.True(t, auth.Authenticated)
	assert.Equal(t, "tok-1", auth.Token)
	assert.Equal(t, domain.RoleRecruiter, auth.Role)
	assert.Equal(t, "tok-1", sess.Token(), "credential must be persisted")
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	sess := session.NewMemStore("")
	s := New(&stubAPI{
		login: func(context.Context, string, string) (*api.LoginResult, error) {
			return nil, &api.Error{Message: "Invalid username or password"}
		},
	}, sess)

	require.Error(t, s.Login(context.Background(), "alice", "wrong"))

	auth := s.Snapshot().Auth
	assert.Equal(t, StatusFailed, auth.Status)
	assert.Equal(t, "Invalid username or password", auth.Err)
	assert.False(t, auth.Authenticated)
	assert.Empty(t, auth.Token)
	assert.Empty(t, sess.Token())
}

func TestLogin_UnknownRoleRejected(t *testing.T) {
	sess := session.NewMemStore("")
	s := New(&stubAPI{
		login: func(context.Context, string, string) (*api.LoginResult, error) {
			return &api.LoginResult{Token: "tok", Role: "superuser"}, nil
		},
	}, sess)

	require.Error(t, s.Login(context.Background(), "alice", "pw"))
	assert.False(t, s.Snapshot().Auth.Authenticated)
	assert.Empty(t, sess.Token())
}

func TestSignup_Success(t *testing.T) {
	s := newTestStore(&stubAPI{
		signup: func(_ context.Context, req domain.SignupRequest) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: 9, Username: req.Username, Role: req.Role}, nil
		},
	})

	require.NoError(t, s.Signup(context.Background(), domain.SignupRequest{
		Username: "bob", Role: domain.RoleInterviewee,
	}))

	auth := s.Snapshot().Auth
	assert.Equal(t, StatusSucceeded, auth.Status)
	assert.True(t, auth.Authenticated)
	require.NotNil(t, auth.User)
	assert.Equal(t, "bob", auth.User.Username)
	assert.Equal(t, domain.RoleInterviewee, auth.Role)
}

func TestLogout_ClearsEverything(t *testing.T) {
	sess := session.NewMemStore("tok")
	s := New(&stubAPI{
		login: func(context.Context, string, string) (*api.LoginResult, error) {
			return &api.LoginResult{Token: "tok", Role: domain.RoleRecruiter}, nil
		},
		logout: func(context.Context) error { return nil },
	}, sess)
	require.NoError(t, s.Login(context.Background(), "a", "b"))

	require.NoError(t, s.Logout(context.Background()))

	auth := s.Snapshot().Auth
	assert.False(t, auth.Authenticated)
	assert.Empty(t, auth.Token)
	assert.Empty(t, auth.Role)
	assert.Nil(t, auth.User)
	assert.Equal(t, StatusIdle, auth.Status)
	assert.Empty(t, sess.Token())
}

func TestLogout_FailureKeepsSession(t *testing.T) {
	sess := session.NewMemStore("tok")
	s := New(&stubAPI{
		logout: func(context.Context) error { return &api.Error{Message: "boom"} },
	}, sess)

	require.Error(t, s.Logout(context.Background()))

	auth := s.Snapshot().Auth
	assert.True(t, auth.Authenticated, "hydrated session must survive a failed logout")
	assert.Equal(t, "Logout failed. Please try again.", auth.Err)
	assert.Equal(t, "tok", sess.Token())
}

func TestPasswordReset_OwnLifecycle(t *testing.T) {
	s := newTestStore(&stubAPI{
		forgotPassword: func(context.Context, string) (string, error) {
			return "Password reset token sent", nil
		},
		resetPassword: func(context.Context, string, string) (string, error) {
			return "", &api.Error{Message: "Token expired"}
		},
	})

	require.NoError(t, s.ForgotPassword(context.Background(), "a@b.c"))
	assert.Equal(t, StatusSucceeded, s.Snapshot().Auth.PasswordResetStatus)
	// The login lifecycle is untouched by the reset flow.
	assert.Equal(t, StatusIdle, s.Snapshot().Auth.Status)

	require.Error(t, s.ResetPassword(context.Background(), "deadbeef", "newpw"))
	auth := s.Snapshot().Auth
	assert.Equal(t, StatusFailed, auth.PasswordResetStatus)
	assert.Equal(t, "Token expired", auth.Err)
}

func TestNew_HydratesFromPersistedToken(t *testing.T) {
	claims := jwt.MapClaims{"sub": "4", "role": "interviewee", "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	s := New(&stubAPI{}, session.NewMemStore(tok))

	auth := s.Snapshot().Auth
	assert.True(t, auth.Authenticated)
	assert.Equal(t, domain.RoleInterviewee, auth.Role)
}

func TestNew_IgnoresExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{"sub": "4", "role": "recruiter", "exp": time.Now().Add(-time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	s := New(&stubAPI{}, session.NewMemStore(tok))
	assert.False(t, s.Snapshot().Auth.Authenticated)
}
