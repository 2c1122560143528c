package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// AuthState mirrors the current session. Invariant: Authenticated is
// true iff Token is non-empty.
type AuthState struct {
	Status              Status
	PasswordResetStatus Status
	Err                 string

	Authenticated bool
	Token         string
	Role          domain.Role
	User          *domain.UserProfile
}

// Login exchanges credentials for a token, persists it, and marks the
// session authenticated. On failure the session fields stay untouched.
func (s *Store) Login(ctx context.Context, username, password string) error {
	n := s.begin(opAuthLogin, func(st *State) {
		st.Auth.Status = StatusLoading
		st.Auth.Err = ""
	})

	res, err := s.api.Login(ctx, username, password)
	if err == nil && !res.Role.Valid() {
		err = &api.Error{Message: "Login failed: unrecognized account role."}
	}
	if err == nil {
		err = s.session.SetToken(res.Token)
	}
	if err != nil {
		s.settle(opAuthLogin, n, func(st *State) {
			st.Auth.Status = StatusFailed
			st.Auth.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAuthLogin, n, func(st *State) {
		st.Auth.Status = StatusSucceeded
		st.Auth.Err = ""
		st.Auth.Authenticated = true
		st.Auth.Token = res.Token
		st.Auth.Role = res.Role
	})
	return nil
}

// Signup registers an account and marks the session authenticated with
// the returned profile.
func (s *Store) Signup(ctx context.Context, req domain.SignupRequest) error {
	n := s.begin(opAuthSignup, func(st *State) {
		st.Auth.Status = StatusLoading
		st.Auth.Err = ""
	})

	profile, err := s.api.Signup(ctx, req)
	if err != nil {
		s.settle(opAuthSignup, n, func(st *State) {
			st.Auth.Status = StatusFailed
			st.Auth.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAuthSignup, n, func(st *State) {
		st.Auth.Status = StatusSucceeded
		st.Auth.Err = ""
		st.Auth.Authenticated = true
		st.Auth.User = profile
		st.Auth.Role = profile.Role
	})
	return nil
}

// Logout revokes the token server-side, then clears the local session.
// On failure only the error is recorded; the session stays as it was.
func (s *Store) Logout(ctx context.Context) error {
	n := s.begin(opAuthLogout, nil)

	if err := s.api.Logout(ctx); err != nil {
		s.settle(opAuthLogout, n, func(st *State) {
			st.Auth.Err = "Logout failed. Please try again."
		})
		return err
	}
	if err := s.session.Clear(); err != nil {
		s.settle(opAuthLogout, n, func(st *State) {
			st.Auth.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAuthLogout, n, func(st *State) {
		st.Auth = AuthState{Status: StatusIdle, PasswordResetStatus: StatusIdle}
	})
	return nil
}

// ForgotPassword requests a reset token. Tracked on its own status so a
// password-reset flow does not disturb the login lifecycle.
func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	n := s.begin(opPasswordReset, func(st *State) {
		st.Auth.PasswordResetStatus = StatusLoading
		st.Auth.Err = ""
	})

	if _, err := s.api.ForgotPassword(ctx, email); err != nil {
		s.settle(opPasswordReset, n, func(st *State) {
			st.Auth.PasswordResetStatus = StatusFailed
			st.Auth.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opPasswordReset, n, func(st *State) {
		st.Auth.PasswordResetStatus = StatusSucceeded
		st.Auth.Err = ""
	})
	return nil
}

// ResetPassword redeems a reset token; shares the password-reset status.
func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) error {
	n := s.begin(opPasswordReset, func(st *State) {
		st.Auth.PasswordResetStatus = StatusLoading
		st.Auth.Err = ""
	})

	if _, err := s.api.ResetPassword(ctx, token, newPassword); err != nil {
		s.settle(opPasswordReset, n, func(st *State) {
			st.Auth.PasswordResetStatus = StatusFailed
			st.Auth.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opPasswordReset, n, func(st *State) {
		st.Auth.PasswordResetStatus = StatusSucceeded
		st.Auth.Err = ""
	})
	return nil
}
