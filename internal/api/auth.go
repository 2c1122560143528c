package api

import (
	"context"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// LoginResult is the top-level login payload.
type LoginResult struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and role. Storing the token is
// the caller's business, not this package's.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	if err := c.send(ctx, http.MethodPost, "/login", loginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account and returns the created profile.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.send(ctx, http.MethodPost, "/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/logout", nil, nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword requests a reset token for the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messageResponse
	if err := c.send(ctx, http.MethodPost, "/forgot-password", forgotPasswordRequest{Email: email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ResetPassword redeems a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var out messageResponse
	if err := c.send(ctx, http.MethodPost, "/reset-password/"+token, resetPasswordRequest{NewPassword: newPassword}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
