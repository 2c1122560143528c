// Package api is the client's single HTTP chokepoint: every outbound
// request passes through Client.send, which attaches the session
// credential, normalizes all failures into one error shape, and clears
// the credential when the server rejects it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartrecruiter/smartrec/internal/session"
)

// Client talks to the Smart Recruiter API.
type Client struct {
	base    string
	http    *http.Client
	session session.Store
	log     zerolog.Logger
}

// NewClient builds a Client against the given base URL (the `/api` root).
// timeout is the only transport configuration; there is no retry.
func NewClient(base string, timeout time.Duration, sess session.Store, log zerolog.Logger) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// errorBody is the error payload shape the server uses across endpoints.
type errorBody struct {
	Message string `json:"message"`
}

// send performs one request. body is JSON-encoded when non-nil; the
// response body is decoded into out when out is non-nil. All failures
// come back as *Error carrying the server message when one exists and
// the generic fallback otherwise.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.log.Error().Err(err).Str("path", path).Msg("encoding request body")
			return &Error{Message: fallbackMessage}
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return &Error{Message: fallbackMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure: no response reached us. Same error shape as
		// an application failure so callers never branch on the class.
		c.log.Debug().Err(err).Str("method", method).Str("path", path).
			Str("request_id", req.Header.Get("X-Request-Id")).
			Dur("elapsed", time.Since(start)).Msg("no response from server")
		return &Error{Message: fallbackMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: fallbackMessage}
	}

	ev := c.log.Debug()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		ev = c.log.Warn()
	}
	ev.Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Str("request_id", req.Header.Get("X-Request-Id")).
		Dur("elapsed", time.Since(start)).Msg("request complete")

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			// Drop the stale credential so later requests go out
			// unauthenticated. The error still propagates; no redirect,
			// no retry here.
			if err := c.session.Clear(); err != nil {
				c.log.Error().Err(err).Msg("clearing credential after 401")
			}
		}
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Message != "" {
			return &Error{Message: eb.Message}
		}
		return &Error{Message: fallbackMessage}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			c.log.Error().Err(err).Str("path", path).Msg("decoding response")
			return &Error{Message: fallbackMessage}
		}
	}
	return nil
}
