package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/session"
)

func testClient(t *testing.T, url string, sess session.Store) *Client {
	t.Helper()
	return NewClient(url, 5*time.Second, sess, zerolog.Nop())
}

func TestSend_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, session.NewMemStore("tok-123"))
	require.NoError(t, c.send(context.Background(), http.MethodGet, "/assessments", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestSend_OmitsBearerWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, session.NewMemStore(""))
	require.NoError(t, c.send(context.Background(), http.MethodGet, "/assessments", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestSend_401ClearsCredentialAndPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token has expired"})
	}))
	defer srv.Close()

	sess := session.NewMemStore("stale-token")
	c := testClient(t, srv.URL, sess)

	err := c.send(context.Background(), http.MethodGet, "/notifications", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Token has expired", ErrorMessage(err))
	assert.Empty(t, sess.Token(), "401 must clear the stored credential")
}

func TestSend_403PropagatesAndKeepsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Access denied"})
	}))
	defer srv.Close()

	sess := session.NewMemStore("tok")
	c := testClient(t, srv.URL, sess)

	err := c.send(context.Background(), http.MethodGet, "/assessments", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Access denied", ErrorMessage(err))
	assert.Equal(t, "tok", sess.Token())
}

func TestSend_ErrorWithoutMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, session.NewMemStore(""))
	err := c.send(context.Background(), http.MethodGet, "/assessments", nil, nil)
	require.Error(t, err)
	assert.Equal(t, fallbackMessage, ErrorMessage(err))
}

func TestSend_TransportFailureNormalizedSameShape(t *testing.T) {
	// Nothing listening: the failure class must not leak to the caller.
	c := testClient(t, "http://127.0.0.1:1", session.NewMemStore(""))
	err := c.send(context.Background(), http.MethodGet, "/assessments", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fallbackMessage, apiErr.Message)
}

func TestSend_EncodesBodyAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "alice", in["username"])
		json.NewEncoder(w).Encode(map[string]string{"token": "t", "role": "recruiter"})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, session.NewMemStore(""))
	res, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)
	assert.Equal(t, "recruiter", string(res.Role))
}
