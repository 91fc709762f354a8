package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravchenko/hiredesk/internal/client/models"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

type capturedRequest struct {
	method      string
	path        string
	authz       string
	requestID   string
	contentType string
	body        []byte
}

// newTestClient spins up a server answering every request with status and
// body, and returns a client pointed at it plus the last captured request.
func newTestClient(t *testing.T, token string, status int, body string) (*Client, *fakeNotifier, *capturedRequest, *int) {
	t.Helper()

	captured := &capturedRequest{}
	unauthorized := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.EscapedPath()
		captured.authz = r.Header.Get("Authorization")
		captured.requestID = r.Header.Get("X-Request-Id")
		captured.contentType = r.Header.Get("Content-Type")
		captured.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	n := &fakeNotifier{}
	c := New(Options{
		BaseURL:        srv.URL,
		Tokens:         &staticTokens{token: token},
		Notifier:       n,
		OnUnauthorized: func() { unauthorized++ },
		Logger:         logging.NewZerologLogger(io.Discard, "error", false),
	})
	return c, n, captured, &unauthorized
}

func TestBearerAttachedWhenSessionExists(t *testing.T) {
	c, _, captured, _ := newTestClient(t, "tok-123", http.StatusOK, `{"data":[]}`)

	_, err := c.ListCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", captured.authz)
	assert.NotEmpty(t, captured.requestID)
}

func TestNoBearerWithoutSession(t *testing.T) {
	c, _, captured, _ := newTestClient(t, "", http.StatusOK, `{"data":{"token":"t","role":"admin"}}`)

	_, err := c.AdminLogin(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	assert.Empty(t, captured.authz)
}

func TestSuccessEnvelopeDecoded(t *testing.T) {
	c, n, captured, _ := newTestClient(t, "tok", http.StatusOK,
		`{"data":[{"_id":"c1","fullName":"Jane Roe","email":"jane@corp.io","skills":["Go","Go"]}]}`)

	list, err := c.ListCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/admin/candidates", captured.path)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, []string{"Go", "Go"}, list[0].Skills, "duplicates pass through")
	assert.Empty(t, n.errors)
}

func TestServerMessageSurfacedOnce(t *testing.T) {
	c, n, _, unauthorized := newTestClient(t, "tok", http.StatusConflict, `{"message":"email already taken"}`)

	_, err := c.CreateCandidate(context.Background(), models.CreateCandidateRequest{Email: "a@b.c"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already taken", apiErr.Message)
	assert.Equal(t, []string{"email already taken"}, n.errors, "exactly one notification per failed call")
	assert.Zero(t, *unauthorized)
}

func TestFallbackMessageWhenBodyHasNone(t *testing.T) {
	c, n, _, _ := newTestClient(t, "tok", http.StatusInternalServerError, `oops`)

	err := c.DeleteCandidate(context.Background(), "c1")
	require.Error(t, err)
	assert.Equal(t, []string{"Something went wrong"}, n.errors)
}

func TestUnauthorizedEscalatesGlobally(t *testing.T) {
	c, n, _, unauthorized := newTestClient(t, "stale", http.StatusUnauthorized, `{"message":"jwt expired"}`)

	_, err := c.ListCandidates(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, *unauthorized, "teardown must run exactly once per failure")
	assert.Equal(t, []string{"jwt expired"}, n.errors)
}

func TestUnauthorizedOnAnyCall(t *testing.T) {
	c, _, _, unauthorized := newTestClient(t, "stale", http.StatusUnauthorized, `{}`)

	_ = c.Logout(context.Background())
	_, _ = c.Profile(context.Background())

	assert.Equal(t, 2, *unauthorized, "each failing call triggers its own teardown")
}

func TestMalformedSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>"},
		{"no data key", `{"ok":true}`},
		{"wrong payload shape", `{"data":"just a string"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c, n, _, _ := newTestClient(t, "tok", http.StatusOK, tt.body)

			_, err := c.ListCandidates(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedResponse))
			assert.Len(t, n.errors, 1)
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	n := &fakeNotifier{}
	c := New(Options{
		BaseURL:  "http://127.0.0.1:1", // nothing listens here
		Tokens:   &staticTokens{},
		Notifier: n,
		Logger:   logging.NewZerologLogger(io.Discard, "error", false),
	})

	_, err := c.ListCandidates(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, []string{"Something went wrong"}, n.errors)
}

func TestDeleteEscapesID(t *testing.T) {
	c, _, captured, _ := newTestClient(t, "tok", http.StatusOK, `{"data":null}`)

	require.NoError(t, c.DeleteCandidate(context.Background(), "a/b c"))
	assert.Equal(t, http.MethodDelete, captured.method)
	assert.Equal(t, "/admin/candidates/a%2Fb%20c", captured.path)
}

func TestLoginPostsJSONPayload(t *testing.T) {
	c, _, captured, _ := newTestClient(t, "", http.StatusOK,
		`{"data":{"token":"tok-9","role":"candidate","email":"jane@corp.io"}}`)

	res, err := c.CandidateLogin(context.Background(), models.LoginRequest{Email: "jane@corp.io", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "/auth/candidate/login", captured.path)
	assert.Equal(t, "application/json", captured.contentType)
	assert.JSONEq(t, `{"email":"jane@corp.io","password":"pw"}`, string(captured.body))
	assert.Equal(t, "tok-9", res.Token)
	assert.Equal(t, "candidate", res.Role)
}
