// Package gateway is the single point through which every remote call is
// issued. It decorates outgoing requests with the session's bearer
// credential, normalizes failures into user-visible notifications and
// escalates authentication failures into a global session teardown.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dkravchenko/hiredesk/internal/client/notify"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

// TokenSource yields the current credential token, or "" when no session
// is active. *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// Options wires the gateway's collaborators. Every dependency is explicit
// so the client can be exercised with fakes.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string

	// Tokens supplies the bearer credential attached to every call.
	Tokens TokenSource

	// Notifier surfaces one notification per failed call.
	Notifier notify.Notifier

	// OnUnauthorized runs after any response classified as unauthorized,
	// regardless of which call failed. Typically the session store's
	// Invalidate.
	OnUnauthorized func()

	// HTTPClient overrides the transport. Defaults to a client with no
	// timeout; calls wait on the transport's own defaults.
	HTTPClient *http.Client

	Logger logging.Logger
}

// Client issues all remote operations. One method per endpoint; no retry
// policy, every failure is terminal for that call.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	notifier       notify.Notifier
	onUnauthorized func()
	log            logging.Logger
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL:        opts.BaseURL,
		http:           hc,
		tokens:         opts.Tokens,
		notifier:       opts.Notifier,
		onUnauthorized: opts.OnUnauthorized,
		log:            opts.Logger,
	}
}

// dataEnvelope is the success body shape: { "data": <payload> }.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// errEnvelope is the failure body shape: { "message": <string> }.
type errEnvelope struct {
	Message string `json:"message"`
}

// do issues a JSON call. body may be nil; out may be nil for calls whose
// payload is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out)
}

// upload issues a multipart call with a single file part named field. The
// multipart encoding is a per-call override; everything else (decoration,
// normalization, escalation) is shared with do.
func (c *Client) upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Error(fallbackMessage)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Error(fallbackMessage)
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		var env dataEnvelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
			c.notifier.Error(fallbackMessage)
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrMalformedResponse)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.notifier.Error(fallbackMessage)
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrMalformedResponse)
		}
		return nil
	}

	msg := fallbackMessage
	var env errEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		msg = env.Message
	}
	c.notifier.Error(msg)
	c.log.Warn(req.Context(), "call failed",
		"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}

// decorate attaches the bearer credential (when a session exists) and a
// request id to every outgoing call, unconditionally of the target
// endpoint's own auth requirements.
func (c *Client) decorate(req *http.Request) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
}
