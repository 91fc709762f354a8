// Package session owns the process-wide authenticated identity. The store
// is the single writer: all mutations go through Initialize, Login, Logout
// and Invalidate, and every change is mirrored to a durable file so the next
// run resumes the same identity.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkravchenko/hiredesk/internal/client/notify"
	"github.com/dkravchenko/hiredesk/internal/filex"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

// Role determines which routes and API operations are permitted.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCandidate Role = "candidate"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCandidate
}

// Identity is the authenticated subject held by the store. Token is opaque
// to the client; ExpiresAt is best-effort display metadata extracted from
// the token and never used to verify anything.
type Identity struct {
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	FullName  string    `json:"fullName,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// Navigator moves the UI to a route path. The store calls it after every
// identity change so the visible screen always matches the session state.
type Navigator func(path string)

// Landing routes per role and for the public surface.
const (
	PublicLanding    = "/"
	AdminLanding     = "/admin/dashboard"
	CandidateLanding = "/candidate/profile"
)

// Store holds the current identity and its persisted copy.
//
// All mutations happen synchronously on the UI goroutine, so the store
// needs no locking. Login, Logout and Invalidate are terminal UI events,
// never called concurrently with each other.
type Store struct {
	path     string
	identity *Identity
	notifier notify.Notifier
	navigate Navigator
	log      logging.Logger
}

func NewStore(path string, n notify.Notifier, log logging.Logger) *Store {
	return &Store{path: path, notifier: n, log: log}
}

// BindNavigator installs the navigation capability. The store is built
// before the view layer, so navigation arrives late.
func (s *Store) BindNavigator(nav Navigator) {
	s.navigate = nav
}

// Current returns the active identity, or nil when unauthenticated.
func (s *Store) Current() *Identity {
	return s.identity
}

// Token returns the credential token of the active identity, or "" when
// there is none. Satisfies the gateway's token source.
func (s *Store) Token() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}

// Initialize rehydrates a persisted identity from the session file. A
// missing file leaves the store unauthenticated; a malformed or incomplete
// entry is discarded and removed. Must run before the first guard decision.
func (s *Store) Initialize(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil || id.Token == "" || !id.Role.Valid() {
		s.log.Warn(ctx, "discarding malformed session file", "path", s.path)
		_ = os.Remove(s.path)
		return nil
	}

	s.identity = &id
	s.log.Info(ctx, "session restored", "email", id.Email, "role", id.Role)
	return nil
}

// Login adopts the identity issued by a successful authentication call,
// persists it and navigates to the role's landing view. It has no failure
// mode of its own beyond persistence I/O.
func (s *Store) Login(ctx context.Context, id Identity) error {
	id.ExpiresAt = tokenExpiry(id.Token)
	s.identity = &id

	if err := s.persist(); err != nil {
		return err
	}

	s.notifier.Success("Login successful!")
	switch id.Role {
	case RoleAdmin:
		s.goTo(AdminLanding)
	default:
		s.goTo(CandidateLanding)
	}
	s.log.Info(ctx, "logged in", "email", id.Email, "role", id.Role)
	return nil
}

// Logout clears the identity, removes the persisted entry and navigates to
// the public landing route. Idempotent: with no active session only the
// navigation and notification side effects remain.
func (s *Store) Logout(ctx context.Context) {
	s.clear()
	s.notifier.Success("Logged out successfully")
	s.goTo(PublicLanding)
	s.log.Info(ctx, "logged out")
}

// Invalidate is the teardown path for authentication failures reported by
// the gateway. It clears the session and forces navigation to the login
// surface without a success notification; the failed call already surfaced
// its own error. Idempotent under repeated triggers.
func (s *Store) Invalidate() {
	s.clear()
	s.goTo(PublicLanding)
}

func (s *Store) clear() {
	s.identity = nil
	_ = os.Remove(s.path)
}

func (s *Store) goTo(path string) {
	if s.navigate != nil {
		s.navigate(path)
	}
}

func (s *Store) persist() error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}
	data, err := json.Marshal(s.identity)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// tokenExpiry extracts the exp claim from a JWT credential without
// verifying it. Opaque tokens yield a zero time.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
