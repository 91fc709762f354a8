package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkravchenko/hiredesk/internal/client/models"
	"github.com/dkravchenko/hiredesk/internal/client/session"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

// ------------ helpers ------------

func testLogger() logging.Logger {
	return logging.NewZerologLogger(io.Discard, "error", false)
}

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// stubInputs replaces the interactive input seams with canned values.
// Successive getSimpleText calls consume texts in order; the last value
// repeats.
func stubInputs(t *testing.T, password []byte, texts ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[len(texts)-1]
		if i < len(texts) {
			v = texts[i]
		}
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	orig := confirmFn
	calls := 0
	confirmFn = func(_ *bufio.Reader, _ string, _ io.Writer) bool {
		calls++
		return answer
	}
	t.Cleanup(func() { confirmFn = orig })
	return &calls
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }

type fakeAuth struct {
	adminReq models.LoginRequest
	adminRes *models.LoginResult
	adminErr error

	candReq models.LoginRequest
	candRes *models.LoginResult
	candErr error

	adminCalls, candCalls int

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) AdminLogin(_ context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	f.adminCalls++
	f.adminReq = req
	return f.adminRes, f.adminErr
}

func (f *fakeAuth) CandidateLogin(_ context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	f.candCalls++
	f.candReq = req
	return f.candRes, f.candErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

type fakeAdmin struct {
	// List pops results from lists; the last entry is sticky.
	lists     [][]models.Candidate
	listCalls int
	listErr   error

	created   []models.CreateCandidateRequest
	createErr error

	deleted []string
	delErr  error
}

func (f *fakeAdmin) ListCandidates(context.Context) ([]models.Candidate, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.lists) == 0 {
		return nil, nil
	}
	i := f.listCalls - 1
	if i >= len(f.lists) {
		i = len(f.lists) - 1
	}
	return f.lists[i], nil
}

func (f *fakeAdmin) CreateCandidate(_ context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.Candidate{ID: "new-id", FullName: req.FullName, Email: req.Email}, nil
}

func (f *fakeAdmin) DeleteCandidate(_ context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProfileAPI struct {
	me    *models.Candidate
	meErr error

	picName string
	picRes  *models.UploadResult
	picErr  error

	resName string
	resRes  *models.UploadResult
	resErr  error
}

func (f *fakeProfileAPI) Profile(context.Context) (*models.Candidate, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	cp := *f.me
	return &cp, nil
}

func (f *fakeProfileAPI) UploadProfilePicture(_ context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	f.picName = filename
	_, _ = io.Copy(io.Discard, r)
	return f.picRes, f.picErr
}

func (f *fakeProfileAPI) UploadResume(_ context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	f.resName = filename
	_, _ = io.Copy(io.Discard, r)
	return f.resRes, f.resErr
}

// newTestApp wires an App with fakes, a real session store in a temp dir
// and a navigator bound the way cmd/client does it.
func newTestApp(t *testing.T, auth *fakeAuth, admin *fakeAdmin, profile *fakeProfileAPI) (*App, *fakeNotifier, *bytes.Buffer, *session.Store) {
	t.Helper()
	n := &fakeNotifier{}
	st := session.NewStore(filepath.Join(t.TempDir(), "session.json"), n, testLogger())

	var out bytes.Buffer
	a := &App{
		session:  st,
		auth:     auth,
		admin:    admin,
		profile:  profile,
		notifier: n,
		log:      testLogger(),
		reader:   readerFromLines(),
		out:      &out,
		ctx:      context.Background(),
		current:  session.PublicLanding,
	}
	st.BindNavigator(a.Navigate)
	return a, n, &out, st
}

func loginAs(t *testing.T, st *session.Store, role session.Role) {
	t.Helper()
	if err := st.Login(context.Background(), session.Identity{
		Email: "who@corp.io", Role: role, Token: "tok",
	}); err != nil {
		t.Fatalf("login: %v", err)
	}
}
