package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dkravchenko/hiredesk/internal/client/config"
	"github.com/dkravchenko/hiredesk/internal/client/gateway"
	"github.com/dkravchenko/hiredesk/internal/client/models"
	"github.com/dkravchenko/hiredesk/internal/client/notify"
	"github.com/dkravchenko/hiredesk/internal/client/routes"
	"github.com/dkravchenko/hiredesk/internal/client/session"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

// validate checks typed payloads at the input layer, before dispatch.
var validate = validator.New(validator.WithRequiredStructEnabled())

// App is the view layer: a REPL navigating between role-gated screens.
// Screen-local view state (fetched lists, the profile copy, the picture
// preview) is discarded on every navigation; screens re-fetch on mount.
type App struct {
	cfg      *config.Config
	session  *session.Store
	auth     gateway.AuthAPI
	admin    gateway.AdminAPI
	profile  gateway.CandidateAPI
	notifier notify.Notifier
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	ctx     context.Context
	current string

	// view state of the mounted screen
	candidates []models.Candidate
	me         *models.Candidate
	preview    string
}

func NewApp(cfg *config.Config, st *session.Store, auth gateway.AuthAPI, admin gateway.AdminAPI, profile gateway.CandidateAPI, n notify.Notifier, log logging.Logger) *App {
	return &App{
		cfg:      cfg,
		session:  st,
		auth:     auth,
		admin:    admin,
		profile:  profile,
		notifier: n,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		current:  session.PublicLanding,
	}
}

// Run initializes the session, lands on the screen matching the restored
// identity (or the public landing) and enters the REPL until exit.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	if err := a.session.Initialize(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "hiredesk client (type 'help' for commands)")

	switch id := a.session.Current(); {
	case id == nil:
		a.Navigate(session.PublicLanding)
	case id.Role == session.RoleAdmin:
		a.Navigate(session.AdminLanding)
	default:
		a.Navigate(session.CandidateLanding)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) status() string {
	id := a.session.Current()
	if id == nil {
		return ""
	}
	s := fmt.Sprintf("(%s %s)", id.Email, id.Role)
	if !id.ExpiresAt.IsZero() && time.Now().After(id.ExpiresAt) {
		s += " expired"
	}
	return s
}

// Navigate runs the route guard for path and mounts the decided screen.
// Satisfies session.Navigator, so identity changes land here too.
func (a *App) Navigate(path string) {
	d := routes.Resolve(a.session.Current(), path)
	if !d.Allow {
		a.log.Debug(a.ctx, "navigation redirected", "from", d.From, "to", d.Path)
	}
	a.mount(d.Path)
}

// Refresh re-mounts the current screen, re-fetching its data.
func (a *App) Refresh(ctx context.Context) {
	a.mount(a.current)
}

func (a *App) mount(path string) {
	// Unmounting drops all local edits and fetched copies.
	a.candidates = nil
	a.me = nil
	a.preview = ""
	a.current = path

	ctx := a.ctx
	switch path {
	case session.PublicLanding:
		// The landing surface forwards straight to the admin login.
		a.current = "/admin/login"
		a.renderAdminLogin()
	case "/admin/login":
		a.renderAdminLogin()
	case "/candidate/login":
		a.renderCandidateLogin()
	case session.AdminLanding:
		a.renderDashboard(ctx)
	case "/admin/candidates":
		a.renderCandidates(ctx)
	case "/admin/candidates/create":
		a.renderCreate(ctx)
	case session.CandidateLanding:
		a.renderProfile(ctx)
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		if id := a.session.Current(); id != nil && id.Role == session.RoleAdmin {
			fmt.Fprintln(a.out, "Available commands: dashboard, candidates, create, delete <id>, open <path>, refresh, logout, exit")
			return
		}
		fmt.Fprintln(a.out, "Available commands: profile, upload picture <file>, upload resume <file>, open <path>, refresh, logout, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: login, open /admin/login, open /candidate/login, exit")
}
