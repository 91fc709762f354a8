package cli

import (
	"context"
	"fmt"

	"github.com/dkravchenko/hiredesk/internal/client/models"
	"github.com/dkravchenko/hiredesk/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) renderAdminLogin() {
	fmt.Fprintln(a.out, "-- Admin login --")
	fmt.Fprintln(a.out, "Type 'login' to authenticate, or 'open /candidate/login' for the candidate surface.")
}

func (a *App) renderCandidateLogin() {
	fmt.Fprintln(a.out, "-- Candidate login --")
	fmt.Fprintln(a.out, "Type 'login' to authenticate, or 'open /admin/login' for the admin surface.")
}

// Login runs the authentication flow of the mounted login screen. On any
// other screen it only prints a hint.
func (a *App) Login(ctx context.Context) error {
	switch a.current {
	case "/admin/login":
		return a.login(ctx, session.RoleAdmin)
	case "/candidate/login":
		return a.login(ctx, session.RoleCandidate)
	default:
		fmt.Fprintln(a.out, "Open a login screen first: open /admin/login or open /candidate/login")
		return nil
	}
}

// login prompts for credentials, validates them at the input layer and
// dispatches the role's authentication call. A successful result is handed
// to the session store, which persists it and navigates to the role's
// landing view.
func (a *App) login(ctx context.Context, role session.Role) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := validate.Struct(req); err != nil {
		fmt.Fprintln(a.out, "Invalid input:", err)
		return nil
	}

	var res *models.LoginResult
	if role == session.RoleAdmin {
		res, err = a.auth.AdminLogin(ctx, req)
	} else {
		res, err = a.auth.CandidateLogin(ctx, req)
	}
	if err != nil {
		// The gateway already surfaced the failure.
		a.log.Debug(ctx, "login failed", "role", role, "email", email)
		return err
	}

	id := session.Identity{
		Email:    res.Email,
		Role:     session.Role(res.Role),
		Token:    res.Token,
		FullName: res.FullName,
	}
	if id.Email == "" {
		id.Email = email
	}
	return a.session.Login(ctx, id)
}

// Logout tells the server goodbye, then tears down the local session. The
// local teardown runs even when the remote call fails; a dead token must
// never keep the client logged in.
func (a *App) Logout(ctx context.Context) error {
	if a.isLoggedIn() {
		_ = a.auth.Logout(ctx)
	}
	a.session.Logout(ctx)
	return nil
}
