// Package routes decides, for every navigation, whether the current
// identity may render the requested view or must be redirected to the
// public landing surface. Decisions are pure and evaluated fresh on every
// navigation; nothing is cached.
package routes

import "github.com/dkravchenko/hiredesk/internal/client/session"

// Rule declares the roles permitted to view a navigable path. An empty
// Allowed set means the route only requires an authenticated identity.
type Rule struct {
	Path    string
	Public  bool
	Allowed []session.Role
}

// Table lists every navigable route of the client. Unknown paths fall
// through to a redirect to the public landing route.
var Table = []Rule{
	{Path: "/", Public: true},
	{Path: "/admin/login", Public: true},
	{Path: "/candidate/login", Public: true},
	{Path: "/admin/dashboard", Allowed: []session.Role{session.RoleAdmin}},
	{Path: "/admin/candidates", Allowed: []session.Role{session.RoleAdmin}},
	{Path: "/admin/candidates/create", Allowed: []session.Role{session.RoleAdmin}},
	{Path: "/candidate/profile", Allowed: []session.Role{session.RoleCandidate}},
}

// Decision is the outcome of a guard evaluation. When Allow is false the
// client must navigate to Path instead of the requested view; From keeps
// the originally requested location for a later return-to enhancement.
type Decision struct {
	Allow bool
	Path  string
	From  string
}

// Lookup finds the rule for an exact route path.
func Lookup(path string) (Rule, bool) {
	for _, r := range Table {
		if r.Path == path {
			return r, true
		}
	}
	return Rule{}, false
}

// Decide applies the guard's decision table to one protected rule:
// no identity → redirect; empty allowed set → render; otherwise render
// only when the identity's role is in the allowed set.
func Decide(id *session.Identity, allowed []session.Role) bool {
	if id == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, role := range allowed {
		if id.Role == role {
			return true
		}
	}
	return false
}

// Resolve evaluates a navigation to path for the given identity. Public
// routes always render; unknown paths and denied navigations redirect to
// the public landing route with the original location preserved.
func Resolve(id *session.Identity, path string) Decision {
	rule, ok := Lookup(path)
	if !ok {
		return Decision{Path: session.PublicLanding, From: path}
	}
	if rule.Public || Decide(id, rule.Allowed) {
		return Decision{Allow: true, Path: rule.Path}
	}
	return Decision{Path: session.PublicLanding, From: path}
}
