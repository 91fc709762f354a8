// Package cli implements the interactive terminal views of the hiredesk
// client: login surfaces, the admin dashboard and candidate management
// screens, and the candidate's own profile. Every screen is a thin wrapper
// over the gateway; navigation between screens always passes through the
// route guard.
package cli
