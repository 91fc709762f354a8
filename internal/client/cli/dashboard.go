package cli

import (
	"context"
	"fmt"
)

// renderDashboard shows the admin overview: a live candidate count fetched
// on every mount.
func (a *App) renderDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "-- Admin dashboard --")

	list, err := a.admin.ListCandidates(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Dashboard stats unavailable.")
		return
	}
	fmt.Fprintf(a.out, "Total candidates: %d\n", len(list))
	fmt.Fprintln(a.out, "Commands: candidates, create")
}
