package cli

import (
	"context"
	"fmt"
	"strings"
)

// confirmFn is a test seam for the destructive-action confirmation prompt.
var confirmFn = Confirm

// renderCandidates fetches and lists all candidates. The fetched copy is
// kept only as view state for the mounted screen.
func (a *App) renderCandidates(ctx context.Context) {
	fmt.Fprintln(a.out, "-- Candidates --")

	list, err := a.admin.ListCandidates(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Unable to load candidates.")
		return
	}
	a.candidates = list

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No candidates yet. Type 'create' to add one.")
		return
	}
	for _, c := range list {
		line := fmt.Sprintf("%s  %s <%s>  %s", c.ID, c.FullName, c.Email, c.Mobile)
		if len(c.Skills) > 0 {
			line += "  [" + strings.Join(c.Skills, ", ") + "]"
		}
		if c.Resume != "" {
			line += "  resume:" + c.Resume
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, "Commands: delete <id>, create, refresh")
}

// Delete removes a candidate after an explicit confirmation. Declining
// aborts with no side effects; on success the list is re-fetched so the
// deleted id is gone from the view.
func (a *App) Delete(ctx context.Context, id string) error {
	if a.current != "/admin/candidates" {
		fmt.Fprintln(a.out, "Open the candidate list first: candidates")
		return nil
	}

	if !confirmFn(a.reader, "Are you sure you want to delete this candidate?", a.out) {
		return nil
	}

	if err := a.admin.DeleteCandidate(ctx, id); err != nil {
		return err
	}
	a.notifier.Success("Candidate deleted successfully")
	a.renderCandidates(ctx)
	return nil
}
