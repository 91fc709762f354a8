package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dkravchenko/hiredesk/internal/client/models"
)

// renderCreate runs the create-candidate form: prompts for every field,
// validates the payload before dispatch and, on success, navigates back to
// the candidate list.
func (a *App) renderCreate(ctx context.Context) {
	fmt.Fprintln(a.out, "-- Create candidate --")

	req, err := a.promptCandidate()
	if err != nil {
		return
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(a.out, "Invalid %s (%s)\n", fe.Field(), fe.Tag())
			}
		} else {
			fmt.Fprintln(a.out, "Invalid input:", err)
		}
		fmt.Fprintln(a.out, "Candidate not created. Type 'create' to try again.")
		return
	}

	if _, err := a.admin.CreateCandidate(ctx, *req); err != nil {
		// Notification already shown by the gateway; stay on the form route.
		return
	}
	a.notifier.Success("Candidate created successfully")
	a.Navigate("/admin/candidates")
}

func (a *App) promptCandidate() (*models.CreateCandidateRequest, error) {
	req := &models.CreateCandidateRequest{}

	fieldPrompts := []struct {
		prompt string
		dst    *string
	}{
		{"Username", &req.Username},
		{"Email", &req.Email},
		{"Full name", &req.FullName},
		{"Mobile number", &req.Mobile},
		{"Address", &req.Address},
	}
	for _, f := range fieldPrompts {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return nil, err
	}
	req.Password = string(password)

	skills, err := getSimpleText(a.reader, "Skills (comma-separated)", a.out)
	if err != nil {
		return nil, err
	}
	req.Skills = splitSkills(skills)

	return req, nil
}

// splitSkills turns a comma-separated list into an ordered slice. Entries
// are trimmed but not deduplicated; order is the user's.
func splitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			skills = append(skills, v)
		}
	}
	return skills
}
