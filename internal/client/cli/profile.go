package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// renderProfile fetches the candidate's own profile and shows it. The
// picture preview starts at the server-known reference; uploads may move
// it optimistically ahead of the authoritative copy.
func (a *App) renderProfile(ctx context.Context) {
	fmt.Fprintln(a.out, "-- My profile --")

	me, err := a.profile.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Unable to load profile.")
		return
	}
	a.me = me
	a.preview = me.ProfilePicture

	fmt.Fprintf(a.out, "%s <%s>\n", me.FullName, me.Email)
	fmt.Fprintf(a.out, "Mobile: %s\n", me.Mobile)
	fmt.Fprintf(a.out, "Address: %s\n", me.Address)
	if len(me.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(me.Skills, ", "))
	}
	a.printPicture()
	if me.Resume != "" {
		fmt.Fprintf(a.out, "Resume: %s\n", me.Resume)
	}
	fmt.Fprintln(a.out, "Commands: upload picture <file>, upload resume <file>, refresh")
}

func (a *App) printPicture() {
	if a.preview == "" {
		fmt.Fprintln(a.out, "Picture: (none)")
		return
	}
	fmt.Fprintf(a.out, "Picture: %s\n", a.preview)
}

// UploadPicture shows the selected file as an optimistic local preview,
// then uploads it. On failure the preview reverts to the last server-known
// picture (or blank if none existed); on success the server-returned
// reference becomes authoritative.
func (a *App) UploadPicture(ctx context.Context, path string) error {
	if a.current != "/candidate/profile" {
		fmt.Fprintln(a.out, "Open your profile first: profile")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return err
	}
	defer f.Close()

	a.preview = path
	a.printPicture()

	res, err := a.profile.UploadProfilePicture(ctx, path, f)
	if err != nil {
		if a.me != nil {
			a.preview = a.me.ProfilePicture
		} else {
			a.preview = ""
		}
		a.printPicture()
		return err
	}

	if a.me != nil {
		a.me.ProfilePicture = res.ProfilePicture
	}
	a.preview = res.ProfilePicture
	a.notifier.Success("Profile picture uploaded successfully")
	a.printPicture()
	return nil
}

// UploadResume uploads a resume file; the server-returned reference
// replaces the one in the view copy.
func (a *App) UploadResume(ctx context.Context, path string) error {
	if a.current != "/candidate/profile" {
		fmt.Fprintln(a.out, "Open your profile first: profile")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return err
	}
	defer f.Close()

	res, err := a.profile.UploadResume(ctx, path, f)
	if err != nil {
		return err
	}

	if a.me != nil {
		a.me.Resume = res.Resume
	}
	a.notifier.Success("Resume uploaded successfully")
	fmt.Fprintf(a.out, "Resume: %s\n", res.Resume)
	return nil
}
