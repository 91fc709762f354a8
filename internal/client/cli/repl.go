package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	help()
	Navigate(path string)
	Refresh(ctx context.Context)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	UploadPicture(ctx context.Context, path string) error
	UploadResume(ctx context.Context, path string) error
}

// runREPL starts a simple read–eval–print loop for the hiredesk client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Navigation commands (open, dashboard, candidates, create, profile) go
// through the route guard on every invocation; action commands (login,
// logout, delete, upload) operate in the context of the mounted screen.
//
// Any errors returned by command handlers are swallowed here; handlers and
// the gateway surface their own notifications. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "hd %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: open <path>")
				continue
			}
			a.Navigate(args[0])

		case "dashboard":
			a.Navigate("/admin/dashboard")

		case "candidates", "list":
			a.Navigate("/admin/candidates")

		case "create":
			a.Navigate("/admin/candidates/create")

		case "profile":
			a.Navigate("/candidate/profile")

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "upload":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: upload picture|resume <file>")
				continue
			}
			switch args[0] {
			case "picture":
				_ = a.UploadPicture(ctx, args[1])
			case "resume":
				_ = a.UploadResume(ctx, args[1])
			default:
				fmt.Fprintln(out, "Usage: upload picture|resume <file>")
			}

		case "refresh":
			a.Refresh(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
