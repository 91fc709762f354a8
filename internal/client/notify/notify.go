// Package notify delivers transient, non-blocking user notifications,
// the terminal equivalent of a toast popup.
package notify

import (
	"fmt"
	"io"
)

// Notifier reports the outcome of an operation to the user. A notification
// never changes control flow; callers still handle errors themselves.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Console writes notifications as single lines to w.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.w, "[ok] %s\n", msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.w, "[error] %s\n", msg)
}
