package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or the connection broke before a response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks responses classified as authentication failures.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedResponse marks a 2xx response whose body did not match
	// the expected envelope.
	ErrMalformedResponse = errors.New("malformed response")
)

// fallbackMessage is shown when a failed response carries no message.
const fallbackMessage = "Something went wrong"

// APIError is a non-2xx response normalized into an error. Message is the
// server-supplied text, or the generic fallback when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
