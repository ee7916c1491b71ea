package auth

import (
	"errors"
	"fmt"
)

// ErrMissingCode is returned before any network call when no code was given
var ErrMissingCode = errors.New("no authorization code provided")

// TransportError wraps DNS, TLS, connection and timeout failures
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is a rejection or an unusable response from the token endpoint.
// StatusCode is zero when the failure was detected after a 2xx response.
type ProtocolError struct {
	StatusCode  int
	Code        string
	Description string
	Body        string
}

func (e *ProtocolError) Error() string {
	msg := e.Message()
	if e.StatusCode == 0 {
		return fmt.Sprintf("invalid token response: %s", msg)
	}
	return fmt.Sprintf("token endpoint returned status %d: %s", e.StatusCode, msg)
}

// Message is the most readable explanation available
func (e *ProtocolError) Message() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("%s (%s)", e.Code, e.Description)
	case e.Code != "":
		return e.Code
	case e.Description != "":
		return e.Description
	case e.Body != "":
		return truncate(e.Body, 200)
	}
	return "no details"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
