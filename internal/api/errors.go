package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches 401 and 403 responses
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Code, http.StatusText(e.Code), e.Body)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
}

// Is lets errors.Is(err, ErrUnauthorized) match auth failures
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden)
}

// DecodeError reports a response that does not have the expected shape
type DecodeError struct {
	What  string // e.g. "users[3]" or "login response"
	Field string // missing or malformed field, if any
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "decode " + e.What
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

var (
	errMissing   = errors.New("missing")
	errWrongType = errors.New("wrong type")
	errEmpty     = errors.New("empty")
)
