package core

import (
	"errors"
	"fmt"
)

// ErrDegraded marks a read-path failure. Read endpoints never surface
// errors to callers; the gateway logs the degraded reason and returns an
// empty result instead.
var ErrDegraded = errors.New("degraded")

// DegradedError records why a read endpoint fell back to its neutral
// result. It never crosses the gateway boundary; tests assert on it
// through the unexported fetch methods.
type DegradedError struct {
	Op     string // "packages", "badges", "health", "download"
	Reason error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s degraded: %v", e.Op, e.Reason)
}

func (e *DegradedError) Unwrap() error {
	return ErrDegraded
}

// AuthError is returned by login and register. It carries the
// server-supplied message when one was given, otherwise a fixed fallback.
type AuthError struct {
	Op      string // "login" or "register"
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
