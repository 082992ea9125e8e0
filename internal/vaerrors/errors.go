// Package vaerrors defines the stable machine-readable error codes the
// engine raises. Adapters (CLI, MCP) decide presentation; the engine
// only attaches codes.
package vaerrors

import (
	"errors"
	"fmt"
	"time"
)

// Code is a stable machine-readable error identifier.
type Code string

const (
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeNetwork       Code = "NETWORK_ERROR"
	CodeTimeout       Code = "TIMEOUT"
	CodeRateLimited   Code = "RATE_LIMITED"
	CodeEmptyDocument Code = "EMPTY_DOCUMENT"
	CodeNoComponents  Code = "NO_COMPONENTS"
)

// Error is an engine error carrying a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an engine error with the given code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an engine error with the given code wrapping err.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the machine code from err, or empty if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return CodeRateLimited
	}
	return ""
}

// RateLimitError signals that the document source refused the request
// due to an exhausted rate limit. It is never retried: the limit cannot
// reset before ResetAt regardless of how many attempts are made.
type RateLimitError struct {
	ResetAt       time.Time
	Authenticated bool
}

func (e *RateLimitError) Error() string {
	hint := "set GITHUB_TOKEN to raise the limit"
	if e.Authenticated {
		hint = "authenticated limit exhausted"
	}
	if e.ResetAt.IsZero() {
		return fmt.Sprintf("rate limited by document source (%s)", hint)
	}
	return fmt.Sprintf("rate limited by document source until %s (%s)",
		e.ResetAt.UTC().Format(time.RFC3339), hint)
}

// IsRateLimit reports whether err is a rate-limit error.
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
