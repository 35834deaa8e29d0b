package services

import "fmt"

// Custom errors

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// UpstreamError wraps a transport or parse failure from an external API.
// It is never surfaced raw to the end user.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }
