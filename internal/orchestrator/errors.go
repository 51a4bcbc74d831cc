package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedStatus matches every *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDuplicateReference is returned by AddQueueItem when the queue already holds
	// an item with the same reference (HTTP 409).
	ErrDuplicateReference = errors.New("duplicate queue item reference")
	// ErrNotAuthenticated is returned when the client holds no access token.
	ErrNotAuthenticated = errors.New("orchestrator client is not authenticated")
	// ErrInvalidArgument wraps argument validation failures raised before any request.
	ErrInvalidArgument = errors.New("invalid argument")
)

const maxErrorBody = 512

// StatusError reports a response whose status code the operation did not expect.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s returned %d", e.Operation, e.StatusCode)
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// Is reports ErrUnexpectedStatus as a match so callers need not type-assert.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// SchemaError reports a payload that does not satisfy a record schema.
type SchemaError struct {
	Schema string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s payload %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("%s.%s %s", e.Schema, e.Field, e.Reason)
}
