package orchestrator

import (
	"context"
	"time"
)

// Call describes one completed Orchestrator request.
type Call struct {
	RequestID  string
	Operation  string
	Method     string
	Path       string
	FolderID   string
	StatusCode int
	Duration   time.Duration
	StartedAt  time.Time
	Err        string
}

// Recorder receives a Call after every request. Recording failures are logged and
// never fail the operation.
type Recorder interface {
	RecordCall(ctx context.Context, call Call) error
}
