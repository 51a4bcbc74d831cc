package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Standard attribute keys shared by the client and the CLI.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldRequestID = "request_id"
	FieldFolderID  = "folder_id"
	FieldStatus    = "status"
)

const redacted = "[redacted]"

// secretKeys are attribute names whose values never reach a log sink.
var secretKeys = map[string]struct{}{
	"access_token":  {},
	"authorization": {},
	"client_secret": {},
	"password":      {},
	"token":         {},
}

func isSecretKey(key string) bool {
	if idx := strings.LastIndexByte(key, '.'); idx >= 0 {
		key = key[idx+1:]
	}
	_, ok := secretKeys[strings.ToLower(key)]
	return ok
}

func redactAttr(attr slog.Attr) slog.Attr {
	if isSecretKey(attr.Key) && attr.Value.Kind() != slog.KindGroup {
		attr.Value = slog.StringValue(redacted)
	}
	return attr
}

// Error returns a standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NoopHandler drops all records.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
