// Package logging assembles structured slog loggers used across uipathctl.
//
// It owns the console and JSON handlers, the level and output plumbing, and a
// fan-out handler so the CLI can keep terminal output terse while a JSON log
// file captures every attribute. NewNop is available for tests and library
// callers that do not want log output.
package logging
