// Package journal persists a local record of Orchestrator calls in SQLite.
//
// Every request issued by the CLI is appended as one row (operation, method, path,
// folder, status, latency, error). The journal implements orchestrator.Recorder and
// backs the `uipathctl history` command.
package journal
