// Package main hosts the uipathctl CLI entrypoint and command graph.
//
// The Cobra command tree maps terminal invocations onto the orchestrator client:
// one subcommand group per Orchestrator resource, plus local utilities for the
// call journal and configuration scaffolding. It centralizes configuration
// resolution, logger construction and client wiring so subcommands only decide
// which call to make and how to render the result.
package main
