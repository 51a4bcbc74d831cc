// Package orchestrator implements a client for the UiPath Orchestrator OData REST API.
//
// A Client performs the OAuth2 client-credentials exchange once at construction and
// attaches the resulting bearer token to every call. Each wrapper method issues a
// single request scoped to a folder (organization unit), checks the response status,
// optionally persists the raw body to disk and decodes the payload into typed
// records after verifying that every required vendor field is present.
//
// Failures surface as typed errors: *StatusError for unexpected HTTP statuses,
// *SchemaError for payloads missing required fields, and the ErrNotAuthenticated,
// ErrDuplicateReference and ErrInvalidArgument sentinels.
package orchestrator
