// Package config loads, normalizes, and validates uipathctl configuration data.
//
// Settings come from a TOML file (default ~/.config/uipathctl/config.toml, with a
// project-local uipathctl.toml fallback) and UIPATH_* environment variables fill any
// credential left blank, so secrets can stay out of the file.
package config
