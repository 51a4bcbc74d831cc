package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON prints v as indented JSON on stdout. HTML escaping is off so OData
// filters and blob URIs keep their literal '&', '<' and '>'.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONList prints records as a JSON array; an empty result is [] rather than null.
func writeJSONList[T any](cmd *cobra.Command, records []T) error {
	if records == nil {
		records = []T{}
	}
	return writeJSON(cmd, records)
}
