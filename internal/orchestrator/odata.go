package orchestrator

import (
	"net/url"
	"strconv"
	"strings"
)

// CallOption adjusts a single read operation. Single-entity reads such as
// GetQueueItem accept only SaveAs; the query options are for collections.
type CallOption func(*callOptions)

type callOptions struct {
	saveAs  string
	filter  string
	orderBy string
	top     int
	skip    int
}

// SaveAs persists the raw response body to path before it is decoded.
func SaveAs(path string) CallOption {
	return func(o *callOptions) { o.saveAs = strings.TrimSpace(path) }
}

// Filter adds an OData $filter expression. It is combined with any filter the
// operation itself requires.
func Filter(expr string) CallOption {
	return func(o *callOptions) { o.filter = strings.TrimSpace(expr) }
}

// OrderBy sets $orderby.
func OrderBy(expr string) CallOption {
	return func(o *callOptions) { o.orderBy = strings.TrimSpace(expr) }
}

// Top limits the number of returned records.
func Top(n int) CallOption {
	return func(o *callOptions) { o.top = n }
}

// Skip skips the first n records.
func Skip(n int) CallOption {
	return func(o *callOptions) { o.skip = n }
}

func (o callOptions) hasCollectionQuery() bool {
	return o.filter != "" || o.orderBy != "" || o.top != 0 || o.skip != 0
}

func resolveCallOptions(opts []CallOption) callOptions {
	var resolved callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

func combineFilters(filters ...string) string {
	var parts []string
	for _, f := range filters {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return "(" + strings.Join(parts, ") and (") + ")"
	}
}

func (o callOptions) query(selectList, requiredFilter string) url.Values {
	params := url.Values{}
	if selectList != "" {
		params.Set("$select", selectList)
	}
	if filter := combineFilters(requiredFilter, o.filter); filter != "" {
		params.Set("$filter", filter)
	}
	if o.orderBy != "" {
		params.Set("$orderby", o.orderBy)
	}
	if o.top > 0 {
		params.Set("$top", strconv.Itoa(o.top))
	}
	if o.skip > 0 {
		params.Set("$skip", strconv.Itoa(o.skip))
	}
	return params
}
