package logging

import "time"

const (
	// console lines carry the time of day only, to the millisecond
	consoleTimeLayout = "15:04:05.000"
	fileTimeLayout    = "2006-01-02T15:04:05.000Z07:00"
)

// consoleTime renders the record time in local time for the pretty handler.
func consoleTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.Local).Format(consoleTimeLayout)
}

// fileTime renders record times for the JSON log file, always in UTC.
func fileTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(fileTimeLayout)
}

// attrTime renders time-valued attributes, typically vendor timestamps, in UTC
// so they match what Orchestrator reports.
func attrTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
