package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const statusLabelWidth = 16

var (
	countPrinter = message.NewPrinter(language.English)
	titleCaser   = cases.Title(language.English)
)

func renderStatusLine(label string, kind statusKind, detail string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if detail != "" {
		statusText += " " + detail
	}
	base := fmt.Sprintf("  %-*s %s", statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// stateKind maps Orchestrator job and queue item states onto display colours.
func stateKind(state string) statusKind {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "successful", "available", "completed":
		return statusOK
	case "running", "pending", "inprogress", "new", "busy", "stopping", "resumed":
		return statusWarn
	case "faulted", "failed", "abandoned", "disconnected", "stopped":
		return statusError
	default:
		return statusInfo
	}
}

func colorState(state string, colorize bool) string {
	if !colorize || state == "" {
		return state
	}
	return statusKindColor(stateKind(state)) + state + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// countLine renders "1,204 queue items" style summaries.
func countLine(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return countPrinter.Sprintf("%d %s", n, noun)
}

func formatInt(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func humanizeLabel(value string) string {
	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

// renderList prints records as JSON or as a table followed by a count line.
func renderList[T any](cmd *cobra.Command, ctx *commandContext, records []T, singular, plural string, headers []string, aligns []columnAlignment, row func(T, bool) []string) error {
	if ctx.jsonOutput() {
		return writeJSONList(cmd, records)
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No %s found\n", plural)
		return nil
	}
	colorize := shouldColorize(out)
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, row(record, colorize))
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	fmt.Fprintln(out, countLine(len(records), singular, plural))
	return nil
}
