package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uipathctl/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit     int
		operation string
		summary   bool
		pruneAge  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent Orchestrator calls from the local journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg)
			if errors.Is(err, journal.ErrDisabled) {
				return errors.New("call journal is disabled (set journal.enabled = true)")
			}
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if pruneAge > 0 {
				removed, err := store.Prune(cmd.Context(), time.Now().Add(-pruneAge))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, countLine(int(removed), "entry pruned", "entries pruned"))
				return nil
			}

			if summary {
				counts, err := store.CountByOperation(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSONList(cmd, counts)
				}
				if len(counts) == 0 {
					fmt.Fprintln(out, "Journal is empty")
					return nil
				}
				rows := make([][]string, 0, len(counts))
				for _, count := range counts {
					rows = append(rows, []string{count.Operation, formatInt(count.Calls), formatInt(count.Failures)})
				}
				fmt.Fprintln(out, renderTable([]string{"Operation", "Calls", "Failures"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
				return nil
			}

			entries, err := store.Recent(cmd.Context(), limit, operation)
			if err != nil {
				return err
			}
			return renderList(cmd, ctx, entries, "call", "calls",
				[]string{"Started", "Operation", "Method", "Path", "Folder", "Status", "Latency"},
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				func(e journal.Entry, colorize bool) []string {
					status := itoa(int64(e.StatusCode))
					if e.StatusCode == 0 {
						status = "-"
					}
					if colorize {
						kind := statusOK
						if e.Error != "" {
							kind = statusError
						}
						status = statusKindColor(kind) + status + ansiReset
					}
					return []string{
						e.StartedAt.Local().Format("2006-01-02 15:04:05"),
						e.Operation,
						e.Method,
						e.Path,
						e.FolderID,
						status,
						e.Duration.String(),
					}
				})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of calls to show")
	cmd.Flags().StringVar(&operation, "operation", "", "Only show calls for this operation (e.g. ListAssets)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Show call and failure counts per operation")
	cmd.Flags().DurationVar(&pruneAge, "prune-older-than", 0, "Delete entries older than this duration (e.g. 720h)")
	return cmd
}
