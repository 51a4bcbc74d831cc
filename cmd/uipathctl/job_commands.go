package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uipathctl/internal/orchestrator"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("jobs", "Jobs",
		newJobsListCommand(ctx),
		newJobStartCommand(ctx),
		newJobStopCommand(ctx),
	)
}

func newJobsListCommand(ctx *commandContext) *cobra.Command {
	q := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs matching --filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, false)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				jobs, err := client.ListJobs(cmd.Context(), folder, q.filter, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, jobs, "job", "jobs",
					[]string{"ID", "Release", "State", "Source", "Host", "Started", "Ended"},
					[]columnAlignment{alignRight},
					func(j orchestrator.Job, colorize bool) []string {
						return []string{itoa(j.ID), j.ReleaseName, colorState(j.State, colorize), j.Source, j.HostMachineName, j.StartTime.String(), j.EndTime.String()}
					})
			})
		},
	}
	q.register(cmd, "OData $filter expression (required), e.g. \"State eq 'Running'\"")
	_ = cmd.MarkFlagRequired("filter")
	return cmd
}

func newJobStartCommand(ctx *commandContext) *cobra.Command {
	var robotID int64
	cmd := &cobra.Command{
		Use:   "start <release-key>",
		Short: "Start a job for a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.StartJob(cmd.Context(), folder, args[0], robotID); err != nil {
					return err
				}
				target := "any available robot"
				if robotID > 0 {
					target = fmt.Sprintf("robot %d", robotID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Started %s on %s\n", args[0], target)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&robotID, "robot-id", 0, "Run on this robot instead of any available one")
	return cmd
}

func newJobStopCommand(ctx *commandContext) *cobra.Command {
	var soft bool
	cmd := &cobra.Command{
		Use:   "stop <id>",
		Short: "Stop a running job (kills it unless --soft)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("job", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			strategy := orchestrator.StopKill
			if soft {
				strategy = orchestrator.StopSoft
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.StopJob(cmd.Context(), folder, id, strategy); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stop requested for job %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&soft, "soft", false, "Request a soft stop instead of killing the job")
	return cmd
}
