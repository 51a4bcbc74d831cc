package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "uipathctl",
		Short:         "UiPath Orchestrator command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&flags.folder, "folder", "f", "", "Folder (organization unit) id; defaults to orchestrator.folder_id")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Print results as JSON")

	rootCmd.AddCommand(newAuthCommand(ctx))
	rootCmd.AddCommand(newAssetsCommand(ctx))
	rootCmd.AddCommand(newBucketsCommand(ctx))
	rootCmd.AddCommand(newCalendarsCommand(ctx))
	rootCmd.AddCommand(newEnvironmentsCommand(ctx))
	rootCmd.AddCommand(newJobsCommand(ctx))
	rootCmd.AddCommand(newMachinesCommand(ctx))
	rootCmd.AddCommand(newProcessesCommand(ctx))
	rootCmd.AddCommand(newQueuesCommand(ctx))
	rootCmd.AddCommand(newQueueItemsCommand(ctx))
	rootCmd.AddCommand(newReleasesCommand(ctx))
	rootCmd.AddCommand(newRobotsCommand(ctx))
	rootCmd.AddCommand(newRobotLogsCommand(ctx))
	rootCmd.AddCommand(newRolesCommand(ctx))
	rootCmd.AddCommand(newSchedulesCommand(ctx))
	rootCmd.AddCommand(newSessionsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
