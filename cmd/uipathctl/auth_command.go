package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uipathctl/internal/orchestrator"
)

func newAuthCommand(ctx *commandContext) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication utilities",
	}
	authCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Run the client-credentials exchange and report the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			err = ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if !client.IsAuthenticated() {
					return orchestrator.ErrNotAuthenticated
				}
				return nil
			})
			if ctx.jsonOutput() {
				payload := map[string]any{
					"url":           cfg.Orchestrator.URL,
					"token_url":     cfg.Orchestrator.TokenURL,
					"authenticated": err == nil,
				}
				if err != nil {
					payload["error"] = err.Error()
				}
				if encodeErr := writeJSON(cmd, payload); encodeErr != nil {
					return encodeErr
				}
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Orchestrator", statusInfo, cfg.Orchestrator.URL, colorize))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Token exchange", statusError, "failed", colorize))
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Token exchange", statusOK, "authenticated", colorize))
			return nil
		},
	})
	return authCmd
}
