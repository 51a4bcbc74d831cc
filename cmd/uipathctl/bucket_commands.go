package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uipathctl/internal/orchestrator"
)

func newBucketsCommand(ctx *commandContext) *cobra.Command {
	list := listCommand("List storage buckets", func(cmd *cobra.Command, q *queryFlags) error {
		folder, err := ctx.folderID()
		if err != nil {
			return err
		}
		opts, err := ctx.callOptions(q, true)
		if err != nil {
			return err
		}
		return ctx.withClient(cmd, func(client *orchestrator.Client) error {
			buckets, err := client.ListBuckets(cmd.Context(), folder, opts...)
			if err != nil {
				return err
			}
			return renderList(cmd, ctx, buckets, "bucket", "buckets",
				[]string{"ID", "Name", "Identifier", "Description"},
				[]columnAlignment{alignRight},
				func(b orchestrator.Bucket, _ bool) []string {
					return []string{itoa(b.ID), b.Name, b.Identifier, b.Description}
				})
		})
	})

	return resourceGroup("buckets", "Storage buckets",
		list,
		newBucketCreateCommand(ctx),
		newBucketDeleteCommand(ctx),
		newBucketUploadCommand(ctx),
		newBucketDeleteFileCommand(ctx),
	)
}

func newBucketCreateCommand(ctx *commandContext) *cobra.Command {
	var identifier, description string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an Orchestrator-managed bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				guid, err := client.CreateBucket(cmd.Context(), folder, args[0], identifier, description)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]string{"name": args[0], "identifier": guid})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created bucket %s (%s)\n", args[0], guid)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&identifier, "identifier", "", "Bucket GUID (generated when omitted)")
	cmd.Flags().StringVar(&description, "description", "", "Bucket description")
	return cmd
}

func newBucketDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("bucket", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.DeleteBucket(cmd.Context(), folder, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted bucket %d\n", id)
				return nil
			})
		},
	}
}

func newBucketUploadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <id> <local-path> <remote-path>",
		Short: "Upload a local file into a bucket",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("bucket", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.UploadBucketFile(cmd.Context(), folder, id, args[1], args[2]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s to bucket %d as %s\n", args[1], id, args[2])
				return nil
			})
		},
	}
}

func newBucketDeleteFileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-file <id> <remote-path>",
		Short: "Delete a file from a bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("bucket", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.DeleteBucketFile(cmd.Context(), folder, id, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from bucket %d\n", args[1], id)
				return nil
			})
		},
	}
}
