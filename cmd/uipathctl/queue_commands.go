package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uipathctl/internal/orchestrator"
)

func newQueuesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("queues", "Queue definitions",
		listCommand("List queues", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				queues, err := client.ListQueues(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, queues, "queue", "queues",
					[]string{"ID", "Name", "Description"},
					[]columnAlignment{alignRight},
					func(q orchestrator.Queue, _ bool) []string {
						return []string{itoa(q.ID), q.Name, q.Description}
					})
			})
		}))
}

func newQueueItemsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("queue-items", "Queue items",
		newQueueItemsListCommand(ctx),
		newQueueItemGetCommand(ctx),
		newQueueItemAddCommand(ctx),
		newQueueItemUpdateCommand(ctx),
		newQueueItemDeleteCommand(ctx),
	)
}

var queueItemHeaders = []string{"ID", "Queue", "Status", "Reference", "Created", "Retries"}

func queueItemRow(item orchestrator.QueueItem, colorize bool) []string {
	return []string{
		itoa(item.ID),
		itoa(item.QueueDefinitionID),
		colorState(item.Status, colorize),
		item.Reference,
		item.CreationTime.String(),
		itoa(item.RetryNumber),
	}
}

func newQueueItemsListCommand(ctx *commandContext) *cobra.Command {
	q := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queue items matching --filter",
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
				items, err := client.ListQueueItems(cmd.Context(), folder, q.filter, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, items, "queue item", "queue items",
					queueItemHeaders,
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignRight},
					queueItemRow)
			})
		},
	}
	q.register(cmd, "OData $filter expression (required), e.g. \"QueueDefinitionId eq 42\"")
	_ = cmd.MarkFlagRequired("filter")
	return cmd
}

func newQueueItemGetCommand(ctx *commandContext) *cobra.Command {
	var saveAs string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single queue item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("queue item", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(&queryFlags{saveAs: saveAs}, false)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				item, err := client.GetQueueItem(cmd.Context(), folder, id, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, []orchestrator.QueueItem{*item}, "queue item", "queue items",
					queueItemHeaders, []columnAlignment{alignRight, alignRight}, queueItemRow)
			})
		},
	}
	cmd.Flags().StringVar(&saveAs, "save-as", "", "Write the raw JSON response to this file (relative to paths.export_dir)")
	return cmd
}

// itemContent reads queue item specific content from --data or --data-file.
func itemContent(data, dataFile string) (map[string]any, error) {
	data = strings.TrimSpace(data)
	dataFile = strings.TrimSpace(dataFile)
	if data != "" && dataFile != "" {
		return nil, errors.New("use either --data or --data-file, not both")
	}
	if dataFile != "" {
		raw, err := os.ReadFile(dataFile)
		if err != nil {
			return nil, fmt.Errorf("read --data-file: %w", err)
		}
		data = string(raw)
	}
	content := map[string]any{}
	if data == "" {
		return content, nil
	}
	if err := json.Unmarshal([]byte(data), &content); err != nil {
		return nil, fmt.Errorf("specific content must be a JSON object: %w", err)
	}
	return content, nil
}

func newQueueItemAddCommand(ctx *commandContext) *cobra.Command {
	var data, dataFile, reference, priority, saveAs string
	cmd := &cobra.Command{
		Use:   "add <queue>",
		Short: "Add an item to a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			content, err := itemContent(data, dataFile)
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(&queryFlags{saveAs: saveAs}, false)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				added, err := client.AddQueueItem(cmd.Context(), folder, args[0], content, reference, orchestrator.Priority(priority), opts...)
				if errors.Is(err, orchestrator.ErrDuplicateReference) {
					return fmt.Errorf("queue %s already holds an item with reference %q: %w", args[0], reference, err)
				}
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, added)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added queue item %d to %s\n", added.ID, args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "Specific content as a JSON object")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Read specific content from a JSON file")
	cmd.Flags().StringVar(&reference, "reference", "", "Item reference (unique per queue when enforced)")
	cmd.Flags().StringVar(&priority, "priority", string(orchestrator.PriorityNormal), "Priority: Low, Normal or High")
	cmd.Flags().StringVar(&saveAs, "save-as", "", "Write the raw JSON response to this file (relative to paths.export_dir)")
	return cmd
}

func newQueueItemUpdateCommand(ctx *commandContext) *cobra.Command {
	var data, dataFile string
	cmd := &cobra.Command{
		Use:   "update <queue> <id>",
		Short: "Replace the specific content of a queue item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("queue item", args[1])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			content, err := itemContent(data, dataFile)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.UpdateQueueItem(cmd.Context(), folder, args[0], id, content); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated queue item %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "Specific content as a JSON object")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Read specific content from a JSON file")
	return cmd
}

func newQueueItemDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a queue item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("queue item", args[0])
			if err != nil {
				return err
			}
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				if err := client.DeleteQueueItem(cmd.Context(), folder, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted queue item %d\n", id)
				return nil
			})
		},
	}
}
