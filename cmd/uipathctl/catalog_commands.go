package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"uipathctl/internal/orchestrator"
)

// listCommand builds the `list` subcommand shared by the read-only resource groups.
func listCommand(short string, run func(cmd *cobra.Command, q *queryFlags) error) *cobra.Command {
	q := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, q)
		},
	}
	q.register(cmd, "Additional OData $filter expression")
	return cmd
}

func resourceGroup(use, short string, children ...*cobra.Command) *cobra.Command {
	group := &cobra.Command{Use: use, Short: short}
	for _, child := range children {
		group.AddCommand(child)
	}
	return group
}

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("assets", "Folder assets",
		listCommand("List assets", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				assets, err := client.ListAssets(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, assets, "asset", "assets",
					[]string{"ID", "Name", "Type", "Scope", "Value"},
					[]columnAlignment{alignRight},
					func(a orchestrator.Asset, _ bool) []string {
						return []string{itoa(a.ID), a.Name, a.ValueType, a.ValueScope, a.Value}
					})
			})
		}))
}

func newCalendarsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("calendars", "Scheduling calendars",
		listCommand("List calendars", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				calendars, err := client.ListCalendars(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, calendars, "calendar", "calendars",
					[]string{"ID", "Name", "Time zone", "Excluded dates"},
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
					func(c orchestrator.Calendar, _ bool) []string {
						return []string{itoa(c.ID), c.Name, c.TimeZoneID, strconv.Itoa(len(c.ExcludedDates))}
					})
			})
		}))
}

func newEnvironmentsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("environments", "Robot environments",
		listCommand("List environments", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				environments, err := client.ListEnvironments(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, environments, "environment", "environments",
					[]string{"ID", "Name", "Type", "Description"},
					[]columnAlignment{alignRight},
					func(e orchestrator.Environment, _ bool) []string {
						return []string{itoa(e.ID), e.Name, e.Type, e.Description}
					})
			})
		}))
}

func newMachinesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("machines", "Machines",
		listCommand("List machines", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				machines, err := client.ListMachines(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, machines, "machine", "machines",
					[]string{"ID", "Name", "Type", "Unattended", "Non-production", "Robot version"},
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
					func(m orchestrator.Machine, _ bool) []string {
						return []string{itoa(m.ID), m.Name, m.Type, itoa(m.UnattendedSlots), itoa(m.NonProductionSlots), string(m.RobotVersions)}
					})
			})
		}))
}

func newProcessesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("processes", "Published processes",
		listCommand("List processes", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				processes, err := client.ListProcesses(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, processes, "process", "processes",
					[]string{"Key", "Version", "Published", "Authors"},
					nil,
					func(p orchestrator.Process, _ bool) []string {
						return []string{p.Key, p.Version, p.Published.String(), p.Authors}
					})
			})
		}))
}

func newReleasesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("releases", "Process releases",
		listCommand("List releases", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				releases, err := client.ListReleases(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, releases, "release", "releases",
					[]string{"ID", "Key", "Process", "Version", "Environment"},
					[]columnAlignment{alignRight},
					func(r orchestrator.Release, _ bool) []string {
						return []string{itoa(r.ID), r.Key, r.ProcessKey, r.ProcessVersion, string(r.EnvironmentID)}
					})
			})
		}))
}

func newRobotsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("robots", "Robots",
		listCommand("List robots", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				robots, err := client.ListRobots(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, robots, "robot", "robots",
					[]string{"ID", "Name", "Username", "Type", "Machine"},
					[]columnAlignment{alignRight},
					func(r orchestrator.Robot, _ bool) []string {
						return []string{itoa(r.ID), r.Name, r.Username, r.Type, r.MachineName}
					})
			})
		}))
}

func newRobotLogsCommand(ctx *commandContext) *cobra.Command {
	q := &queryFlags{}
	list := &cobra.Command{
		Use:   "list",
		Short: "List robot log lines matching --filter",
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
				logs, err := client.ListRobotLogs(cmd.Context(), folder, q.filter, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, logs, "log line", "log lines",
					[]string{"Time", "Level", "Robot", "Process", "Message"},
					nil,
					func(l orchestrator.RobotLog, colorize bool) []string {
						return []string{l.TimeStamp, colorLevel(l.Level, colorize), l.RobotName, l.ProcessName, l.Message}
					})
			})
		},
	}
	q.register(list, "OData $filter expression (required), e.g. \"JobKey eq 5ad0...\"")
	_ = list.MarkFlagRequired("filter")
	return resourceGroup("robot-logs", "Robot execution logs", list)
}

func colorLevel(level string, colorize bool) string {
	if !colorize {
		return level
	}
	kind := statusInfo
	switch level {
	case "Warn":
		kind = statusWarn
	case "Error", "Fatal":
		kind = statusError
	}
	return statusKindColor(kind) + level + ansiReset
}

func newRolesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("roles", "Tenant roles",
		listCommand("List roles", func(cmd *cobra.Command, q *queryFlags) error {
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				roles, err := client.ListRoles(cmd.Context(), opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, roles, "role", "roles",
					[]string{"ID", "Name", "Display name", "Type"},
					[]columnAlignment{alignRight},
					func(r orchestrator.Role, _ bool) []string {
						return []string{itoa(r.ID), r.Name, r.DisplayName, r.Type}
					})
			})
		}))
}

func newSchedulesCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("schedules", "Process schedules",
		listCommand("List schedules", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				schedules, err := client.ListSchedules(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, schedules, "schedule", "schedules",
					[]string{"ID", "Name", "Package", "Environment", "When", "Enabled"},
					[]columnAlignment{alignRight},
					func(s orchestrator.Schedule, _ bool) []string {
						return []string{itoa(s.ID), s.Name, s.PackageName, s.EnvironmentName, s.StartProcessCronSummary, yesNo(s.Enabled)}
					})
			})
		}))
}

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	return resourceGroup("sessions", "Robot sessions",
		listCommand("List sessions", func(cmd *cobra.Command, q *queryFlags) error {
			folder, err := ctx.folderID()
			if err != nil {
				return err
			}
			opts, err := ctx.callOptions(q, true)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *orchestrator.Client) error {
				sessions, err := client.ListSessions(cmd.Context(), folder, opts...)
				if err != nil {
					return err
				}
				return renderList(cmd, ctx, sessions, "session", "sessions",
					[]string{"ID", "Host", "Machine", "State", "Reported", "Folder"},
					[]columnAlignment{alignRight},
					func(s orchestrator.Session, colorize bool) []string {
						return []string{itoa(s.ID), s.HostMachineName, s.MachineName, colorState(s.State, colorize), s.ReportingTime, s.FolderName}
					})
			})
		}))
}
