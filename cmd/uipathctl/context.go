package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"uipathctl/internal/config"
	"uipathctl/internal/journal"
	"uipathctl/internal/logging"
	"uipathctl/internal/orchestrator"
)

type globalFlags struct {
	config string
	folder string
	json   bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

// folderID returns the --folder flag, falling back to the configured default folder.
func (c *commandContext) folderID() (string, error) {
	if folder := strings.TrimSpace(c.flags.folder); folder != "" {
		return folder, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if folder := strings.TrimSpace(cfg.Orchestrator.FolderID); folder != "" {
		return folder, nil
	}
	return "", errors.New("folder id required: pass --folder or set orchestrator.folder_id (UIPATH_FOLDER_ID)")
}

// withClient authenticates a client for the duration of fn. Calls are recorded in
// the journal when it is enabled; an unusable journal only produces a warning.
func (c *commandContext) withClient(cmd *cobra.Command, fn func(*orchestrator.Client) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
	store, err := journal.Open(cfg)
	switch {
	case err == nil:
		defer store.Close()
		opts = append(opts, orchestrator.WithRecorder(store))
	case errors.Is(err, journal.ErrDisabled):
	default:
		logger.Warn("call journal unavailable", logging.Error(err))
	}

	client, err := orchestrator.NewConfigured(cmd.Context(), cfg, opts...)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

// queryFlags carries the OData options shared by read commands.
type queryFlags struct {
	saveAs  string
	filter  string
	orderBy string
	top     int
	skip    int
}

func (q *queryFlags) register(cmd *cobra.Command, filterUsage string) {
	cmd.Flags().StringVar(&q.saveAs, "save-as", "", "Write the raw JSON response to this file (relative to paths.export_dir)")
	cmd.Flags().StringVar(&q.filter, "filter", "", filterUsage)
	cmd.Flags().StringVar(&q.orderBy, "orderby", "", "OData $orderby expression")
	cmd.Flags().IntVar(&q.top, "top", 0, "Maximum number of records to return")
	cmd.Flags().IntVar(&q.skip, "skip", 0, "Number of records to skip")
}

// callOptions converts flags to client options. When the operation takes the
// filter as a mandatory argument, includeFilter is false.
func (c *commandContext) callOptions(q *queryFlags, includeFilter bool) ([]orchestrator.CallOption, error) {
	if q.top < 0 || q.skip < 0 {
		return nil, errors.New("--top and --skip must not be negative")
	}
	var opts []orchestrator.CallOption
	if q.saveAs != "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return nil, err
		}
		target, err := cfg.ExportPath(q.saveAs)
		if err != nil {
			return nil, fmt.Errorf("resolve --save-as: %w", err)
		}
		opts = append(opts, orchestrator.SaveAs(target))
	}
	if includeFilter && q.filter != "" {
		opts = append(opts, orchestrator.Filter(q.filter))
	}
	if q.orderBy != "" {
		opts = append(opts, orchestrator.OrderBy(q.orderBy))
	}
	if q.top > 0 {
		opts = append(opts, orchestrator.Top(q.top))
	}
	if q.skip > 0 {
		opts = append(opts, orchestrator.Skip(q.skip))
	}
	return opts, nil
}

func parseID(label, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", label, value)
	}
	return id, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
