package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOrchestrator()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func lookupEnv(current string, keys ...string) string {
	current = strings.TrimSpace(current)
	if current != "" {
		return current
	}
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (c *Config) normalizeOrchestrator() {
	c.Orchestrator.URL = strings.TrimRight(lookupEnv(c.Orchestrator.URL, "UIPATH_URL"), "/")
	c.Orchestrator.TokenURL = lookupEnv(c.Orchestrator.TokenURL, "UIPATH_TOKEN_URL")
	if c.Orchestrator.TokenURL == "" {
		c.Orchestrator.TokenURL = defaultTokenURL
	}
	c.Orchestrator.ClientID = lookupEnv(c.Orchestrator.ClientID, "UIPATH_CLIENT_ID")
	c.Orchestrator.ClientSecret = lookupEnv(c.Orchestrator.ClientSecret, "UIPATH_CLIENT_SECRET", "UIPATH_REFRESH_TOKEN")
	c.Orchestrator.Scope = lookupEnv(c.Orchestrator.Scope, "UIPATH_SCOPE")
	if c.Orchestrator.Scope == "" {
		c.Orchestrator.Scope = defaultScope
	}
	c.Orchestrator.FolderID = lookupEnv(c.Orchestrator.FolderID, "UIPATH_FOLDER_ID")
	if c.Orchestrator.TimeoutSeconds <= 0 {
		c.Orchestrator.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.ExportDir, err = expandPath(strings.TrimSpace(c.Paths.ExportDir)); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeJournal() error {
	var err error
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = filepath.Join(c.Paths.StateDir, defaultJournalName)
	}
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
