package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Orchestrator contains the connection and credential settings for the Orchestrator API.
type Orchestrator struct {
	URL            string `toml:"url" json:"url"`
	TokenURL       string `toml:"token_url" json:"token_url"`
	ClientID       string `toml:"client_id" json:"client_id"`
	ClientSecret   string `toml:"client_secret" json:"client_secret"`
	Scope          string `toml:"scope" json:"scope"`
	FolderID       string `toml:"folder_id" json:"folder_id"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds"`
}

// Paths contains directory configuration.
type Paths struct {
	ExportDir string `toml:"export_dir" json:"export_dir"`
	StateDir  string `toml:"state_dir" json:"state_dir"`
}

// Journal contains configuration for the local call journal.
type Journal struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
	File   bool   `toml:"file" json:"file"`
}

// Config encapsulates all configuration values for uipathctl.
//
// Configuration sections:
//   - Orchestrator: base URL, identity endpoint, client credentials, default folder
//   - Paths: export and state directories
//   - Journal: SQLite call journal
//   - Logging: log format and level
type Config struct {
	Orchestrator Orchestrator `toml:"orchestrator" json:"orchestrator"`
	Paths        Paths        `toml:"paths" json:"paths"`
	Journal      Journal      `toml:"journal" json:"journal"`
	Logging      Logging      `toml:"logging" json:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("uipathctl.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory and, when configured, the export directory.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.ExportDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Orchestrator.TimeoutSeconds) * time.Second
}

// ExportPath resolves a --save-as argument. Relative names land in the export directory
// when one is configured; absolute paths are kept as given.
func (c *Config) ExportPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "~") || c.Paths.ExportDir == "" {
		return expandPath(name)
	}
	return filepath.Join(c.Paths.ExportDir, name), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
