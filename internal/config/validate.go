package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrCredentialsMissing is returned by ValidateCredentials when the client id or secret is absent.
var ErrCredentialsMissing = errors.New("orchestrator client credentials not configured")

// Validate ensures the configuration is usable. Credentials are checked separately by
// ValidateCredentials so commands such as `config init` work before they are set.
func (c *Config) Validate() error {
	if err := c.validateOrchestrator(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateCredentials reports whether the settings required to authenticate are present.
func (c *Config) ValidateCredentials() error {
	if c.Orchestrator.URL == "" {
		return errors.New("orchestrator.url is required (or set UIPATH_URL)")
	}
	if c.Orchestrator.ClientID == "" || c.Orchestrator.ClientSecret == "" {
		return fmt.Errorf("%w: set orchestrator.client_id/client_secret or UIPATH_CLIENT_ID/UIPATH_CLIENT_SECRET", ErrCredentialsMissing)
	}
	return nil
}

func (c *Config) validateOrchestrator() error {
	if c.Orchestrator.URL != "" {
		if err := validateHTTPURL("orchestrator.url", c.Orchestrator.URL); err != nil {
			return err
		}
	}
	if err := validateHTTPURL("orchestrator.token_url", c.Orchestrator.TokenURL); err != nil {
		return err
	}
	if c.Orchestrator.TimeoutSeconds <= 0 {
		return errors.New("orchestrator.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func validateHTTPURL(field, value string) error {
	parsed, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https scheme, got %q", field, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host", field)
	}
	return nil
}
