package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"uipathctl/internal/config"
	"uipathctl/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection settings for a Client.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
	Timeout      time.Duration
}

// Client talks to a single Orchestrator tenant.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	logger      *slog.Logger
	recorder    Recorder
	tokenSource oauth2.TokenSource

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder registers a Recorder notified after every request.
func WithRecorder(recorder Recorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

// WithTokenSource replaces the client-credentials exchange with the given source.
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

// New builds a client and performs the token exchange. The returned client holds
// the access token for its whole life; it is never refreshed implicitly.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, errors.New("orchestrator base url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "orchestrator")
	if client.tokenSource == nil {
		if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
			return nil, errors.New("orchestrator client id and secret required")
		}
		if strings.TrimSpace(cfg.TokenURL) == "" {
			return nil, errors.New("orchestrator token url required")
		}
	}

	if err := client.Authenticate(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// NewConfigured builds a client from application configuration.
func NewConfigured(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("orchestrator config required")
	}
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, err
	}
	return New(ctx, Config{
		BaseURL:      cfg.Orchestrator.URL,
		TokenURL:     cfg.Orchestrator.TokenURL,
		ClientID:     cfg.Orchestrator.ClientID,
		ClientSecret: cfg.Orchestrator.ClientSecret,
		Scope:        cfg.Orchestrator.Scope,
		Timeout:      cfg.Timeout(),
	}, opts...)
}

// IsAuthenticated reports whether the client holds an access token.
func (c *Client) IsAuthenticated() bool {
	return c.accessToken() != ""
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}
