package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"uipathctl/internal/logging"
)

// Authenticate runs the client-credentials exchange and stores the access token.
// On failure the previous token is discarded.
func (c *Client) Authenticate(ctx context.Context) error {
	source := c.tokenSource
	if source == nil {
		creds := clientcredentials.Config{
			ClientID:     c.cfg.ClientID,
			ClientSecret: c.cfg.ClientSecret,
			TokenURL:     c.cfg.TokenURL,
			Scopes:       strings.Fields(c.cfg.Scope),
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		source = creds.TokenSource(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	}

	start := time.Now()
	token, err := source.Token()
	latency := time.Since(start)
	if err != nil {
		c.setToken("")
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			c.logger.Warn("token exchange rejected",
				logging.FieldOperation, "Authenticate",
				logging.FieldStatus, retrieveErr.Response.StatusCode,
				"latency", latency,
			)
		}
		return fmt.Errorf("orchestrator token exchange (latency=%v): %w", latency, err)
	}
	if token.AccessToken == "" {
		c.setToken("")
		return errors.New("orchestrator token exchange returned an empty access token")
	}
	c.setToken(token.AccessToken)
	c.logger.Info("authenticated",
		logging.FieldOperation, "Authenticate",
		"token_type", token.Type(),
		"latency", latency,
	)
	return nil
}
