package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"uipathctl/internal/config"
	"uipathctl/internal/orchestrator"
)

// Process exit codes.
const (
	exitFailure      = 1
	exitUsage        = 2
	exitUnauthorized = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "uipathctl:", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps argument and credential problems to exitUsage and rejected
// credentials to exitUnauthorized; everything else is a plain failure.
func exitCode(err error) int {
	var (
		statusErr   *orchestrator.StatusError
		retrieveErr *oauth2.RetrieveError
	)
	switch {
	case errors.Is(err, orchestrator.ErrInvalidArgument), errors.Is(err, config.ErrCredentialsMissing):
		return exitUsage
	case errors.Is(err, orchestrator.ErrNotAuthenticated), errors.As(err, &retrieveErr):
		return exitUnauthorized
	case errors.As(err, &statusErr) &&
		(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden):
		return exitUnauthorized
	default:
		return exitFailure
	}
}
