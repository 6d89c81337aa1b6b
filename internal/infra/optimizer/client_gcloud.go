//go:build gcloud

package optimizer

import (
	"context"
	"log/slog"
	"net/http"

	"google.golang.org/api/idtoken"
)

// newHTTPClient creates an HTTP client with GCP ID token authentication. The
// token transport cannot be layered over ours, so the whole call is bounded instead.
func newHTTPClient(audience string, cfg Config) *http.Client {
	timeout := cfg.ConnectTimeout + cfg.ReadTimeout

	httpClient, err := idtoken.NewClient(context.Background(), audience)
	if err != nil {
		slog.Error("failed to create idtoken client, falling back to unauthenticated client",
			slog.String("error", err.Error()),
		)
		return &http.Client{
			Transport: newTransport(cfg),
			Timeout:   timeout,
		}
	}
	httpClient.Timeout = timeout
	return httpClient
}
