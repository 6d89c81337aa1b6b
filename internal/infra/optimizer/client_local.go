//go:build !gcloud

package optimizer

import (
	"net/http"
)

// newHTTPClient creates a plain HTTP client for local development.
func newHTTPClient(_ string, cfg Config) *http.Client {
	return &http.Client{
		Transport: newTransport(cfg),
	}
}
