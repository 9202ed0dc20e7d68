package requests

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Shared client so outbound calls never block indefinitely.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// AuthRequest does a authenticated request to the Riot API.
// Return the response.
func AuthRequest(ctx context.Context, rawUrl string, method string, apiKey string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawUrl, nil)
	if err != nil {
		return nil, err
	}

	if len(params) != 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", apiKey)
	return httpClient.Do(req)
}

// Request creates a simple unauthenticated request and returns it.
func Request(ctx context.Context, rawUrl string, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawUrl, nil)
	if err != nil {
		return nil, err
	}
	return httpClient.Do(req)
}
