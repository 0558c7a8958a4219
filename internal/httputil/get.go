// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across API clients.
package httputil

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/cite-engine/pkg/types"
)

// Get issues a GET request with the given User-Agent and JSON Accept
// header. A failure before any response arrives is reported as a
// TransportError naming the API. The caller owns the response body.
func Get(ctx context.Context, client *http.Client, api, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &types.TransportError{API: api, Err: err}
	}
	return resp, nil
}
