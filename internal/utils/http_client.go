// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client, exposing its fluent request API while
// keeping room for application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient returns a client preconfigured for talking to a server's
// /api/v1 surface: base URL, bearer credential, and a per-request timeout.
func NewAPIClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(timeout)
	return client
}
