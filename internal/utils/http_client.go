// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-qr-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself as
// go-qr-keeper and gives up on a request after timeout. A zero timeout
// means no limit.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}
