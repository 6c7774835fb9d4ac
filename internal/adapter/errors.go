// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrShareUnavailable     = errors.New("share surface is not configured")
	ErrShareFailed          = errors.New("share request failed")
	ErrClipboardUnavailable = errors.New("clipboard is not available")
	ErrClipboardWrite       = errors.New("failed to write clipboard")
)

// Status errors returned by the share endpoint.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrRateLimited         = errors.New("too many share requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("share endpoint unavailable")
)
