// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the generator to the outside surfaces a finished
// symbol can be handed to: a remote share endpoint and the system clipboard.
//
// Status codes of the share endpoint map to the error values in errors.go,
// so callers can use [errors.Is] without looking at the response.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Sharer hands a rendered PNG to a native share surface.
type Sharer interface {
	// Share uploads png under the given title. It returns
	// [ErrShareUnavailable] when no share surface is configured.
	Share(ctx context.Context, png []byte, title string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// Copy replaces the clipboard contents with text. It returns
	// [ErrClipboardUnavailable] when the platform has no clipboard utility.
	Copy(ctx context.Context, text string) error
}
