// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct {
	unsupported bool
	write       func(string) error
}

// NewClipboard returns a [Clipboard] backed by the platform clipboard utility
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewClipboard() Clipboard {
	return &systemClipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

func (c *systemClipboard) Copy(_ context.Context, text string) error {
	if c.unsupported {
		return ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}
	return nil
}
