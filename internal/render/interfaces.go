// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "image"

//go:generate mockgen -source=interfaces.go -destination=../mock/render_mock.go -package=mock

// SymbolRenderer turns payload text into a QR symbol at the highest
// error-correction level with a quiet zone of [QuietZone] modules.
type SymbolRenderer interface {
	// Render returns a square raster symbol of opts.SizePx pixels.
	Render(text string, opts Options) (*image.NRGBA, error)
	// RenderSVG returns the same symbol as a standalone SVG document.
	RenderSVG(text string, opts Options) (string, error)
}
