// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compositor

import "image"

//go:generate mockgen -source=interfaces.go -destination=../mock/compositor_mock.go -package=mock

// LogoCompositor decorates a rendered symbol with a centred logo.
type LogoCompositor interface {
	// DecodeLogo decodes an uploaded PNG, JPEG, GIF, BMP, TIFF or WebP file.
	DecodeLogo(data []byte) (image.Image, error)
	// Composite returns a copy of surface with the logo drawn over a padded
	// background patch. surface is not modified.
	Composite(surface image.Image, logo image.Image, opts Options) (*image.NRGBA, error)
}
