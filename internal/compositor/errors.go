// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compositor

import "errors"

var (
	// ErrEmptyLogo is returned by DecodeLogo for empty input.
	ErrEmptyLogo = errors.New("logo file is empty")
	// ErrDecodeLogo is returned when the logo is not a decodable image.
	ErrDecodeLogo = errors.New("failed to decode logo")
	// ErrUnknownShape is returned for a shape without geometry.
	ErrUnknownShape = errors.New("unknown logo shape")
	// ErrInvalidLogoSize is returned for a non-positive logo size.
	ErrInvalidLogoSize = errors.New("invalid logo size")
	// ErrMissingImage is returned when the surface or the logo is absent or
	// has no pixels.
	ErrMissingImage = errors.New("missing image")
)
