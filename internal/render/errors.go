// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "errors"

var (
	// ErrEncoding is returned when the encoder rejects the payload, usually
	// because it exceeds the capacity of the largest symbol.
	ErrEncoding = errors.New("qr encoding failed")
	// ErrEmptyPayload is returned for an empty payload text.
	ErrEmptyPayload = errors.New("payload is empty")
	// ErrInvalidSize is returned for a non-positive symbol size.
	ErrInvalidSize = errors.New("invalid symbol size")
	// ErrUnsupportedFormat is returned by Encode for formats it cannot write.
	ErrUnsupportedFormat = errors.New("unsupported raster format")
	// ErrInvalidDataURI is returned for anything but a base64 PNG data URI.
	ErrInvalidDataURI = errors.New("invalid png data uri")
)
