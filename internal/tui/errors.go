// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var (
	ErrUserQuit = errors.New("user quit")
	// ErrNothingToExport is reported when a history entry that could not be
	// restored is exported in a format other than its stored PNG.
	ErrNothingToExport = errors.New("only the stored PNG is available for this entry")
)

// humanizeError turns service errors into a single line for the error
// overlay. Field errors are prefixed with the field's label.
func humanizeError(kind models.PayloadKind, err error) string {
	if err == nil {
		return ""
	}

	var adjErr *service.LogoAdjustmentError
	if errors.As(err, &adjErr) {
		return fmt.Sprintf("The logo is too large for this symbol size: %dpx requested, at most %dpx fits.",
			adjErr.Adjustment.Requested, adjErr.Adjustment.Adjusted)
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf("%s: %v", fieldLabel(kind, fieldErr.Field), fieldErr.Err)
	}

	switch {
	case errors.Is(err, service.ErrSymbolTooSmall):
		return "The symbol is too small to carry a logo. Increase the size or remove the logo."
	case errors.Is(err, service.ErrVectorWithLogo):
		return "SVG export cannot include a logo. Export PNG or JPEG, or remove the logo."
	case errors.Is(err, service.ErrGenerationInProgress):
		return "A code is already being generated."
	case errors.Is(err, service.ErrShare) && errors.Is(err, service.ErrClipboard):
		return "Sharing is unavailable and the clipboard could not be written."
	case errors.Is(err, service.ErrClipboard):
		return "The clipboard could not be written."
	case errors.Is(err, service.ErrEncoding):
		return "The QR code could not be generated. The content may be too long."
	}

	return err.Error()
}

func fieldLabel(kind models.PayloadKind, field string) string {
	if f, ok := models.FieldByName(kind, field); ok {
		return f.Label
	}
	if label, ok := optionLabels[field]; ok {
		return label
	}
	return field
}
