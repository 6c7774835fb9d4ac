// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrValidation marks every failure reported before rendering starts.
	ErrValidation        = errors.New("validation failed")
	ErrLogoTooLarge      = errors.New("logo is too large for the symbol")
	ErrSymbolTooSmall    = errors.New("symbol is too small for the logo")
	ErrVectorWithLogo    = errors.New("svg export cannot include a logo")
	ErrUnsupportedFormat = errors.New("unsupported export format")

	ErrEncoding    = errors.New("failed to generate qr code")
	ErrCompositing = errors.New("failed to draw logo")
	ErrPersistence = errors.New("failed to save history")

	ErrShare     = errors.New("share failed")
	ErrClipboard = errors.New("copy to clipboard failed")

	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrHistoryEntryNotFound = errors.New("history entry not found")
)

// LogoAdjustmentError rejects a logo larger than the symbol allows and
// carries the largest size that fits.
type LogoAdjustmentError struct {
	Adjustment models.LogoAdjustment
}

func (e *LogoAdjustmentError) Error() string {
	return fmt.Sprintf("%v: requested %dpx, at most %dpx fits",
		ErrLogoTooLarge, e.Adjustment.Requested, e.Adjustment.Adjusted)
}

func (e *LogoAdjustmentError) Unwrap() []error {
	return []error{ErrValidation, ErrLogoTooLarge}
}
