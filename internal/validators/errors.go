// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownKind          = errors.New("unknown payload kind")
	ErrRequiredField        = errors.New("field is required")
	ErrInvalidURL           = errors.New("invalid url")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidEncryption    = errors.New("invalid wifi encryption")
	ErrInvalidEventTime     = errors.New("invalid event time")
	ErrEventEndsBeforeStart = errors.New("event ends before it starts")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")

	ErrInvalidSize            = errors.New("invalid symbol size")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidErrorCorrection = errors.New("invalid error correction level")
	ErrInvalidLogoSize        = errors.New("invalid logo size")
	ErrInvalidShape           = errors.New("invalid logo shape")
	ErrEmptyLogo              = errors.New("logo image is empty")
)

// FieldError ties a validation failure to the form or option field that
// caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
