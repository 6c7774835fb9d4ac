// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/payload"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var phonePattern = regexp.MustCompile(`^[0-9+()\-. ]+$`)

// GenerationValidator implements [Validator] for [models.FormModel],
// [models.RenderOptions] and [models.GenerateRequest], by value or pointer.
//
// A form is checked against the fields of its active kind; the other field
// sets are ignored. Options are checked for range and format only: whether a
// logo fits the symbol is decided by the generation service, which can
// suggest a clamped size.
type GenerationValidator struct {
}

// NewGenerationValidator constructs a new GenerationValidator
// and returns it as the Validator interface.
func NewGenerationValidator() Validator {
	return &GenerationValidator{}
}

// Validate returns the first failing check as a *[FieldError]. The optional
// field names restrict which checks run.
func (v *GenerationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormModel:
		return v.validateForm(ctx, value, fields...)
	case *models.FormModel:
		return v.validateForm(ctx, *value, fields...)

	case models.RenderOptions:
		return v.validateOptions(ctx, value, fields...)
	case *models.RenderOptions:
		return v.validateOptions(ctx, *value, fields...)

	case models.GenerateRequest:
		return v.validateRequest(ctx, value)
	case *models.GenerateRequest:
		return v.validateRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *GenerationValidator) validateRequest(ctx context.Context, req models.GenerateRequest) error {
	if err := v.validateForm(ctx, req.Form); err != nil {
		return err
	}
	return v.validateOptions(ctx, req.Options)
}

func (v *GenerationValidator) validateForm(_ context.Context, form models.FormModel, fields ...string) error {
	if !form.Kind.IsValid() {
		return fieldError(FieldKind, fmt.Errorf("%w: %q", ErrUnknownKind, form.Kind))
	}
	if len(fields) == 0 {
		fields = kindFields[form.Kind]
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldKind:
		case FieldURL:
			err = checkURL(form.URL.URL, true)
		case FieldText:
			err = required(form.Text.Text)
		case FieldWifiSSID:
			err = required(form.Wifi.SSID)
		case FieldWifiEncryption:
			if form.Wifi.Encryption != "" && !form.Wifi.Encryption.IsValid() {
				err = fmt.Errorf("%w: %q", ErrInvalidEncryption, form.Wifi.Encryption)
			}
		case FieldContactName:
			err = required(form.Contact.FirstName + form.Contact.LastName)
		case FieldContactEmail:
			err = checkEmail(form.Contact.Email, false)
		case FieldContactWebsite:
			err = checkURL(form.Contact.Website, false)
		case FieldEmailTo:
			err = checkEmail(form.Email.To, true)
		case FieldSMSPhone:
			err = checkPhone(form.SMS.Phone)
		case FieldWhatsAppPhone:
			err = checkPhone(form.WhatsApp.Phone)
		case FieldEventTitle:
			err = required(form.Event.Title)
		case FieldEventStart:
			_, err = checkEventTime(form.Event.Start)
		case FieldEventEnd:
			err = checkEventEnd(form.Event)
		case FieldLocationLat:
			err = checkCoordinate(form.Location.Lat, 90)
		case FieldLocationLng:
			err = checkCoordinate(form.Location.Lng, 180)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fieldError(f, err)
		}
	}

	return nil
}

func (v *GenerationValidator) validateOptions(_ context.Context, opts models.RenderOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = optionFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSize:
			if opts.SizePx < models.MinSymbolSize || opts.SizePx > models.MaxSymbolSize ||
				(opts.SizePx-models.MinSymbolSize)%models.SymbolSizeStep != 0 {
				err = fmt.Errorf("%w: %d, want %d..%d in steps of %d", ErrInvalidSize,
					opts.SizePx, models.MinSymbolSize, models.MaxSymbolSize, models.SymbolSizeStep)
			}
		case FieldForeground:
			err = checkColor(opts.ForegroundColor)
		case FieldBackground:
			err = checkColor(opts.BackgroundColor)
		case FieldErrorCorrection:
			if opts.ErrorCorrection != "" && opts.ErrorCorrection != models.ErrorCorrectionHighest {
				err = fmt.Errorf("%w: %q", ErrInvalidErrorCorrection, opts.ErrorCorrection)
			}
		case FieldLogoSize:
			if opts.Logo != nil && opts.Logo.SizePx < models.MinLogoSize {
				err = fmt.Errorf("%w: %d, want at least %d", ErrInvalidLogoSize, opts.Logo.SizePx, models.MinLogoSize)
			}
		case FieldLogoShape:
			if opts.Logo != nil && !isValidShape(opts.Logo.Shape) {
				err = fmt.Errorf("%w: %q", ErrInvalidShape, opts.Logo.Shape)
			}
		case FieldLogoImage:
			if opts.Logo != nil && len(opts.Logo.Image) == 0 {
				err = ErrEmptyLogo
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fieldError(f, err)
		}
	}

	return nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequiredField
	}
	return nil
}

func checkURL(raw string, mandatory bool) error {
	if strings.TrimSpace(raw) == "" {
		if mandatory {
			return ErrRequiredField
		}
		return nil
	}

	u, err := url.Parse(payload.NormalizeURL(raw))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

func checkEmail(raw string, mandatory bool) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if mandatory {
			return ErrRequiredField
		}
		return nil
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return nil
}

func checkPhone(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrRequiredField
	}
	if !phonePattern.MatchString(raw) || payload.DigitsOnly(raw) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return nil
}

func checkEventTime(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, ErrRequiredField
	}
	t, err := time.Parse(models.EventTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, want %s", ErrInvalidEventTime, raw, models.EventTimeLayout)
	}
	return t, nil
}

func checkEventEnd(ev models.EventFields) error {
	end, err := checkEventTime(ev.End)
	if err != nil {
		return err
	}
	start, err := checkEventTime(ev.Start)
	if err != nil {
		// reported against the start field
		return nil
	}
	if end.Before(start) {
		return ErrEventEndsBeforeStart
	}
	return nil
}

func checkCoordinate(raw string, limit float64) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrRequiredField
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < -limit || f > limit {
		return fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
	}
	return nil
}

func checkColor(raw string) error {
	if _, err := utils.ParseHexColor(raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return nil
}

func isValidShape(s models.LogoShape) bool {
	for _, shape := range models.LogoShapes {
		if s == shape {
			return true
		}
	}
	return false
}
