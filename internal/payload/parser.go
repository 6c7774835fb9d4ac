// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Parse rebuilds a form from payload text produced by [Build] for kind.
// Inactive field sets of the returned form are zero. Events parse to an
// empty event form without error.
func Parse(kind models.PayloadKind, text string) (models.FormModel, error) {
	form := models.FormModel{Kind: kind}

	var err error
	switch kind {
	case models.PayloadKindURL:
		form.URL.URL = text
	case models.PayloadKindText:
		form.Text.Text = text
	case models.PayloadKindWifi:
		form.Wifi, err = parseWifi(text)
	case models.PayloadKindContact:
		form.Contact, err = parseContact(text)
	case models.PayloadKindEmail:
		form.Email, err = parseEmail(text)
	case models.PayloadKindSMS:
		form.SMS, err = parseSMS(text)
	case models.PayloadKindWhatsApp:
		form.WhatsApp, err = parseWhatsApp(text)
	case models.PayloadKindEvent:
		// events are not reconstructed
	case models.PayloadKindLocation:
		form.Location, err = parseLocation(text)
	default:
		return models.FormModel{}, fmt.Errorf("%w: unknown kind %q", ErrUnrecognizedPayload, kind)
	}

	if err != nil {
		return models.FormModel{}, err
	}
	return form, nil
}

func parseWifi(text string) (models.WifiFields, error) {
	body, ok := cutPrefixFold(text, wifiPrefix)
	if !ok {
		return models.WifiFields{}, fmt.Errorf("%w: missing %s prefix", ErrUnrecognizedPayload, wifiPrefix)
	}

	var f models.WifiFields
	for _, field := range splitEscaped(body, ';') {
		if field == "" {
			continue
		}
		key, value, found := strings.Cut(field, ":")
		if !found {
			return models.WifiFields{}, fmt.Errorf("%w: wifi field %q", ErrUnrecognizedPayload, field)
		}
		value = unescapeBackslash(value)
		switch strings.ToUpper(key) {
		case "T":
			f.Encryption = models.WifiEncryption(value)
		case "S":
			f.SSID = value
		case "P":
			f.Password = value
		case "H":
			f.Hidden = strings.EqualFold(value, "true")
		}
	}
	return f, nil
}

func parseEmail(text string) (models.EmailFields, error) {
	rest, ok := cutPrefixFold(text, mailtoPrefix)
	if !ok {
		return models.EmailFields{}, fmt.Errorf("%w: missing %s prefix", ErrUnrecognizedPayload, mailtoPrefix)
	}

	to, rawQuery, _ := strings.Cut(rest, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return models.EmailFields{}, fmt.Errorf("%w: %w", ErrUnrecognizedPayload, err)
	}

	return models.EmailFields{
		To:      to,
		Subject: query.Get("subject"),
		Body:    query.Get("body"),
	}, nil
}

func parseSMS(text string) (models.SMSFields, error) {
	rest, ok := cutPrefixFold(text, smsPrefix)
	if !ok {
		return models.SMSFields{}, fmt.Errorf("%w: missing %s prefix", ErrUnrecognizedPayload, smsPrefix)
	}

	phone, message, _ := strings.Cut(rest, ":")
	return models.SMSFields{Phone: phone, Message: message}, nil
}

func parseWhatsApp(text string) (models.WhatsAppFields, error) {
	if !strings.HasPrefix(text, whatsAppPrefix) {
		return models.WhatsAppFields{}, fmt.Errorf("%w: missing %s prefix", ErrUnrecognizedPayload, whatsAppPrefix)
	}

	u, err := url.Parse(text)
	if err != nil {
		return models.WhatsAppFields{}, fmt.Errorf("%w: %w", ErrUnrecognizedPayload, err)
	}

	return models.WhatsAppFields{
		Phone:   strings.Trim(u.Path, "/"),
		Message: u.Query().Get("text"),
	}, nil
}

func parseLocation(text string) (models.LocationFields, error) {
	rest, ok := cutPrefixFold(text, geoPrefix)
	if !ok {
		return models.LocationFields{}, fmt.Errorf("%w: missing %s prefix", ErrUnrecognizedPayload, geoPrefix)
	}

	// geo URIs may carry ";crs=" or "?q=" parameters after the coordinates
	if i := strings.IndexAny(rest, ";?"); i >= 0 {
		rest = rest[:i]
	}
	lat, lng, found := strings.Cut(rest, ",")
	if !found {
		return models.LocationFields{}, fmt.Errorf("%w: geo without longitude", ErrUnrecognizedPayload)
	}
	return models.LocationFields{Lat: lat, Lng: lng}, nil
}

func parseContact(text string) (models.ContactFields, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || !strings.EqualFold(strings.TrimSpace(lines[0]), vcardBegin) {
		return models.ContactFields{}, fmt.Errorf("%w: missing %s", ErrUnrecognizedPayload, vcardBegin)
	}

	var f models.ContactFields
	for _, line := range lines[1:] {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		// drop property parameters such as "TEL;TYPE=CELL"
		name, _, _ = strings.Cut(name, ";")

		switch strings.ToUpper(name) {
		case "N":
			parts := splitEscaped(value, ';')
			f.LastName = unescapeText(parts[0])
			if len(parts) > 1 {
				f.FirstName = unescapeText(parts[1])
			}
		case "ORG":
			f.Company = unescapeText(value)
		case "TITLE":
			f.Title = unescapeText(value)
		case "TEL":
			f.Phone = unescapeText(value)
		case "EMAIL":
			f.Email = unescapeText(value)
		case "URL":
			f.Website = unescapeText(value)
		}
	}
	return f, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
