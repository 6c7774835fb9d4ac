// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/models"
)

const (
	wifiPrefix     = "WIFI:"
	mailtoPrefix   = "mailto:"
	smsPrefix      = "SMSTO:"
	whatsAppPrefix = "https://wa.me/"
	geoPrefix      = "geo:"
	vcardBegin     = "BEGIN:VCARD"
	vcardEnd       = "END:VCARD"
	vcalendarBegin = "BEGIN:VCALENDAR"

	defaultScheme = "https://"
	icalTimeForm  = "20060102T150405"
)

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// Build returns the payload text for the active kind of form. An unknown kind
// yields an empty string.
func Build(form models.FormModel) string {
	switch form.Kind {
	case models.PayloadKindURL:
		return buildURL(form.URL)
	case models.PayloadKindText:
		return form.Text.Text
	case models.PayloadKindWifi:
		return buildWifi(form.Wifi)
	case models.PayloadKindContact:
		return buildContact(form.Contact)
	case models.PayloadKindEmail:
		return buildEmail(form.Email)
	case models.PayloadKindSMS:
		return smsPrefix + strings.TrimSpace(form.SMS.Phone) + ":" + form.SMS.Message
	case models.PayloadKindWhatsApp:
		return buildWhatsApp(form.WhatsApp)
	case models.PayloadKindEvent:
		return buildEvent(form.Event)
	case models.PayloadKindLocation:
		return geoPrefix + strings.TrimSpace(form.Location.Lat) + "," + strings.TrimSpace(form.Location.Lng)
	default:
		return ""
	}
}

// NormalizeURL trims u and prepends https:// when it has no scheme.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || schemePrefix.MatchString(u) {
		return u
	}
	return defaultScheme + u
}

func buildURL(f models.URLFields) string {
	return NormalizeURL(f.URL)
}

func buildWifi(f models.WifiFields) string {
	enc := f.Encryption
	if enc == "" {
		enc = models.WifiEncryptionWPA
	}

	var b strings.Builder
	b.WriteString(wifiPrefix)
	b.WriteString("T:")
	b.WriteString(string(enc))
	b.WriteString(";S:")
	b.WriteString(escapeWifi(f.SSID))
	b.WriteString(";P:")
	b.WriteString(escapeWifi(f.Password))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(f.Hidden))
	b.WriteString(";;")
	return b.String()
}

func buildEmail(f models.EmailFields) string {
	return mailtoPrefix + strings.TrimSpace(f.To) +
		"?subject=" + encodeComponent(f.Subject) +
		"&body=" + encodeComponent(f.Body)
}

func buildWhatsApp(f models.WhatsAppFields) string {
	return whatsAppPrefix + DigitsOnly(f.Phone) + "?text=" + encodeComponent(f.Message)
}

func buildContact(f models.ContactFields) string {
	lines := []string{
		vcardBegin,
		"VERSION:3.0",
		"N:" + escapeText(f.LastName) + ";" + escapeText(f.FirstName) + ";;;",
		"FN:" + escapeText(strings.TrimSpace(f.FirstName+" "+f.LastName)),
	}
	optional := []struct {
		name  string
		value string
	}{
		{"ORG", f.Company},
		{"TITLE", f.Title},
		{"TEL", f.Phone},
		{"EMAIL", f.Email},
		{"URL", f.Website},
	}
	for _, o := range optional {
		if o.value != "" {
			lines = append(lines, o.name+":"+escapeText(o.value))
		}
	}
	lines = append(lines, vcardEnd)
	return strings.Join(lines, "\n")
}

func buildEvent(f models.EventFields) string {
	lines := []string{
		vcalendarBegin,
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:" + escapeText(f.Title),
		"DESCRIPTION:" + escapeText(f.Description),
		"LOCATION:" + escapeText(f.Location),
		"DTSTART:" + icalTime(f.Start),
		"DTEND:" + icalTime(f.End),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// icalTime converts the form's wall-clock value into the iCalendar floating
// time form. Values in another layout lose their separators instead.
func icalTime(v string) string {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(models.EventTimeLayout, v); err == nil {
		return t.Format(icalTimeForm)
	}
	return strings.NewReplacer("-", "", ":", "").Replace(v)
}

// DigitsOnly strips every non-digit, which is the phone form wa.me accepts.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent percent-encodes s with %20 for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
