// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payload turns a [models.FormModel] into the literal string encoded
// into a QR symbol and parses such strings back into forms.
//
// Build is pure and total: it never fails and never validates. Required
// fields are checked by the validators package before Build is called.
//
// Delimiters are escaped per the target format (ZXing WIFI, RFC 6350 vCard,
// RFC 5545 iCalendar, percent-encoding for URI payloads), so Parse
// reconstructs Wi-Fi, SMS, WhatsApp, email, contact and location fields
// exactly. Events are not parsed back: restoring an event yields an empty
// event form.
package payload
