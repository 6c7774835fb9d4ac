// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-qr-keeper/models"

// Field names accepted by Validate for field-level scoping. They match the
// JSON paths of the form and options so API clients can map errors back.
const (
	FieldKind = "kind"

	FieldURL = "url.url"

	FieldText = "text.text"

	FieldWifiSSID       = "wifi.ssid"
	FieldWifiEncryption = "wifi.encryption"

	FieldContactName    = "contact.name"
	FieldContactEmail   = "contact.email"
	FieldContactWebsite = "contact.website"

	FieldEmailTo = "email.to"

	FieldSMSPhone = "sms.phone"

	FieldWhatsAppPhone = "whatsapp.phone"

	FieldEventTitle = "event.title"
	FieldEventStart = "event.start"
	FieldEventEnd   = "event.end"

	FieldLocationLat = "location.lat"
	FieldLocationLng = "location.lng"

	FieldSize            = "options.size_px"
	FieldForeground      = "options.foreground_color"
	FieldBackground      = "options.background_color"
	FieldErrorCorrection = "options.error_correction"
	FieldLogoSize        = "options.logo.size_px"
	FieldLogoShape       = "options.logo.shape"
	FieldLogoImage       = "options.logo.image"
)

// kindFields lists the checks run for each kind when no fields are given.
var kindFields = map[models.PayloadKind][]string{
	models.PayloadKindURL:      {FieldURL},
	models.PayloadKindText:     {FieldText},
	models.PayloadKindWifi:     {FieldWifiSSID, FieldWifiEncryption},
	models.PayloadKindContact:  {FieldContactName, FieldContactEmail, FieldContactWebsite},
	models.PayloadKindEmail:    {FieldEmailTo},
	models.PayloadKindSMS:      {FieldSMSPhone},
	models.PayloadKindWhatsApp: {FieldWhatsAppPhone},
	models.PayloadKindEvent:    {FieldEventTitle, FieldEventStart, FieldEventEnd},
	models.PayloadKindLocation: {FieldLocationLat, FieldLocationLng},
}

var optionFields = []string{
	FieldSize,
	FieldForeground,
	FieldBackground,
	FieldErrorCorrection,
	FieldLogoSize,
	FieldLogoShape,
	FieldLogoImage,
}
