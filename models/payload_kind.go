// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PayloadKind identifies which structured form is active. The set is closed.
type PayloadKind string

const (
	PayloadKindURL      PayloadKind = "url"
	PayloadKindText     PayloadKind = "text"
	PayloadKindWifi     PayloadKind = "wifi"
	PayloadKindContact  PayloadKind = "contact"
	PayloadKindEmail    PayloadKind = "email"
	PayloadKindSMS      PayloadKind = "sms"
	PayloadKindWhatsApp PayloadKind = "whatsapp"
	PayloadKindEvent    PayloadKind = "event"
	PayloadKindLocation PayloadKind = "location"
)

// PayloadKinds lists every kind in the order the front-ends present them.
var PayloadKinds = []PayloadKind{
	PayloadKindURL,
	PayloadKindText,
	PayloadKindWifi,
	PayloadKindContact,
	PayloadKindEmail,
	PayloadKindSMS,
	PayloadKindWhatsApp,
	PayloadKindEvent,
	PayloadKindLocation,
}

// IsValid reports whether k is one of the known kinds.
func (k PayloadKind) IsValid() bool {
	for _, known := range PayloadKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Title is the human label used in menus and history lists.
func (k PayloadKind) Title() string {
	switch k {
	case PayloadKindURL:
		return "URL"
	case PayloadKindText:
		return "Text"
	case PayloadKindWifi:
		return "Wi-Fi"
	case PayloadKindContact:
		return "Contact"
	case PayloadKindEmail:
		return "Email"
	case PayloadKindSMS:
		return "SMS"
	case PayloadKindWhatsApp:
		return "WhatsApp"
	case PayloadKindEvent:
		return "Event"
	case PayloadKindLocation:
		return "Location"
	default:
		return string(k)
	}
}

// WifiEncryption is the authentication type written into the WIFI payload.
type WifiEncryption string

const (
	WifiEncryptionWPA  WifiEncryption = "WPA"
	WifiEncryptionWEP  WifiEncryption = "WEP"
	WifiEncryptionNone WifiEncryption = "nopass"
)

// IsValid reports whether e is a supported encryption type.
func (e WifiEncryption) IsValid() bool {
	switch e {
	case WifiEncryptionWPA, WifiEncryptionWEP, WifiEncryptionNone:
		return true
	}
	return false
}
