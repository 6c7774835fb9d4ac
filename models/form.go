// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventTimeLayout is the wall-clock layout of event start and end fields.
const EventTimeLayout = "2006-01-02T15:04"

// URLFields is the field set of [PayloadKindURL].
type URLFields struct {
	URL string `json:"url"`
}

// TextFields is the field set of [PayloadKindText].
type TextFields struct {
	Text string `json:"text"`
}

// WifiFields is the field set of [PayloadKindWifi].
type WifiFields struct {
	SSID       string         `json:"ssid"`
	Password   string         `json:"password"`
	Encryption WifiEncryption `json:"encryption"`
	Hidden     bool           `json:"hidden"`
}

// ContactFields is the field set of [PayloadKindContact].
type ContactFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Title     string `json:"title"`
	Website   string `json:"website"`
}

// EmailFields is the field set of [PayloadKindEmail].
type EmailFields struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SMSFields is the field set of [PayloadKindSMS].
type SMSFields struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// WhatsAppFields is the field set of [PayloadKindWhatsApp].
type WhatsAppFields struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// EventFields is the field set of [PayloadKindEvent]. Start and End use
// [EventTimeLayout].
type EventFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// LocationFields is the field set of [PayloadKindLocation]. Coordinates are
// kept as typed so they are encoded verbatim.
type LocationFields struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// FormModel is the whole editable form. Exactly one field set, selected by
// Kind, is active; the others are kept so switching kinds does not lose
// input, and are ignored by every operation.
type FormModel struct {
	Kind     PayloadKind    `json:"kind"`
	URL      URLFields      `json:"url"`
	Text     TextFields     `json:"text"`
	Wifi     WifiFields     `json:"wifi"`
	Contact  ContactFields  `json:"contact"`
	Email    EmailFields    `json:"email"`
	SMS      SMSFields      `json:"sms"`
	WhatsApp WhatsAppFields `json:"whatsapp"`
	Event    EventFields    `json:"event"`
	Location LocationFields `json:"location"`
}

// PrimaryText is the user's main input for the active kind. It is shown in
// history lists.
func (f FormModel) PrimaryText() string {
	switch f.Kind {
	case PayloadKindURL:
		return f.URL.URL
	case PayloadKindText:
		return f.Text.Text
	case PayloadKindWifi:
		return f.Wifi.SSID
	case PayloadKindContact:
		return joinNonEmpty(" ", f.Contact.FirstName, f.Contact.LastName)
	case PayloadKindEmail:
		return f.Email.To
	case PayloadKindSMS:
		return f.SMS.Phone
	case PayloadKindWhatsApp:
		return f.WhatsApp.Phone
	case PayloadKindEvent:
		return f.Event.Title
	case PayloadKindLocation:
		return joinNonEmpty(",", f.Location.Lat, f.Location.Lng)
	default:
		return ""
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
