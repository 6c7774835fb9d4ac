// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownFormField is returned by Set and Get for a key the active kind
	// does not have.
	ErrUnknownFormField = errors.New("unknown form field")
	// ErrInvalidFieldValue is returned by Set when a value cannot be stored
	// in the field, such as a non-boolean for the hidden flag.
	ErrInvalidFieldValue = errors.New("invalid form field value")
)

// FormField describes one editable input of a kind. Key is the JSON path of
// the field inside [FormModel]; Name is Key without the kind prefix.
type FormField struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Choices  []string `json:"choices,omitempty"`
	Bool     bool     `json:"bool,omitempty"`
	Required bool     `json:"required,omitempty"`
}

func field(kind PayloadKind, name, label string) FormField {
	return FormField{Key: string(kind) + "." + name, Name: name, Label: label}
}

func required(f FormField) FormField {
	f.Required = true
	return f
}

var formFields = map[PayloadKind][]FormField{
	PayloadKindURL: {
		required(field(PayloadKindURL, "url", "URL")),
	},
	PayloadKindText: {
		required(field(PayloadKindText, "text", "Text")),
	},
	PayloadKindWifi: {
		required(field(PayloadKindWifi, "ssid", "Network name")),
		field(PayloadKindWifi, "password", "Password"),
		{
			Key:     "wifi.encryption",
			Name:    "encryption",
			Label:   "Encryption",
			Choices: []string{string(WifiEncryptionWPA), string(WifiEncryptionWEP), string(WifiEncryptionNone)},
		},
		{Key: "wifi.hidden", Name: "hidden", Label: "Hidden network", Bool: true},
	},
	PayloadKindContact: {
		field(PayloadKindContact, "first_name", "First name"),
		field(PayloadKindContact, "last_name", "Last name"),
		field(PayloadKindContact, "phone", "Phone"),
		field(PayloadKindContact, "email", "Email"),
		field(PayloadKindContact, "company", "Company"),
		field(PayloadKindContact, "title", "Job title"),
		field(PayloadKindContact, "website", "Website"),
	},
	PayloadKindEmail: {
		required(field(PayloadKindEmail, "to", "To")),
		field(PayloadKindEmail, "subject", "Subject"),
		field(PayloadKindEmail, "body", "Body"),
	},
	PayloadKindSMS: {
		required(field(PayloadKindSMS, "phone", "Phone")),
		field(PayloadKindSMS, "message", "Message"),
	},
	PayloadKindWhatsApp: {
		required(field(PayloadKindWhatsApp, "phone", "Phone")),
		field(PayloadKindWhatsApp, "message", "Message"),
	},
	PayloadKindEvent: {
		required(field(PayloadKindEvent, "title", "Title")),
		field(PayloadKindEvent, "description", "Description"),
		field(PayloadKindEvent, "location", "Location"),
		required(field(PayloadKindEvent, "start", "Start (YYYY-MM-DDTHH:MM)")),
		required(field(PayloadKindEvent, "end", "End (YYYY-MM-DDTHH:MM)")),
	},
	PayloadKindLocation: {
		required(field(PayloadKindLocation, "lat", "Latitude")),
		required(field(PayloadKindLocation, "lng", "Longitude")),
	},
}

// FieldsFor returns the inputs of kind in presentation order.
func FieldsFor(kind PayloadKind) []FormField {
	return formFields[kind]
}

// FieldByName finds a field of kind by its short name or its full key.
func FieldByName(kind PayloadKind, name string) (FormField, bool) {
	for _, f := range formFields[kind] {
		if f.Name == name || f.Key == name {
			return f, true
		}
	}
	return FormField{}, false
}

// Set stores value in the field named by key, which is a full key such as
// "wifi.ssid". Other kinds' field sets are left untouched.
func (f *FormModel) Set(key, value string) error {
	switch key {
	case "url.url":
		f.URL.URL = value
	case "text.text":
		f.Text.Text = value
	case "wifi.ssid":
		f.Wifi.SSID = value
	case "wifi.password":
		f.Wifi.Password = value
	case "wifi.encryption":
		f.Wifi.Encryption = WifiEncryption(value)
	case "wifi.hidden":
		if value == "" {
			f.Wifi.Hidden = false
			return nil
		}
		hidden, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidFieldValue, key, value)
		}
		f.Wifi.Hidden = hidden
	case "contact.first_name":
		f.Contact.FirstName = value
	case "contact.last_name":
		f.Contact.LastName = value
	case "contact.phone":
		f.Contact.Phone = value
	case "contact.email":
		f.Contact.Email = value
	case "contact.company":
		f.Contact.Company = value
	case "contact.title":
		f.Contact.Title = value
	case "contact.website":
		f.Contact.Website = value
	case "email.to":
		f.Email.To = value
	case "email.subject":
		f.Email.Subject = value
	case "email.body":
		f.Email.Body = value
	case "sms.phone":
		f.SMS.Phone = value
	case "sms.message":
		f.SMS.Message = value
	case "whatsapp.phone":
		f.WhatsApp.Phone = value
	case "whatsapp.message":
		f.WhatsApp.Message = value
	case "event.title":
		f.Event.Title = value
	case "event.description":
		f.Event.Description = value
	case "event.location":
		f.Event.Location = value
	case "event.start":
		f.Event.Start = value
	case "event.end":
		f.Event.End = value
	case "location.lat":
		f.Location.Lat = value
	case "location.lng":
		f.Location.Lng = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormField, key)
	}
	return nil
}

// Get returns the value of the field named by key as text.
func (f FormModel) Get(key string) (string, error) {
	switch key {
	case "url.url":
		return f.URL.URL, nil
	case "text.text":
		return f.Text.Text, nil
	case "wifi.ssid":
		return f.Wifi.SSID, nil
	case "wifi.password":
		return f.Wifi.Password, nil
	case "wifi.encryption":
		return string(f.Wifi.Encryption), nil
	case "wifi.hidden":
		return strconv.FormatBool(f.Wifi.Hidden), nil
	case "contact.first_name":
		return f.Contact.FirstName, nil
	case "contact.last_name":
		return f.Contact.LastName, nil
	case "contact.phone":
		return f.Contact.Phone, nil
	case "contact.email":
		return f.Contact.Email, nil
	case "contact.company":
		return f.Contact.Company, nil
	case "contact.title":
		return f.Contact.Title, nil
	case "contact.website":
		return f.Contact.Website, nil
	case "email.to":
		return f.Email.To, nil
	case "email.subject":
		return f.Email.Subject, nil
	case "email.body":
		return f.Email.Body, nil
	case "sms.phone":
		return f.SMS.Phone, nil
	case "sms.message":
		return f.SMS.Message, nil
	case "whatsapp.phone":
		return f.WhatsApp.Phone, nil
	case "whatsapp.message":
		return f.WhatsApp.Message, nil
	case "event.title":
		return f.Event.Title, nil
	case "event.description":
		return f.Event.Description, nil
	case "event.location":
		return f.Event.Location, nil
	case "event.start":
		return f.Event.Start, nil
	case "event.end":
		return f.Event.End, nil
	case "location.lat":
		return f.Location.Lat, nil
	case "location.lng":
		return f.Location.Lng, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormField, key)
	}
}

// ParseFieldAssignment splits a "name=value" pair. The value may contain
// further '=' characters.
func ParseFieldAssignment(pair string) (name, value string, err error) {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: %q, want name=value", ErrInvalidFieldValue, pair)
	}
	return strings.TrimSpace(name), value, nil
}
