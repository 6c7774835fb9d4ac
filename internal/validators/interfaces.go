// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks payload forms and render options before a symbol
// is encoded. The HTTP API, the TUI and the CLI share one validator, so all
// three reject the same input with the same field name.
//
// Every failure is a *[FieldError] whose Field is the JSON path of the
// offending input (for example "wifi.ssid" or "options.size").
package validators

import "context"

// Validator checks a form, an options set or a whole generate request.
type Validator interface {
	// Validate returns the first failing check. The optional field names
	// limit which checks run, for live validation of a single input.
	Validate(ctx context.Context, obj any, fields ...string) error
}
