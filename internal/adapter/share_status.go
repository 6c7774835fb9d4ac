// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxReasonLen caps how much of a rejection body ends up in an error.
const maxReasonLen = 200

var shareStatusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusRequestEntityTooLarge: ErrRequestTooLarge,
	http.StatusTooManyRequests:       ErrRateLimited,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// checkShareResponse turns a non-2xx answer of the share endpoint into an
// error carrying the endpoint's own reason.
func checkShareResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	reason := rejectionReason(resp)
	if sentinel, ok := shareStatusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
}

// rejectionReason prefers an "error" or "message" member of a JSON body and
// falls back to the raw body, then to the status text.
func rejectionReason(resp *resty.Response) string {
	body := resp.Body()

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Error != "":
			return payload.Error
		case payload.Message != "":
			return payload.Message
		}
	}

	reason := strings.TrimSpace(string(body))
	if reason == "" {
		return http.StatusText(resp.StatusCode())
	}
	if r := []rune(reason); len(r) > maxReasonLen {
		reason = string(r[:maxReasonLen]) + "..."
	}
	return reason
}
