// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON serializes data and writes it with the given status code and an
// "application/json" content type. It returns the number of body bytes
// written.
//
// If marshaling fails nothing but a 500 response is written and the wrapped
// marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAttachment writes data as a downloadable file named name. The
// Content-Length header is set so clients can show progress; compressing
// middleware is expected to drop it.
func WriteAttachment(w http.ResponseWriter, name, contentType string, data []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	return w.Write(data)
}
