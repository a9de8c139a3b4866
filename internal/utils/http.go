// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an application/json response with
// the given status code.
//
// Marshaling happens before the header is written, so an encoding failure
// still produces a clean 500 instead of a truncated body under the original
// status.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error marshaling response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}
