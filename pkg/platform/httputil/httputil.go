// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "chipscope/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the JSON error envelope. Internal
// errors omit the detail so infrastructure messages never leak to clients;
// everything else includes it as error_description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	detail := ""

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		detail = de.Detail
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && detail != "" {
		body["error_description"] = detail
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}
