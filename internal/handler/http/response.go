package handler

import (
	"encoding/json"
	"net/http"
)

// statusResponse is the uniform response envelope
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}

// writeError writes an error envelope. Missing-data answers keep the
// transport code at 200 and carry the error in the body.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, statusResponse{
		Status:  "error",
		Message: message,
	})
}
