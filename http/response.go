package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body written for every failed request.
// Trace is only populated in development mode.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Trace   string `json:"trace,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
