package api

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body returned for all error statuses.
type errorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes payload as JSON with the given status.
// Encoding failures are reported as a plain 500 since headers may
// already be written.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
	}
}

// RespondWithError writes a JSON error body with the given status.
func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, errorResponse{Error: message})
}
