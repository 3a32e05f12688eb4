package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the wire envelope every endpoint answers with: successes
// carry an optional message key and payload, failures carry the domain
// error key and a 400.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	msgInvalidRequest   = "INVALID_REQUEST"
	msgValidationFailed = "VALIDATION_FAILED"
	msgUnauthorized     = "UNAUTHORIZED"
)

func respondSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondFailure(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Message: message,
	})
}
