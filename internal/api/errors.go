package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"stayfront/pkg/backendapi"
)

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: APIError{Code: code, Message: message},
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteBackendError translates a backend client error into the gateway's
// envelope. Conflicts and expired sessions get distinct codes so the browser
// layer can branch; everything else carries the user-safe message.
func WriteBackendError(w http.ResponseWriter, err error) {
	switch {
	case backendapi.IsConflict(err):
		WriteError(w, http.StatusConflict, "BOOKING_CONFLICT", backendapi.UserMessage(err))
	case errors.Is(err, backendapi.ErrSessionExpired):
		WriteError(w, http.StatusUnauthorized, "SESSION_EXPIRED", backendapi.UserMessage(err))
	default:
		status := http.StatusBadGateway
		var ae *backendapi.APIError
		if errors.As(err, &ae) && ae.Status >= 400 && ae.Status < 500 {
			status = ae.Status
		}
		WriteError(w, status, "BACKEND_ERROR", backendapi.UserMessage(err))
	}
}
