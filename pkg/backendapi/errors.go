package backendapi

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes assigned by the booking backend. Only the ones the
// gateway branches on are named here; everything else is passed through.
const (
	CodeBookingConflict = 5016
)

// ErrSessionExpired is returned when a 401 could not be recovered by a
// refresh (no refresh token, or the refresh itself was rejected). Stored
// credentials have already been cleared; the caller should send the user to
// the login route.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the booking backend.
type APIError struct {
	Status  int    // HTTP status
	Code    int    // application error code, 0 when the body carried none
	Message string // server-provided message, may be empty
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("backend api error: status=%d code=%d message=%s", e.Status, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("backend api error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend api error: status=%d", e.Status)
}

// errorBody tolerates both envelope shapes the backend has used:
//
//	{"error": {"code": 5016, "message": "..."}}
//	{"code": 5016, "message": "..."}
type errorBody struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (b errorBody) toAPIError(status int) *APIError {
	e := &APIError{Status: status, Code: b.Code, Message: b.Message}
	if b.Error != nil {
		if b.Error.Code != 0 {
			e.Code = b.Error.Code
		}
		if b.Error.Message != "" {
			e.Message = b.Error.Message
		}
	}
	return e
}

// IsConflict reports whether err is a booking-availability conflict. The
// backend has signalled this three different ways over time: the 5016 app
// code, a bare 409, and a message phrase. All three are honored.
func IsConflict(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	if ae.Code == CodeBookingConflict {
		return true
	}
	if ae.Status == 409 {
		return true
	}
	msg := strings.ToLower(ae.Message)
	return strings.Contains(msg, "booking conflict") || strings.Contains(msg, "booking existed")
}

// UserMessage maps an error from any client call to a message safe to show
// the user. Conflicts get the distinct alert; otherwise the server message is
// used when present, else a generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsConflict(err) {
		return "This room is no longer available for the selected dates. Please choose different dates or another room."
	}
	if errors.Is(err, ErrSessionExpired) {
		return "Your session has expired. Please sign in again."
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "Something went wrong. Please try again."
}
