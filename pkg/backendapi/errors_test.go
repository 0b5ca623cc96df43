package backendapi

import (
	"fmt"
	"testing"
)

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"app code 5016", &APIError{Status: 400, Code: 5016}, true},
		{"http 409", &APIError{Status: 409}, true},
		{"message phrase", &APIError{Status: 400, Message: "Booking existed for these dates"}, true},
		{"conflict phrase", &APIError{Status: 500, Message: "booking conflict detected"}, true},
		{"wrapped", fmt.Errorf("create: %w", &APIError{Status: 409}), true},
		{"other api error", &APIError{Status: 400, Code: 4001, Message: "bad dates"}, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConflict(tt.err); got != tt.want {
				t.Fatalf("IsConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if msg := UserMessage(&APIError{Status: 409}); msg == "Something went wrong. Please try again." {
		t.Fatalf("conflict must not map to the generic fallback")
	}
	if msg := UserMessage(&APIError{Status: 400, Message: "Guests exceeds capacity"}); msg != "Guests exceeds capacity" {
		t.Fatalf("expected server message passthrough, got %q", msg)
	}
	if msg := UserMessage(fmt.Errorf("dial tcp: timeout")); msg != "Something went wrong. Please try again." {
		t.Fatalf("expected generic fallback, got %q", msg)
	}
	if msg := UserMessage(nil); msg != "" {
		t.Fatalf("expected empty message for nil error, got %q", msg)
	}
}

func TestErrorBody_BothShapes(t *testing.T) {
	nested := errorBody{}
	nested.Error = &struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{Code: 5016, Message: "Booking existed"}
	ae := nested.toAPIError(409)
	if ae.Code != 5016 || ae.Message != "Booking existed" || ae.Status != 409 {
		t.Fatalf("nested shape: %+v", ae)
	}

	flat := errorBody{Code: 4010, Message: "invalid token"}
	ae = flat.toAPIError(401)
	if ae.Code != 4010 || ae.Message != "invalid token" {
		t.Fatalf("flat shape: %+v", ae)
	}
}
