package backendapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if !tokenExpired(signedToken(t, now.Add(-time.Hour)), now) {
		t.Fatalf("expected past exp to be expired")
	}
	if tokenExpired(signedToken(t, now.Add(time.Hour)), now) {
		t.Fatalf("expected future exp to be live")
	}
	// Inside the skew window counts as expired.
	if !tokenExpired(signedToken(t, now.Add(5*time.Second)), now) {
		t.Fatalf("expected near-expiry token to be treated as expired")
	}
}

func TestTokenExpired_OpaqueTokenIsNeverExpired(t *testing.T) {
	if tokenExpired("not-a-jwt", time.Now()) {
		t.Fatalf("opaque tokens must be sent as-is")
	}
	if tokenExpired("", time.Now()) {
		t.Fatalf("empty token is not the refresher's problem")
	}
}
