package backendapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry extracts the exp claim from an access token without verifying
// the signature. The gateway never trusts token contents; it only uses exp to
// refresh proactively instead of burning a request on a guaranteed 401.
// Opaque (non-JWT) tokens return ok=false and are sent as-is.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func tokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return false
	}
	// Small skew so a token that dies mid-flight is treated as already gone.
	return !exp.After(now.Add(10 * time.Second))
}
