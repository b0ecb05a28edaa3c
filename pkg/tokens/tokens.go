package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotJWT   = errors.New("token is not a JWT")
	ErrNoExpiry = errors.New("token carries no expiry claim")
)

// PeekExpiry reads the expiry claim from a platform token without
// verifying the signature. The signing secret lives on the user service,
// so the client can only ever treat the claim as a hint; requests still
// send whatever token is stored and the backend remains authoritative.
func PeekExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrNotJWT
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// Expired reports whether the token's expiry claim, when readable, is in
// the past. Opaque tokens and tokens without an expiry claim are never
// reported expired.
func Expired(token string, now time.Time) bool {
	exp, err := PeekExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
