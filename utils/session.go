package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// AdminSessionTTL bounds how long an issued dashboard session stays valid.
// The token lives in the browser's session storage, so a closed tab ends
// the session earlier than this anyway.
const AdminSessionTTL = 12 * time.Hour

// ErrNoAdminPassword is returned when the gate has no configured secret.
// Without a secret no session can be issued or validated.
var ErrNoAdminPassword = errors.New("ADMIN_PASSWORD not configured")

// AdminSessionClaims holds the data in an admin session token.
type AdminSessionClaims struct {
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// CreateAdminSession creates an HMAC-signed session token for dashboard access.
func CreateAdminSession(ttl time.Duration) (string, error) {
	now := time.Now().Unix()
	claims := AdminSessionClaims{
		IssuedAt:  now,
		ExpiresAt: now + int64(ttl.Seconds()),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	sig, err := signSession(encoded)
	if err != nil {
		return "", err
	}
	return encoded + "." + sig, nil
}

// ValidateAdminSession validates and decodes an HMAC-signed session token.
func ValidateAdminSession(sessionToken string) (*AdminSessionClaims, error) {
	parts := strings.SplitN(sessionToken, ".", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid token format")
	}

	encoded, sig := parts[0], parts[1]

	expected, err := signSession(encoded)
	if err != nil {
		return nil, err
	}
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return nil, errors.New("invalid signature")
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.New("invalid encoding")
	}

	var claims AdminSessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.New("invalid payload")
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return nil, errors.New("session expired")
	}

	return &claims, nil
}

// signSession creates an HMAC-SHA256 signature for a session payload.
// The key is derived from the admin password with a domain separator so
// the password itself is never used directly as key material.
func signSession(payload string) (string, error) {
	secret := os.Getenv(EnvAdminPassword)
	if secret == "" {
		return "", ErrNoAdminPassword
	}

	mac := hmac.New(sha256.New, []byte("admin-session:"+secret))
	mac.Write([]byte(payload))
	return fmt.Sprintf("%x", mac.Sum(nil)), nil
}
