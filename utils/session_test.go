package utils

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAdminSessionRoundTrip(t *testing.T) {
	t.Setenv(EnvAdminPassword, "correct horse battery staple")

	token, err := CreateAdminSession(time.Hour)
	if err != nil {
		t.Fatalf("CreateAdminSession failed: %v", err)
	}

	claims, err := ValidateAdminSession(token)
	if err != nil {
		t.Fatalf("ValidateAdminSession failed: %v", err)
	}

	now := time.Now().Unix()
	if claims.IssuedAt > now || claims.IssuedAt < now-5 {
		t.Errorf("unexpected iat %d, now %d", claims.IssuedAt, now)
	}
	if claims.ExpiresAt != claims.IssuedAt+3600 {
		t.Errorf("exp = %d, expected iat+3600", claims.ExpiresAt)
	}
}

func TestAdminSessionExpired(t *testing.T) {
	t.Setenv(EnvAdminPassword, "secret")

	token, err := CreateAdminSession(-time.Minute)
	if err != nil {
		t.Fatalf("CreateAdminSession failed: %v", err)
	}

	if _, err := ValidateAdminSession(token); err == nil {
		t.Error("expected expired session to be rejected")
	}
}

func TestAdminSessionTamperedSignature(t *testing.T) {
	t.Setenv(EnvAdminPassword, "secret")

	token, err := CreateAdminSession(time.Hour)
	if err != nil {
		t.Fatalf("CreateAdminSession failed: %v", err)
	}

	parts := strings.SplitN(token, ".", 2)
	tampered := parts[0] + "." + strings.Repeat("0", len(parts[1]))
	if _, err := ValidateAdminSession(tampered); err == nil {
		t.Error("expected tampered signature to be rejected")
	}
}

func TestAdminSessionWrongSecret(t *testing.T) {
	t.Setenv(EnvAdminPassword, "first secret")
	token, err := CreateAdminSession(time.Hour)
	if err != nil {
		t.Fatalf("CreateAdminSession failed: %v", err)
	}

	t.Setenv(EnvAdminPassword, "second secret")
	if _, err := ValidateAdminSession(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestAdminSessionMalformed(t *testing.T) {
	t.Setenv(EnvAdminPassword, "secret")

	for _, token := range []string{"", "no-dot", "not!base64.abcdef"} {
		if _, err := ValidateAdminSession(token); err == nil {
			t.Errorf("expected malformed token %q to be rejected", token)
		}
	}
}

func TestAdminSessionRequiresSecret(t *testing.T) {
	t.Setenv(EnvAdminPassword, "")

	if _, err := CreateAdminSession(time.Hour); !errors.Is(err, ErrNoAdminPassword) {
		t.Errorf("expected ErrNoAdminPassword, got %v", err)
	}
	if _, err := ValidateAdminSession("abc.def"); !errors.Is(err, ErrNoAdminPassword) {
		t.Errorf("expected ErrNoAdminPassword, got %v", err)
	}
}
