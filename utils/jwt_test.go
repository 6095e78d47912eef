package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "user")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	sub, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken returned error: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("sub = %q, want %q", sub, "user-1")
	}
	if role != "user" {
		t.Errorf("role = %q, want %q", role, "user")
	}
}

func TestTokenCarriesExpiry(t *testing.T) {
	tokenString, err := GenerateToken("biz-1", "business")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	token, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("token has no exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < TokenTTL-time.Minute || remaining > TokenTTL {
		t.Errorf("token lifetime = %v, want about %v", remaining, TokenTTL)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, _, err := ExtractClaimsFromToken(bad); err == nil {
			t.Errorf("ExtractClaimsFromToken(%q) succeeded, want error", bad)
		}
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("signing forged token failed: %v", err)
	}

	if _, _, err := ExtractClaimsFromToken(forged); err == nil {
		t.Error("token signed with a different key was accepted")
	}
}

func TestValidateTokenRejectsMissingClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}

	if _, _, err := ExtractClaimsFromToken(tokenString); err == nil {
		t.Error("token without sub/role claims was accepted")
	}
}
