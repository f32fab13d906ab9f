package auth

import (
	"testing"
	"time"
)

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken("o1", "admin", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.OpenID != "o1" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("o1", "user", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := IssueToken("o1", "user", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestValidateTokenEmptyInput(t *testing.T) {
	if _, err := ValidateToken("", "test-secret"); err == nil {
		t.Error("empty token must not validate")
	}
	if _, err := IssueToken("o1", "user", "", time.Hour); err == nil {
		t.Error("empty secret must not issue")
	}
}
