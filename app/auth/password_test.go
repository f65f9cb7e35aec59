package auth

import (
	"testing"
)

func TestHashPasswordDeterministic(t *testing.T) {
	first := HashPassword("secret", "salt_v1")
	second := HashPassword("secret", "salt_v1")

	if first == "" {
		t.Fatal("Expected non-empty hash")
	}
	if first != second {
		t.Errorf("Expected deterministic hash, got %q and %q", first, second)
	}
}

func TestHashPasswordSaltMatters(t *testing.T) {
	if HashPassword("secret", "salt_a") == HashPassword("secret", "salt_b") {
		t.Error("Expected different salts to produce different hashes")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("secret", "salt_v1")

	if !VerifyPassword("secret", "salt_v1", hash) {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword("wrong", "salt_v1", hash) {
		t.Error("Expected wrong password to fail")
	}
	if VerifyPassword("secret", "other_salt", hash) {
		t.Error("Expected wrong salt to fail")
	}
}
