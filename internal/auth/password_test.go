package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "securePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}

	if hash == password {
		t.Error("hash should not equal plaintext password")
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected self-describing argon2id encoding, got %q", hash)
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	password := "securePassword123"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	password := "securePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !CheckPassword(hash, password) {
		t.Error("expected correct password to match")
	}
}

func TestCheckPassword_Incorrect(t *testing.T) {
	password := "securePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if CheckPassword(hash, "wrongPassword456") {
		t.Error("expected incorrect password to fail")
	}
}

func TestCheckPassword_SingleCharacterOff(t *testing.T) {
	password := "securePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	for i := range password {
		altered := password[:i] + "x" + password[i+1:]
		if altered == password {
			continue
		}
		if CheckPassword(hash, altered) {
			t.Errorf("expected altered password %q to fail", altered)
		}
	}
}

func TestCheckPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("securePassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if CheckPassword(hash, "") {
		t.Error("expected empty password to fail")
	}
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash even for empty password")
	}

	if !CheckPassword(hash, "") {
		t.Error("expected round-trip of empty password to verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=banana,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
	}

	for _, hash := range malformed {
		if CheckPassword(hash, "password") {
			t.Errorf("expected malformed hash %q to fail verification", hash)
		}
	}
}
