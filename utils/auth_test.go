package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("bcrypt cost 14 is slow")
	}

	hash, err := HashPassword("sekret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "sekret-password" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("sekret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("user-id", "manager"); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("user-id", "barber")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
}
