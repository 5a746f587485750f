package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "p@ssw0rd" {
		t.Fatalf("expected a real hash, got %q", hash)
	}
	if !CheckPasswordHash("p@ssw0rd", hash) {
		t.Fatalf("expected check ok")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected check fail")
	}
}
