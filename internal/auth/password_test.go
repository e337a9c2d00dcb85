package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("family123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || salt == "" {
		t.Fatal("hash and salt must be non-empty")
	}

	ok, err := VerifyPassword("family123", salt, hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}

	ok, err = VerifyPassword("wrong", salt, hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	_, salt1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, salt2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if salt1 == salt2 {
		t.Fatal("each hash must draw a fresh salt")
	}
}
