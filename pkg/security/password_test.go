package security_test

import (
	"strings"
	"testing"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
)

func argonConfig() config.PasswordConfig {
	return config.PasswordConfig{
		Scheme:           config.PasswordSchemeArgon2,
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashCredentialKnownVectors(t *testing.T) {
	cases := map[string]string{
		"":         "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"password": "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
	}
	for in, want := range cases {
		got := security.HashCredential(in)
		if got != want {
			t.Fatalf("HashCredential(%q) = %s, want %s", in, got, want)
		}
		if len(got) != 64 || strings.ToLower(got) != got {
			t.Fatalf("digest must be 64 lowercase hex chars, got %s", got)
		}
	}
	if security.HashCredential("a") == security.HashCredential("b") {
		t.Fatal("distinct inputs should produce distinct digests")
	}
}

func TestIsLegacyDigest(t *testing.T) {
	if !security.IsLegacyDigest(security.HashCredential("x")) {
		t.Fatal("expected hex digest to be detected")
	}
	if security.IsLegacyDigest(strings.ToUpper(security.HashCredential("x"))) {
		t.Fatal("uppercase digests are not produced by HashCredential")
	}
	if security.IsLegacyDigest("$argon2id$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA") {
		t.Fatal("argon2id hash is not a legacy digest")
	}
}

func TestHashPasswordDefaultsToLegacyDigest(t *testing.T) {
	hash, err := security.HashPassword("secret", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash != security.HashCredential("secret") {
		t.Fatalf("default scheme should store the sha256 digest, got %s", hash)
	}

	ok, err := security.VerifyPassword("secret", hash)
	if err != nil || !ok {
		t.Fatalf("expected legacy digest to verify, ok=%v err=%v", ok, err)
	}
	ok, err = security.VerifyPassword("Secret", hash)
	if err != nil || ok {
		t.Fatalf("expected wrong password to fail, ok=%v err=%v", ok, err)
	}
}

func TestHashAndVerifyArgonPassword(t *testing.T) {
	hash, err := security.HashPassword("very-secure-password", argonConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format %s", hash)
	}

	ok, err := security.VerifyPassword("very-secure-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifyPassword failed for the correct password")
	}

	ok, err = security.VerifyPassword("bogus-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for invalid password: %v", err)
	}
	if ok {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := security.HashPassword("", config.PasswordConfig{}); err == nil {
		t.Fatal("expected empty password to be rejected")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := security.VerifyPassword("pw", "not-a-hash"); err == nil {
		t.Fatal("expected malformed hash to error")
	}
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := security.GenerateTempPassword(16)
	if err != nil {
		t.Fatalf("GenerateTempPassword returned error: %v", err)
	}
	if len(pw) != 16 {
		t.Fatalf("expected 16 chars, got %d", len(pw))
	}
	if _, err := security.GenerateTempPassword(0); err == nil {
		t.Fatal("expected zero length to fail")
	}
}
