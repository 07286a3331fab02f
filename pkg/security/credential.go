package security

import (
	"crypto/sha256"
	"encoding/hex"
)

const legacyDigestLen = sha256.Size * 2

// HashCredential returns the lowercase hex SHA-256 digest of plaintext.
// Stored admin and shop passwords created before argon2id support use this format.
func HashCredential(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest reports whether stored looks like a HashCredential digest.
func IsLegacyDigest(stored string) bool {
	if len(stored) != legacyDigestLen {
		return false
	}
	for i := 0; i < len(stored); i++ {
		c := stored[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
