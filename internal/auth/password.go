package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckPassword verifies a candidate password against the stored value.
// Stored values are bcrypt hashes for accounts created through the API, but
// legacy accounts still carry plaintext passwords, so a direct comparison is
// the fallback.
func CheckPassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return stored != "" && stored == candidate
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
