package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances brute-force resistance against login latency.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches hash. A malformed hash
// is treated as a non-match, never a panic.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
