package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSalt generates a random per-user password salt.
func GenerateSalt() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
