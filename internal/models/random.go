package models

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomBytes reads n random bytes and returns them hex
// encoded, so the result is 2n characters long.
func GenerateRandomBytes(n int) (string, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)

	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
