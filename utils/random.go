// utils/random.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const randomCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns a random uppercase alphanumeric string,
// used for human-readable reference numbers.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomCharset))))
		if err != nil {
			panic("failed to generate random string")
		}
		b[i] = randomCharset[n.Int64()]
	}
	return string(b)
}
