package common

import (
	"crypto/rand"
	"math/big"
)

// RandIntn returns a uniformly distributed integer in [0, n).
// It panics if n <= 0 or if the system random source fails.
func RandIntn(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int(r.Int64())
}

// WipeByteArray overwrites b with zeros.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
