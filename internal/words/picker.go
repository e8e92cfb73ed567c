// internal/words/picker.go
//
// Random index sources for RandomWord: crypto-random by default, seeded and
// reproducible when a seed is configured.

package words

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Picker returns an index in [0, n). n is always > 0.
type Picker func(n int) int

// CryptoPicker draws indexes from crypto/rand.
func CryptoPicker() Picker {
	return func(n int) int {
		nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0
		}
		return int(nBig.Int64())
	}
}

// SeededPicker draws a reproducible sequence of indexes from seed.
// Safe for concurrent use.
func SeededPicker(seed int64) Picker {
	var mu sync.Mutex
	r := mrand.New(mrand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return r.IntN(n)
	}
}

// NewPicker returns SeededPicker(seed), or CryptoPicker when seed is zero.
func NewPicker(seed int64) Picker {
	if seed == 0 {
		return CryptoPicker()
	}
	return SeededPicker(seed)
}
