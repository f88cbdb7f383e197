package vsel

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Permuter supplies the random index order used by dispersed encoding.
// *rand.Rand satisfies it.
type Permuter interface {
	Perm(n int) []int
}

// NewSeededPermuter returns a reproducible Permuter
func NewSeededPermuter(seed int64) Permuter {
	return rand.New(rand.NewSource(seed))
}

// NewRandomPermuter returns a Permuter seeded from crypto/rand. The result
// is not safe for concurrent use.
func NewRandomPermuter() Permuter {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return NewSeededPermuter(time.Now().UnixNano())
	}
	return NewSeededPermuter(int64(binary.LittleEndian.Uint64(b[:])))
}
