package courier

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
)

// NewRand returns a random source for city generation and delivery targets. The same non-empty seed always produces the
// same city; an empty seed is seeded from the clock.
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>32))
	}
	hash := xxhash.Sum64String(seed)
	return rand.New(rand.NewPCG(hash, xxhash.Sum64String(seed+"/stream")))
}
