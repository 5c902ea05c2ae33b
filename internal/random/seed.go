// Package random provides seed generation and seeded sources for simulations.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// stream selects the PCG sequence. Any fixed odd constant works; it only has
// to stay the same so a seed keeps producing the same draws.
const stream = 0x9e3779b97f4a7c15

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed, nil
		}
	}
}

// New returns a generator whose draws are fully determined by seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// Resolve returns seed unchanged when it is non-zero, otherwise a fresh seed.
// The boolean reports whether a fresh seed was drawn.
func Resolve(seed uint64) (uint64, bool, error) {
	if seed != 0 {
		return seed, false, nil
	}
	fresh, err := NewSeed()
	if err != nil {
		return 0, false, err
	}
	return fresh, true, nil
}
