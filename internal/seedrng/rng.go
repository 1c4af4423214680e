// Package seedrng provides deterministic random number generation for the
// seed generator. Every randomized choice the generator makes pulls from an
// RNG created here; there is no process-global generator anywhere in this
// module.
package seedrng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG is a deterministic source derived from a master seed, a stage name,
// and a configuration hash. Two RNGs built from identical inputs produce
// identical sequences; this is what makes generation reproducible.
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where H is SHA-256 and the first 8 bytes become the uint64 seed.
type RNG struct {
	seed      uint64
	stageName string
	source    *rand.Rand
}

// New derives a stage-specific RNG from a master seed. stageName
// distinguishes independent consumers of randomness (e.g. "world-0",
// "world-1", "spirit-light") so that their sequences never collide;
// configHash distinguishes otherwise-identical stage names across
// differing settings.
func New(masterSeed uint64, stageName string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derivedSeed,
		stageName: stageName,
		source:    rand.New(rand.NewSource(int64(derivedSeed))),
	}
}

// Split derives a child RNG for a sub-stage, e.g. a per-world RNG split from
// the top-level universe RNG exactly once at world construction. The child
// is itself a fresh New() call seeded by this RNG's derived seed, so it
// never shares a *rand.Rand with its parent.
func (r *RNG) Split(stageName string) *RNG {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], r.seed)
	return New(r.seed, stageName, buf[:])
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("seedrng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements in a slice of length n.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Seed returns the derived seed for this RNG (useful for diagnostics).
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the stage name this RNG was created for.
func (r *RNG) StageName() string {
	return r.stageName
}

// IntRange returns a pseudo-random integer in [min, max]. Panics if min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("seedrng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max). Panics if min >= max.
func (r *RNG) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("seedrng: Float64Range min must be < max")
	}
	return min + r.source.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean value.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if all weights are
// zero or weights is empty.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("seedrng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	randVal := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// DerivedSeedString returns a retry seed string, used when the placement
// driver must restart generation with a fresh derived seed after a
// generation failure (spec §4.4 Error conditions).
func (r *RNG) DerivedSeedString(attempt int) string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], r.seed)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(attempt))
	h.Write(buf[:])
	sum := h.Sum(nil)
	return hexEncode(sum[:8])
}

func hexEncode(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
