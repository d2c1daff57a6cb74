package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
)

// RNG provides deterministic random draws for a single pipeline phase.
// Each phase derives its own seed from the master seed so phases are
// isolated from one another while the whole generate call stays
// reproducible. The derivation follows:
//
//	seed_phase = H(masterSeed, phaseName, configHash)
//
// where H is SHA-256 and the first 8 bytes are used as the int64 seed.
//
// All methods are deterministic given the same initial seed.
type RNG struct {
	seed      uint64
	phaseName string
	source    *rand.Rand
}

// New creates a phase-specific RNG by deriving a sub-seed from the master seed.
// The derivation uses SHA-256 to combine:
//   - masterSeed: the top-level seed for the entire generate call
//   - phaseName: identifies the pipeline phase (e.g., "rooms", "corridors")
//   - configHash: hash of the resolved configuration
func New(masterSeed uint64, phaseName string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(phaseName))
	h.Write(configHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derivedSeed,
		phaseName: phaseName,
		source:    rand.New(rand.NewSource(int64(derivedSeed))), //nolint:gosec // deterministic generation, not security-sensitive
	}
}

// NewFromSeed wraps a raw seed directly, bypassing phase derivation.
// Tests use this to pin an RNG's sequence exactly.
func NewFromSeed(seed uint64) *RNG {
	return &RNG{
		seed:   seed,
		source: rand.New(rand.NewSource(int64(seed))), //nolint:gosec
	}
}

// Seed returns the derived seed for this RNG.
func (r *RNG) Seed() uint64 { return r.seed }

// PhaseName returns the pipeline phase this RNG was derived for.
func (r *RNG) PhaseName() string { return r.phaseName }

// Int returns a pseudo-random integer in [min, max] inclusive.
// Panics if min > max.
func (r *RNG) Int(minV, maxV int) int {
	if minV > maxV {
		panic("rng: Int min must be <= max")
	}
	if minV == maxV {
		return minV
	}
	return minV + r.source.Intn(maxV-minV+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// BiasedInt returns an integer in [min, max] skewed by bias in [-1, 1].
// bias > 0 skews toward max, bias < 0 skews toward min, bias == 0 is
// uniform. The skew is a power curve applied to a uniform draw:
//
//	t  = U(0,1)
//	e  = 1/(1+2*bias)   if bias > 0
//	e  = 1+2*|bias|     otherwise
//	result = floor(min + t^e * (max-min+1))
func (r *RNG) BiasedInt(minV, maxV int, bias float64) int {
	if minV > maxV {
		panic("rng: BiasedInt min must be <= max")
	}
	if minV == maxV {
		return minV
	}
	t := r.source.Float64()
	var e float64
	if bias > 0 {
		e = 1.0 / (1.0 + 2.0*bias)
	} else {
		e = 1.0 + 2.0*math.Abs(bias)
	}
	tPrime := math.Pow(t, e)
	span := float64(maxV - minV + 1)
	result := minV + int(math.Floor(tPrime*span))
	if result > maxV {
		result = maxV
	}
	if result < minV {
		result = minV
	}
	return result
}

// Chance returns true with probability p (clamped to [0,1]).
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.source.Float64() < p
}

// WeightedPick normalizes weights and draws an index according to them.
// Returns -1 if weights is empty or all weights are non-positive.
func (r *RNG) WeightedPick(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	draw := r.source.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if draw < cumulative {
			return i
		}
	}
	// Floating point rounding can leave draw just past the last bucket.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// NormalizeWeights scales a map of weights so they sum to 1.0.
// Returns an empty map if the input is empty or sums to zero.
func NormalizeWeights(weights map[string]float64) map[string]float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := make(map[string]float64, len(weights))
	if total <= 0 {
		return out
	}
	for k, w := range weights {
		out[k] = w / total
	}
	return out
}
