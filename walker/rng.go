// rng.go — deterministic random generation for walks.
//
// Goals:
//   - Determinism: same seed ⇒ identical melodies across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     concurrent walks; give each its own seeded stream.

package walker

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
