// walker.go — the weighted random walk.
//
// Contract:
//   - Emits exactly `length` symbols: the resolved start plus length−1 draws.
//   - Each draw selects target t with probability w(current,t)/Σw(current,·).
//   - Scan order is alphabet order (deterministic), never map order.
//   - Returns only sentinel errors wrapped with call context; never panics.
//
// Complexity: O(length × n) time for an n-symbol alphabet, O(length) space.

package walker

import (
	"fmt"
	"math/rand"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
)

// Walk produces one melody over g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Start must resolve to an alphabet member (ErrInvalidStart); empty
//     start resolves to the alphabet's first symbol, unknown start only
//     resolves under WithFallbackStart().
//  3. Length must be positive (ErrInvalidLength); lengths above the ceiling
//     clamp, or fail under WithStrictLength().
//
// Output guarantees:
//   - len(result) == resolved length,
//   - result[0] == resolved start,
//   - every consecutive pair is an edge of g (trivially, since g is
//     complete; the invariant is stated because callers depend on it).
//
// No side effects beyond consuming entropy from the configured RNG.
func Walk(g *notegraph.Graph, opts ...Option) (Melody, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	alphabet := g.Alphabet()

	start, err := resolveStart(g, alphabet, cfg)
	if err != nil {
		return nil, err
	}
	length, err := resolveLength(cfg)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	melody := make(Melody, 0, length)
	melody = append(melody, start)

	current := start
	for step := 1; step < length; step++ {
		next, err := sampleNext(g, alphabet, current, rng)
		if err != nil {
			// Unreachable on a complete graph; surfaced rather than
			// swallowed so a broken graph cannot fail silently.
			return nil, fmt.Errorf("walker: step %d: %w", step, err)
		}
		melody = append(melody, next)
		current = next
	}

	return melody, nil
}

// resolveStart applies the documented start policy.
func resolveStart(g *notegraph.Graph, alphabet []notegraph.Pitch, cfg Options) (notegraph.Pitch, error) {
	if cfg.Start == "" {
		return alphabet[0], nil
	}
	if g.Contains(cfg.Start) {
		return cfg.Start, nil
	}
	if cfg.FallbackStart {
		return alphabet[0], nil
	}
	return "", fmt.Errorf("start %q: %w", cfg.Start, ErrInvalidStart)
}

// resolveLength applies the documented length policy.
func resolveLength(cfg Options) (int, error) {
	if cfg.Length <= 0 {
		return 0, fmt.Errorf("length %d: %w", cfg.Length, ErrInvalidLength)
	}
	if cfg.Length > cfg.MaxLength {
		if cfg.StrictLength {
			return 0, fmt.Errorf("length %d exceeds max %d: %w", cfg.Length, cfg.MaxLength, ErrInvalidLength)
		}
		return cfg.MaxLength, nil
	}
	return cfg.Length, nil
}

// sampleNext performs one weighted draw over current's outgoing edges using
// cumulative-sum inversion: r ~ U[0, total), then the first target whose
// cumulative weight exceeds r wins. Scanning in alphabet order keeps the
// draw deterministic for a fixed RNG state.
func sampleNext(g *notegraph.Graph, alphabet []notegraph.Pitch, current notegraph.Pitch, rng *rand.Rand) (notegraph.Pitch, error) {
	weights, err := g.WeightsFrom(current)
	if err != nil {
		return "", err
	}

	var total float64
	for _, to := range alphabet {
		total += weights[to]
	}

	r := rng.Float64() * total
	for _, to := range alphabet {
		r -= weights[to]
		if r < 0 {
			return to, nil
		}
	}

	// Float64 rounding can leave r at a hair above zero after the full scan;
	// the last symbol is the correct bucket in that case.
	return alphabet[len(alphabet)-1], nil
}
