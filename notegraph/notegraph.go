// notegraph.go — construction and queries of the complete transition graph.
//
// Contract:
//   - New validates the alphabet, then emits all n² ordered pairs
//     (self-loops included) in source-major alphabet order.
//   - Weight per edge: cfg.weightFn(cfg.rng); any w ≤ 0 aborts construction.
//   - Returns only sentinel errors wrapped with call context; never panics.
//
// Complexity:
//   - Time:  O(n) validation + O(n²) edge emission.
//   - Space: O(n²) for the weight table, O(n) for the index.
//
// Determinism:
//   - Deterministic emission order (source index, then target index), so a
//     fixed RNG state always produces the same weight assignment.

package notegraph

import "fmt"

// Graph is an immutable complete weighted directed graph over a pitch
// alphabet. Every ordered pair of alphabet symbols, including each symbol
// paired with itself, carries a strictly positive transition weight.
//
// Immutability after New is what makes concurrent reads safe without locks:
// the walker borrows the graph read-only per call.
type Graph struct {
	alphabet []Pitch                     // node set in construction order
	index    map[Pitch]int               // symbol → alphabet position
	weights  map[Pitch]map[Pitch]float64 // weights[from][to] = w > 0
}

// New constructs a complete transition graph.
//
// Validation (in order):
//  1. Alphabet must be non-empty (ErrInvalidAlphabet).
//  2. Alphabet must contain no duplicate symbols (ErrInvalidAlphabet).
//  3. Every sampled weight must be strictly positive (ErrNonPositiveWeight).
//
// Side effects: none beyond consuming entropy from the configured RNG.
// Complexity: O(n²) time and space.
func New(opts ...Option) (*Graph, error) {
	cfg := newConfig(opts)

	n := len(cfg.alphabet)
	if n == 0 {
		return nil, fmt.Errorf("empty alphabet: %w", ErrInvalidAlphabet)
	}

	// Build the symbol index; a collision here is a duplicate symbol.
	index := make(map[Pitch]int, n)
	for i, p := range cfg.alphabet {
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("duplicate symbol %q: %w", p, ErrInvalidAlphabet)
		}
		index[p] = i
	}

	// Copy the alphabet so later caller mutation cannot reach the graph.
	alphabet := make([]Pitch, n)
	copy(alphabet, cfg.alphabet)

	// Emit all n² edges in source-major order. Completeness is what
	// guarantees every symbol stays leavable during a walk.
	weights := make(map[Pitch]map[Pitch]float64, n)
	for _, from := range alphabet {
		row := make(map[Pitch]float64, n)
		for _, to := range alphabet {
			w := cfg.weightFn(cfg.rng)
			if w <= 0 {
				return nil, fmt.Errorf("edge %s→%s sampled w=%g: %w", from, to, w, ErrNonPositiveWeight)
			}
			row[to] = w
		}
		weights[from] = row
	}

	return &Graph{alphabet: alphabet, index: index, weights: weights}, nil
}

// Alphabet returns the graph's pitch alphabet in construction order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(n).
func (g *Graph) Alphabet() []Pitch {
	out := make([]Pitch, len(g.alphabet))
	copy(out, g.alphabet)
	return out
}

// Contains reports whether p is a member of the graph's alphabet.
// Complexity: O(1).
func (g *Graph) Contains(p Pitch) bool {
	_, ok := g.index[p]
	return ok
}

// Order returns the number of symbols in the alphabet.
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.alphabet)
}

// EdgeCount returns the number of directed edges: Order²,
// since the graph is complete with self-loops.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.alphabet) * len(g.alphabet)
}

// WeightsFrom returns the mapping from every reachable target symbol to the
// weight of the edge from→target. The map is a defensive copy.
// Returns ErrUnknownSymbol if from is outside the alphabet.
// Complexity: O(n) time and space.
func (g *Graph) WeightsFrom(from Pitch) (map[Pitch]float64, error) {
	row, ok := g.weights[from]
	if !ok {
		return nil, fmt.Errorf("WeightsFrom(%q): %w", from, ErrUnknownSymbol)
	}
	out := make(map[Pitch]float64, len(row))
	for to, w := range row {
		out[to] = w
	}
	return out, nil
}

// Weight returns the weight of the directed edge from→to.
// Returns ErrUnknownSymbol if either endpoint is outside the alphabet.
// Complexity: O(1).
func (g *Graph) Weight(from, to Pitch) (float64, error) {
	row, ok := g.weights[from]
	if !ok {
		return 0, fmt.Errorf("Weight(%q, %q): source: %w", from, to, ErrUnknownSymbol)
	}
	w, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("Weight(%q, %q): target: %w", from, to, ErrUnknownSymbol)
	}
	return w, nil
}
