// Package notegraph builds and stores the complete weighted directed graph
// of note-to-note transitions that drives melody generation.
//
// Overview:
//
//   - A Graph is constructed over a fixed, finite alphabet of pitch symbols
//     (default: the seven natural note names C D E F G A B).
//   - Every ordered pair of symbols — self-loops included — receives an
//     independently sampled strictly-positive weight, so an n-symbol alphabet
//     yields exactly n² edges.
//   - Because the graph is complete, every symbol has a non-empty outgoing
//     weight set; a walk over the graph can never get stuck. This invariant
//     is what lets walker.Walk loop without a reachability check.
//   - Once built, a Graph is immutable. Rebuilding with fresh weights means
//     constructing a new Graph.
//
// Determinism:
//
//   - All entropy flows through an explicitly injected *rand.Rand
//     (WithRand / WithSeed). There are no hidden time-based sources.
//   - With no RNG option, a fixed default seed is used, so New() with no
//     options is reproducible run-to-run.
//   - Edges are emitted in alphabet index order (source-major), so a fixed
//     RNG state always yields the same weight assignment.
//
// Weight policy:
//
//   - Default: weights ~ U(DefaultMinWeight, DefaultMaxWeight) = (0.1, 1.0).
//     The bounds are tunable via WithWeightRange; they must be strictly
//     positive and min < max.
//   - Custom distributions plug in via WithWeightFn. A WeightFn that yields
//     a non-positive weight fails construction with ErrNonPositiveWeight —
//     a zero or negative weight would make its source impossible to leave
//     under proportional sampling.
//
// Errors (sentinel):
//
//   - ErrInvalidAlphabet    if the alphabet is empty or contains duplicates.
//   - ErrBadWeightRange     if WithWeightRange bounds are non-positive or inverted.
//   - ErrNonPositiveWeight  if a weight function produced w ≤ 0.
//   - ErrUnknownSymbol      if a query names a symbol outside the alphabet.
//
// Complexity:
//
//   - New:         O(n²) time, O(n²) space for an n-symbol alphabet.
//   - WeightsFrom: O(n) time (defensive copy), O(n) space.
//   - Weight:      O(1) time.
//
// Thread safety:
//
//   - A constructed Graph is read-only; concurrent readers need no
//     synchronization. Construction itself is single-threaded.
package notegraph
