// Package walker realizes melodies by weighted random walks over a
// notegraph.Graph.
//
// Overview:
//
//   - Walk starts from a resolved start symbol and repeatedly samples the
//     next note from the current note's outgoing-edge distribution: the
//     probability of moving to target t is weight(current,t) divided by the
//     sum of all outgoing weights from current.
//   - A walk of requested length L emits exactly L symbols and performs
//     exactly L−1 draws; L==1 returns [start] and consumes no entropy.
//   - Because every notegraph.Graph is complete, the outgoing set at every
//     node is non-empty and the walk can never get stuck — no reachability
//     handling is needed.
//
// Start resolution (documented policy):
//
//   - Empty start       → the alphabet's first symbol.
//   - Unknown start     → ErrInvalidStart, unless WithFallbackStart() is
//     set, in which case the alphabet's first symbol is substituted.
//
// Length policy (documented policy):
//
//   - length ≤ 0                → ErrInvalidLength.
//   - length > MaxLength        → clamped to MaxLength by default
//     (DefaultMaxLength = 512); WithStrictLength() rejects instead.
//     The ceiling bounds work for malicious or accidental extreme inputs.
//
// Determinism:
//
//   - The walk is stochastic, but all entropy flows through an injected
//     *rand.Rand (WithRand / WithSeed; seed==0 ⇒ fixed default seed).
//     Same graph, same options, same seed ⇒ identical melody.
//   - The next-note scan runs in alphabet order, never Go map order, so
//     results are stable across runs and platforms.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph is nil.
//   - ErrInvalidStart   if the start symbol cannot be resolved.
//   - ErrInvalidLength  if the length is non-positive, or out of range
//     under WithStrictLength().
//
// Complexity: O(length × alphabet size) time, O(length) space.
//
// Thread safety: Walk holds no cross-call state and the graph is read-only,
// so independent calls may run concurrently — but a single *rand.Rand must
// not be shared across goroutines.
package walker
