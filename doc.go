// Package musicalgorithm generates melodies by weighted random walks over a
// complete directed graph of note transitions.
//
// What's inside:
//
//   - notegraph: the complete weighted transition graph over a pitch
//     alphabet — every ordered pair, self-loops included, carries an
//     independently sampled positive weight.
//   - walker: the weighted stochastic walk that realizes one melody,
//     with documented start/length policies and injected, seedable RNG.
//   - mood: mood labels → generation profiles (weight multiplier, note
//     duration), YAML-loadable.
//   - midi: Type-0 Standard MIDI File export of a melody.
//   - composer: session orchestration — build the graph once, generate a
//     Piece per action, re-randomize on demand.
//
// Quick start:
//
//	c, err := composer.New(composer.WithSeed(42))
//	if err != nil { ... }
//	p, err := c.Generate(composer.Mood(mood.Happy), composer.Seconds(16))
//	if err != nil { ... }
//	err = p.ExportMIDI(file)
//
// Everything stochastic is driven by explicitly injected seeds; identical
// seeds and call sequences reproduce identical melodies and identical MIDI
// bytes. See each package's doc.go for contracts, policies, and complexity.
package musicalgorithm
