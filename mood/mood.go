package mood

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for profile lookup and loading.
var (
	// ErrUnknownMood indicates a mood label outside the configured set.
	ErrUnknownMood = errors.New("mood: unknown mood")

	// ErrBadProfile indicates a profile with non-positive multiplier or
	// note duration.
	ErrBadProfile = errors.New("mood: profile values must be positive")
)

// Mood is a mood label. The core algorithm treats it as opaque; only the
// profile it resolves to matters.
type Mood string

// Built-in mood labels.
const (
	Happy     Mood = "happy"
	Sad       Mood = "sad"
	Energetic Mood = "energetic"
	Calm      Mood = "calm"
)

// Profile holds the generation knobs for one mood.
type Profile struct {
	// WeightMul scales transition weights uniformly. Must be > 0.
	WeightMul float64 `yaml:"weight_mul"`

	// NoteBeats is the preferred note duration in beats. Must be > 0.
	NoteBeats float64 `yaml:"note_beats"`
}

// validate checks the positivity invariants shared by defaults and loads.
func (p Profile) validate() error {
	if p.WeightMul <= 0 || p.NoteBeats <= 0 {
		return fmt.Errorf("weight_mul=%g note_beats=%g: %w", p.WeightMul, p.NoteBeats, ErrBadProfile)
	}
	return nil
}

// DefaultProfiles returns the built-in mood table. The map is freshly
// allocated; callers may extend or override their copy freely.
func DefaultProfiles() map[Mood]Profile {
	return map[Mood]Profile{
		Happy:     {WeightMul: 1.2, NoteBeats: 0.25},
		Sad:       {WeightMul: 0.8, NoteBeats: 1},
		Energetic: {WeightMul: 1.5, NoteBeats: 0.25},
		Calm:      {WeightMul: 0.6, NoteBeats: 0.5},
	}
}

// Lookup resolves m against the built-in table.
// Returns ErrUnknownMood for labels outside it.
func Lookup(m Mood) (Profile, error) {
	p, ok := DefaultProfiles()[m]
	if !ok {
		return Profile{}, fmt.Errorf("%q: %w", m, ErrUnknownMood)
	}
	return p, nil
}

// LoadProfiles parses a YAML mood table, e.g.
//
//	happy:
//	  weight_mul: 1.2
//	  note_beats: 0.25
//
// Every profile is validated for positivity (ErrBadProfile). An empty
// document yields an empty, usable map.
func LoadProfiles(r io.Reader) (map[Mood]Profile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mood: read profiles: %w", err)
	}

	parsed := make(map[Mood]Profile)
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("mood: parse profiles: %w", err)
	}

	for m, p := range parsed {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("mood: profile %q: %w", m, err)
		}
	}
	return parsed, nil
}
