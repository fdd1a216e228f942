// midi.go — Type-0 Standard MIDI File serialization.
//
// Layout: one "MThd" header chunk (format 0, one track, 480 ticks/beat)
// followed by one "MTrk" chunk holding a tempo meta event, back-to-back
// note-on/note-off pairs for the melody, and an end-of-track meta event.
// Events are built with absolute ticks and converted to delta times at
// write-out.

package midi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/VanishaParwal/MusicAlgorithm/walker"
)

// Raw status and meta bytes used by the track encoder.
const (
	statusNoteOn  = 0x90
	statusNoteOff = 0x80
	metaPrefix    = 0xFF
	metaTempo     = 0x51
	metaEndTrack  = 0x2F
)

// event is one track event at an absolute tick.
type event struct {
	tick int
	data []byte
}

// Export serializes melody as a Type-0 SMF to w.
//
// Validation (in order):
//  1. melody must be non-empty (ErrEmptyMelody).
//  2. TempoBPM must be positive (ErrBadTempo).
//  3. NoteBeats must be positive (ErrBadNoteBeats).
//  4. Every symbol must map to a note number at the configured octave
//     (ErrUnknownSymbol / ErrBadOctave).
//
// Output is deterministic for a fixed seed. Complexity: O(len(melody)).
func Export(w io.Writer, melody walker.Melody, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(melody) == 0 {
		return ErrEmptyMelody
	}
	if cfg.TempoBPM <= 0 {
		return fmt.Errorf("tempo %d BPM: %w", cfg.TempoBPM, ErrBadTempo)
	}
	if cfg.NoteBeats <= 0 {
		return fmt.Errorf("note beats %g: %w", cfg.NoteBeats, ErrBadNoteBeats)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	events, err := buildEvents(melody, cfg, rng)
	if err != nil {
		return err
	}
	track := encodeTrack(events)

	var out bytes.Buffer
	writeHeader(&out)
	out.WriteString("MTrk")
	writeUint32(&out, uint32(len(track)))
	out.Write(track)

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("midi: write file: %w", err)
	}
	return nil
}

// writeHeader emits the 14-byte MThd chunk: format 0, one track,
// TicksPerBeat division.
func writeHeader(buf *bytes.Buffer) {
	buf.WriteString("MThd")
	writeUint32(buf, 6)
	writeUint16(buf, 0)
	writeUint16(buf, 1)
	writeUint16(buf, TicksPerBeat)
}

// writeUint32 appends v big-endian; bytes.Buffer writes cannot fail.
func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// writeUint16 appends v big-endian.
func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// buildEvents lays the melody out on the tick grid: tempo meta at tick 0,
// then note i spanning [i·step, (i+1)·step) with a humanized velocity,
// then end-of-track.
func buildEvents(melody walker.Melody, cfg Options, rng *rand.Rand) ([]event, error) {
	step := cfg.NoteBeats * TicksPerBeat

	events := make([]event, 0, 2*len(melody)+2)
	events = append(events, event{
		tick: 0,
		data: tempoMeta(cfg.TempoBPM),
	})

	for i, p := range melody {
		note, err := NoteNumber(p, cfg.Octave)
		if err != nil {
			return nil, fmt.Errorf("midi: melody[%d]: %w", i, err)
		}
		vel := humanize(cfg.Velocity, rng)
		on := int(math.Round(float64(i) * step))
		off := int(math.Round(float64(i+1) * step))
		events = append(events,
			event{tick: on, data: []byte{statusNoteOn, note, vel}},
			event{tick: off, data: []byte{statusNoteOff, note, 0}},
		)
	}

	last := int(math.Round(float64(len(melody)) * step))
	events = append(events, event{
		tick: last,
		data: []byte{metaPrefix, metaEndTrack, 0x00},
	})

	// Emission order already interleaves off-before-on at shared ticks;
	// the stable sort keeps that property while guarding the tick order.
	sort.SliceStable(events, func(i, j int) bool { return events[i].tick < events[j].tick })
	return events, nil
}

// tempoMeta encodes FF 51 03 plus the 3-byte microseconds-per-quarter value.
func tempoMeta(bpm int) []byte {
	mpqn := microsPerMinute / bpm
	return []byte{
		metaPrefix, metaTempo, 0x03,
		byte(mpqn >> 16), byte(mpqn >> 8), byte(mpqn),
	}
}

// humanize jitters the base velocity within ±velocityJitter, clamped to the
// valid MIDI range 1..127.
func humanize(base uint8, rng *rand.Rand) uint8 {
	v := int(base) + rng.Intn(2*velocityJitter+1) - velocityJitter
	if v < 1 {
		v = 1
	}
	if v > 127 {
		v = 127
	}
	return uint8(v)
}

// encodeTrack converts absolute-tick events into the SMF delta-time stream.
func encodeTrack(events []event) []byte {
	var buf bytes.Buffer
	prev := 0
	for _, ev := range events {
		buf.Write(encodeVarLen(ev.tick - prev))
		buf.Write(ev.data)
		prev = ev.tick
	}
	return buf.Bytes()
}

// encodeVarLen encodes a non-negative integer as a MIDI variable-length
// quantity: 7 bits per byte, high bit set on all but the last byte.
func encodeVarLen(value int) []byte {
	out := []byte{byte(value & 0x7F)}
	value >>= 7
	for value > 0 {
		out = append([]byte{byte(value&0x7F) | 0x80}, out...)
		value >>= 7
	}
	return out
}

// rngFromSeed returns a deterministic *rand.Rand for humanization.
// Policy: seed==0 ⇒ fixed default seed, matching the rest of the module.
func rngFromSeed(seed int64) *rand.Rand {
	const defaultRNGSeed int64 = 1
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
