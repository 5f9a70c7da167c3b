// Package midikey converts between spelled notes and MIDI key numbers.
// MIDI key 0 is C-1 in scientific pitch notation, so a key number is the
// note's hard pitch plus 12. A note's octave field is taken as-is: an
// accidental wraps the pitch class but never shifts the octave, so B#3 is
// pitch class 0 in octave 3 (key 48), not scientific notation's B#3 = C4.
package midikey

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ScottMorse/Music-Tools/theory"
)

const keyOffset = 12

// ErrKeyOutOfRange means a note's pitch does not fit in the 0..127 MIDI
// key range.
var ErrKeyOutOfRange = fmt.Errorf("midi key out of range")

// Key returns the MIDI key number for a pitched note.
func Key(n theory.Note) (uint8, error) {
	hp, err := n.HardPitch()
	if err != nil {
		return 0, err
	}
	key := hp + keyOffset
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %d", ErrKeyOutOfRange, key)
	}
	return uint8(key), nil
}

// Keys converts a slice of pitched notes to MIDI key numbers.
func Keys(notes []theory.Note) ([]uint8, error) {
	keys := make([]uint8, 0, len(notes))
	for _, n := range notes {
		key, err := Key(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Note spells a MIDI key number, preferring sharps for the black keys.
func Note(key uint8) theory.Note {
	return theory.NoteFromHardPitch(int(key)-keyOffset, false)
}

// NoteOn builds a note-on message for a pitched note.
func NoteOn(channel uint8, n theory.Note, velocity uint8) (midi.Message, error) {
	key, err := Key(n)
	if err != nil {
		return nil, err
	}
	return midi.NoteOn(channel, key, velocity), nil
}

// NoteOff builds a note-off message for a pitched note.
func NoteOff(channel uint8, n theory.Note) (midi.Message, error) {
	key, err := Key(n)
	if err != nil {
		return nil, err
	}
	return midi.NoteOff(channel, key), nil
}

// FromMessage extracts the spelled note from a note-on or note-off
// message.
func FromMessage(msg midi.Message) (theory.Note, bool) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return Note(key), true
	case msg.GetNoteEnd(&ch, &key):
		return Note(key), true
	}
	return theory.Note{}, false
}
