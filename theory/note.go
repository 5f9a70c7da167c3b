package theory

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RestName is the literal marker accepted by NewNote for a rest.
const RestName = "R"

// Natural pitch classes by letter, C first.
var naturalPitches = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Note is an immutable spelled note: either a rest or a pitched note with a
// letter (0 for C up to 6 for B), a signed accidental count (positive for
// sharps, negative for flats), an optional octave and an optional rhythm.
// Transformations always return a new Note.
type Note struct {
	rest        bool
	letter      int
	accidentals int
	octave      int
	hasOctave   bool
	rhythm      Rhythm
	hasRhythm   bool
}

// NewNote parses a note name such as "A", "c#", "Eb", "F##" or "Gbbb", or
// the rest marker "R". The letter is case-insensitive, the accidental run is
// unlimited in length and must not mix sharps and flats.
func NewNote(name string) (Note, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, RestName) {
		return Note{rest: true}, nil
	}
	if trimmed == "" {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	first := trimmed[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	letter := letterIndex(first)
	if letter < 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	tail := strings.ToLower(trimmed[1:])
	accidentals := 0
	switch {
	case tail == "":
	case strings.Count(tail, "#") == len(tail):
		accidentals = len(tail)
	case strings.Count(tail, "b") == len(tail):
		accidentals = -len(tail)
	default:
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return Note{letter: letter, accidentals: accidentals}, nil
}

// NoteFromValues returns the note matching a letter (0-6) and a target pitch
// class (0-11), spelled with the fewest accidentals possible.
func NoteFromValues(letter, pitchClass int) (Note, error) {
	if letter < 0 || letter > 6 {
		return Note{}, fmt.Errorf("%w: letter value %d out of range", ErrInvalidNoteName, letter)
	}
	if pitchClass < 0 || pitchClass > 11 {
		return Note{}, fmt.Errorf("%w: pitch class %d out of range", ErrInvalidNoteName, pitchClass)
	}
	offset := pitchClass - naturalPitches[letter]
	if offset > 5 {
		offset -= 12
	} else if offset < -6 {
		offset += 12
	}
	return Note{letter: letter, accidentals: offset}, nil
}

// NoteFromHardPitch returns the octave-valued note matching a hard pitch
// (0 = C0, counted in half steps). Non-natural pitches come back sharped
// unless preferFlat is set.
func NoteFromHardPitch(hardPitch int, preferFlat bool) Note {
	pc := mod12(hardPitch)
	octave := (hardPitch - pc) / 12
	// naturals first: a pitch class that has a natural spelling keeps it,
	// only the five black keys get an accidental
	for i, natural := range naturalPitches {
		if pc == natural {
			return Note{letter: i, octave: octave, hasOctave: true}
		}
	}
	for i, natural := range naturalPitches {
		if pc == natural+1 {
			if preferFlat {
				return Note{letter: mod7(i + 1), accidentals: -1, octave: octave, hasOctave: true}
			}
			return Note{letter: i, accidentals: 1, octave: octave, hasOctave: true}
		}
	}
	// unreachable: every pitch class is a natural or natural+1
	return Note{}
}

// NoteFromFrequency returns the equal-tempered note nearest to hz at the
// current reference frequency.
func NoteFromFrequency(hz float64) (Note, error) {
	if hz <= 0 {
		return Note{}, fmt.Errorf("%w: %v", ErrInvalidTuningValue, hz)
	}
	offset := int(math.Round(12 * (math.Log2(hz) - math.Log2(ReferenceFrequency()))))
	return NoteFromHardPitch(offset+referenceHardPitch, false), nil
}

func (n Note) IsRest() bool { return n.rest }

// Letter is the note's letter index, 0 for C up to 6 for B. It is -1 for a
// rest.
func (n Note) Letter() int {
	if n.rest {
		return -1
	}
	return n.letter
}

// PitchClass is the note's pitch modulo 12, 0 for any equivalent of C
// natural up to 11 for any equivalent of B. It is -1 for a rest.
func (n Note) PitchClass() int {
	if n.rest {
		return -1
	}
	return mod12(naturalPitches[n.letter] + n.accidentals)
}

func (n Note) Octave() (int, bool) {
	return n.octave, n.hasOctave && !n.rest
}

func (n Note) Rhythm() (Rhythm, bool) {
	return n.rhythm, n.hasRhythm
}

// Sharps is the number of sharps in the spelling, 0 when natural or flat.
func (n Note) Sharps() int {
	if n.accidentals > 0 {
		return n.accidentals
	}
	return 0
}

// Flats is the number of flats in the spelling, 0 when natural or sharp.
func (n Note) Flats() int {
	if n.accidentals < 0 {
		return -n.accidentals
	}
	return 0
}

// AccidentalOffset is the signed half-step offset from the natural letter,
// positive for sharps and negative for flats.
func (n Note) AccidentalOffset() int { return n.accidentals }

// WithOctave returns a copy of the note with the octave set. Rests cannot
// carry an octave.
func (n Note) WithOctave(octave int) (Note, error) {
	if n.rest {
		return Note{}, fmt.Errorf("%w: cannot set an octave on a rest", ErrInvalidOctave)
	}
	out := n
	out.octave = octave
	out.hasOctave = true
	return out, nil
}

// WithoutOctave returns a copy of the note with any octave removed.
func (n Note) WithoutOctave() Note {
	out := n
	out.octave = 0
	out.hasOctave = false
	return out
}

// WithRhythm returns a copy of the note with the rhythm set.
func (n Note) WithRhythm(r Rhythm) Note {
	out := n
	out.rhythm = r
	out.hasRhythm = true
	return out
}

// NoteName is only the spelled name of the note (letter plus accidentals),
// e.g. "C#" or "Bbb", or "R" for a rest.
func (n Note) NoteName() string {
	if n.rest {
		return RestName
	}
	name := letterNames[n.letter]
	if n.accidentals > 0 {
		name += strings.Repeat("#", n.accidentals)
	} else if n.accidentals < 0 {
		name += strings.Repeat("b", -n.accidentals)
	}
	return name
}

// Name describes the note's main characteristics, e.g. "C#4 dotted quarter"
// or "8th rest".
func (n Note) Name() string {
	if n.rest {
		if n.hasRhythm {
			return n.rhythm.Name() + " rest"
		}
		return "rest"
	}
	name := n.NoteName()
	if n.hasOctave {
		name += strconv.Itoa(n.octave)
	}
	if n.hasRhythm {
		name += " " + n.rhythm.Name()
	}
	return name
}

func (n Note) String() string { return n.Name() }

// HardPitch is the octave-aware absolute half-step index of the note's
// spelling: pitch class plus 12 per octave, C0 = 0.
func (n Note) HardPitch() (int, error) {
	if n.rest {
		return 0, ErrRestHasNoPitch
	}
	if !n.hasOctave {
		return 0, fmt.Errorf("%w: %s", ErrMissingOctave, n.NoteName())
	}
	return n.PitchClass() + 12*n.octave, nil
}

// Frequency is the note's equal-tempered frequency in Hz at the current
// reference frequency.
func (n Note) Frequency() (float64, error) {
	return n.FrequencyAt(ReferenceFrequency())
}

// FrequencyAt computes the note's frequency against an explicit reference
// frequency for A4, making the call site independent of the process-wide
// tuning value.
func (n Note) FrequencyAt(reference float64) (float64, error) {
	if reference <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTuningValue, reference)
	}
	hp, err := n.HardPitch()
	if err != nil {
		return 0, err
	}
	return reference * math.Pow(2, float64(hp-referenceHardPitch)/12), nil
}

func letterIndex(c byte) int {
	switch c {
	case 'C':
		return 0
	case 'D':
		return 1
	case 'E':
		return 2
	case 'F':
		return 3
	case 'G':
		return 4
	case 'A':
		return 5
	case 'B':
		return 6
	}
	return -1
}

func mod12(v int) int {
	v %= 12
	if v < 0 {
		v += 12
	}
	return v
}

func mod7(v int) int {
	v %= 7
	if v < 0 {
		v += 7
	}
	return v
}
