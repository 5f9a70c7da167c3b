package scale

import (
	"fmt"

	"github.com/ScottMorse/Music-Tools/theory"
)

// Mode pairs a pitched root with a registered mode name. Octave and rhythm
// values on the root are ignored, a scale is an octave-free spelling.
type Mode struct {
	root theory.Note
	name string
}

// New builds a mode from a root note and a registered mode name.
func New(root theory.Note, name string) (Mode, error) {
	if root.IsRest() {
		return Mode{}, fmt.Errorf("%w: rest", ErrInvalidModeRoot)
	}
	if _, ok := registry[name]; !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidModeName, name)
	}
	return Mode{root: root.WithoutOctave(), name: name}, nil
}

// Root returns the mode's root note.
func (m Mode) Root() theory.Note { return m.root }

// ModeName returns the registered mode name.
func (m Mode) ModeName() string { return m.name }

// Name describes the mode, e.g. "Eb dorian".
func (m Mode) Name() string { return m.root.NoteName() + " " + m.name }

func (m Mode) String() string { return m.Name() }

// Spelling walks the mode's step pattern from the root and returns the
// scale's notes, one per pattern entry, the root first. The walk keeps a
// running letter and pitch class; patterns with a registered letter-step
// table spell strictly by letter, all others advance one letter per step
// and then correct the raw spelling: repeated half steps reuse the previous
// letter, unwieldy or cross-natural spellings are simplified, and a single
// sharp-or-flat convention is enforced across the scale.
func (m Mode) Spelling() ([]theory.Note, error) {
	def, offset, err := resolve(m.name)
	if err != nil {
		return nil, err
	}
	if len(def.LetterSteps) > 0 {
		return m.spellByLetters(def, offset)
	}
	return m.spellDefault(def, offset)
}

// StringSpelling returns the spelled scale as note names.
func (m Mode) StringSpelling() ([]string, error) {
	notes, err := m.Spelling()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.NoteName()
	}
	return names, nil
}

func (m Mode) spellByLetters(def Definition, offset int) ([]theory.Note, error) {
	notes := make([]theory.Note, 0, len(def.Steps))
	notes = append(notes, m.root)

	letter := m.root.Letter()
	pitch := m.root.PitchClass()
	for k, idx := 0, offset; k < len(def.Steps)-1; k, idx = k+1, idx+1 {
		if idx == len(def.Steps) {
			idx = 0
		}
		pitch = mod12(pitch + def.Steps[idx])
		letter = mod7(letter + def.LetterSteps[idx])
		n, err := theory.NoteFromValues(letter, pitch)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

var grossBoundaryNames = map[string]bool{
	"B#": true, "Cb": true, "E#": true, "Fb": true,
}

func (m Mode) spellDefault(def Definition, offset int) ([]theory.Note, error) {
	notes := make([]theory.Note, 0, len(def.Steps))
	notes = append(notes, m.root)

	sharps := m.root.Sharps() > 0
	flats := m.root.Flats() > 0
	if !sharps && !flats {
		switch def.Prefer {
		case theory.PreferSharp:
			sharps = true
		case theory.PreferFlat:
			flats = true
		}
	}

	letter := m.root.Letter()
	pitch := m.root.PitchClass()
	prevStep := 0
	for k, idx := 0, offset; k < len(def.Steps)-1; k, idx = k+1, idx+1 {
		if idx == len(def.Steps) {
			idx = 0
		}
		step := def.Steps[idx]
		pitch = mod12(pitch + step)

		nextLetter := mod7(letter + 1)
		if step == 1 && prevStep == 1 {
			// two half steps in a row share a letter, otherwise the walk
			// would run out of letters before the octave closes
			nextLetter = letter
		}
		n, err := theory.NoteFromValues(nextLetter, pitch)
		if err != nil {
			return nil, err
		}
		if abs(n.AccidentalOffset()) > 2 {
			nextLetter = mod7(nextLetter + 1)
			if n, err = theory.NoteFromValues(nextLetter, pitch); err != nil {
				return nil, err
			}
		}
		if len(n.NoteName()) > 2 {
			if n, err = n.Enharmonic(theory.PreferNone, false); err != nil {
				return nil, err
			}
		}
		if grossBoundaryNames[n.NoteName()] && !def.Gross {
			if n, err = n.Enharmonic(theory.PreferNone, false); err != nil {
				return nil, err
			}
		}

		if n.Sharps() > 0 {
			if flats {
				if n, err = n.Enharmonic(theory.PreferFlat, false); err != nil {
					return nil, err
				}
			} else {
				sharps = true
			}
		}
		if n.Flats() > 0 {
			if sharps {
				if n, err = n.Enharmonic(theory.PreferSharp, false); err != nil {
					return nil, err
				}
			} else {
				flats = true
			}
		}

		letter = n.Letter()
		prevStep = step
		notes = append(notes, n)
	}
	return notes, nil
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
