package theory

// Preference constrains the accidental sign of an enharmonic respelling.
type Preference int

const (
	PreferNone Preference = iota
	PreferSharp
	PreferFlat
)

// The four natural-adjacent boundary letters and their cross-natural
// spellings: B->Cb, C->B#, E->Fb, F->E#.
var grossSpellings = map[int]Note{
	6: {letter: 0, accidentals: -1}, // B -> Cb
	0: {letter: 6, accidentals: 1},  // C -> B#
	2: {letter: 3, accidentals: -1}, // E -> Fb
	3: {letter: 2, accidentals: 1},  // F -> E#
}

// The five pitch classes with no natural spelling (the black keys).
var nonNatural = map[int]bool{1: true, 3: true, 6: true, 8: true, 10: true}

// Enharmonic returns an equivalent spelling of the note with the same pitch
// class. Multiple sharps or flats reduce to one or zero. prefer forces the
// accidental sign of the result where possible; gross additionally allows
// the special cross-natural spellings B#, Cb, E# and Fb for natural notes.
// The result keeps the receiver's octave and rhythm.
func (n Note) Enharmonic(prefer Preference, gross bool) (Note, error) {
	if n.rest {
		return Note{}, ErrRestHasNoEnharmonic
	}
	pc := n.PitchClass()
	special, isBoundary := grossSpellings[n.letter]

	var out Note
	switch {
	case gross && n.accidentals == 0 && isBoundary:
		if special.accidentals > 0 && prefer == PreferFlat {
			return n, nil
		}
		if special.accidentals < 0 && prefer == PreferSharp {
			return n, nil
		}
		out = special

	case n.accidentals == 0:
		// a natural note has no non-gross enharmonic
		return n, nil

	case n.accidentals == 1:
		if prefer == PreferSharp {
			return n, nil
		}
		resolved, err := NoteFromValues(mod7(n.letter+1), pc)
		if err != nil {
			return Note{}, err
		}
		out = resolved

	case n.accidentals == -1:
		if prefer == PreferFlat {
			return n, nil
		}
		resolved, err := NoteFromValues(mod7(n.letter-1), pc)
		if err != nil {
			return Note{}, err
		}
		out = resolved

	default:
		// reduce a multi-accidental spelling by walking the letter in the
		// accidental's direction until the spelling is simple enough
		limit := 1
		if nonNatural[pc] {
			limit = 2
		}
		step := 1
		if n.accidentals < 0 {
			step = -1
		}
		letter := n.letter
		out = n
		for abs(out.accidentals)+1 > limit {
			letter = mod7(letter + step)
			resolved, err := NoteFromValues(letter, pc)
			if err != nil {
				return Note{}, err
			}
			out = resolved
		}
		if out.accidentals > 0 && prefer == PreferFlat {
			resolved, err := NoteFromValues(mod7(letter+1), pc)
			if err != nil {
				return Note{}, err
			}
			out = resolved
		} else if out.accidentals < 0 && prefer == PreferSharp {
			resolved, err := NoteFromValues(mod7(letter-1), pc)
			if err != nil {
				return Note{}, err
			}
			out = resolved
		}
	}

	out.octave = n.octave
	out.hasOctave = n.hasOctave
	out.rhythm = n.rhythm
	out.hasRhythm = n.hasRhythm
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
