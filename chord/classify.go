package chord

import (
	"fmt"
	"strings"

	"github.com/ScottMorse/Music-Tools/theory"
)

// Triad quality labels used by Classification.
const (
	TriadMajor      = "major"
	TriadMinor      = "minor"
	TriadDiminished = "diminished"
	TriadAugmented  = "augmented"
)

// Classification describes a set of notes as a chord: the true root (after
// any inversion re-rooting), the bass if the input was recognized as an
// inversion, the triad quality, and the accumulated extension tokens that
// render into a lead-sheet symbol.
type Classification struct {
	Root           theory.Note
	Bass           theory.Note
	Inverted       bool
	Triad          string
	Sus            bool
	SeventhChord   bool
	SixthChord     bool
	DiminishedType string // "half", "fully" or empty
	Extensions     string
}

// Symbol renders the classification as a lead-sheet chord symbol, e.g.
// "C7", "Dm9", "B%7", "F#°7", "Gsus" or "C/E".
func (c Classification) Symbol() string {
	var b strings.Builder
	b.WriteString(c.Root.NoteName())
	switch c.Triad {
	case TriadMinor:
		b.WriteString("m")
	case TriadAugmented:
		b.WriteString("+")
	case TriadDiminished:
		if c.DiminishedType == "half" {
			b.WriteString("%")
		} else {
			b.WriteString("°")
		}
	}
	if c.Sus {
		b.WriteString("sus")
	}
	b.WriteString(c.Extensions)
	if c.Inverted {
		b.WriteString("/" + c.Bass.NoteName())
	}
	return b.String()
}

// Relative pitch values of chord-tone intervals above the root.
const (
	relMinor2nd   = 1
	relMajor2nd   = 2
	relMinor3rd   = 3
	relMajor3rd   = 4
	relPerfect4th = 5
	relTritone    = 6
	relPerfect5th = 7
	relMinor6th   = 8
	relMajor6th   = 9
	relMinor7th   = 10
	relMajor7th   = 11
)

// Classify names the chord formed by a root and a set of other notes. The
// notes are ordered ascending from the root and deduplicated by pitch
// class; classification itself only looks at the resulting interval set.
// When the intervals suggest an inversion, the detected chord tone becomes
// the root and the given root becomes the bass; this re-rooting happens at
// most once, after which an unresolvable interval set is reported as
// ErrUnclassifiedChord.
func Classify(root theory.Note, others ...theory.Note) (Classification, error) {
	if root.IsRest() {
		return Classification{}, fmt.Errorf("%w: rest", ErrInvalidChordNote)
	}
	for _, n := range others {
		if n.IsRest() {
			return Classification{}, fmt.Errorf("%w: rest", ErrInvalidChordNote)
		}
	}
	notes := make([]theory.Note, 0, len(others)+1)
	notes = append(notes, root)
	notes = append(notes, others...)
	return classify(root, notes, theory.Note{}, false, 0)
}

// ClassifyNames is Classify over note names.
func ClassifyNames(root string, others ...string) (Classification, error) {
	rootNote, err := theory.NewNote(root)
	if err != nil {
		return Classification{}, err
	}
	notes := make([]theory.Note, 0, len(others))
	for _, name := range others {
		n, err := theory.NewNote(name)
		if err != nil {
			return Classification{}, err
		}
		notes = append(notes, n)
	}
	return Classify(rootNote, notes...)
}

func classify(root theory.Note, notes []theory.Note, bass theory.Note, inverted bool, depth int) (Classification, error) {
	sorted := sortFromRoot(root, notes)

	// first note at each relative pitch above the root
	byRel := make(map[int]theory.Note, len(sorted))
	for _, n := range sorted[1:] {
		rel := mod12(n.PitchClass() - root.PitchClass())
		if _, ok := byRel[rel]; !ok {
			byRel[rel] = n
		}
	}

	m2 := hasRel(byRel, relMinor2nd)
	M2 := hasRel(byRel, relMajor2nd)
	has2 := m2 || M2
	m3 := hasRel(byRel, relMinor3rd)
	M3 := hasRel(byRel, relMajor3rd)
	has3 := m3 || M3
	P4 := hasRel(byRel, relPerfect4th)
	TT := hasRel(byRel, relTritone)
	P5 := hasRel(byRel, relPerfect5th)
	m6 := hasRel(byRel, relMinor6th)
	M6 := hasRel(byRel, relMajor6th)
	has6 := m6 || M6
	m7 := hasRel(byRel, relMinor7th)
	M7 := hasRel(byRel, relMajor7th)
	has7 := m7 || M7

	reroot := func(rel int) (Classification, error) {
		if depth > 0 {
			return Classification{}, fmt.Errorf("%w: no stable root", ErrUnclassifiedChord)
		}
		newRoot := byRel[rel]
		return classify(newRoot, notes, root, true, depth+1)
	}

	out := Classification{Root: root, Bass: bass, Inverted: inverted}
	var ext strings.Builder

	switch {
	case !has3:
		switch {
		case P4 && P5:
			out.Sus = true
		case P4 && has6:
			return reroot(relPerfect4th)
		case has2 && (P4 || TT) && has6:
			if m2 {
				return reroot(relMinor2nd)
			}
			return reroot(relMajor2nd)
		default:
			return Classification{}, fmt.Errorf("%w: no third or suspension", ErrUnclassifiedChord)
		}
	// M3+m6 without a 5th is the augmented triad, not a sixth-chord
	// inversion: its shape is symmetric, so re-rooting would never settle.
	case has6 && !TT && !P5 && !(M3 && m6):
		if m6 {
			return reroot(relMinor6th)
		}
		return reroot(relMajor6th)
	default:
		if M3 {
			if m6 && !P5 {
				out.Triad = TriadAugmented
			} else {
				out.Triad = TriadMajor
			}
		} else {
			if !TT || P5 {
				out.Triad = TriadMinor
			} else {
				out.Triad = TriadDiminished
			}
		}
	}

	// a major 6th on a diminished triad with no 7th is a fully-diminished
	// 7th chord, any other bare 6th is a sixth chord
	if has6 && !has7 {
		if out.Triad == TriadDiminished && M6 {
			out.SeventhChord = true
			out.DiminishedType = "fully"
		} else if out.Triad != "" {
			out.SixthChord = true
			if M6 {
				if M2 {
					ext.WriteString("(6/9)")
				} else {
					ext.WriteString("6")
				}
			} else {
				ext.WriteString("(b6)")
			}
		}
	}

	if !has7 {
		if TT && !P5 && out.Triad != TriadDiminished && out.Triad != "" {
			ext.WriteString("(b5)")
		}
		if m2 {
			ext.WriteString("(addb9)")
		} else if M2 && !M6 {
			ext.WriteString("(add9)")
		}
	}

	if out.Triad == TriadDiminished && m7 {
		out.DiminishedType = "half"
	}

	if has7 {
		out.SeventhChord = true
		if M3 && M7 {
			ext.WriteString("maj")
		}
		if M6 {
			ext.WriteString("13")
		} else if M2 {
			ext.WriteString("9")
		}
		if !M3 && M7 {
			ext.WriteString("(maj7)")
		} else if !M6 && !M2 {
			ext.WriteString("7")
		}
		if TT && !P5 && out.Triad != TriadDiminished {
			ext.WriteString("(b5)")
		}
		if m2 {
			ext.WriteString("(b9)")
		}
		if m6 {
			ext.WriteString("(b13)")
		}
	}

	if out.DiminishedType == "fully" {
		if M2 {
			ext.WriteString("9")
		}
		if M7 {
			ext.WriteString("(maj7)")
		} else if !M2 {
			ext.WriteString("7")
		}
		if m2 {
			ext.WriteString("(b9)")
		}
	}

	if M3 && m3 {
		ext.WriteString("(#9)")
	}
	if P4 && has3 {
		ext.WriteString("(add4)")
	}
	if TT && P5 {
		ext.WriteString("(#11)")
	}

	out.Extensions = ext.String()
	return out, nil
}

func hasRel(byRel map[int]theory.Note, rel int) bool {
	_, ok := byRel[rel]
	return ok
}

func mod12(v int) int {
	v %= 12
	if v < 0 {
		v += 12
	}
	return v
}

// ScaleTriads stacks a triad on every degree of a spelled scale, taking
// the 3rd and 5th from two and four degrees up (wrapping), and classifies
// each stack.
func ScaleTriads(spelling []theory.Note) ([]Classification, error) {
	if len(spelling) == 0 {
		return nil, nil
	}
	triads := make([]Classification, 0, len(spelling))
	for i, n := range spelling {
		third := spelling[(i+2)%len(spelling)]
		fifth := spelling[(i+4)%len(spelling)]
		c, err := Classify(n, third, fifth)
		if err != nil {
			return nil, fmt.Errorf("degree %d: %w", i+1, err)
		}
		triads = append(triads, c)
	}
	return triads, nil
}
