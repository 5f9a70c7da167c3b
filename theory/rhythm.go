package theory

import "fmt"

var rhythmNames = [11]string{
	"double whole",
	"whole",
	"half",
	"quarter",
	"8th",
	"16th",
	"32nd",
	"64th",
	"128th",
	"256th",
	"512th",
}

// Rhythm is the notated value of a note: a base value index (0 for a double
// whole note up to 10 for a 512th note), a dot count, and a triplet flag.
// The zero value is not a valid rhythm; notes track rhythm presence
// separately. Duration arithmetic is deliberately not modeled here.
type Rhythm struct {
	index   int
	dots    int
	triplet bool
}

func NewRhythm(index, dots int, triplet bool) (Rhythm, error) {
	if index < 0 || index > 10 {
		return Rhythm{}, fmt.Errorf("%w: %d", ErrInvalidRhythmIndex, index)
	}
	if dots < 0 {
		return Rhythm{}, fmt.Errorf("%w: %d", ErrInvalidDotCount, dots)
	}
	return Rhythm{index: index, dots: dots, triplet: triplet}, nil
}

func (r Rhythm) Index() int    { return r.index }
func (r Rhythm) Dots() int     { return r.dots }
func (r Rhythm) Triplet() bool { return r.triplet }

// Name describes the rhythm, e.g. "quarter", "dotted half",
// "dotted(x2) 8th triplet".
func (r Rhythm) Name() string {
	name := rhythmNames[r.index]
	if r.dots == 1 {
		name = "dotted " + name
	} else if r.dots > 1 {
		name = fmt.Sprintf("dotted(x%d) %s", r.dots, name)
	}
	if r.triplet {
		name += " triplet"
	}
	return name
}
