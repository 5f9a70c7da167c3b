package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseNames are the valid base interval tokens, unison through 7th.
var BaseNames = [7]string{"uni", "2nd", "3rd", "4th", "5th", "6th", "7th"}

// Half-step values per base: the perfect or minor value, and the major value
// (-1 where no major/minor form exists).
var (
	baseValues  = [7]int{0, 1, 3, 5, 7, 8, 10}
	majorValues = [7]int{-1, 2, 4, -1, -1, 9, 11}
)

type qualityKind int

const (
	perfect qualityKind = iota
	major
	minor
	augmented
	diminished
)

// Interval is an immutable musical interval: a quality (perfect, major,
// minor, or augmented/diminished a number of times), a base degree (unison
// through 7th) and a non-negative octave displacement.
type Interval struct {
	kind     qualityKind
	times    int // 1 or more for augmented/diminished, 0 otherwise
	base     int // 0 (unison) .. 6 (7th)
	displace int
}

// NewInterval builds an interval from a quality token ("maj", "min", "per",
// "aug", "dim", optionally "aug2"/"dim3" for multiples), a base token (see
// BaseNames) and an octave displacement. A unison displaced by 1 is a
// perfect octave.
func NewInterval(quality, base string, displace int) (Interval, error) {
	baseIdx := -1
	base = strings.ToLower(strings.TrimSpace(base))
	for i, name := range BaseNames {
		if base == name {
			baseIdx = i
			break
		}
	}
	if baseIdx < 0 {
		return Interval{}, fmt.Errorf("%w: invalid base %q", ErrInvalidIntervalQuality, base)
	}
	kind, times, err := parseQuality(quality)
	if err != nil {
		return Interval{}, err
	}
	hasMajorForm := majorValues[baseIdx] >= 0
	if hasMajorForm && kind == perfect {
		return Interval{}, fmt.Errorf("%w: a %s cannot be perfect", ErrInvalidIntervalBaseQualityCombination, base)
	}
	if !hasMajorForm && (kind == major || kind == minor) {
		return Interval{}, fmt.Errorf("%w: a %s cannot be major or minor", ErrInvalidIntervalBaseQualityCombination, base)
	}
	if displace < 0 {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidDisplacement, displace)
	}
	return Interval{kind: kind, times: times, base: baseIdx, displace: displace}, nil
}

func parseQuality(quality string) (qualityKind, int, error) {
	q := strings.ToLower(strings.TrimSpace(quality))
	switch q {
	case "maj":
		return major, 0, nil
	case "min":
		return minor, 0, nil
	case "per":
		return perfect, 0, nil
	}
	var kind qualityKind
	switch {
	case strings.HasPrefix(q, "aug"):
		kind = augmented
	case strings.HasPrefix(q, "dim"):
		kind = diminished
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidIntervalQuality, quality)
	}
	times := 1
	if suffix := q[3:]; suffix != "" {
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidIntervalQuality, quality)
		}
		times = n
	}
	return kind, times, nil
}

// Quality returns the interval's quality token, e.g. "maj" or "dim2".
func (iv Interval) Quality() string {
	switch iv.kind {
	case major:
		return "maj"
	case minor:
		return "min"
	case perfect:
		return "per"
	case augmented:
		if iv.times > 1 {
			return "aug" + strconv.Itoa(iv.times)
		}
		return "aug"
	default:
		if iv.times > 1 {
			return "dim" + strconv.Itoa(iv.times)
		}
		return "dim"
	}
}

// Base returns the base token, e.g. "uni" or "3rd".
func (iv Interval) Base() string { return BaseNames[iv.base] }

// Displace returns the number of octaves the interval is displaced.
func (iv Interval) Displace() int { return iv.displace }

// LetterDifference is the number of letter degrees changed by the interval.
func (iv Interval) LetterDifference() int { return iv.base }

// Difference is the interval's size in half steps.
func (iv Interval) Difference() int {
	d := 12 * iv.displace
	switch iv.kind {
	case perfect, minor:
		return baseValues[iv.base] + d
	case major:
		return majorValues[iv.base] + d
	case augmented:
		if majorValues[iv.base] >= 0 {
			return majorValues[iv.base] + iv.times + d
		}
		return baseValues[iv.base] + iv.times + d
	default: // diminished
		return baseValues[iv.base] - iv.times + d
	}
}

// Name is a readable description of the interval, e.g. "Major 3rd",
// "Perfect octave", "Augmented(x2) unison" or "Minor 10th".
func (iv Interval) Name() string {
	if iv.base == 0 && iv.kind == perfect && iv.displace > 1 {
		return fmt.Sprintf("%d octaves", iv.displace)
	}
	var base string
	if iv.displace == 1 {
		if iv.base == 0 {
			base = "octave"
		} else {
			base = strconv.Itoa(iv.base+8) + "th"
		}
	} else if iv.base == 0 {
		base = "unison"
	} else {
		base = BaseNames[iv.base]
	}
	var quality string
	switch iv.kind {
	case major:
		quality = "Major"
	case minor:
		quality = "Minor"
	case perfect:
		quality = "Perfect"
	case augmented:
		quality = "Augmented"
	default:
		quality = "Diminished"
	}
	if iv.times > 1 {
		quality += fmt.Sprintf("(x%d)", iv.times)
	}
	name := quality + " " + base
	if iv.displace > 1 {
		name += fmt.Sprintf(" plus %d octaves", iv.displace)
	}
	return name
}

func (iv Interval) String() string { return iv.Name() }

// Direction selects how a simple interval between two notes is measured.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// The twelve canonical simple intervals indexed by pitch-class difference.
var simpleIntervals = [12]Interval{
	{kind: perfect, base: 0},
	{kind: minor, base: 1},
	{kind: major, base: 1},
	{kind: minor, base: 2},
	{kind: major, base: 2},
	{kind: perfect, base: 3},
	{kind: augmented, times: 1, base: 3},
	{kind: perfect, base: 4},
	{kind: minor, base: 5},
	{kind: major, base: 5},
	{kind: minor, base: 6},
	{kind: major, base: 6},
}

// SimpleIntervalBetween measures the interval between two notes ignoring
// octave values and strict enharmonic naming: only the pitch-class
// difference in the given direction matters.
func SimpleIntervalBetween(a, b Note, dir Direction) (Interval, error) {
	if a.rest || b.rest {
		return Interval{}, ErrRestHasNoPitch
	}
	var diff int
	if dir == Descending {
		diff = a.PitchClass() - b.PitchClass()
	} else {
		diff = b.PitchClass() - a.PitchClass()
	}
	return simpleIntervals[mod12(diff)], nil
}

// IntervalBetween measures the strict, octave-aware interval between two
// notes. Both notes must carry octave values; the notes' order does not
// matter, the lower pitch is taken as the starting point.
func IntervalBetween(a, b Note) (Interval, error) {
	hpA, err := a.HardPitch()
	if err != nil {
		return Interval{}, err
	}
	hpB, err := b.HardPitch()
	if err != nil {
		return Interval{}, err
	}
	lower, higher := a, b
	if hpA > hpB {
		lower, higher = b, a
		hpA, hpB = hpB, hpA
	}
	letterDiff := mod7(higher.letter - lower.letter)
	pitchDiff := hpB - hpA
	displace := pitchDiff / 12
	pitchDiff %= 12

	minVal, majVal := baseValues[letterDiff], majorValues[letterDiff]
	out := Interval{base: letterDiff, displace: displace}
	switch {
	case pitchDiff == minVal && majVal >= 0:
		out.kind = minor
	case pitchDiff == minVal:
		out.kind = perfect
	case pitchDiff == majVal:
		out.kind = major
	case majVal >= 0 && pitchDiff > majVal:
		out.kind = augmented
		out.times = pitchDiff - majVal
	case pitchDiff > minVal:
		out.kind = augmented
		out.times = pitchDiff - minVal
	default:
		out.kind = diminished
		out.times = minVal - pitchDiff
	}
	return out, nil
}

// Add returns the note the given interval above this note. With an octave
// value present the octave-aware hard pitch is advanced and the spelling is
// reconciled to the expected letter; without one only the pitch class moves.
// The receiver's rhythm carries onto the result.
func (n Note) Add(iv Interval) (Note, error) {
	return n.step(iv, 1)
}

// Subtract returns the note the given interval below this note.
func (n Note) Subtract(iv Interval) (Note, error) {
	return n.step(iv, -1)
}

func (n Note) step(iv Interval, dir int) (Note, error) {
	if n.rest {
		return Note{}, ErrRestHasNoPitch
	}
	letter := mod7(n.letter + dir*iv.LetterDifference())

	var out Note
	if n.hasOctave {
		hp, err := n.HardPitch()
		if err != nil {
			return Note{}, err
		}
		target := hp + dir*iv.Difference()
		out = NoteFromHardPitch(target, false)
		if out.letter != letter {
			if e, err := out.Enharmonic(PreferNone, false); err == nil && e.letter == letter {
				out = e
			} else if e, err := out.Enharmonic(PreferNone, true); err == nil && e.letter == letter {
				out = e
			} else {
				// cross-natural target spelling: resolve on the expected
				// letter directly, keeping the hard pitch intact
				resolved, err := NoteFromValues(letter, mod12(target))
				if err != nil {
					return Note{}, err
				}
				resolved.hasOctave = true
				resolved.octave = (target - resolved.PitchClass()) / 12
				out = resolved
			}
		}
	} else {
		simple := iv.Difference() - 12*iv.Displace()
		pc := mod12(n.PitchClass() + dir*simple)
		resolved, err := NoteFromValues(letter, pc)
		if err != nil {
			return Note{}, err
		}
		out = resolved
	}

	out.rhythm = n.rhythm
	out.hasRhythm = n.hasRhythm
	return out, nil
}
