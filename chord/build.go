package chord

import (
	"fmt"
	"sort"

	"github.com/ScottMorse/Music-Tools/theory"
	"github.com/ScottMorse/Music-Tools/util"
)

// Qualities are the valid chord quality tokens.
var Qualities = []string{"maj", "min", "aug", "dim", "sus", "5"}

type extensionInterval struct {
	quality string
	base    string
}

// Extension tokens and the interval each one adds above the root.
var extensions = map[string]extensionInterval{
	"b9":    {"min", "2nd"},
	"addb9": {"min", "2nd"},
	"2":     {"maj", "2nd"},
	"9":     {"maj", "2nd"},
	"add9":  {"maj", "2nd"},
	"#9":    {"aug", "2nd"},
	"add4":  {"per", "4th"},
	"add11": {"per", "4th"},
	"#11":   {"aug", "4th"},
	"b5":    {"dim", "5th"},
	"#5":    {"aug", "5th"},
	"b6":    {"min", "6th"},
	"b13":   {"min", "6th"},
	"6":     {"maj", "6th"},
	"13":    {"maj", "6th"},
	"dim7":  {"dim", "7th"},
	"7":     {"min", "7th"},
	"maj7":  {"maj", "7th"},
}

// ExtensionTokens lists the valid extension tokens, sorted.
func ExtensionTokens() []string {
	return util.GetSortedKeys(extensions)
}

// Tone is one chord tone: its role name, the interval above the root that
// produces it, and the resulting note.
type Tone struct {
	Name     string
	Interval theory.Interval
	Note     theory.Note
}

// Chord is a stack of tones built from a root, a quality and extension
// tokens. Extensions may imply others: "13" implies the 9th and 7th, and a
// diminished quality with an implied 7th uses the fully-diminished 7th (a
// major 6th above the root).
type Chord struct {
	root       theory.Note
	quality    string
	extensions []string
	tones      []Tone
	notes      []theory.Note
}

// Build constructs a chord from a root note, a quality token and extension
// tokens.
func Build(root theory.Note, quality string, exts ...string) (Chord, error) {
	if root.IsRest() {
		return Chord{}, fmt.Errorf("%w: rest", ErrInvalidChordNote)
	}
	valid := false
	for _, q := range Qualities {
		if quality == q {
			valid = true
			break
		}
	}
	if !valid {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChordQuality, quality)
	}
	for _, ext := range exts {
		if _, ok := extensions[ext]; !ok {
			return Chord{}, fmt.Errorf("%w: %q", ErrInvalidExtensionToken, ext)
		}
	}

	tones, err := chordTones(quality, exts)
	if err != nil {
		return Chord{}, err
	}

	c := Chord{root: root, quality: quality, extensions: exts}
	c.tones = make([]Tone, 0, len(tones))
	for _, tone := range tones {
		note, err := root.Add(tone.Interval)
		if err != nil {
			return Chord{}, err
		}
		tone.Note = note
		c.tones = append(c.tones, tone)
	}

	notes := make([]theory.Note, 0, len(c.tones)+1)
	notes = append(notes, root)
	for _, tone := range c.tones {
		notes = append(notes, tone.Note)
	}
	c.notes = sortFromRoot(root, notes)
	return c, nil
}

type hasExt map[string]bool

func extSet(exts []string) hasExt {
	set := make(hasExt, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}

// chordTones resolves a quality and extension tokens to an ordered list of
// named tones. Order matters for presentation, not pitch: third, fifth,
// then implied and literal extensions.
func chordTones(quality string, exts []string) ([]Tone, error) {
	has := extSet(exts)
	var tones []Tone

	set := func(name, ivQuality, ivBase string) error {
		iv, err := theory.NewInterval(ivQuality, ivBase, 0)
		if err != nil {
			return err
		}
		for i := range tones {
			if tones[i].Name == name {
				tones[i].Interval = iv
				return nil
			}
		}
		tones = append(tones, Tone{Name: name, Interval: iv})
		return nil
	}
	setExt := func(name, token string) error {
		e := extensions[token]
		return set(name, e.quality, e.base)
	}

	switch quality {
	case "maj":
		if err := set("third", "maj", "3rd"); err != nil {
			return nil, err
		}
	case "min":
		if err := set("third", "min", "3rd"); err != nil {
			return nil, err
		}
	case "aug":
		if err := set("third", "maj", "3rd"); err != nil {
			return nil, err
		}
	case "dim":
		if err := set("third", "min", "3rd"); err != nil {
			return nil, err
		}
	case "sus":
		if err := set("third", "per", "4th"); err != nil {
			return nil, err
		}
	}
	fifth := "per"
	switch quality {
	case "aug":
		fifth = "aug"
	case "dim":
		fifth = "dim"
	}
	if err := set("fifth", fifth, "5th"); err != nil {
		return nil, err
	}

	need7, need9 := false, false
	for _, token := range []string{"13", "b13"} {
		if has[token] {
			if err := setExt("13th", token); err != nil {
				return nil, err
			}
			need7, need9 = true, true
			break
		}
	}
	got9 := false
	for _, token := range []string{"9", "#9", "b9"} {
		if has[token] {
			if err := setExt("9th", token); err != nil {
				return nil, err
			}
			need7, need9 = true, false
			got9 = true
			break
		}
	}
	if !got9 && need9 {
		if err := set("9th", "maj", "2nd"); err != nil {
			return nil, err
		}
	}
	got7 := false
	for _, token := range []string{"7", "maj7", "dim7"} {
		if has[token] {
			if err := setExt("7th", token); err != nil {
				return nil, err
			}
			need7 = false
			got7 = true
			break
		}
	}
	if !got7 && need7 {
		// an implied diminished 7th is spelled a major 6th above the root
		if quality == "dim" {
			if err := set("7th", "maj", "6th"); err != nil {
				return nil, err
			}
		} else {
			if err := set("7th", "min", "7th"); err != nil {
				return nil, err
			}
		}
	}
	for _, token := range []string{"2", "addb9", "add9"} {
		if has[token] {
			if err := setExt("2nd", token); err != nil {
				return nil, err
			}
			break
		}
	}
	for _, token := range []string{"b5", "#5"} {
		if has[token] {
			if err := setExt("fifth", token); err != nil {
				return nil, err
			}
		}
	}
	for _, token := range []string{"addb9", "add9", "2", "add4", "#11", "b6", "6"} {
		if has[token] {
			if err := setExt(token, token); err != nil {
				return nil, err
			}
		}
	}
	return tones, nil
}

// Root returns the root note.
func (c Chord) Root() theory.Note { return c.root }

// Quality returns the quality token.
func (c Chord) Quality() string { return c.quality }

// Extensions returns the extension tokens the chord was built with.
func (c Chord) Extensions() []string { return c.extensions }

// Tones returns the named chord tones in presentation order.
func (c Chord) Tones() []Tone { return c.tones }

// Notes returns the chord's notes ascending from the root, duplicate pitch
// classes removed.
func (c Chord) Notes() []theory.Note { return c.notes }

// Name describes the chord, e.g. "C maj 7 9".
func (c Chord) Name() string {
	name := c.root.NoteName() + " " + c.quality
	for _, ext := range c.extensions {
		name += " " + ext
	}
	return name
}

func (c Chord) String() string { return c.Name() }

// sortFromRoot orders notes ascending by pitch class relative to the root,
// the root first, keeping insertion order for ties and dropping notes whose
// pitch class already appeared.
func sortFromRoot(root theory.Note, notes []theory.Note) []theory.Note {
	rootPitch := root.PitchClass()
	relative := func(n theory.Note) int {
		rel := n.PitchClass() - rootPitch
		if rel < 0 {
			rel += 12
		}
		return rel
	}
	sorted := make([]theory.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return relative(sorted[i]) < relative(sorted[j])
	})

	out := sorted[:0]
	seen := make(map[int]bool, len(sorted))
	for _, n := range sorted {
		rel := relative(n)
		if seen[rel] {
			continue
		}
		seen[rel] = true
		out = append(out, n)
	}
	return out
}
