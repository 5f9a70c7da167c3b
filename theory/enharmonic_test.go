package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnharmonicSingleAccidental(t *testing.T) {
	cases := []struct {
		in     string
		prefer Preference
		want   string
	}{
		{"C#", PreferNone, "Db"},
		{"Db", PreferNone, "C#"},
		{"C#", PreferSharp, "C#"},
		{"Db", PreferFlat, "Db"},
		{"A#", PreferFlat, "Bb"},
		{"Bb", PreferSharp, "A#"},
		{"Cb", PreferNone, "B"},
		{"E#", PreferNone, "F"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s prefer %v", c.in, c.prefer), func(t *testing.T) {
			out, err := mustNote(t, c.in).Enharmonic(c.prefer, false)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, out.NoteName())
		})
	}
}

func TestEnharmonicNaturalIsUnchanged(t *testing.T) {
	for _, name := range []string{"C", "D", "E", "F", "G", "A", "B"} {
		out, err := mustNote(t, name).Enharmonic(PreferNone, false)
		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(name, out.NoteName())
	}
}

func TestEnharmonicGrossSpellings(t *testing.T) {
	cases := []struct {
		in     string
		prefer Preference
		want   string
	}{
		{"B", PreferNone, "Cb"},
		{"C", PreferNone, "B#"},
		{"E", PreferNone, "Fb"},
		{"F", PreferNone, "E#"},
		// the preferred sign wins over the special spelling
		{"C", PreferFlat, "C"},
		{"F", PreferFlat, "F"},
		{"B", PreferSharp, "B"},
		{"E", PreferSharp, "E"},
		// non-boundary naturals have no gross spelling
		{"D", PreferNone, "D"},
		{"G", PreferNone, "G"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			out, err := mustNote(t, c.in).Enharmonic(c.prefer, true)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, out.NoteName())
		})
	}
}

func TestEnharmonicReducesMultipleAccidentals(t *testing.T) {
	cases := []struct {
		in     string
		prefer Preference
		want   string
	}{
		{"F##", PreferNone, "G"},
		{"Gbb", PreferNone, "F"},
		{"C##", PreferNone, "D"},
		{"Fbb", PreferNone, "Eb"},
		{"Fbb", PreferSharp, "D#"},
		{"G###", PreferNone, "A#"},
		{"G###", PreferFlat, "Bb"},
		{"Dbbb", PreferNone, "B"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			out, err := mustNote(t, c.in).Enharmonic(c.prefer, false)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, out.NoteName())
		})
	}
}

// Rewriting may change both letter and accidentals, never the pitch class.
func TestEnharmonicPreservesPitchClass(t *testing.T) {
	var names []string
	for _, letter := range []string{"C", "D", "E", "F", "G", "A", "B"} {
		for _, accidentals := range []string{"", "#", "b", "##", "bb", "###", "bbb"} {
			names = append(names, letter+accidentals)
		}
	}

	for _, name := range names {
		for _, prefer := range []Preference{PreferNone, PreferSharp, PreferFlat} {
			for _, gross := range []bool{false, true} {
				t.Run(fmt.Sprintf("%s prefer %v gross %v", name, prefer, gross), func(t *testing.T) {
					n := mustNote(t, name)
					out, err := n.Enharmonic(prefer, gross)
					assert := assert.New(t)
					assert.NoError(err)
					assert.Equal(n.PitchClass(), out.PitchClass())
				})
			}
		}
	}
}

func TestEnharmonicPreservesOctaveAndRhythm(t *testing.T) {
	assert := assert.New(t)

	rhythm, err := NewRhythm(4, 1, true)
	assert.NoError(err)
	n, err := mustNote(t, "C#").WithOctave(4)
	assert.NoError(err)
	n = n.WithRhythm(rhythm)

	out, err := n.Enharmonic(PreferNone, false)
	assert.NoError(err)
	assert.Equal("Db", out.NoteName())

	octave, ok := out.Octave()
	assert.True(ok)
	assert.Equal(4, octave)

	got, ok := out.Rhythm()
	assert.True(ok)
	assert.Equal(rhythm, got)
}

func TestEnharmonicOnRest(t *testing.T) {
	_, err := mustNote(t, "R").Enharmonic(PreferNone, false)
	assert.ErrorIs(t, err, ErrRestHasNoEnharmonic)
}
