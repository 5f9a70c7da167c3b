package chord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottMorse/Music-Tools/theory"
)

func mustNote(t *testing.T, name string) theory.Note {
	t.Helper()
	n, err := theory.NewNote(name)
	require.NoError(t, err)
	return n
}

func noteNames(notes []theory.Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.NoteName()
	}
	return names
}

func TestBuildTriads(t *testing.T) {
	cases := []struct {
		root    string
		quality string
		want    []string
	}{
		{"C", "maj", []string{"C", "E", "G"}},
		{"C", "min", []string{"C", "Eb", "G"}},
		{"C", "aug", []string{"C", "E", "G#"}},
		{"C", "dim", []string{"C", "Eb", "Gb"}},
		{"C", "sus", []string{"C", "F", "G"}},
		{"C", "5", []string{"C", "G"}},
		{"F#", "maj", []string{"F#", "A#", "C#"}},
		{"Eb", "min", []string{"Eb", "Gb", "Bb"}},
	}

	for _, c := range cases {
		t.Run(c.root+" "+c.quality, func(t *testing.T) {
			built, err := Build(mustNote(t, c.root), c.quality)
			require.NoError(t, err)
			assert.Equal(t, c.want, noteNames(built.Notes()))
		})
	}
}

func TestBuildExtensions(t *testing.T) {
	cases := []struct {
		root    string
		quality string
		exts    []string
		want    []string
	}{
		{"C", "maj", []string{"7"}, []string{"C", "E", "G", "Bb"}},
		{"C", "maj", []string{"maj7"}, []string{"C", "E", "G", "B"}},
		{"C", "min", []string{"7"}, []string{"C", "Eb", "G", "Bb"}},
		// 9 implies the 7th
		{"C", "maj", []string{"9"}, []string{"C", "D", "E", "G", "Bb"}},
		// 13 implies the 9th and 7th
		{"C", "maj", []string{"13"}, []string{"C", "D", "E", "G", "A", "Bb"}},
		{"C", "maj", []string{"maj7", "9"}, []string{"C", "D", "E", "G", "B"}},
		// dim with an implied 7th takes the fully-diminished 7th
		{"C", "dim", []string{"9"}, []string{"C", "D", "Eb", "Gb", "A"}},
		{"C", "dim", []string{"dim7"}, []string{"C", "Eb", "Gb", "Bbb"}},
		{"C", "maj", []string{"6"}, []string{"C", "E", "G", "A"}},
		{"C", "maj", []string{"add9"}, []string{"C", "D", "E", "G"}},
		{"C", "maj", []string{"7", "b5"}, []string{"C", "E", "Gb", "Bb"}},
		{"C", "maj", []string{"7", "#5"}, []string{"C", "E", "G#", "Bb"}},
		{"C", "maj", []string{"7", "b9"}, []string{"C", "Db", "E", "G", "Bb"}},
		{"C", "maj", []string{"7", "#11"}, []string{"C", "E", "F#", "G", "Bb"}},
	}

	for _, c := range cases {
		t.Run(c.root+" "+c.quality+" "+strings.Join(c.exts, ","), func(t *testing.T) {
			built, err := Build(mustNote(t, c.root), c.quality, c.exts...)
			require.NoError(t, err)
			assert.Equal(t, c.want, noteNames(built.Notes()))
		})
	}
}

func TestBuildValidation(t *testing.T) {
	root := mustNote(t, "C")

	_, err := Build(root, "hendrix")
	assert.ErrorIs(t, err, ErrInvalidChordQuality)

	_, err = Build(root, "maj", "b15")
	assert.ErrorIs(t, err, ErrInvalidExtensionToken)

	_, err = Build(mustNote(t, "R"), "maj")
	assert.ErrorIs(t, err, ErrInvalidChordNote)
}

func TestClassifySymbols(t *testing.T) {
	cases := []struct {
		root   string
		others []string
		want   string
	}{
		{"C", []string{"E", "G"}, "C"},
		{"C", []string{"Eb", "G"}, "Cm"},
		{"C", []string{"E", "G#"}, "C+"},
		{"C", []string{"E", "G#", "Bb"}, "C+7(b13)"},
		{"C", []string{"E", "G#", "B"}, "C+maj7(b13)"},
		{"C", []string{"Eb", "Gb"}, "C°"},
		{"C", []string{"F", "G"}, "Csus"},
		{"C", []string{"E", "G", "Bb"}, "C7"},
		{"C", []string{"E", "G", "B"}, "Cmaj7"},
		{"C", []string{"Eb", "G", "Bb"}, "Cm7"},
		{"C", []string{"Eb", "Gb", "Bb"}, "C%7"},
		{"C", []string{"Eb", "Gb", "A"}, "C°7"},
		{"C", []string{"E", "G", "B", "D"}, "Cmaj9"},
		{"C", []string{"E", "G", "Bb", "D"}, "C9"},
		{"C", []string{"E", "G", "Bb", "D", "A"}, "C13"},
		{"C", []string{"E", "G", "A"}, "C6"},
		{"C", []string{"E", "G", "A", "D"}, "C(6/9)"},
		{"C", []string{"E", "G", "D"}, "C(add9)"},
		{"C", []string{"E", "Gb", "Bb"}, "C7(b5)"},
		{"C", []string{"E", "G", "Bb", "Db"}, "C7(b9)"},
		{"C", []string{"E", "G", "Bb", "Ab"}, "C7(b13)"},
		{"C", []string{"E", "G", "Bb", "F#"}, "C7(#11)"},
		{"C", []string{"E", "G", "Bb", "Eb"}, "C7(#9)"},
		{"C", []string{"E", "G", "F"}, "C(add4)"},
		{"D", []string{"F", "A", "C"}, "Dm7"},
		{"F#", []string{"A#", "C#", "E#"}, "F#maj7"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			got, err := ClassifyNames(c.root, c.others...)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Symbol())
		})
	}
}

func TestClassifyInversions(t *testing.T) {
	// E G C is a first-inversion C major triad: the 6th above E with no
	// fifth re-roots the classification on C
	got, err := ClassifyNames("E", "G", "C")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Root.NoteName())
	assert.True(t, got.Inverted)
	assert.Equal(t, "E", got.Bass.NoteName())
	assert.Equal(t, "C/E", got.Symbol())

	// G C E is the second inversion
	got, err = ClassifyNames("G", "C", "E")
	require.NoError(t, err)
	assert.Equal(t, "C/G", got.Symbol())
}

func TestClassifyUnclassified(t *testing.T) {
	_, err := ClassifyNames("C", "Db", "D")
	assert.ErrorIs(t, err, ErrUnclassifiedChord)
}

func TestClassifyIdempotent(t *testing.T) {
	built, err := Build(mustNote(t, "C"), "maj", "9")
	require.NoError(t, err)

	first, err := Classify(built.Notes()[0], built.Notes()[1:]...)
	require.NoError(t, err)

	second, err := Classify(first.Root, built.Notes()[1:]...)
	require.NoError(t, err)
	assert.Equal(t, first.Symbol(), second.Symbol())
}

func TestClassifyDuplicatePitchClasses(t *testing.T) {
	got, err := ClassifyNames("C", "E", "G", "E", "G")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Symbol())
}

func TestScaleTriads(t *testing.T) {
	spelling := []theory.Note{
		mustNote(t, "C"), mustNote(t, "D"), mustNote(t, "E"),
		mustNote(t, "F"), mustNote(t, "G"), mustNote(t, "A"),
		mustNote(t, "B"),
	}
	triads, err := ScaleTriads(spelling)
	require.NoError(t, err)
	require.Len(t, triads, 7)

	symbols := make([]string, len(triads))
	for i, c := range triads {
		symbols[i] = c.Symbol()
	}
	assert.Equal(t, []string{"C", "Dm", "Em", "F", "G", "Am", "B°"}, symbols)
}

func TestScaleTriadsHarmonicMinor(t *testing.T) {
	// degree III is an augmented triad
	spelling := []theory.Note{
		mustNote(t, "C"), mustNote(t, "D"), mustNote(t, "Eb"),
		mustNote(t, "F"), mustNote(t, "G"), mustNote(t, "Ab"),
		mustNote(t, "B"),
	}
	triads, err := ScaleTriads(spelling)
	require.NoError(t, err)
	require.Len(t, triads, 7)

	symbols := make([]string, len(triads))
	for i, c := range triads {
		symbols[i] = c.Symbol()
	}
	assert.Equal(t, []string{"Cm", "D°", "Eb+", "Fm", "G", "Ab", "B°"}, symbols)
}
