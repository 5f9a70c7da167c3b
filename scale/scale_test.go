package scale

import (
	"os"
	"path/filepath"
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

func spell(t *testing.T, root, mode string) []string {
	t.Helper()
	m, err := New(mustNote(t, root), mode)
	require.NoError(t, err)
	names, err := m.StringSpelling()
	require.NoError(t, err)
	return names
}

func TestDiatonicSpellings(t *testing.T) {
	cases := []struct {
		root string
		mode string
		want []string
	}{
		{"C", "major", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"D", "dorian", []string{"D", "E", "F", "G", "A", "B", "C"}},
		{"G", "mixolydian", []string{"G", "A", "B", "C", "D", "E", "F"}},
		{"A", "minor", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"A", "aeolian", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"E", "phrygian", []string{"E", "F", "G", "A", "B", "C", "D"}},
		{"F", "lydian", []string{"F", "G", "A", "B", "C", "D", "E"}},
		{"B", "locrian", []string{"B", "C", "D", "E", "F", "G", "A"}},
		{"Eb", "major", []string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
		{"F#", "major", []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{"Gb", "major", []string{"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"}},
		{"B", "major", []string{"B", "C#", "D#", "E", "F#", "G#", "A#"}},
		{"C", "harmonic minor", []string{"C", "D", "Eb", "F", "G", "Ab", "B"}},
		{"C", "melodic minor", []string{"C", "D", "Eb", "F", "G", "A", "B"}},
		{"G", "harmonic minor", []string{"G", "A", "Bb", "C", "D", "Eb", "F#"}},
	}

	for _, c := range cases {
		t.Run(c.root+" "+c.mode, func(t *testing.T) {
			assert.Equal(t, c.want, spell(t, c.root, c.mode))
		})
	}
}

func TestLetterPatternSpellings(t *testing.T) {
	cases := []struct {
		root string
		mode string
		want []string
	}{
		{"C", "major pentatonic", []string{"C", "D", "E", "G", "A"}},
		{"A", "minor pentatonic", []string{"A", "C", "D", "E", "G"}},
		{"C", "major blues", []string{"C", "D", "D#", "E", "G", "A"}},
		{"C", "minor blues", []string{"C", "Eb", "F", "F#", "G", "Bb"}},
		{"A", "blues", []string{"A", "C", "D", "D#", "E", "G"}},
		{"C", "augmented", []string{"C", "Eb", "E", "G", "G#", "B"}},
	}

	for _, c := range cases {
		t.Run(c.root+" "+c.mode, func(t *testing.T) {
			assert.Equal(t, c.want, spell(t, c.root, c.mode))
		})
	}
}

func TestSymmetricSpellings(t *testing.T) {
	cases := []struct {
		root string
		mode string
		want []string
	}{
		{"C", "chromatic", []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}},
		{"Db", "chromatic", []string{"Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C"}},
		{"C", "whole tone", []string{"C", "D", "E", "F#", "G#", "A#"}},
		{"Eb", "whole tone", []string{"Eb", "F", "G", "A", "B", "Db"}},
		{"C", "whole-half diminished", []string{"C", "D", "Eb", "F", "Gb", "Ab", "A", "B"}},
	}

	for _, c := range cases {
		t.Run(c.root+" "+c.mode, func(t *testing.T) {
			assert.Equal(t, c.want, spell(t, c.root, c.mode))
		})
	}
}

func TestSpellingPitchClasses(t *testing.T) {
	// every spelled note must land on the pitch class the step pattern
	// dictates, for every registered mode
	root := mustNote(t, "C")
	for _, name := range Names() {
		m, err := New(root, name)
		require.NoError(t, err)
		notes, err := m.Spelling()
		require.NoError(t, err)

		def, offset, err := resolve(name)
		require.NoError(t, err)
		assert.Len(t, notes, len(def.Steps), name)

		pitch := root.PitchClass()
		for i, n := range notes {
			assert.Equal(t, pitch, n.PitchClass(), "%s degree %d", name, i+1)
			idx := (offset + i) % len(def.Steps)
			pitch = mod12(pitch + def.Steps[idx])
		}
	}
}

func TestModeName(t *testing.T) {
	m, err := New(mustNote(t, "Eb"), "dorian")
	require.NoError(t, err)
	assert.Equal(t, "Eb dorian", m.Name())
}

func TestModeRootDropsOctave(t *testing.T) {
	root, err := mustNote(t, "C").WithOctave(4)
	require.NoError(t, err)
	m, err := New(root, "major")
	require.NoError(t, err)

	_, hasOctave := m.Root().Octave()
	assert.False(t, hasOctave)
}

func TestNewModeErrors(t *testing.T) {
	_, err := New(mustNote(t, "C"), "superduperlocrian")
	assert.ErrorIs(t, err, ErrInvalidModeName)

	_, err = New(mustNote(t, "R"), "major")
	assert.ErrorIs(t, err, ErrInvalidModeRoot)
}

func TestRegisterValidation(t *testing.T) {
	assert := assert.New(t)

	assert.ErrorIs(Register("", Definition{Steps: []int{12}}), ErrInvalidDefinition)
	assert.ErrorIs(Register("short", Definition{Steps: []int{2, 2}}), ErrInvalidDefinition)
	assert.ErrorIs(Register("mismatched", Definition{
		Steps:       []int{2, 2, 3, 2, 3},
		LetterSteps: []int{1, 1},
	}), ErrInvalidDefinition)
	assert.ErrorIs(Register("orphan", Definition{Parent: "no such parent", Rotation: 1}), ErrInvalidDefinition)
	assert.ErrorIs(Register("too far", Definition{Parent: "ionian", Rotation: 8}), ErrInvalidDefinition)
}

func TestRegisterDerived(t *testing.T) {
	require.NoError(t, RegisterDerived("hypodorian", "ionian5"))
	t.Cleanup(func() { delete(registry, "hypodorian") })

	got := spell(t, "G", "hypodorian")
	assert.Equal(t, spell(t, "G", "mixolydian"), got)
}

func TestLoadDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.yaml")
	content := `modes:
  hirajoshi:
    steps: [2, 1, 4, 1, 4]
  hirajoshi 2:
    parent: hirajoshi
    rotation: 2
  spanish:
    derived: ionian3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, LoadDefinitions(path))
	t.Cleanup(func() {
		delete(registry, "hirajoshi")
		delete(registry, "hirajoshi 2")
		delete(registry, "spanish")
	})

	got := spell(t, "C", "hirajoshi")
	assert.Equal(t, []string{"C", "D", "Eb", "G", "Ab"}, got)
	assert.Equal(t, spell(t, "E", "phrygian"), spell(t, "E", "spanish"))
}
