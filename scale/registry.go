package scale

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ScottMorse/Music-Tools/theory"
	"github.com/ScottMorse/Music-Tools/util"
)

// Definition describes a mode pattern. A base definition carries Steps,
// the semitone step sizes that walk one full octave (they must sum to 12),
// and optionally LetterSteps, the letter-degree increments walked alongside
// each semitone step. A derived definition instead names a Parent pattern
// and a 1-based Rotation into it, e.g. dorian is ionian rotated to degree 2.
type Definition struct {
	Steps       []int
	LetterSteps []int
	Parent      string
	Rotation    int

	// Gross keeps cross-natural spellings like Cb in the walked scale
	// instead of simplifying them.
	Gross bool

	// Prefer forces a sharp or flat convention for roots that carry no
	// accidental of their own.
	Prefer theory.Preference
}

var builtins = map[string]Definition{
	"ionian": {
		Steps:       []int{2, 2, 1, 2, 2, 2, 1},
		LetterSteps: []int{1, 1, 1, 1, 1, 1, 1},
	},
	"major":      {Parent: "ionian", Rotation: 1},
	"dorian":     {Parent: "ionian", Rotation: 2},
	"phrygian":   {Parent: "ionian", Rotation: 3},
	"lydian":     {Parent: "ionian", Rotation: 4},
	"mixolydian": {Parent: "ionian", Rotation: 5},
	"aeolian":    {Parent: "ionian", Rotation: 6},
	"minor":      {Parent: "ionian", Rotation: 6},
	"locrian":    {Parent: "ionian", Rotation: 7},

	"major pentatonic": {
		Steps:       []int{2, 2, 3, 2, 3},
		LetterSteps: []int{1, 1, 2, 1, 2},
	},
	"minor pentatonic": {Parent: "major pentatonic", Rotation: 5},

	"major blues": {
		Steps:       []int{2, 1, 1, 3, 2, 3},
		LetterSteps: []int{1, 0, 1, 2, 1, 2},
	},
	"minor blues": {Parent: "major blues", Rotation: 6},
	"blues":       {Parent: "major blues", Rotation: 6},

	"harmonic minor": {
		Steps:       []int{2, 1, 2, 2, 1, 3, 1},
		LetterSteps: []int{1, 1, 1, 1, 1, 1, 1},
	},
	"melodic minor": {
		Steps:       []int{2, 1, 2, 2, 2, 2, 1},
		LetterSteps: []int{1, 1, 1, 1, 1, 1, 1},
	},
	"dorian flat 2":     {Parent: "melodic minor", Rotation: 2},
	"lydian sharp 5":    {Parent: "melodic minor", Rotation: 3},
	"lydian dominant":   {Parent: "melodic minor", Rotation: 4},
	"mixolydian flat 6": {Parent: "melodic minor", Rotation: 5},
	"locrian sharp 2":   {Parent: "melodic minor", Rotation: 6},
	"super locrian":     {Parent: "melodic minor", Rotation: 7},
	"altered":           {Parent: "melodic minor", Rotation: 7},

	"chromatic": {
		Steps:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		Prefer: theory.PreferSharp,
	},
	"whole tone": {
		Steps: []int{2, 2, 2, 2, 2, 2},
	},
	"whole-half diminished": {
		Steps: []int{2, 1, 2, 1, 2, 1, 2, 1},
	},
	"half-whole diminished": {
		Steps: []int{1, 2, 1, 2, 1, 2, 1, 2},
	},
	"whole-half octatonic": {Parent: "whole-half diminished", Rotation: 1},
	"half-whole octatonic": {Parent: "half-whole diminished", Rotation: 1},

	"augmented": {
		Steps:       []int{3, 1, 3, 1, 3, 1},
		LetterSteps: []int{2, 0, 2, 0, 2, 1},
	},
}

var registry = func() map[string]Definition {
	m := make(map[string]Definition, len(builtins))
	for name, def := range builtins {
		m[name] = def
	}
	return m
}()

// Names lists every registered mode name, sorted.
func Names() []string {
	return util.GetSortedKeys(registry)
}

// Lookup returns the definition registered under a name.
func Lookup(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

var derivedNameRe = regexp.MustCompile(`^(.+?)(\d+)$`)

// Register adds a mode definition under a name, replacing any existing
// entry. A base definition needs steps summing to 12 and, if letter steps
// are given, one letter step per semitone step. A derived definition needs
// a parent that resolves to a registered base pattern and a rotation within
// the parent's length.
func Register(name string, def Definition) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if def.Parent != "" {
		parent, ok := registry[def.Parent]
		if !ok || parent.Parent != "" {
			return fmt.Errorf("%w: %q has no base parent %q", ErrInvalidDefinition, name, def.Parent)
		}
		if def.Rotation < 1 || def.Rotation > len(parent.Steps) {
			return fmt.Errorf("%w: %q rotation %d out of range", ErrInvalidDefinition, name, def.Rotation)
		}
		if len(def.Steps) > 0 {
			return fmt.Errorf("%w: %q cannot have both steps and a parent", ErrInvalidDefinition, name)
		}
		registry[name] = def
		return nil
	}
	if len(def.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrInvalidDefinition, name)
	}
	sum := 0
	for _, step := range def.Steps {
		if step < 1 {
			return fmt.Errorf("%w: %q has non-positive step", ErrInvalidDefinition, name)
		}
		sum += step
	}
	if sum != 12 {
		return fmt.Errorf("%w: %q steps sum to %d, want 12", ErrInvalidDefinition, name, sum)
	}
	if len(def.LetterSteps) > 0 && len(def.LetterSteps) != len(def.Steps) {
		return fmt.Errorf("%w: %q has %d letter steps for %d steps", ErrInvalidDefinition, name, len(def.LetterSteps), len(def.Steps))
	}
	registry[name] = def
	return nil
}

// RegisterDerived registers a mode from the compact "<parent><degree>"
// notation, e.g. "ionian2" for the second rotation of ionian.
func RegisterDerived(name, compact string) error {
	match := derivedNameRe.FindStringSubmatch(compact)
	if match == nil {
		return fmt.Errorf("%w: %q is not of the form <parent><degree>", ErrInvalidDefinition, compact)
	}
	rotation, err := strconv.Atoi(match[2])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDefinition, compact)
	}
	return Register(name, Definition{Parent: match[1], Rotation: rotation})
}

// resolve flattens a definition to its base pattern and 0-based rotation
// offset.
func resolve(name string) (Definition, int, error) {
	def, ok := registry[name]
	if !ok {
		return Definition{}, 0, fmt.Errorf("%w: %q", ErrInvalidModeName, name)
	}
	if def.Parent == "" {
		return def, 0, nil
	}
	parent, ok := registry[def.Parent]
	if !ok {
		return Definition{}, 0, fmt.Errorf("%w: %q parent %q", ErrInvalidModeName, name, def.Parent)
	}
	offset := def.Rotation - 1
	if offset < 0 || offset >= len(parent.Steps) {
		return Definition{}, 0, fmt.Errorf("%w: %q rotation %d", ErrInvalidDefinition, name, def.Rotation)
	}
	return parent, offset, nil
}
