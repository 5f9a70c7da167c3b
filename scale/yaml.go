package scale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ScottMorse/Music-Tools/theory"
)

// definitionFile is the on-disk schema for user-defined modes. An entry is
// either a base pattern (steps, optional letterSteps) or a rotation of a
// parent, in either structured or compact "<parent><degree>" form.
type definitionFile struct {
	Modes map[string]definitionEntry `yaml:"modes"`
}

type definitionEntry struct {
	Steps       []int  `yaml:"steps"`
	LetterSteps []int  `yaml:"letterSteps"`
	Parent      string `yaml:"parent"`
	Rotation    int    `yaml:"rotation"`
	Derived     string `yaml:"derived"`
	Gross       bool   `yaml:"gross"`
	Prefer      string `yaml:"prefer"`
}

// LoadDefinitions reads a yaml mode-definition file and registers every
// entry. Base patterns register before derived ones so a file can define a
// parent and its rotations together in any order.
func LoadDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mode definitions: %w", err)
	}
	var file definitionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse mode definitions: %w", err)
	}

	for name, entry := range file.Modes {
		if len(entry.Steps) == 0 {
			continue
		}
		def := Definition{
			Steps:       entry.Steps,
			LetterSteps: entry.LetterSteps,
			Gross:       entry.Gross,
		}
		switch entry.Prefer {
		case "":
		case "sharp":
			def.Prefer = theory.PreferSharp
		case "flat":
			def.Prefer = theory.PreferFlat
		default:
			return fmt.Errorf("%w: %q prefer %q", ErrInvalidDefinition, name, entry.Prefer)
		}
		if err := Register(name, def); err != nil {
			return err
		}
	}
	for name, entry := range file.Modes {
		if len(entry.Steps) > 0 {
			continue
		}
		if entry.Derived != "" {
			if err := RegisterDerived(name, entry.Derived); err != nil {
				return err
			}
			continue
		}
		if err := Register(name, Definition{Parent: entry.Parent, Rotation: entry.Rotation}); err != nil {
			return err
		}
	}
	return nil
}
