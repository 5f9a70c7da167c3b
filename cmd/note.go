package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/midikey"
	"github.com/ScottMorse/Music-Tools/theory"
)

var (
	noteFlat  bool
	noteSharp bool
	noteGross bool
)

func init() {
	noteCmd.Flags().BoolVar(&noteFlat, "flat", false, "prefer a flat enharmonic spelling")
	noteCmd.Flags().BoolVar(&noteSharp, "sharp", false, "prefer a sharp enharmonic spelling")
	noteCmd.Flags().BoolVar(&noteGross, "gross", false, "allow B#/Cb/E#/Fb spellings")
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <name>[octave]",
	Short: "Describe a note",
	Long:  `Describes a note: its pitch values, enharmonic spelling, and, when an octave is given, its frequency and MIDI key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseNoteArg(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("name: %v\n", n.Name())
		fmt.Printf("letter: %v\n", n.Letter())
		fmt.Printf("pitch class: %v\n", n.PitchClass())
		fmt.Printf("accidentals: %+d\n", n.AccidentalOffset())

		prefer := theory.PreferNone
		if noteFlat {
			prefer = theory.PreferFlat
		} else if noteSharp {
			prefer = theory.PreferSharp
		}
		if e, err := n.Enharmonic(prefer, noteGross); err == nil {
			fmt.Printf("enharmonic: %v\n", e.Name())
		}

		if hp, err := n.HardPitch(); err == nil {
			fmt.Printf("hard pitch: %v\n", hp)
			hz, err := n.Frequency()
			if err != nil {
				return err
			}
			fmt.Printf("frequency: %.3f Hz\n", hz)
			if key, err := midikey.Key(n); err == nil {
				fmt.Printf("midi key: %v\n", key)
			}
		}
		return nil
	},
}

// parseNoteArg splits a note argument like "C#4" or "Bb-1" into a note
// name and an optional trailing octave.
func parseNoteArg(arg string) (theory.Note, error) {
	name := arg
	octave := 0
	hasOctave := false

	cut := len(arg)
	for cut > 0 && arg[cut-1] >= '0' && arg[cut-1] <= '9' {
		cut--
	}
	if cut > 0 && cut < len(arg) && arg[cut-1] == '-' {
		cut--
	}
	if cut < len(arg) && cut > 0 {
		parsed, err := strconv.Atoi(arg[cut:])
		if err != nil {
			return theory.Note{}, fmt.Errorf("%w: %q", theory.ErrInvalidNoteName, arg)
		}
		name = arg[:cut]
		octave = parsed
		hasOctave = true
	}

	n, err := theory.NewNote(strings.TrimSpace(name))
	if err != nil {
		return theory.Note{}, err
	}
	if hasOctave {
		return n.WithOctave(octave)
	}
	return n, nil
}
