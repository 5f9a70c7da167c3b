package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/chord"
)

func init() {
	chordCmd.AddCommand(chordClassifyCmd)
	chordCmd.AddCommand(chordBuildCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Classify or build chords",
}

var chordClassifyCmd = &cobra.Command{
	Use:   "classify <root> <note>...",
	Short: "Name a chord from its notes",
	Long:  `Names the chord formed by a root and other notes, e.g. "chord classify C E G Bb" prints C7.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		got, err := chord.ClassifyNames(args[0], args[1:]...)
		if err != nil {
			return err
		}
		fmt.Printf("symbol: %v\n", got.Symbol())
		fmt.Printf("root: %v\n", got.Root.NoteName())
		if got.Inverted {
			fmt.Printf("bass: %v\n", got.Bass.NoteName())
		}
		if got.Triad != "" {
			fmt.Printf("triad: %v\n", got.Triad)
		}
		return nil
	},
}

var chordBuildCmd = &cobra.Command{
	Use:   "build <root> <quality> [extension]...",
	Short: "Spell a chord from a quality and extensions",
	Long:  `Spells a chord from a root, a quality (maj, min, aug, dim, sus, 5) and extension tokens, e.g. "chord build C maj 13".`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseNoteArg(args[0])
		if err != nil {
			return err
		}
		built, err := chord.Build(root, args[1], args[2:]...)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(built.Notes()))
		for _, n := range built.Notes() {
			names = append(names, n.NoteName())
		}
		fmt.Printf("%v: %v\n", built.Name(), strings.Join(names, " "))
		return nil
	},
}
