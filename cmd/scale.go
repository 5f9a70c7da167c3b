package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/chord"
	"github.com/ScottMorse/Music-Tools/scale"
)

var scaleTriads bool

func init() {
	scaleCmd.Flags().BoolVar(&scaleTriads, "triads", false, "also print the triad built on each degree")
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(modesCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <mode>",
	Short: "Spell a scale",
	Long:  `Spells a scale from a root note and a mode name, e.g. "scale Eb dorian" or "scale F# harmonic minor".`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseNoteArg(args[0])
		if err != nil {
			return err
		}
		modeName := strings.Join(args[1:], " ")
		m, err := scale.New(root, modeName)
		if err != nil {
			return err
		}
		names, err := m.StringSpelling()
		if err != nil {
			return err
		}
		fmt.Printf("%v: %v\n", m.Name(), strings.Join(names, " "))

		if !scaleTriads {
			return nil
		}
		spelling, err := m.Spelling()
		if err != nil {
			return err
		}
		triads, err := chord.ScaleTriads(spelling)
		if err != nil {
			return err
		}
		symbols := make([]string, len(triads))
		for i, c := range triads {
			symbols[i] = c.Symbol()
		}
		fmt.Printf("triads: %v\n", strings.Join(symbols, " "))
		return nil
	},
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List registered mode names",
	Long:  `Lists every registered mode name, builtins plus any loaded with --modes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range scale.Names() {
			fmt.Println(name)
		}
		return nil
	},
}
