package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/theory"
)

var (
	intervalFrom string
	intervalDown bool
)

func init() {
	intervalCmd.Flags().StringVar(&intervalFrom, "from", "", "apply the interval to this note")
	intervalCmd.Flags().BoolVar(&intervalDown, "down", false, "apply the interval downward")
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(betweenCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <quality> <base> [displace]",
	Short: "Describe an interval",
	Long: `Describes an interval from a quality (maj, min, per, aug, dim, augN, dimN),
a base (uni, 2nd ... 7th) and an optional octave displacement. With --from,
applies the interval to a note.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		displace := 0
		if len(args) == 3 {
			parsed, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: %q", theory.ErrInvalidDisplacement, args[2])
			}
			displace = parsed
		}
		iv, err := theory.NewInterval(args[0], args[1], displace)
		if err != nil {
			return err
		}

		fmt.Printf("name: %v\n", iv.Name())
		fmt.Printf("half steps: %v\n", iv.Difference())
		fmt.Printf("letter difference: %v\n", iv.LetterDifference())

		if intervalFrom == "" {
			return nil
		}
		n, err := parseNoteArg(intervalFrom)
		if err != nil {
			return err
		}
		var moved theory.Note
		if intervalDown {
			moved, err = n.Subtract(iv)
		} else {
			moved, err = n.Add(iv)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%v -> %v\n", n.Name(), moved.Name())
		return nil
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <note> <note>",
	Short: "Name the interval between two notes",
	Long: `Names the interval between two notes. With octaves on both notes the
strict octave-aware interval is computed, otherwise the simple ascending
interval between their pitch classes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseNoteArg(args[0])
		if err != nil {
			return err
		}
		b, err := parseNoteArg(args[1])
		if err != nil {
			return err
		}

		_, aOct := a.Octave()
		_, bOct := b.Octave()
		var iv theory.Interval
		if aOct && bOct {
			iv, err = theory.IntervalBetween(a, b)
		} else {
			iv, err = theory.SimpleIntervalBetween(a, b, theory.Ascending)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%v\n", iv.Name())
		return nil
	},
}
