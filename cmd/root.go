package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/constants"
	"github.com/ScottMorse/Music-Tools/scale"
	"github.com/ScottMorse/Music-Tools/theory"
)

var (
	modesFile string
	a4Flag    float64
)

var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	Prefix:          "music-tools",
})

var rootCmd = &cobra.Command{
	Use:   "music-tools",
	Short: "Spell notes, intervals, scales and chords",
	Long: `Music Tools computes Western tonal structures: spelled notes with
enharmonic awareness, interval arithmetic, scale spellings for a large
registry of modes, and jazz-style chord symbols.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		hz := constants.GetReferenceFrequency()
		if a4Flag > 0 {
			hz = a4Flag
		}
		if err := theory.SetReferenceFrequency(hz); err != nil {
			return err
		}
		if modesFile != "" {
			if err := scale.LoadDefinitions(modesFile); err != nil {
				return err
			}
			logger.Debug("loaded mode definitions", "path", modesFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modesFile, "modes", "", "yaml file of extra mode definitions")
	rootCmd.PersistentFlags().Float64Var(&a4Flag, "a4", 0, "A4 reference frequency in Hz")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
