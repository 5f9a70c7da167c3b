package cmd

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ScottMorse/Music-Tools/constants"
	"github.com/ScottMorse/Music-Tools/db"
	"github.com/ScottMorse/Music-Tools/scale"
)

var dbModes string

func init() {
	serveCmd.Flags().StringVar(&dbModes, "db-modes", "", "comma-separated mode names to fetch from DynamoDB at startup")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  `Serves the note, interval, scale, chord and tuning endpoints over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func loadDbModes() error {
	if dbModes == "" {
		return nil
	}
	names := strings.Split(dbModes, ",")
	defs, err := db.GetModeDefs(names)
	if err != nil {
		return err
	}
	for name, def := range defs {
		if err := scale.Register(name, def); err != nil {
			return err
		}
		logger.Info("registered mode from db", "name", name)
	}
	return nil
}

func serve() error {
	if err := loadDbModes(); err != nil {
		return err
	}

	handler := cors.Default().Handler(NewRouter())
	addr := constants.GetListenAddr()
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}
