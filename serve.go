package main

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP game API",
	RunE: func(_ *cobra.Command, _ []string) error {
		conf := initConfig()
		logger := initLogger(conf)

		if err := app.RunApp(logger, conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	},
}
