// tictactoe plays tic-tac-toe against a minimax computer opponent.
//
// Usage:
//
//	tictactoe serve                 - Start the HTTP game API
//	tictactoe play                  - Play in the terminal
//	tictactoe selfplay -n 100       - Let the engine play against itself
//
// Global flags:
//
//	--config <path>   - Config file (default: ./config.yml, optional)
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:           "tictactoe",
	Short:         "Tic-tac-toe against a minimax computer opponent",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", defaultConfigPath(), "Path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(selfPlayCmd)
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(flagConfigPath)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	level := conf.SlogLevel()

	if conf.LogFormat == config.LogFormatText {
		handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
