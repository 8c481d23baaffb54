package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	flagGames       int
	flagXDifficulty string
	flagODifficulty string
)

var selfPlayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Let the engine play against itself and report the results",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := initConfig()
		logger := initLogger(conf).With("component", "selfplay")

		xDifficulty, err := entity.ParseDifficulty(flagXDifficulty)
		if err != nil {
			return err
		}

		oDifficulty, err := entity.ParseDifficulty(flagODifficulty)
		if err != nil {
			return err
		}

		seed := conf.Game.Seed
		if cmd.Flags().Changed("seed") {
			seed = flagSeed
		}
		eng := engine.NewWithSeed(seed)

		tally := make(map[string]int)
		for i := range flagGames {
			result, err := tictactoe.SelfPlay(eng, xDifficulty, oDifficulty)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", i+1, err)
			}

			text := result.Status.Text(entity.EmptyCell)
			tally[text]++
			logger.Debug("game finished", "game", i+1, "moves", result.Moves, "result", text)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "X (%s) vs O (%s), %d games\n", xDifficulty, oDifficulty, flagGames)
		for _, text := range []string{"X wins!", "O wins!", "It's a draw!"} {
			fmt.Fprintf(out, "  %-13s %d\n", text, tally[text])
		}

		return nil
	},
}

func init() {
	selfPlayCmd.Flags().IntVarP(&flagGames, "games", "n", 100, "Number of games to play")
	selfPlayCmd.Flags().StringVar(&flagXDifficulty, "x", "hard", "Difficulty for X")
	selfPlayCmd.Flags().StringVar(&flagODifficulty, "o", "hard", "Difficulty for O")
	selfPlayCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}
