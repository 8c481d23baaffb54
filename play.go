package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/platform/tui"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	flagDifficulty string
	flagMark       string
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := initConfig()

		difficulty := conf.Difficulty()
		if cmd.Flags().Changed("difficulty") {
			parsed, err := entity.ParseDifficulty(flagDifficulty)
			if err != nil {
				return err
			}
			difficulty = parsed
		}

		human := conf.HumanMark()
		if cmd.Flags().Changed("mark") {
			parsed, err := entity.ParseMark(flagMark)
			if err != nil {
				return err
			}
			human = parsed
		}

		seed := conf.Game.Seed
		if cmd.Flags().Changed("seed") {
			seed = flagSeed
		}

		game := entity.NewGame(uuid.NewString(), human, difficulty)
		controller := tictactoe.NewGameController(game, engine.NewWithSeed(seed))

		if err := tui.Run(controller, conf.Game.ComputerDelay); err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}

		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "hard", "Computer difficulty: easy, medium or hard")
	playCmd.Flags().StringVar(&flagMark, "mark", "X", "Your mark: X (moves first) or O")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}
