package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MatchResult is the record of one engine-vs-engine game.
type MatchResult struct {
	Moves  []int
	Board  entity.Board
	Status entity.Status
}

// SelfPlay lets the engine play both sides until the game ends.
func SelfPlay(engine moveEngine, xDifficulty, oDifficulty entity.Difficulty) (*MatchResult, error) {
	game := entity.NewGame("", entity.PlayerX, xDifficulty)
	difficulty := map[entity.Mark]entity.Difficulty{
		entity.PlayerX: xDifficulty,
		entity.PlayerO: oDifficulty,
	}

	result := &MatchResult{}
	for !game.IsFinished() {
		cell, err := engine.Move(game.Board, game.Turn, difficulty[game.Turn])
		if err != nil {
			return nil, fmt.Errorf("engine failed to move for %s: %w", game.Turn, err)
		}

		if err = game.Play(cell); err != nil {
			return nil, fmt.Errorf("engine chose an invalid move: %w", err)
		}

		result.Moves = append(result.Moves, cell)
	}

	result.Board = game.Board
	result.Status = game.Status()

	return result, nil
}
