package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type moveEngine interface {
	Move(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

// GameController is the boundary a presentation layer talks to: it applies
// human moves, asks the engine for computer moves and resets the game.
type GameController struct {
	game   *entity.Game
	engine moveEngine
}

func NewGameController(game *entity.Game, engine moveEngine) *GameController {
	return &GameController{
		game:   game,
		engine: engine,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// ApplyHumanMove plays the human's mark at cell and returns the resulting status.
func (that *GameController) ApplyHumanMove(cell int) (entity.Status, error) {
	if err := that.validateTurn(that.game.Human); err != nil {
		return that.game.Status(), err
	}

	if err := that.game.Play(cell); err != nil {
		return that.game.Status(), fmt.Errorf("invalid turn: %w", err)
	}

	return that.game.Status(), nil
}

// RequestComputerMove asks the engine for a cell without applying it.
func (that *GameController) RequestComputerMove(difficulty entity.Difficulty) (int, error) {
	if that.game.IsFinished() {
		return 0, fmt.Errorf("%w: %w", apperror.ErrNoMoveAvailable, apperror.ErrGameFinished)
	}

	cell, err := that.engine.Move(that.game.Board, that.game.Computer(), difficulty)
	if err != nil {
		return 0, fmt.Errorf("engine failed to choose a move: %w", err)
	}

	return cell, nil
}

// ApplyComputerMove plays the computer's mark at cell and returns the resulting status.
func (that *GameController) ApplyComputerMove(cell int) (entity.Status, error) {
	if err := that.validateTurn(that.game.Computer()); err != nil {
		return that.game.Status(), err
	}

	if err := that.game.Play(cell); err != nil {
		return that.game.Status(), fmt.Errorf("invalid turn: %w", err)
	}

	return that.game.Status(), nil
}

// PlayComputerTurn requests a computer move and applies it.
func (that *GameController) PlayComputerTurn(difficulty entity.Difficulty) (int, entity.Status, error) {
	if err := that.validateTurn(that.game.Computer()); err != nil {
		return 0, that.game.Status(), err
	}

	cell, err := that.RequestComputerMove(difficulty)
	if err != nil {
		return 0, that.game.Status(), err
	}

	status, err := that.ApplyComputerMove(cell)
	if err != nil {
		return cell, status, err
	}

	return cell, status, nil
}

func (that *GameController) ResetGame() {
	that.game.Reset()
}

func (that *GameController) CurrentStatus() entity.Status {
	return that.game.Status()
}

// StatusText is the line a presentation layer shows under the board.
func (that *GameController) StatusText() string {
	return that.game.Status().Text(that.game.Turn)
}

// validateTurn - checks that mark is the side to move in an unfinished game.
func (that *GameController) validateTurn(mark entity.Mark) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}
