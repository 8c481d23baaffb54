package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game is an explicitly owned game state. X always moves first; Human tells
// which side the local player holds, the computer plays the other one.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"player_turn"`
	Human      Mark       `json:"human"`
	Difficulty Difficulty `json:"difficulty"`
}

func NewGame(id string, human Mark, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      Board{},
		Turn:       PlayerX,
		Human:      human,
		Difficulty: difficulty,
	}
}

// Computer returns the mark played by the decision engine.
func (that *Game) Computer() Mark {
	return that.Human.Opponent()
}

// Place puts mark into the cell at index. It does not advance the turn.
// On error the board is left untouched.
func (that *Game) Place(index int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !ValidIndex(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that.Board[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.Board[index] = mark

	return nil
}

// Play places the mark of the player to move and hands the turn to the opponent.
func (that *Game) Play(index int) error {
	if err := that.Place(index, that.Turn); err != nil {
		return err
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

func (that *Game) Status() Status {
	return that.Board.Status()
}

func (that *Game) EmptyIndices() []int {
	return that.Board.EmptyIndices()
}

// Reset clears the board and gives the first move back to X.
// Identity, side selection and difficulty survive.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = PlayerX
}

func (that *Game) IsFinished() bool {
	return that.Status().IsTerminal()
}

func (that *Game) IsHumanTurn() bool {
	return that.Turn == that.Human
}
