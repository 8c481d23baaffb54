package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errEngineDown = errors.New("engine down")

// scriptedEngine returns its cells in order and records the requests.
type scriptedEngine struct {
	cells []int
	err   error

	marks        []entity.Mark
	difficulties []entity.Difficulty
}

func (that *scriptedEngine) Move(_ entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	that.marks = append(that.marks, mark)
	that.difficulties = append(that.difficulties, difficulty)

	if that.err != nil {
		return 0, that.err
	}

	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}

func newController(human entity.Mark, eng moveEngine) *GameController {
	return NewGameController(entity.NewGame("123", human, entity.DifficultyHard), eng)
}

func TestGameController_ApplyHumanMove(t *testing.T) {
	t.Run("ApplyHumanMove", func(t *testing.T) {
		// Given: a new game where the human plays X
		controller := newController(entity.PlayerX, &scriptedEngine{})

		// When: the human plays the center
		status, err := controller.ApplyHumanMove(4)
		require.NoError(t, err)

		// Then: the mark is placed and the computer is to move
		assert.Equal(t, entity.InProgress(), status)
		assert.Equal(t, entity.PlayerX, controller.Game().Board[4])
		assert.Equal(t, entity.PlayerO, controller.Game().Turn)
		assert.Equal(t, "Current Player: O", controller.StatusText())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the computer holds the center and it is the human's turn
		controller := newController(entity.PlayerX, &scriptedEngine{})
		controller.Game().Board[4] = entity.PlayerO
		before := *controller.Game()

		// When: the human tries the same cell
		_, err := controller.ApplyHumanMove(4)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *controller.Game())
	})

	t.Run("Error when it is the computer's turn", func(t *testing.T) {
		// Given: the human plays O, so the computer opens
		controller := newController(entity.PlayerO, &scriptedEngine{})

		// When: the human tries to move first
		_, err := controller.ApplyHumanMove(0)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.Board{}, controller.Game().Board)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a game O has already won
		controller := newController(entity.PlayerX, &scriptedEngine{})
		controller.Game().Board = entity.Board{
			entity.PlayerO, entity.PlayerO, entity.PlayerO,
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}

		// When: the human keeps playing
		status, err := controller.ApplyHumanMove(5)

		// Then: ErrGameFinished is returned with the final status
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.Won(entity.PlayerO), status)
	})
}

func TestGameController_ComputerMove(t *testing.T) {
	t.Run("RequestComputerMove does not apply the move", func(t *testing.T) {
		// Given: a game after the human's opening
		eng := &scriptedEngine{cells: []int{0}}
		controller := newController(entity.PlayerX, eng)
		_, err := controller.ApplyHumanMove(4)
		require.NoError(t, err)

		// When: the computer move is requested
		cell, err := controller.RequestComputerMove(entity.DifficultyEasy)

		// Then: the engine was asked for O with the given difficulty and the board is untouched
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, []entity.Mark{entity.PlayerO}, eng.marks)
		assert.Equal(t, []entity.Difficulty{entity.DifficultyEasy}, eng.difficulties)
		assert.Equal(t, entity.EmptyCell, controller.Game().Board[0])
	})

	t.Run("PlayComputerTurn applies the move", func(t *testing.T) {
		controller := newController(entity.PlayerX, &scriptedEngine{cells: []int{8}})
		_, err := controller.ApplyHumanMove(4)
		require.NoError(t, err)

		cell, status, err := controller.PlayComputerTurn(entity.DifficultyMedium)

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
		assert.Equal(t, entity.InProgress(), status)
		assert.Equal(t, entity.PlayerO, controller.Game().Board[8])
		assert.Equal(t, entity.PlayerX, controller.Game().Turn)
	})

	t.Run("Computer opens when the human plays O", func(t *testing.T) {
		controller := newController(entity.PlayerO, engine.NewWithSeed(1))

		cell, _, err := controller.PlayComputerTurn(entity.DifficultyHard)

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, entity.PlayerX, controller.Game().Board[0])
		assert.True(t, controller.Game().IsHumanTurn())
	})

	t.Run("Error when it is the human's turn", func(t *testing.T) {
		eng := &scriptedEngine{cells: []int{0}}
		controller := newController(entity.PlayerX, eng)

		_, _, err := controller.PlayComputerTurn(entity.DifficultyHard)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, eng.marks)
	})

	t.Run("No move available on a finished game", func(t *testing.T) {
		// Given: a drawn game
		controller := newController(entity.PlayerX, &scriptedEngine{})
		controller.Game().Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}
		controller.Game().Turn = entity.PlayerO

		// When: a computer move is requested
		_, err := controller.RequestComputerMove(entity.DifficultyHard)

		// Then: the request is rejected as both no-move and finished
		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Engine error is wrapped", func(t *testing.T) {
		controller := newController(entity.PlayerX, &scriptedEngine{err: errEngineDown})
		_, err := controller.ApplyHumanMove(4)
		require.NoError(t, err)

		_, _, err = controller.PlayComputerTurn(entity.DifficultyHard)

		require.ErrorIs(t, err, errEngineDown)
		assert.Equal(t, entity.PlayerO, controller.Game().Turn)
	})
}

func TestGameController_ResetGame(t *testing.T) {
	// Given: a finished game
	controller := newController(entity.PlayerX, &scriptedEngine{cells: []int{3, 5}})
	for _, cell := range []int{0, 1} {
		_, err := controller.ApplyHumanMove(cell)
		require.NoError(t, err)
		_, _, err = controller.PlayComputerTurn(entity.DifficultyHard)
		require.NoError(t, err)
	}
	status, err := controller.ApplyHumanMove(2)
	require.NoError(t, err)
	require.Equal(t, entity.Won(entity.PlayerX), status)
	assert.Equal(t, "X wins!", controller.StatusText())

	// When: the game is reset
	controller.ResetGame()

	// Then: it matches a fresh game
	assert.Equal(t, entity.NewGame("123", entity.PlayerX, entity.DifficultyHard), controller.Game())
	assert.Equal(t, entity.InProgress(), controller.CurrentStatus())
}

func TestGameController_HumanNeverBeatsHard(t *testing.T) {
	// Given: the documented flow, human move then computer reply, over every human line
	var explore func(game entity.Game)
	explore = func(game entity.Game) {
		for _, cell := range game.EmptyIndices() {
			g := game
			controller := NewGameController(&g, engine.NewWithSeed(1))

			status, err := controller.ApplyHumanMove(cell)
			require.NoError(t, err)
			if status.IsTerminal() {
				// Then: a finished game is never won by the human
				assert.False(t, status.IsWonBy(entity.PlayerX))
				continue
			}

			_, status, err = controller.PlayComputerTurn(entity.DifficultyHard)
			require.NoError(t, err)
			if status.IsTerminal() {
				assert.False(t, status.IsWonBy(entity.PlayerX))
				continue
			}

			explore(*controller.Game())
		}
	}

	explore(*entity.NewGame("123", entity.PlayerX, entity.DifficultyHard))
}

func TestSelfPlay(t *testing.T) {
	t.Run("Hard against hard is a draw", func(t *testing.T) {
		result, err := SelfPlay(engine.NewWithSeed(1), entity.DifficultyHard, entity.DifficultyHard)

		require.NoError(t, err)
		assert.Equal(t, entity.Draw(), result.Status)
		assert.Len(t, result.Moves, entity.BoardSize)
		assert.Equal(t, 0, result.Moves[0])
	})

	t.Run("Marks alternate starting with X", func(t *testing.T) {
		result, err := SelfPlay(engine.NewWithSeed(11), entity.DifficultyEasy, entity.DifficultyEasy)
		require.NoError(t, err)
		require.True(t, result.Status.IsTerminal())

		for i, cell := range result.Moves {
			want := entity.PlayerX
			if i%2 == 1 {
				want = entity.PlayerO
			}
			assert.Equal(t, want, result.Board[cell])
		}
	})

	t.Run("Easy never beats hard", func(t *testing.T) {
		eng := engine.NewWithSeed(5)
		for range 20 {
			result, err := SelfPlay(eng, entity.DifficultyEasy, entity.DifficultyHard)
			require.NoError(t, err)
			assert.False(t, result.Status.IsWonBy(entity.PlayerX))
		}
	})
}
