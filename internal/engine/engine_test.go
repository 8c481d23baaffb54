package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func seeded(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed))) //nolint: gosec // test
}

func TestEngine_Easy(t *testing.T) {
	t.Run("Always picks an empty cell", func(t *testing.T) {
		// Given: a partially filled board
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}
		eng := seeded(1)

		for range 100 {
			// When: an easy move is requested
			index, err := eng.Move(board, o, entity.DifficultyEasy)

			// Then: the index is one of the empty cells
			require.NoError(t, err)
			assert.Contains(t, board.EmptyIndices(), index)
		}
	})

	t.Run("Same seed replays the same moves", func(t *testing.T) {
		first, second := seeded(42), seeded(42)

		for range 50 {
			a, err := first.Move(entity.Board{}, o, entity.DifficultyEasy)
			require.NoError(t, err)
			b, err := second.Move(entity.Board{}, o, entity.DifficultyEasy)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("Covers every empty cell", func(t *testing.T) {
		eng := seeded(7)
		seen := make(map[int]bool)

		for range 500 {
			index, err := eng.RandomMove(entity.Board{})
			require.NoError(t, err)
			seen[index] = true
		}

		assert.Len(t, seen, entity.BoardSize)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		_, err := seeded(1).Move(board, o, entity.DifficultyEasy)

		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
	})
}

func TestEngine_Medium(t *testing.T) {
	t.Run("Mixes random and optimal moves", func(t *testing.T) {
		// Given: an empty board, where the optimal move is always 0
		eng := seeded(3)
		optimal, random := 0, 0

		// When: many medium moves are requested
		for range 400 {
			index, err := eng.Move(entity.Board{}, o, entity.DifficultyMedium)
			require.NoError(t, err)

			if index == 0 {
				optimal++
			} else {
				random++
			}
		}

		// Then: both policies were used; roughly half of the moves are 0
		assert.Positive(t, random)
		assert.Greater(t, optimal, 100)
	})

	t.Run("Same seed replays the same moves", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		first, second := seeded(9), seeded(9)

		for range 20 {
			a, err := first.Move(board, o, entity.DifficultyMedium)
			require.NoError(t, err)
			b, err := second.Move(board, o, entity.DifficultyMedium)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})
}

func TestEngine_Hard(t *testing.T) {
	eng := seeded(1)
	board := entity.Board{
		x, x, e,
		e, o, e,
		e, e, e,
	}

	for range 10 {
		index, err := eng.Move(board, o, entity.DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, 2, index)
	}
}

func TestEngine_UnknownDifficulty(t *testing.T) {
	_, err := seeded(1).Move(entity.Board{}, o, entity.Difficulty("nightmare"))

	require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
}

func TestNewWithSeed(t *testing.T) {
	a, err := NewWithSeed(5).RandomMove(entity.Board{})
	require.NoError(t, err)
	b, err := NewWithSeed(5).RandomMove(entity.Board{})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = NewWithSeed(0).RandomMove(entity.Board{})
	require.NoError(t, err)
}
