package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine picks computer moves under a difficulty policy. Randomness comes from
// the injected generator only, so a fixed seed replays the same choices.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness
	}

	return &Engine{rng: rng}
}

// NewWithSeed builds an engine from a seed; 0 means time based.
func NewWithSeed(seed int64) *Engine {
	if seed == 0 {
		return New(nil)
	}

	return New(rand.New(rand.NewSource(seed))) //nolint: gosec // game randomness
}

// Move selects a cell for mark on board.
//
//   - easy: uniform random empty cell
//   - medium: a fair coin decides between easy and hard
//   - hard: BestMove
func (that *Engine) Move(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return that.RandomMove(board)
	case entity.DifficultyMedium:
		if that.coinFlip() {
			return that.RandomMove(board)
		}
		return BestMove(board, mark)
	case entity.DifficultyHard:
		return BestMove(board, mark)
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// RandomMove returns a uniformly chosen empty cell.
func (that *Engine) RandomMove(board entity.Board) (int, error) {
	available := board.EmptyIndices()
	if len(available) == 0 {
		return 0, apperror.ErrNoMoveAvailable
	}

	return available[that.intn(len(available))], nil
}

func (that *Engine) intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

// coinFlip reports true with probability 0.5.
func (that *Engine) coinFlip() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Float64() < 0.5
}
