package engine

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// winScore is the score of an immediate win. Every extra ply costs one point,
// so quick wins beat slow ones and slow losses beat quick ones.
const winScore = 10

// MoveScore is the minimax value of playing Index.
type MoveScore struct {
	Index int
	Score int
}

// search holds the state of a single minimax run. The cache is keyed by board:
// within one run the number of placed marks fixes both the depth and the side
// to move, so a cached score is exactly what the plain recursion would return.
type search struct {
	max   entity.Mark
	min   entity.Mark
	cache map[entity.Board]int
}

func newSearch(mark entity.Mark) *search {
	return &search{
		max:   mark,
		min:   mark.Opponent(),
		cache: make(map[entity.Board]int),
	}
}

// MoveScores evaluates every empty cell of board for mark, in ascending index order.
// The board is passed by value and is never modified.
func MoveScores(board entity.Board, mark entity.Mark) ([]MoveScore, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	s := newSearch(mark)

	var scores []MoveScore
	for index := range board.Empty() {
		next := board
		next[index] = mark
		scores = append(scores, MoveScore{Index: index, Score: s.minimax(next, 0, false)})
	}

	if len(scores) == 0 {
		return nil, apperror.ErrNoMoveAvailable
	}

	return scores, nil
}

// BestMove returns the optimal cell for mark. Among equally scored cells the
// lowest index wins.
func BestMove(board entity.Board, mark entity.Mark) (int, error) {
	scores, err := MoveScores(board, mark)
	if err != nil {
		return 0, err
	}

	best, bestScore := -1, math.MinInt
	for _, ms := range scores {
		if ms.Score > bestScore {
			best, bestScore = ms.Index, ms.Score
		}
	}

	return best, nil
}

func (s *search) minimax(board entity.Board, depth int, maximizing bool) int {
	switch status := board.Status(); {
	case status.IsWonBy(s.max):
		return winScore - depth
	case status.IsWonBy(s.min):
		return depth - winScore
	case status.Outcome == entity.OutcomeDraw:
		return 0
	}

	if score, ok := s.cache[board]; ok {
		return score
	}

	mark, best := s.min, math.MaxInt
	if maximizing {
		mark, best = s.max, math.MinInt
	}

	for index := range board.Empty() {
		next := board
		next[index] = mark

		score := s.minimax(next, depth+1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	s.cache[board] = best

	return best
}
