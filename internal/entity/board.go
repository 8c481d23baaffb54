package entity

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a single cell. EmptyCell is the zero value.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the board, addressed 0..8 in row-major order.
const BoardSize = 9

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// IsPlayer reports whether m is X or O.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

func ParseMark(s string) (Mark, error) {
	switch mark := Mark(strings.ToUpper(strings.TrimSpace(s))); mark {
	case PlayerX, PlayerO:
		return mark, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, s)
	}
}

var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinLines returns a copy of the eight winning index triples.
func WinLines() [8][3]int {
	return winLines
}

// Board is the full position. It is a value type: assigning a Board copies it.
type Board [BoardSize]Mark

// ValidIndex reports whether index addresses a cell of the board.
func ValidIndex(index int) bool {
	return index >= 0 && index < BoardSize
}

// Status derives the game status from the cells. A completed line wins even
// when the board is also full.
func (b Board) Status() Status {
	for _, line := range winLines {
		a := b[line[0]]
		if a != EmptyCell && a == b[line[1]] && a == b[line[2]] {
			return Won(a)
		}
	}

	if b.IsFull() {
		return Draw()
	}

	return InProgress()
}

func (b Board) IsFull() bool {
	return !slices.Contains(b[:], EmptyCell)
}

// Empty yields the indices of empty cells in ascending order.
func (b Board) Empty() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, cell := range b {
			if cell == EmptyCell && !yield(i) {
				return
			}
		}
	}
}

func (b Board) EmptyIndices() []int {
	return slices.Collect(b.Empty())
}

// Count returns the number of cells holding mark.
func (b Board) Count(mark Mark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			cell := b[row*3+col]
			if cell == EmptyCell {
				sb.WriteString(".")
				continue
			}
			sb.WriteString(string(cell))
		}
	}
	return sb.String()
}
