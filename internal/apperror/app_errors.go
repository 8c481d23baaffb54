package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the base kind for every rejected placement. The more specific
// errors below wrap it, so errors.Is(err, ErrInvalidMove) matches all of them.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
)

var (
	ErrNoMoveAvailable   = errors.New("no move available")
	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMark       = errors.New("unknown mark")
)
