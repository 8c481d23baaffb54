package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Difficulty selects the computer's move policy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func Difficulties() []Difficulty {
	return append([]Difficulty(nil), difficulties...)
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, s)
	}
	return d, nil
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Next cycles easy -> medium -> hard -> easy.
func (d Difficulty) Next() Difficulty {
	for i, candidate := range difficulties {
		if candidate == d {
			return difficulties[(i+1)%len(difficulties)]
		}
	}
	return DifficultyEasy
}
