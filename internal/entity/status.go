package entity

import "fmt"

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDraw       Outcome = "draw"
)

// Status is always computed from a Board and never stored alongside it.
type Status struct {
	Outcome Outcome `json:"outcome"`
	Winner  Mark    `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{Outcome: OutcomeInProgress}
}

func Won(mark Mark) Status {
	return Status{Outcome: OutcomeWon, Winner: mark}
}

func Draw() Status {
	return Status{Outcome: OutcomeDraw}
}

func (s Status) IsInProgress() bool {
	return s.Outcome == OutcomeInProgress
}

func (s Status) IsTerminal() bool {
	return s.Outcome == OutcomeWon || s.Outcome == OutcomeDraw
}

func (s Status) IsWonBy(mark Mark) bool {
	return s.Outcome == OutcomeWon && s.Winner == mark
}

// Text renders the status line shown to players. turn is only used while the game is in progress.
func (s Status) Text(turn Mark) string {
	switch s.Outcome {
	case OutcomeWon:
		return fmt.Sprintf("%s wins!", s.Winner)
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Current Player: %s", turn)
	}
}
