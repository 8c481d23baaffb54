package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// computerTurnMsg fires after the thinking delay. Messages from an earlier
// round (before a reset) are dropped.
type computerTurnMsg struct {
	round int
}

// Model is the Bubble Tea model for a game against the computer.
type Model struct {
	controller *tictactoe.GameController
	delay      time.Duration

	cursor   int
	round    int
	thinking bool
	message  string
	quitting bool
}

// NewModel creates a model around controller. The computer plays at the
// game's difficulty. delay is the pause before the computer's move; it only
// exists for the player's benefit.
func NewModel(controller *tictactoe.GameController, delay time.Duration) Model {
	m := Model{
		controller: controller,
		delay:      delay,
		cursor:     4,
	}
	m.thinking = m.computerToMove()

	return m
}

func (m Model) Init() tea.Cmd {
	if m.computerToMove() {
		return m.scheduleComputer()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case computerTurnMsg:
		return m.handleComputerTurn(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m.reset()
	case "d":
		game := m.controller.Game()
		game.Difficulty = game.Difficulty.Next()
		return m, nil
	case "up", "k", "w":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j", "s":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h", "a":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		return m.place(m.cursor)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.cursor = int(key[0] - '1')
		return m.place(m.cursor)
	}

	return m, nil
}

func (m Model) place(cell int) (tea.Model, tea.Cmd) {
	if m.thinking {
		return m, nil
	}

	status, err := m.controller.ApplyHumanMove(cell)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}

	m.message = ""
	if status.IsInProgress() {
		m.thinking = true
		return m, m.scheduleComputer()
	}

	return m, nil
}

func (m Model) handleComputerTurn(msg computerTurnMsg) (tea.Model, tea.Cmd) {
	if msg.round != m.round {
		return m, nil
	}

	m.thinking = false

	if _, _, err := m.controller.PlayComputerTurn(m.controller.Game().Difficulty); err != nil {
		m.message = err.Error()
	}

	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.controller.ResetGame()
	m.round++
	m.thinking = false
	m.message = ""

	if m.computerToMove() {
		m.thinking = true
		return m, m.scheduleComputer()
	}

	return m, nil
}

func (m Model) computerToMove() bool {
	game := m.controller.Game()
	return !game.IsFinished() && !game.IsHumanTurn()
}

func (m Model) scheduleComputer() tea.Cmd {
	round := m.round
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return computerTurnMsg{round: round}
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game := m.controller.Game()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(game.Board, m.cursor))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(m.controller.StatusText()))
	sb.WriteString("\n")
	sb.WriteString(infoStyle.Render("You: " + string(game.Human) + "   Difficulty: " + string(game.Difficulty)))
	if m.thinking {
		sb.WriteString("\n")
		sb.WriteString(infoStyle.Render("Computer is thinking..."))
	}
	if m.message != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.message))
	}
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("1-9/arrows+enter: place  d: difficulty  r: restart  q: quit"))
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the terminal UI and blocks until the player quits.
func Run(controller *tictactoe.GameController, delay time.Duration) error {
	_, err := tea.NewProgram(NewModel(controller, delay), tea.WithAltScreen()).Run()
	return err
}
