package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	markStyles = map[entity.Mark]lipgloss.Style{
		entity.PlayerX:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		entity.PlayerO:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		entity.EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

// renderBoard draws the 3x3 grid. Empty cells show their key (1-9).
func renderBoard(board entity.Board, cursor int) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for col := range 3 {
			if col > 0 {
				sb.WriteString("|")
			}

			index := row*3 + col
			label := string(board[index])
			if board[index] == entity.EmptyCell {
				label = string(rune('1' + index))
			}

			cell := " " + markStyles[board[index]].Render(label) + " "
			if index == cursor {
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
	}

	return sb.String()
}
