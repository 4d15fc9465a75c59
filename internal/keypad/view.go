package keypad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Palette lifted from the desktop calculator this replaces.
var (
	colorText   = lipgloss.Color("#e8edf2")
	colorMuted  = lipgloss.Color("#8fa1b7")
	colorPanel  = lipgloss.Color("#121a28")
	colorAccent = lipgloss.Color("#06b6d4")
	colorDigit  = lipgloss.Color("#2b3440")
)

const (
	cellWidth = 7
	gridCols  = 4
	// displayWidth matches a full row of buttons with gaps.
	displayWidth = gridCols*cellWidth + gridCols - 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Width(displayWidth).
			Align(lipgloss.Center)

	exprStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(displayWidth).
			Align(lipgloss.Right)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Width(displayWidth).
			Align(lipgloss.Right)

	displayStyle = lipgloss.NewStyle().
			Background(colorPanel).
			Padding(0, 1).
			MarginBottom(1)

	digitStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDigit).
			Align(lipgloss.Center)

	opStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorAccent).
		Align(lipgloss.Center)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPanel).
			Background(colorText).
			Bold(true).
			Align(lipgloss.Center)
)

// buttonStyle picks the style for a button label.
func buttonStyle(label string, selected bool) lipgloss.Style {
	if selected {
		return selectedStyle
	}
	switch label {
	case "=", "C", "±", "%", "⌫", "÷", "×", "−", "+":
		return opStyle
	default:
		return digitStyle
	}
}

func renderButton(b button, selected bool) string {
	w := b.span*cellWidth + b.span - 1
	return buttonStyle(b.label, selected).Width(w).Render(b.label)
}

func (m Model) View() string {
	rows := make([]string, 0, len(grid)+2)
	for r, row := range grid {
		cells := lo.Map(row, func(b button, c int) string {
			return renderButton(b, r == m.row && c == m.col)
		})
		rows = append(rows, strings.Join(cells, " "))
	}
	expr := m.expr
	if expr == "" {
		expr = " "
	}
	screen := displayStyle.Render(exprStyle.Render(expr) + "\n" + resultStyle.Render(m.result))
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Pro Calculator"),
		screen,
		strings.Join(rows, "\n"),
		m.help.View(m.keys),
	) + "\n"
}
