// Package keypad implements the interactive calculator: a button grid, an
// expression line, and a live result preview. All arithmetic goes through
// the evaluator; the keypad only edits the expression string and formats
// results.
package keypad

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/procalc/procalc"
	"github.com/procalc/procalc/internal/display"
)

type button struct {
	label string
	span  int
}

// grid is the button layout. Spans are in cells; each row covers four.
var grid = [][]button{
	{{"C", 1}, {"±", 1}, {"%", 1}, {"⌫", 1}},
	{{"7", 1}, {"8", 1}, {"9", 1}, {"÷", 1}},
	{{"4", 1}, {"5", 1}, {"6", 1}, {"×", 1}},
	{{"1", 1}, {"2", 1}, {"3", 1}, {"−", 1}},
	{{"0", 2}, {".", 1}, {"+", 1}},
	{{"=", 4}},
}

type keyMap struct {
	Move      key.Binding
	Press     key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

var defaultKeys = keyMap{
	Move: key.NewBinding(
		key.WithKeys("up", "down", "left", "right"),
		key.WithHelp("↑↓←→", "move"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Equals: key.NewBinding(
		key.WithKeys("="),
		key.WithHelp("=", "evaluate"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Press, k.Equals, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Press, k.Equals},
		{k.Backspace, k.Clear, k.Quit},
	}
}

// Model is the bubbletea model for the calculator.
type Model struct {
	expr   string
	result string

	row, col int

	keys keyMap
	help help.Model
}

func New() Model {
	return Model{
		result: "0",
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// Expression returns the accumulated expression string.
func (m Model) Expression() string {
	return m.expr
}

// Result returns the current display line.
func (m Model) Result() string {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.expr = ""
			m.result = "0"
			return m, nil
		case key.Matches(msg, m.keys.Backspace):
			m.expr = backspace(m.expr)
			return m.preview(), nil
		case key.Matches(msg, m.keys.Equals):
			return m.equals(), nil
		case key.Matches(msg, m.keys.Press):
			return m.press(grid[m.row][m.col].label), nil
		case key.Matches(msg, m.keys.Move):
			return m.move(msg.String()), nil
		}
		if r := msg.String(); len([]rune(r)) == 1 {
			return m.typed([]rune(r)[0]), nil
		}
	}
	return m, nil
}

// move shifts the highlighted button, clamping to each row's length.
func (m Model) move(dir string) Model {
	switch dir {
	case "up":
		if m.row > 0 {
			m.row--
		}
	case "down":
		if m.row < len(grid)-1 {
			m.row++
		}
	case "left":
		if m.col > 0 {
			m.col--
		}
	case "right":
		if m.col < len(grid[m.row])-1 {
			m.col++
		}
	}
	if m.col > len(grid[m.row])-1 {
		m.col = len(grid[m.row]) - 1
	}
	return m
}

// typed handles a directly typed character.
func (m Model) typed(r rune) Model {
	switch r {
	case '×':
		r = '*'
	case '÷':
		r = '/'
	case '−':
		r = '-'
	}
	switch {
	case '0' <= r && r <= '9', r == '.':
		m.expr = appendChar(m.expr, byte(r))
		return m.preview()
	case r == '%':
		m.expr = percent(m.expr)
		return m.preview()
	case r == '±':
		m.expr = toggleSign(m.expr)
		return m.preview()
	case strings.ContainsRune(operators, r):
		m.expr = appendOperator(m.expr, byte(r))
		return m.preview()
	}
	return m
}

// press handles a keypad button.
func (m Model) press(label string) Model {
	switch label {
	case "C":
		m.expr = ""
		m.result = "0"
		return m
	case "⌫":
		m.expr = backspace(m.expr)
		return m.preview()
	case "±":
		m.expr = toggleSign(m.expr)
		return m.preview()
	case "%":
		m.expr = percent(m.expr)
		return m.preview()
	case "=":
		return m.equals()
	case "÷":
		m.expr = appendOperator(m.expr, '/')
		return m.preview()
	case "×":
		m.expr = appendOperator(m.expr, '*')
		return m.preview()
	case "−":
		m.expr = appendOperator(m.expr, '-')
		return m.preview()
	case "+":
		m.expr = appendOperator(m.expr, '+')
		return m.preview()
	default:
		m.expr = appendChar(m.expr, label[0])
		return m.preview()
	}
}

// equals evaluates the expression for display. Failures show a generic
// error state; the expression is kept so the user can edit it.
func (m Model) equals() Model {
	if m.expr == "" {
		return m
	}
	r, err := procalc.EvalString(m.expr)
	if err != nil {
		m.result = "Error"
		return m
	}
	m.result = display.Result(r)
	return m
}

// preview updates the result line after an edit. Unlike equals, a failed
// evaluation keeps the previous result, since the expression is usually
// incomplete while it is being typed.
func (m Model) preview() Model {
	if m.expr == "" {
		m.result = "0"
		return m
	}
	r, err := procalc.EvalString(m.expr)
	if err != nil {
		return m
	}
	m.result = display.Result(r)
	return m
}
