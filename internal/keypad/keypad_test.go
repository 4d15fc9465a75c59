package keypad_test

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/procalc/procalc/internal/keypad"
)

// feed runs a sequence of key presses through the model. Single-character
// strings are typed as runes; anything longer is a named key.
func feed(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func model(keys ...string) keypad.Model {
	return feed(keypad.New(), keys...).(keypad.Model)
}

var _ = Describe("Keypad", func() {
	Describe("Typing", func() {
		It("accumulates digits and operators", func() {
			m := model("2", "+", "3")
			Expect(m.Expression()).To(Equal("2+3"))
		})

		It("previews the result while typing", func() {
			Expect(model("2", "+", "3").Result()).To(Equal("5"))
		})

		It("keeps the last preview while the expression is incomplete", func() {
			Expect(model("2", "+").Result()).To(Equal("2"))
		})

		It("ignores a second decimal point in the same number", func() {
			Expect(model("2", ".", "5", ".").Expression()).To(Equal("2.5"))
		})

		It("allows a decimal point in a later number", func() {
			Expect(model("2", ".", "5", "+", "1", ".").Expression()).To(Equal("2.5+1."))
		})

		It("replaces a trailing operator", func() {
			Expect(model("2", "+", "*").Expression()).To(Equal("2*"))
		})

		It("refuses operators other than minus on an empty expression", func() {
			Expect(model("*").Expression()).To(Equal(""))
			Expect(model("-").Expression()).To(Equal("-"))
		})

		It("maps the display spellings to evaluator operators", func() {
			m := model("6", "÷", "2", "×", "3", "−", "1", "=")
			Expect(m.Expression()).To(Equal("6/2*3-1"))
			Expect(m.Result()).To(Equal("8"))
		})
	})

	Describe("Evaluation", func() {
		It("formats integral results without a decimal point", func() {
			Expect(model("2", "+", "3", "=").Result()).To(Equal("5"))
		})

		It("trims trailing zeros from fractional results", func() {
			Expect(model("1", "/", "4", "=").Result()).To(Equal("0.25"))
		})

		It("shows Error for a numeric fault", func() {
			Expect(model("5", "/", "0", "=").Result()).To(Equal("Error"))
		})

		It("keeps the expression after an error so it can be edited", func() {
			m := model("5", "/", "0", "=", "backspace", "2", "=")
			Expect(m.Expression()).To(Equal("5/2"))
			Expect(m.Result()).To(Equal("2.5"))
		})
	})

	Describe("Actions", func() {
		It("clears on escape", func() {
			m := model("2", "+", "3", "esc")
			Expect(m.Expression()).To(Equal(""))
			Expect(m.Result()).To(Equal("0"))
		})

		It("deletes with backspace", func() {
			Expect(model("2", "+", "3", "backspace").Expression()).To(Equal("2+"))
		})

		It("toggles the sign of the trailing number", func() {
			Expect(model("5", "±").Expression()).To(Equal("-5"))
			Expect(model("5", "±", "±").Expression()).To(Equal("5"))
			Expect(model("2", "+", "5", "±").Expression()).To(Equal("2+-5"))
		})

		It("divides the trailing number by 100 on percent", func() {
			Expect(model("5", "0", "%").Expression()).To(Equal("0.5"))
			Expect(model("2", "+", "1", "0", "%").Expression()).To(Equal("2+0.1"))
		})
	})

	Describe("Navigation", func() {
		It("starts on the top-left button", func() {
			m := model("down", "enter")
			Expect(m.Expression()).To(Equal("7"))
		})

		It("presses the highlighted button", func() {
			m := model("down", "right", "enter", "down", "enter")
			// 8, then 5 one row down.
			Expect(m.Expression()).To(Equal("85"))
		})

		It("clamps to shorter rows", func() {
			m := model("5", "down", "right", "right", "right", "down", "down", "down", "enter")
			// The cursor ends on + after clamping from the ÷ column.
			Expect(m.Expression()).To(Equal("5+"))
		})

		It("evaluates via the equals button", func() {
			m := model("4", "*", "5", "down", "down", "down", "down", "down", "enter")
			Expect(m.Result()).To(Equal("20"))
		})
	})

	Describe("Quit", func() {
		It("quits on q", func() {
			_, cmd := keypad.New().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})
	})

	Describe("View", func() {
		It("renders the title, display, and buttons", func() {
			v := model("2", "+", "3").View()
			Expect(v).To(ContainSubstring("Pro Calculator"))
			Expect(v).To(ContainSubstring("2+3"))
			Expect(v).To(ContainSubstring("⌫"))
			Expect(v).To(ContainSubstring("="))
		})
	})
})
