package main

import (
	"bufio"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/procalc/procalc"
	"github.com/procalc/procalc/internal/display"
	"github.com/procalc/procalc/internal/keypad"
)

var rootCmd = &cobra.Command{
	Use:   "procalc",
	Short: "A calculator with a safe expression evaluator",
	Long: `Run an interactive calculator keypad in the terminal.

Expressions are evaluated by a restricted arithmetic evaluator; input is
never executed as code. Use the eval subcommand for one-shot evaluation.`,
	Args:         cobra.ExactArgs(0),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(keypad.New(), tea.WithAltScreen()).Run()
		return errors.WithMessage(err, "running keypad")
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval expression...",
	Short: "Evaluate expressions and print the results",
	Example: `  procalc eval "2+3*4"
  echo "2^10" | procalc eval -`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "-" {
			return evalLines(cmd.InOrStdin())
		}
		for _, arg := range args {
			r, err := procalc.EvalString(arg)
			if err != nil {
				return errors.WithMessagef(err, "evaluating %q", arg)
			}
			pterm.Println(display.Result(r))
		}
		return nil
	},
}

// evalLines evaluates one expression per line until EOF. Blank lines are
// skipped.
func evalLines(src io.Reader) error {
	in := bufio.NewReader(src)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r == '\n' || r == '\r' {
			continue
		}
		if err := in.UnreadRune(); err != nil {
			return err
		}
		v, err := procalc.Eval(in, procalc.StopOn('\n'))
		if err != nil {
			return err
		}
		pterm.Println(display.Result(v))
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Provide a cleaner message than a bare stack trace.
			pterm.Error.Printfln("unhandled panic: %v", r)
			os.Exit(2)
		}
	}()
	rootCmd.AddCommand(evalCmd)
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
