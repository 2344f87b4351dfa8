package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jmcomets/mal/internal/bootstrap"
	malerrors "github.com/jmcomets/mal/internal/errors"
	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/spf13/cobra"
)

const (
	promptStart        = "user> "
	promptContinuation = "...   "
	historyFile        = ".mal-history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	root, err := bootstrap.NewRootEnvironment()
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStart,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		// A broken terminal/history file is non-fatal: fall back to a
		// bare readline with no persistence.
		rl, err = readline.New(promptStart)
		if err != nil {
			return fmt.Errorf("failed to start line editor: %w", err)
		}
	}
	defer rl.Close()

	r := reader.New()
	var src strings.Builder
	for {
		if r.HasUnclosed() {
			rl.SetPrompt(promptContinuation)
		} else {
			rl.SetPrompt(promptStart)
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Cancel the current (possibly multi-line) buffer and return
			// to the start prompt; the interpreter state is untouched.
			r = reader.New()
			src.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		src.WriteString(line)
		src.WriteString("\n")

		if pushErr := r.Push(line + "\n"); pushErr != nil {
			fmt.Fprintln(os.Stderr, malerrors.Wrap(pushErr, src.String(), "").Format(true))
			src.Reset()
			continue
		}

		for {
			form, pos, ok := r.PopWithPos()
			if !ok {
				break
			}
			result, evalErr := eval.EvalAt(form, root, pos)
			if evalErr != nil {
				fmt.Fprintln(os.Stderr, malerrors.Wrap(evalErr, src.String(), "").Format(true))
				continue
			}
			fmt.Println(printer.PrStr(result, true))
		}

		if !r.HasUnclosed() {
			src.Reset()
		}
	}
}
