package cmd

import (
	"fmt"
	"os"

	"github.com/jmcomets/mal/internal/bootstrap"
	malerrors "github.com/jmcomets/mal/internal/errors"
	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a mal source file or an inline expression",
	Long: `Execute mal source from a file or from an inline expression.

Examples:
  mal run script.mal
  mal run -e "(+ 1 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline expression instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var src, file string
	switch {
	case evalExpr != "":
		src = evalExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		src = string(data)
		file = args[0]
	default:
		return fmt.Errorf("either provide a file path or use -e for an inline expression")
	}

	root, err := bootstrap.NewRootEnvironment()
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	r := reader.New()
	if err := r.Push(src); err != nil {
		return fmt.Errorf("%s", malerrors.Wrap(err, src, file).Format(false))
	}

	var last string
	haveResult := false
	for {
		form, pos, ok := r.PopWithPos()
		if !ok {
			break
		}
		result, err := eval.EvalAt(form, root, pos)
		if err != nil {
			return fmt.Errorf("%s", malerrors.Wrap(err, src, file).Format(false))
		}
		last = printer.PrStr(result, true)
		haveResult = true
	}

	if evalExpr != "" && haveResult {
		fmt.Println(last)
	}
	return nil
}
