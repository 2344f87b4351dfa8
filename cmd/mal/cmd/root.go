// Package cmd wires the mal CLI together with cobra, mirroring the
// teacher's cmd/dwscript/cmd package: a root command carrying shared
// flags and version metadata, with `run`, `repl` and `version`
// registered as subcommands via init().
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left as a development default
	// otherwise.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mal",
	Short: "A small homoiconic Lisp interpreter",
	Long: `mal reads, evaluates and prints a small homoiconic Lisp dialect:
definitions, lexical binding, conditionals, closures with proper
lexical capture, tail-call elimination, mutable atom cells, file
inclusion and a standard library of built-ins.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mal version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
