package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/interp"
	"github.com/floydspeak/floyd/pkg/value"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <ast-file>",
		Short: "Load a JSON AST file and run its main function",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading AST file: %w", err)
	}

	loader := ast.NewLoader()
	program, err := loader.LoadProgram(data)
	if err != nil {
		return diagnostic(err)
	}

	it := interp.New()
	result, err := it.RunMain(program, nil)
	if err != nil {
		return diagnostic(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value.Format(result))
	return nil
}

// diagnostic renders a single-line kind: subject diagnostic and sets the
// process exit code via cobra's error return: 0 on success, non-zero on
// any evaluation error, with a single-line diagnostic on stderr.
func diagnostic(err error) error {
	if e, ok := err.(*errs.EvalError); ok {
		return fmt.Errorf("%s", e.Error())
	}
	return err
}
