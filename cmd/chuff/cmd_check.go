package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chuff-lang/chuff/format"
	"github.com/chuff-lang/chuff/huff/parser"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse .huff files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read huff file: %w", err)
				}

				_, diags := parser.Parse(data, parser.WithFile(filename))
				if err := format.WriteDiagnostics(os.Stdout, diags); err != nil {
					return fmt.Errorf("write diagnostics: %w", err)
				}
				total += countErrors(diags)
			}

			if total > 0 {
				return fmt.Errorf("%d parse error(s)", total)
			}
			return nil
		},
	}
}
