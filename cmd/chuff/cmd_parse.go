package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chuff-lang/chuff/format"
	"github.com/chuff-lang/chuff/huff/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .huff file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read huff file: %w", err)
			}

			opts := []parser.Option{parser.WithFile(filename)}
			if includeComments {
				opts = append(opts, parser.WithComments())
			}
			root, diags := parser.Parse(data, opts...)

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.Encode(root); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "tree":
				fmt.Println(root.String())
			default:
				return fmt.Errorf("unknown format: %s (expected json or tree)", outputFormat)
			}

			if len(diags) > 0 {
				if err := format.WriteDiagnostics(os.Stderr, diags); err != nil {
					return fmt.Errorf("write diagnostics: %w", err)
				}
			}
			if n := countErrors(diags); n > 0 {
				return fmt.Errorf("%d parse error(s) in %s", n, filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "include comments in the syntax tree")

	return cmd
}

func countErrors(diags []parser.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == parser.SeverityError {
			n++
		}
	}
	return n
}
