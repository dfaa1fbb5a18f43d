package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chuff-lang/chuff/huff/parser"
)

func newLexCmd() *cobra.Command {
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Dump the token stream of a .huff file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read huff file: %w", err)
			}

			for _, tok := range parser.Tokenize(data) {
				if tok.IsTrivia() && !includeTrivia {
					continue
				}
				fmt.Printf("[%d-%d) %s %q\n", tok.Span.Start, tok.Span.End, tok.Kind, tok.Lexeme)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include whitespace and comment tokens")

	return cmd
}
