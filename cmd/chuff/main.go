package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chuff",
		Short: "An error-tolerant Huff toolchain",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
