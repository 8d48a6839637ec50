package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsplain/internal/diagfmt"
	"tsplain/internal/lexer"
	"tsplain/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ts",
	Short: "Tokenize a TypeScript source file",
	Long:  `Tokenize breaks down a TypeScript source file into the tokens the explain engine sees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	tokens := lexer.Scan(fs.Get(id))

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
