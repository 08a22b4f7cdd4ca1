package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"galaxy/internal/diagfmt"
	"galaxy/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:          "tokenize [flags] file.galaxy",
	Short:        "Tokenize a galaxy source file",
	Long:         `Tokenize breaks a galaxy source file into its token stream without parsing it`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	result, err := driver.Tokenize(args[0], maxDiags)
	if err != nil {
		return err
	}

	// Lexical errors go to stderr so the token stream stays pipeable.
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.Files, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.Files)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
