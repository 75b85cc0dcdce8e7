package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omnicode/internal/diagfmt"
	"omnicode/internal/lexer"
	"omnicode/internal/source"
	"omnicode/internal/trace"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file|->",
		Short: "Tokenize a source buffer",
		Long:  `Tokenize splits every line of a buffer into classified tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|highlight|json|html)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file, err := loadInput(cmd, source.NewFileSet(), args[0])
	if err != nil {
		return err
	}
	text := file.Text()
	id := s.fileOptions().DetectLanguage(file.Path, text)

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "tokenize", 0).
		WithExtra("lang", string(id))
	lines := lexer.Tokenize(text, id)
	span.End(fmt.Sprintf("%d lines", len(lines)))

	out := cmd.OutOrStdout()
	switch diagfmt.TokenFormat(format) {
	case diagfmt.TokensPretty:
		return diagfmt.FormatTokensPretty(out, lines)
	case diagfmt.TokensHighlight:
		return diagfmt.FormatTokensHighlight(out, lines, s.dark)
	case diagfmt.TokensJSON:
		return diagfmt.FormatTokensJSON(out, lines)
	case diagfmt.TokensHTML:
		return diagfmt.FormatTokensHTML(out, lines, s.dark)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
