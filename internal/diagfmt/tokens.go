package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"omnicode/internal/style"
	"omnicode/internal/token"
)

// TokenFormat names an output format for token grids.
type TokenFormat string

const (
	TokensPretty    TokenFormat = "pretty"
	TokensHighlight TokenFormat = "highlight"
	TokensJSON      TokenFormat = "json"
	TokensHTML      TokenFormat = "html"
)

// TokenFormats lists the accepted token formats.
func TokenFormats() []TokenFormat {
	return []TokenFormat{TokensPretty, TokensHighlight, TokensJSON, TokensHTML}
}

// LineOutput is one source line in JSON token output.
type LineOutput struct {
	Line   int           `json:"line"`
	Tokens []token.Token `json:"tokens"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате,
// по одному на строку: "<line>:<col> <kind> <text>".
func FormatTokensPretty(w io.Writer, lines [][]token.Token) error {
	for i, toks := range lines {
		col := 1
		for _, tok := range toks {
			if _, err := fmt.Fprintf(w, "%4d:%-4d %-10s %q\n", i+1, col, tok.Kind, tok.Text); err != nil {
				return err
			}
			col += len(tok.Text)
		}
	}
	return nil
}

// FormatTokensHighlight prints the source with terminal colours.
func FormatTokensHighlight(w io.Writer, lines [][]token.Token, dark bool) error {
	for _, toks := range lines {
		if _, err := fmt.Fprintln(w, style.RenderLine(toks, dark)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, lines [][]token.Token) error {
	out := make([]LineOutput, len(lines))
	for i, toks := range lines {
		out[i] = LineOutput{Line: i + 1, Tokens: toks}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatTokensHTML writes the presentation markup for the grid.
func FormatTokensHTML(w io.Writer, lines [][]token.Token, dark bool) error {
	_, err := io.WriteString(w, style.RenderHTML(lines, dark))
	return err
}
