package token

import "strings"

// Token is one classified slice of a line.
type Token struct {
	Kind Kind   `json:"type" msgpack:"k"`
	Text string `json:"value" msgpack:"t"`
}

// IsTrivia reports whether the token carries no code (whitespace or comment).
func (t Token) IsTrivia() bool {
	return t.Kind == Whitespace || t.Kind == Comment
}

// IsWord reports whether the token came out of the identifier production.
func (t Token) IsWord() bool {
	switch t.Kind {
	case Keyword, Identifier, Builtin, Class, Property:
		return true
	default:
		return false
	}
}

// Join concatenates token values; for a scanned line it returns the line.
func Join(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String()
}
