package lexer

import (
	"strings"

	"omnicode/internal/lang"
	"omnicode/internal/token"
)

type scanFunc func(line string) []token.Token

var scanners = [variantCount]scanFunc{
	Generic: scanGeneric,
	Code:    jsProfile.scan,
	Script:  pyProfile.scan,
	Query:   sqlProfile.scan,
	Markup:  scanMarkup,
	Style:   scanStyle,
	Data:    scanData,
}

// TokenizeLine splits one line into classified tokens. The concatenation
// of the returned values always equals line, and the call never fails:
// languages without a scanner get a single text token.
func TokenizeLine(line string, id lang.ID) []token.Token {
	return ScanLine(line, VariantFor(id))
}

// ScanLine runs the scanner for v directly. Out-of-range variants behave
// like Generic.
func ScanLine(line string, v Variant) []token.Token {
	if v >= variantCount {
		v = Generic
	}
	return scanners[v](line)
}

// Tokenize splits text on '\n' and tokenizes every line independently.
// No state crosses line boundaries.
func Tokenize(text string, id lang.ID) [][]token.Token {
	v := VariantFor(id)
	lines := strings.Split(text, "\n")
	out := make([][]token.Token, len(lines))
	for i, line := range lines {
		out[i] = ScanLine(line, v)
	}
	return out
}

func scanGeneric(line string) []token.Token {
	if line == "" {
		return []token.Token{}
	}
	return []token.Token{{Kind: token.Text, Text: line}}
}

// scanner накапливает токены одной строки
type scanner struct {
	c    Cursor
	toks []token.Token
}

func newScanner(line string) *scanner {
	return &scanner{
		c:    NewCursor(line),
		toks: make([]token.Token, 0, len(line)/3+1),
	}
}

func (s *scanner) emit(k token.Kind, m Mark) {
	if text := s.c.From(m); text != "" {
		s.toks = append(s.toks, token.Token{Kind: k, Text: text})
	}
}

// whitespace consumes a run of whitespace; it reports whether anything was emitted.
func (s *scanner) whitespace() bool {
	m := s.c.Mark()
	for !s.c.EOF() {
		r, _ := s.c.PeekRune()
		if !isSpaceRune(r) {
			break
		}
		s.c.BumpRune()
	}
	if s.c.Off == int(m) {
		return false
	}
	s.emit(token.Whitespace, m)
	return true
}

// quoted consumes a string opened by the quote byte under the cursor.
// With escapes set, a backslash shields the following byte. The closing
// quote is included when present; otherwise the string runs to end of line.
func (s *scanner) quoted(escapes bool) {
	quote := s.c.Bump()
	escaped := false
	for !s.c.EOF() {
		ch := s.c.Bump()
		if escaped {
			escaped = false
			continue
		}
		if escapes && ch == '\\' {
			escaped = true
			continue
		}
		if ch == quote {
			return
		}
	}
}

// digits consumes the [0-9.]* tail of a number.
func (s *scanner) digits() {
	for !s.c.EOF() {
		ch := s.c.Peek()
		if !isDec(ch) && ch != '.' {
			return
		}
		s.c.Bump()
	}
}

// fallback emits one whole rune as text.
func (s *scanner) fallback() {
	m := s.c.Mark()
	s.c.BumpRune()
	s.emit(token.Text, m)
}
