package lexer

import "omnicode/internal/token"

// scanStyle tokenizes a CSS/SCSS line.
func scanStyle(line string) []token.Token {
	s := newScanner(line)
	for !s.c.EOF() {
		if s.whitespace() {
			continue
		}
		m := s.c.Mark()
		ch := s.c.Peek()
		switch {
		case s.c.HasPrefix("/*"):
			s.c.BumpN(2)
			s.c.SkipPast("*/")
			s.emit(token.Comment, m)
		case ch == '"' || ch == '\'':
			s.quoted(true)
			s.emit(token.String, m)
		case isCSSWordStart(ch):
			for !s.c.EOF() && isCSSWordPart(s.c.Peek()) {
				s.c.Bump()
			}
			if cssProperties.has(s.c.From(m)) {
				s.emit(token.Property, m)
			} else {
				s.emit(token.Identifier, m)
			}
		case isDec(ch):
			s.digits()
			// единицы измерения: px, em, rem, %, ...
			for !s.c.EOF() && (isAlpha(s.c.Peek()) || s.c.Peek() == '%') {
				s.c.Bump()
			}
			s.emit(token.Number, m)
		case cssPunct.has(ch):
			s.c.Bump()
			s.emit(token.Operator, m)
		default:
			s.fallback()
		}
	}
	return s.toks
}
