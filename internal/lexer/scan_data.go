package lexer

import "omnicode/internal/token"

// scanData tokenizes a JSON line. A string followed (after optional
// blanks) by ':' is an object key and classifies as token.Property.
func scanData(line string) []token.Token {
	s := newScanner(line)
	for !s.c.EOF() {
		if s.whitespace() {
			continue
		}
		m := s.c.Mark()
		ch := s.c.Peek()
		switch {
		case ch == '"':
			s.quoted(true)
			if s.keyFollows() {
				s.emit(token.Property, m)
			} else {
				s.emit(token.String, m)
			}
		case isDec(ch) || ch == '-':
			s.c.Eat('-')
			s.digits()
			s.emit(token.Number, m)
		case isAlpha(ch):
			for !s.c.EOF() && isAlpha(s.c.Peek()) {
				s.c.Bump()
			}
			if jsonLiterals.has(s.c.From(m)) {
				s.emit(token.Keyword, m)
			} else {
				s.emit(token.Text, m)
			}
		case jsonPunct.has(ch):
			s.c.Bump()
			s.emit(token.Operator, m)
		default:
			s.fallback()
		}
	}
	return s.toks
}

// keyFollows peeks past spaces and tabs for a ':' without consuming anything.
func (s *scanner) keyFollows() bool {
	for i := s.c.Off; i < len(s.c.Line); i++ {
		switch s.c.Line[i] {
		case ' ', '\t':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}
