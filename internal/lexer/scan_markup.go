package lexer

import "omnicode/internal/token"

// scanMarkup tokenizes an HTML/XML line: whitespace, comments, tags and
// runs of text content.
func scanMarkup(line string) []token.Token {
	s := newScanner(line)
	for !s.c.EOF() {
		if s.whitespace() {
			continue
		}
		m := s.c.Mark()
		switch {
		case s.c.HasPrefix("<!--"):
			s.c.BumpN(4)
			s.c.SkipPast("-->")
			s.emit(token.Comment, m)
		case s.c.Peek() == '<':
			s.tag()
			s.emit(token.Tag, m)
		default:
			// текст до следующего '<'
			for !s.c.EOF() && s.c.Peek() != '<' {
				s.c.Bump()
			}
			s.emit(token.Text, m)
		}
	}
	return s.toks
}

// tag consumes from '<' to the closing '>', skipping '>' inside quoted
// attribute values. An unterminated tag runs to end of line.
func (s *scanner) tag() {
	s.c.Bump()
	for !s.c.EOF() {
		switch ch := s.c.Peek(); ch {
		case '"', '\'':
			s.c.Bump()
			for !s.c.EOF() && s.c.Peek() != ch {
				s.c.Bump()
			}
			s.c.Eat(ch)
		case '>':
			s.c.Bump()
			return
		default:
			s.c.Bump()
		}
	}
}
