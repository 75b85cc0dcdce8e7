package lexer

import (
	"omnicode/internal/token"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// profile describes one code-family scanner declaratively. All fields are
// immutable after init.
type profile struct {
	lineComment string
	blockOpen   string
	blockClose  string
	quotes      string
	// tripleToEOL makes a tripled quote consume the rest of the line.
	tripleToEOL bool
	escapes     bool
	identStart  func(byte) bool
	identPart   func(byte) bool
	keywords    wordSet
	builtins    wordSet
	// foldCase upper-cases words before the keyword lookup.
	foldCase bool
	// classes marks uppercase-led identifiers as token.Class.
	classes   bool
	operators *byteSet
}

var jsProfile = &profile{
	lineComment: "//",
	blockOpen:   "/*",
	blockClose:  "*/",
	quotes:      "\"'`",
	escapes:     true,
	identStart:  isJSIdentStart,
	identPart:   isJSIdentPart,
	keywords:    jsKeywords,
	builtins:    jsBuiltins,
	classes:     true,
	operators:   &jsOperators,
}

var pyProfile = &profile{
	lineComment: "#",
	quotes:      "\"'",
	tripleToEOL: true,
	escapes:     true,
	identStart:  isPyIdentStart,
	identPart:   isPyIdentPart,
	keywords:    pyKeywords,
	builtins:    pyBuiltins,
	classes:     true,
	operators:   &pyOperators,
}

var sqlProfile = &profile{
	lineComment: "--",
	blockOpen:   "/*",
	blockClose:  "*/",
	quotes:      "'\"",
	identStart:  isAlpha,
	identPart:   isPyIdentPart,
	keywords:    sqlKeywords,
	foldCase:    true,
	operators:   &sqlOperators,
}

type codeScanner struct {
	*scanner
	p    *profile
	fold cases.Caser
}

// scan tokenizes one line. Productions are tried in a fixed order at every
// position: whitespace, line comment, block comment, string, number,
// word, operator, and finally a single-rune text token.
func (p *profile) scan(line string) []token.Token {
	s := codeScanner{scanner: newScanner(line), p: p}
	if p.foldCase {
		// Caser хранит состояние, поэтому создаём на каждый вызов
		s.fold = cases.Upper(language.Und)
	}
	for !s.c.EOF() {
		if s.whitespace() {
			continue
		}
		ch := s.c.Peek()
		switch {
		case s.c.HasPrefix(p.lineComment):
			m := s.c.Mark()
			s.c.SkipToEnd()
			s.emit(token.Comment, m)
		case s.c.HasPrefix(p.blockOpen):
			m := s.c.Mark()
			s.c.BumpN(len(p.blockOpen))
			s.c.SkipPast(p.blockClose)
			s.emit(token.Comment, m)
		case isQuote(p.quotes, ch):
			s.stringLit(ch)
		case isDec(ch):
			m := s.c.Mark()
			s.digits()
			s.emit(token.Number, m)
		case p.identStart(ch):
			s.word()
		case p.operators.has(ch):
			s.operator()
		default:
			s.fallback()
		}
	}
	return s.toks
}

func (s *codeScanner) stringLit(q byte) {
	m := s.c.Mark()
	if s.p.tripleToEOL && s.c.PeekAt(1) == q && s.c.PeekAt(2) == q {
		// тройные кавычки: до конца строки
		s.c.SkipToEnd()
	} else {
		s.quoted(s.p.escapes)
	}
	s.emit(token.String, m)
}

func (s *codeScanner) word() {
	m := s.c.Mark()
	s.c.Bump()
	for !s.c.EOF() && s.p.identPart(s.c.Peek()) {
		s.c.Bump()
	}
	w := s.c.From(m)
	key := w
	if s.p.foldCase {
		key = s.fold.String(w)
	}
	switch {
	case s.p.keywords.has(key):
		s.emit(token.Keyword, m)
	case s.p.builtins.has(w):
		s.emit(token.Builtin, m)
	case s.p.classes && isUpper(w[0]):
		s.emit(token.Class, m)
	default:
		s.emit(token.Identifier, m)
	}
}

// operator groups consecutive operator characters. Brackets, braces,
// parens, semicolons and commas always stand alone, and a run stops in
// front of a comment opener.
func (s *codeScanner) operator() {
	m := s.c.Mark()
	first := s.c.Bump()
	if !breakers.has(first) {
		for !s.c.EOF() {
			ch := s.c.Peek()
			if !s.p.operators.has(ch) || breakers.has(ch) || s.atComment() {
				break
			}
			s.c.Bump()
		}
	}
	s.emit(token.Operator, m)
}

func (s *codeScanner) atComment() bool {
	return s.c.HasPrefix(s.p.lineComment) || s.c.HasPrefix(s.p.blockOpen)
}

func isQuote(quotes string, ch byte) bool {
	for i := 0; i < len(quotes); i++ {
		if quotes[i] == ch {
			return true
		}
	}
	return false
}
