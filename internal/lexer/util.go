package lexer

import "unicode"

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// [a-zA-Z_$]
func isJSIdentStart(b byte) bool { return isAlpha(b) || b == '_' || b == '$' }

// [a-zA-Z0-9_$]
func isJSIdentPart(b byte) bool { return isJSIdentStart(b) || isDec(b) }

// [a-zA-Z_]
func isPyIdentStart(b byte) bool { return isAlpha(b) || b == '_' }

// [a-zA-Z0-9_]
func isPyIdentPart(b byte) bool { return isPyIdentStart(b) || isDec(b) }

// [a-zA-Z-]
func isCSSWordStart(b byte) bool { return isAlpha(b) || b == '-' }

// [a-zA-Z0-9-]
func isCSSWordPart(b byte) bool { return isCSSWordStart(b) || isDec(b) }

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return r >= 0x80 && unicode.IsSpace(r)
}

// byteSet is a 256-bit membership table for ASCII punctuation classes.
type byteSet [4]uint64

func newByteSet(chars string) byteSet {
	var s byteSet
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		s[b>>6] |= 1 << (b & 63)
	}
	return s
}

func (s *byteSet) has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// wordSet is an immutable keyword table.
type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}
