package lexer

import "unicode/utf8"

// Cursor представляет собой позицию внутри одной строки
type Cursor struct {
	Line string
	Off  int
}

// NewCursor creates a cursor positioned at the start of line.
func NewCursor(line string) Cursor {
	return Cursor{Line: line}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Line)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Line[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (c *Cursor) PeekAt(n int) byte {
	if c.Off+n >= len(c.Line) || c.Off+n < 0 {
		return 0
	}
	return c.Line[c.Off+n]
}

// HasPrefix reports whether the unread part of the line starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	if s == "" {
		return false
	}
	return len(c.Line)-c.Off >= len(s) && c.Line[c.Off:c.Off+len(s)] == s
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Line[c.Off]
	c.Off++
	return b
}

// BumpN advances n bytes, clamped to the end of the line.
func (c *Cursor) BumpN(n int) {
	c.Off += n
	if c.Off > len(c.Line) {
		c.Off = len(c.Line)
	}
}

// PeekRune decodes the rune under the cursor. Invalid UTF-8 reads as a
// one-byte utf8.RuneError so the cursor always makes progress.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.Line[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.Line[c.Off:])
}

// BumpRune advances over one whole rune.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	c.Off += sz
}

// SkipToEnd moves the cursor to the end of the line.
func (c *Cursor) SkipToEnd() {
	c.Off = len(c.Line)
}

// SkipPast advances to just after the next occurrence of s, or to the end
// of the line when s does not occur. It reports whether s was found.
func (c *Cursor) SkipPast(s string) bool {
	for i := c.Off; i+len(s) <= len(c.Line); i++ {
		if c.Line[i:i+len(s)] == s {
			c.Off = i + len(s)
			return true
		}
	}
	c.SkipToEnd()
	return false
}

// Mark это метка, что бы быстро получать текст читаемого фрагмента
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// From returns the text between m and the cursor.
func (c *Cursor) From(m Mark) string {
	return c.Line[int(m):c.Off]
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = int(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Line[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
