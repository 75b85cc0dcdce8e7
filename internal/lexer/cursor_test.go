package lexer

import "testing"

// TestSequentialReading проверяет последовательное чтение: "ab" → a, b, EOF
func TestSequentialReading(t *testing.T) {
	c := NewCursor("ab")
	if c.EOF() {
		t.Fatal("Expected not EOF at start")
	}
	if b := c.Bump(); b != 'a' {
		t.Errorf("Expected bump 'a', got %c", b)
	}
	if c.Peek() != 'b' {
		t.Errorf("Expected peek 'b', got %c", c.Peek())
	}
	c.Bump()
	if !c.EOF() {
		t.Error("Expected EOF after two bumps")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Error("Expected zero bytes past EOF")
	}
}

func TestMarkAndReset(t *testing.T) {
	c := NewCursor("hello")
	m := c.Mark()
	c.BumpN(3)
	if got := c.From(m); got != "hel" {
		t.Fatalf("From = %q", got)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset did not rewind, Off=%d", c.Off)
	}
	c.BumpN(100)
	if !c.EOF() || c.Off != 5 {
		t.Fatalf("BumpN should clamp, Off=%d", c.Off)
	}
}

func TestSkipPast(t *testing.T) {
	c := NewCursor("/* a */ b")
	c.BumpN(2)
	if !c.SkipPast("*/") || c.Off != 7 {
		t.Fatalf("SkipPast found=%v Off=%d", true, c.Off)
	}
	c = NewCursor("/* open")
	c.BumpN(2)
	if c.SkipPast("*/") || !c.EOF() {
		t.Fatalf("unterminated SkipPast should reach EOF")
	}
}

func TestRunes(t *testing.T) {
	c := NewCursor("é\xffx")
	c.BumpRune()
	if c.Off != 2 {
		t.Fatalf("é is two bytes, Off=%d", c.Off)
	}
	c.BumpRune()
	if c.Off != 3 {
		t.Fatalf("invalid byte must advance by one, Off=%d", c.Off)
	}
	if !c.HasPrefix("x") || c.HasPrefix("xy") || c.HasPrefix("") {
		t.Fatal("HasPrefix mismatch")
	}
}
