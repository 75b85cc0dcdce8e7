package token_test

import (
	"testing"

	"omnicode/internal/token"
)

func TestKindLabels(t *testing.T) {
	want := map[token.Kind]string{
		token.Keyword:    "keyword",
		token.Identifier: "identifier",
		token.Builtin:    "builtin",
		token.Class:      "class",
		token.String:     "string",
		token.Number:     "number",
		token.Comment:    "comment",
		token.Operator:   "operator",
		token.Property:   "property",
		token.Tag:        "tag",
		token.Whitespace: "whitespace",
		token.Text:       "text",
	}
	if len(want) != token.NumKinds {
		t.Fatalf("expected %d kinds, table has %d", token.NumKinds, len(want))
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), s)
		}
		back, ok := token.ParseKind(s)
		if !ok || back != k {
			t.Errorf("ParseKind(%q) = %v, %v", s, back, ok)
		}
	}
	if token.Kind(200).Valid() {
		t.Fatalf("Kind(200) must be invalid")
	}
	if _, ok := token.ParseKind("bogus"); ok {
		t.Fatalf("ParseKind accepted an unknown label")
	}
}

func TestKindText(t *testing.T) {
	var k token.Kind
	if err := k.UnmarshalText([]byte("comment")); err != nil || k != token.Comment {
		t.Fatalf("UnmarshalText: %v %v", k, err)
	}
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func TestJoinAndPredicates(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Keyword, Text: "const"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Identifier, Text: "x"},
		{Kind: token.Comment, Text: "// c"},
	}
	if got := token.Join(toks); got != "const x// c" {
		t.Fatalf("Join = %q", got)
	}
	if !toks[1].IsTrivia() || !toks[3].IsTrivia() || toks[0].IsTrivia() {
		t.Fatalf("IsTrivia mismatch")
	}
	if !toks[0].IsWord() || toks[1].IsWord() {
		t.Fatalf("IsWord mismatch")
	}
}
