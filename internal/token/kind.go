package token

import "fmt"

// Kind represents the highlight category of a token.
type Kind uint8

const (
	// Text is the catch-all kind for characters no production claims.
	Text Kind = iota
	// Keyword is a reserved word of the scanned language.
	Keyword
	// Identifier is a name that is neither keyword, builtin nor class.
	Identifier
	// Builtin is a well-known global or standard function.
	Builtin
	// Class is an identifier starting with an uppercase letter.
	Class
	// String is a quoted literal, closing quote included when present.
	String
	// Number is a numeric literal.
	Number
	// Comment is a line or block comment.
	Comment
	// Operator is punctuation or an operator run.
	Operator
	// Property is a CSS property name or a JSON object key.
	Property
	// Tag is a markup tag from '<' to '>'.
	Tag
	// Whitespace is a run of whitespace characters.
	Whitespace
)

// NumKinds is the number of distinct kinds.
const NumKinds = int(Whitespace) + 1

var kindNames = [NumKinds]string{
	Text:       "text",
	Keyword:    "keyword",
	Identifier: "identifier",
	Builtin:    "builtin",
	Class:      "class",
	String:     "string",
	Number:     "number",
	Comment:    "comment",
	Operator:   "operator",
	Property:   "property",
	Tag:        "tag",
	Whitespace: "whitespace",
}

// String returns the lowercase kind label used in every output format.
func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// ParseKind maps a label back to its kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Text, false
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown token kind %q", b)
	}
	*k = v
	return nil
}
