package lexer

import (
	"fmt"

	"omnicode/internal/lang"
)

// Variant selects one of the line scanners. The set is closed: routing
// from language ids happens through a static table, never by inspecting
// the text.
type Variant uint8

const (
	// Generic emits the whole line as a single text token.
	Generic Variant = iota
	// Code is the curly-brace family (JavaScript tables).
	Code
	// Script is the hash-comment family (Python tables).
	Script
	// Query is SQL.
	Query
	// Markup is HTML/XML.
	Markup
	// Style is CSS/SCSS.
	Style
	// Data is JSON.
	Data

	variantCount
)

var variantNames = [variantCount]string{
	Generic: "generic",
	Code:    "code",
	Script:  "script",
	Query:   "query",
	Markup:  "markup",
	Style:   "style",
	Data:    "data",
}

func (v Variant) String() string {
	if v < variantCount {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", v)
}

// Several languages deliberately share one scanner; the JavaScript and
// Python tables stand in for their relatives.
var routes = map[lang.ID]Variant{
	lang.JavaScript: Code,
	lang.TypeScript: Code,
	lang.Java:       Code,
	lang.CPP:        Code,
	lang.C:          Code,
	lang.Go:         Code,
	lang.Rust:       Code,
	lang.PHP:        Code,
	lang.CSharp:     Code,

	lang.Python: Script,
	lang.Ruby:   Script,

	lang.SQL: Query,

	lang.HTML: Markup,
	lang.XML:  Markup,

	lang.CSS:  Style,
	lang.SCSS: Style,

	lang.JSON: Data,
}

// VariantFor returns the scanner variant for a language id; unknown ids
// get Generic.
func VariantFor(id lang.ID) Variant {
	if v, ok := routes[id]; ok {
		return v
	}
	return Generic
}

// Routes returns a copy of the routing table.
func Routes() map[lang.ID]Variant {
	out := make(map[lang.ID]Variant, len(routes))
	for id, v := range routes {
		out[id] = v
	}
	return out
}
