// Package style maps token kinds to presentation handles for dark and light themes.
package style

import (
	"omnicode/internal/token"
)

// Handle is an opaque presentation value: the utility class used by the
// web shell and the hex colour it stands for. An empty Color means the
// token is not tinted.
type Handle struct {
	Class string `json:"class"`
	Color string `json:"color,omitempty"`
}

var darkTable = [token.NumKinds]Handle{
	token.Keyword:    {"text-purple-400", "#c084fc"},
	token.String:     {"text-green-400", "#4ade80"},
	token.Number:     {"text-blue-400", "#60a5fa"},
	token.Comment:    {"text-gray-500", "#6b7280"},
	token.Operator:   {"text-yellow-400", "#facc15"},
	token.Builtin:    {"text-cyan-400", "#22d3ee"},
	token.Class:      {"text-yellow-300", "#fde047"},
	token.Property:   {"text-blue-300", "#93c5fd"},
	token.Tag:        {"text-red-400", "#f87171"},
	token.Identifier: {"text-white", "#ffffff"},
	token.Whitespace: {"text-transparent", ""},
	token.Text:       {"text-gray-300", "#d1d5db"},
}

var lightTable = [token.NumKinds]Handle{
	token.Keyword:    {"text-purple-600", "#9333ea"},
	token.String:     {"text-green-600", "#16a34a"},
	token.Number:     {"text-blue-600", "#2563eb"},
	token.Comment:    {"text-gray-500", "#6b7280"},
	token.Operator:   {"text-orange-600", "#ea580c"},
	token.Builtin:    {"text-cyan-600", "#0891b2"},
	token.Class:      {"text-yellow-600", "#ca8a04"},
	token.Property:   {"text-blue-500", "#3b82f6"},
	token.Tag:        {"text-red-600", "#dc2626"},
	token.Identifier: {"text-gray-900", "#111827"},
	token.Whitespace: {"text-transparent", ""},
	token.Text:       {"text-gray-700", "#374151"},
}

// For returns the handle for kind in the requested theme. Unknown kinds
// get the text entry.
func For(kind token.Kind, dark bool) Handle {
	if !kind.Valid() {
		kind = token.Text
	}
	if dark {
		return darkTable[kind]
	}
	return lightTable[kind]
}
