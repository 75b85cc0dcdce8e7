package diagfmt

import (
	"strings"

	"omnicode/internal/diag"
	"omnicode/internal/token"
)

// Entry is one document's diagnostics plus the source lines used for
// context. Lines may be nil, then no context is printed.
type Entry struct {
	Path        string
	Lines       []string
	Diagnostics []diag.Diagnostic
}

// NewEntry splits text into lines for context rendering.
func NewEntry(path, text string, diags []diag.Diagnostic) Entry {
	return Entry{Path: path, Lines: strings.Split(text, "\n"), Diagnostics: diags}
}

// LinesFromTokens rebuilds source lines from a token grid.
func LinesFromTokens(lines [][]token.Token) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = token.Join(l)
	}
	return out
}

func (e Entry) line(n int) (string, bool) {
	if n <= 0 || n > len(e.Lines) {
		return "", false
	}
	return e.Lines[n-1], true
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Context int // lines shown around the diagnostic line
	Width   int // максимальная ширина строки, 0 - не ограничено
	// Summary appends "N errors, M warnings".
	Summary bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max    int // обрезка вывода, не Bag
	Indent bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}

// Format names an output format for diagnostics.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatShort  Format = "short"
	FormatJSON   Format = "json"
	FormatSARIF  Format = "sarif"
)

// Formats lists the accepted diagnostic formats.
func Formats() []Format { return []Format{FormatPretty, FormatShort, FormatJSON, FormatSARIF} }
