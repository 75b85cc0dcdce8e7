// Package lint runs the per-language heuristic rule sets over a text buffer.
//
// Every rule is deliberately shallow: line-local string checks plus a few
// whole-buffer counts. Nothing here parses the language, except the data
// formats (JSON, YAML, TOML) which are checked with a real decoder.
package lint

import (
	"strings"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
)

// DefaultIndentUnit is the Python indentation width used when Options leave it unset.
const DefaultIndentUnit = 4

// Options tune the rule sets.
type Options struct {
	// IndentUnit is the expected Python indentation width.
	IndentUnit int
	// Disabled rules are dropped before reaching the result.
	Disabled []diag.Rule
	// Max caps the number of diagnostics per buffer; <= 0 means unlimited.
	Max int
}

// DefaultOptions returns the options Validate uses.
func DefaultOptions() Options {
	return Options{IndentUnit: DefaultIndentUnit}
}

// Linter is an immutable, concurrency-safe validator.
type Linter struct {
	opts Options
}

// New builds a Linter; a non-positive IndentUnit falls back to DefaultIndentUnit.
func New(opts Options) *Linter {
	if opts.IndentUnit <= 0 {
		opts.IndentUnit = DefaultIndentUnit
	}
	opts.Disabled = append([]diag.Rule(nil), opts.Disabled...)
	return &Linter{opts: opts}
}

// Options returns a copy of the linter's options.
func (l *Linter) Options() Options {
	o := l.opts
	o.Disabled = append([]diag.Rule(nil), l.opts.Disabled...)
	return o
}

var defaultLinter = New(DefaultOptions())

// Validate runs the rule set for id over text with default options.
// It never fails; unknown ids use the generic rule set.
func Validate(text string, id lang.ID) []diag.Diagnostic {
	return defaultLinter.Validate(text, id)
}

// Validate runs the rule set for id over text. The result is never nil
// and lists diagnostics in rule execution order.
func (l *Linter) Validate(text string, id lang.ID) []diag.Diagnostic {
	bag := diag.NewBag(l.opts.Max)
	l.Run(text, id, diag.BagReporter{Bag: bag})
	items := bag.Items()
	if items == nil {
		return []diag.Diagnostic{}
	}
	return items
}

// Run streams diagnostics for text into r.
func (l *Linter) Run(text string, id lang.ID, r diag.Reporter) {
	if len(l.opts.Disabled) > 0 {
		r = diag.NewFilterReporter(r, l.opts.Disabled...)
	}
	set, ok := ruleSets[id]
	if !ok {
		set = checkGeneric
	}
	set(newBuffer(text, l.opts), r)
}

// HasRuleSet reports whether id has a dedicated rule set.
func HasRuleSet(id lang.ID) bool {
	_, ok := ruleSets[id]
	return ok
}

type ruleSet func(b *buffer, r diag.Reporter)

var ruleSets = map[lang.ID]ruleSet{
	lang.JavaScript: checkJavaScript,
	lang.TypeScript: checkTypeScript,
	lang.Java:       checkJava,
	lang.Rust:       checkRust,
	lang.C:          checkCFamily,
	lang.CPP:        checkCFamily,
	lang.CSharp:     checkCSharp,
	lang.Go:         checkGo,
	lang.PHP:        checkPHP,
	lang.Python:     checkPython,
	lang.Ruby:       checkRuby,
	lang.HTML:       checkHTML,
	lang.XML:        checkXML,
	lang.CSS:        checkStyle,
	lang.SCSS:       checkStyle,
	lang.SQL:        checkSQL,
	lang.JSON:       checkJSON,
	lang.YAML:       checkYAML,
	lang.TOML:       checkTOML,
}

// buffer is the read-only view every rule set works on.
type buffer struct {
	text  string
	lines []string
	opts  Options
}

func newBuffer(text string, opts Options) *buffer {
	return &buffer{
		text:  text,
		lines: strings.Split(text, "\n"),
		opts:  opts,
	}
}

// each calls fn for every line with its 1-based number and trimmed form.
func (b *buffer) each(fn func(n int, line, trimmed string)) {
	for i, line := range b.lines {
		fn(i+1, line, strings.TrimSpace(line))
	}
}

func hasPrefixAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasSuffixAny(s string, suffixes ...string) bool {
	for _, p := range suffixes {
		if strings.HasSuffix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, p := range subs {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func checkGeneric(b *buffer, r diag.Reporter) {
	if strings.TrimSpace(b.text) == "" {
		diag.ReportInfo(r, diag.RuleEmptyFile, "File is empty").Emit()
	}
}
