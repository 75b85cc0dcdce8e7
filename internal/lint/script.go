package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"omnicode/internal/diag"
)

func checkPython(b *buffer, r diag.Reporter) {
	unit := b.opts.IndentUnit
	b.each(func(n int, line, trimmed string) {
		if strings.HasPrefix(line, " ") && indentWidth(line)%unit != 0 {
			diag.ReportWarning(r, diag.RuleIndentation,
				fmt.Sprintf("Indentation should be %d spaces", unit)).AtLine(n).Emit()
		}
		if strings.HasPrefix(trimmed, "print ") && !strings.Contains(trimmed, "print(") {
			diag.ReportError(r, diag.RulePrintFunction, "Use print() function instead of print statement").AtLine(n).Emit()
		}
		if hasPrefixAny(trimmed, "if ", "for ", "while ", "def ", "class ") && !strings.HasSuffix(trimmed, ":") {
			diag.ReportError(r, diag.RuleMissingColon, "Missing colon at end of statement").AtLine(n).Emit()
		}
	})
}

// indentWidth is the byte offset of the first non-whitespace character;
// a blank line has width 0.
func indentWidth(line string) int {
	i := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return 0
	}
	return i
}

var endWord = regexp.MustCompile(`\bend\b`)

func checkRuby(b *buffer, r diag.Reporter) {
	hasEnd := endWord.MatchString(b.text)
	b.each(func(n int, _, trimmed string) {
		if !hasEnd && hasPrefixAny(trimmed, "def ", "class ", "if ", "unless ") {
			diag.ReportError(r, diag.RuleMissingEnd, `Missing corresponding "end" keyword`).AtLine(n).Emit()
		}
	})
}
