package lint

import (
	"fmt"
	"regexp"
	"strings"

	"omnicode/internal/diag"
)

var undefinedAssign = regexp.MustCompile(`(\w+)\s*=\s*undefined`)

// terminated reports whether a trimmed line needs no semicolon: it is
// empty or ends a statement or block.
func terminated(trimmed string) bool {
	return trimmed == "" || hasSuffixAny(trimmed, ";", "{", "}")
}

// blockComments follows /* */ across lines so that continuation lines
// of a block comment are not checked as code.
type blockComments struct {
	open bool
}

// comment reports whether trimmed is a comment line. It must see every
// line of the buffer in order.
func (c *blockComments) comment(trimmed string) bool {
	switch {
	case c.open:
		if strings.Contains(trimmed, "*/") {
			c.open = false
		}
		return true
	case strings.HasPrefix(trimmed, "//"):
		return true
	case strings.HasPrefix(trimmed, "/*"):
		c.open = !strings.Contains(trimmed[2:], "*/")
		return true
	}
	if i := strings.LastIndex(trimmed, "/*"); i >= 0 && !strings.Contains(trimmed[i+2:], "*/") {
		c.open = true
	}
	return false
}

func checkJavaScript(b *buffer, r diag.Reporter) { checkScriptFamily(b, r, false) }

func checkTypeScript(b *buffer, r diag.Reporter) { checkScriptFamily(b, r, true) }

func checkScriptFamily(b *buffer, r diag.Reporter, typed bool) {
	var bc blockComments
	b.each(func(n int, line, trimmed string) {
		inComment := bc.comment(trimmed)
		if strings.Contains(trimmed, "console.log(") && !strings.Contains(trimmed, ")") {
			diag.ReportError(r, diag.RuleSyntaxError, "Missing closing parenthesis in console.log").AtLine(n).Emit()
		}
		if !inComment && !terminated(trimmed) && !containsAny(trimmed, "if ", "for ", "while ", "function ") {
			diag.ReportWarning(r, diag.RuleMissingSemicolon, "Missing semicolon").AtLine(n).Emit()
		}
		if m := undefinedAssign.FindStringSubmatchIndex(line); m != nil {
			name := line[m[2]:m[3]]
			diag.ReportWarning(r, diag.RuleExplicitUndefined,
				fmt.Sprintf("Variable '%s' is explicitly set to undefined", name)).At(n, m[2]+1).Emit()
		}
		if typed {
			if col := strings.Index(line, ": any"); col >= 0 {
				diag.ReportWarning(r, diag.RuleNoAny, `Avoid using "any" type, use specific types instead`).At(n, col+1).Emit()
			}
		}
	})
	checkBraces(b, r)
}

func checkJava(b *buffer, r diag.Reporter) {
	var bc blockComments
	b.each(func(n int, _, trimmed string) {
		if bc.comment(trimmed) || terminated(trimmed) || containsAny(trimmed, "if ", "for ", "while ", "class ", "public ", "private ", "protected ") {
			return
		}
		diag.ReportError(r, diag.RuleMissingSemicolon, "Missing semicolon").AtLine(n).Emit()
	})
	checkBraces(b, r)
}

func checkRust(b *buffer, r diag.Reporter) {
	var bc blockComments
	b.each(func(n int, _, trimmed string) {
		if bc.comment(trimmed) || terminated(trimmed) || containsAny(trimmed, "fn ", "if ", "for ", "while ", "match ") {
			return
		}
		diag.ReportWarning(r, diag.RuleMissingSemicolon, "Missing semicolon").AtLine(n).Emit()
	})
	checkBraces(b, r)
}

// checkBraces compares the raw '{' and '}' counts of the whole buffer.
// Braces inside strings and comments count too.
func checkBraces(b *buffer, r diag.Reporter) {
	open := strings.Count(b.text, "{")
	closing := strings.Count(b.text, "}")
	if open != closing {
		diag.ReportError(r, diag.RuleUnmatchedBrackets,
			fmt.Sprintf("Unmatched brackets: %d opening, %d closing", open, closing)).Emit()
	}
}
