package lint

import (
	"fmt"
	"regexp"
	"strings"

	"omnicode/internal/diag"
)

// propertyName captures a declaration name loosely enough to see the
// characters a valid property never contains.
var propertyName = regexp.MustCompile(`^([A-Za-z_-][\w -]*?)\s*:`)

func checkStyle(b *buffer, r diag.Reporter) {
	b.each(func(n int, _, trimmed string) {
		declaration := strings.Contains(trimmed, ":") && !containsAny(trimmed, "{", "}")
		if declaration && !strings.HasSuffix(trimmed, ";") && !hasPrefixAny(trimmed, "/*", "//") {
			diag.ReportError(r, diag.RuleMissingSemicolon, "Missing semicolon after CSS property").AtLine(n).Emit()
		}
		if !declaration || strings.HasSuffix(trimmed, ",") {
			return
		}
		if m := propertyName.FindStringSubmatch(trimmed); m != nil && strings.ContainsAny(m[1], "_ ") {
			diag.ReportError(r, diag.RuleInvalidProperty,
				fmt.Sprintf("Invalid CSS property name: %s", m[1])).AtLine(n).Emit()
		}
	})
}
