package lint

import (
	"strings"

	"omnicode/internal/diag"
)

func checkSQL(b *buffer, r diag.Reporter) {
	b.each(func(n int, _, trimmed string) {
		stmt := strings.ToLower(trimmed)
		if hasPrefixAny(stmt, "select ", "insert ", "update ", "delete ") &&
			!strings.HasSuffix(stmt, ";") && !strings.Contains(stmt, "--") {
			diag.ReportWarning(r, diag.RuleMissingSemicolon, "SQL statement should end with semicolon").AtLine(n).Emit()
		}
	})
}
