package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation: "<severity> <rule> <path>[:line[:col]] <message>".
// Input order is preserved.
func FormatShortDiagnostics(path string, diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	path = normalizePath(path)
	var b strings.Builder
	for i, d := range diags {
		rule := d.Rule.ID()
		if rule == "" {
			rule = "-"
		}
		fmt.Fprintf(&b, "%s %s %s %s", d.Severity, rule, Location(path, d), sanitizeMessage(d.Message))
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Location renders "path:line:col", dropping the parts a diagnostic lacks.
func Location(path string, d Diagnostic) string {
	switch {
	case d.HasLine() && d.HasColumn():
		return fmt.Sprintf("%s:%d:%d", path, d.Line, d.Column)
	case d.HasLine():
		return fmt.Sprintf("%s:%d", path, d.Line)
	default:
		return path
	}
}

func normalizePath(path string) string {
	if path == "" {
		return "<buffer>"
	}
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
